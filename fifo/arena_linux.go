//go:build linux
// +build linux

// File: fifo/arena_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux arena backend over anonymous private mappings.

package fifo

import "golang.org/x/sys/unix"

func arenaReserve(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
}

func arenaRelease(region []byte) error {
	if len(region) == 0 {
		return nil
	}
	return unix.Munmap(region)
}
