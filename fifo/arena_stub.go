//go:build !linux
// +build !linux

// File: fifo/arena_stub.go
// Author: momentics <momentics@gmail.com>
//
// Arena backend for platforms without mmap support: plain heap storage,
// release is a no-op and the GC reclaims the region.

package fifo

func arenaReserve(n int) ([]byte, error) {
	return make([]byte, n), nil
}

func arenaRelease([]byte) error { return nil }
