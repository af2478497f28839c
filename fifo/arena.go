// File: fifo/arena.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Off-heap storage arena. Platform backends provide arenaReserve and
// arenaRelease; this file views the raw region as a typed slot array.

package fifo

import (
	"unsafe"

	"github.com/momentics/ringfifo/api"
)

// arenaAlloc reserves capacity*sizeof(T) bytes through the platform arena
// and views them as a []T of capacity slots. The returned region must be
// passed to arenaRelease exactly once.
func arenaAlloc[T any](capacity int) ([]byte, []T, error) {
	var zero T
	elem := int(unsafe.Sizeof(zero))
	if elem == 0 {
		// Zero-size elements need no region at all.
		return nil, make([]T, capacity), nil
	}
	region, err := arenaReserve(capacity * elem)
	if err != nil {
		return nil, nil, api.NewError(api.ErrCodeInternal,
			"fifo: arena reservation failed").
			WithContext("bytes", capacity*elem).
			WithContext("cause", err.Error())
	}
	data := unsafe.Slice((*T)(unsafe.Pointer(&region[0])), capacity)
	return region, data, nil
}
