// File: fifo/bulk.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bulk array transfer. A run that crosses the end of storage is split into
// two contiguous copies: the tail-end segment first, then the wrapped
// remainder at offset 0.

package fifo

// InsertMany appends all of src, or nothing.
//
// Returns false without any partial write when free space is short or the
// ring is closed. An empty src always succeeds.
func (r *Ring[T]) InsertMany(src []T) bool {
	if r.closed || len(src) > r.Free() {
		return false
	}
	n := copy(r.data[r.in:], src)
	if n < len(src) {
		copy(r.data, src[n:])
	}
	r.in = r.wrap(r.in + len(src))
	return true
}

// RemoveMany fills dst with the len(dst) oldest elements, or nothing.
//
// Returns false without consuming anything when fewer than len(dst)
// elements are stored or the ring is closed. An empty dst always succeeds.
func (r *Ring[T]) RemoveMany(dst []T) bool {
	if r.closed || len(dst) > r.Len() {
		return false
	}
	n := copy(dst, r.data[r.out:])
	if n < len(dst) {
		copy(dst[n:], r.data)
	}
	r.out = r.wrap(r.out + len(dst))
	return true
}
