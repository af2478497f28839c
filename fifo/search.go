// File: fifo/search.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Search and indexed access over occupied slots. Offsets are logical:
// 0 addresses the oldest element, Len()-1 the newest.

package fifo

// IndexOf scans occupied slots in FIFO order and returns the logical offset
// of the first element equal to v, or -1 if absent.
func (r *Ring[T]) IndexOf(v T) int {
	n := r.Len()
	for i := 0; i < n; i++ {
		if r.data[r.wrap(r.out+i)] == v {
			return i
		}
	}
	return -1
}

// GetAt reads the element at logical offset i without removing it.
func (r *Ring[T]) GetAt(i int) (T, bool) {
	var zero T
	if r.closed || i < 0 || i >= r.Len() {
		return zero, false
	}
	return r.data[r.wrap(r.out+i)], true
}

// SetAt overwrites the element at logical offset i in place.
func (r *Ring[T]) SetAt(i int, v T) bool {
	if r.closed || i < 0 || i >= r.Len() {
		return false
	}
	r.data[r.wrap(r.out+i)] = v
	return true
}
