// File: fifo/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ring is a fixed-capacity circular FIFO with in/out index tracking.
// Single-threaded or externally synchronized use only.

package fifo

import (
	"github.com/momentics/ringfifo/api"
)

// Ensure compile-time interface compliance.
var _ api.FIFO[int] = (*Ring[int])(nil)

// Ring is a bounded circular FIFO over a contiguous slot array.
//
// One slot is always reserved to tell a full ring from an empty one, so a
// ring of capacity n holds at most n-1 elements. Indices stay in
// [0, capacity) at all times; wraparound uses bitmask arithmetic when the
// ring was built with mask sizing and remainder arithmetic otherwise.
type Ring[T comparable] struct {
	data []T
	size int
	mask int // size-1 under mask sizing, 0 under modulo sizing

	in  int // next slot to write
	out int // next slot to read

	ownership api.Ownership
	region    []byte // arena region backing data; nil unless off-heap
	closed    bool
}

// New builds a ring with the given physical slot count.
//
// capacity must be at least 2 (one usable slot plus the reserved slot) and,
// under WithMaskSizing, a power of two. Without a storage option the ring
// allocates its own heap storage.
func New[T comparable](capacity int, opts ...Option[T]) (*Ring[T], error) {
	cfg := config[T]{sizing: api.SizingModulo}
	for _, opt := range opts {
		opt(&cfg)
	}

	if capacity < 2 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"fifo: capacity must be at least 2").WithContext("capacity", capacity)
	}
	if cfg.sizing == api.SizingMask && capacity&(capacity-1) != 0 {
		return nil, api.NewError(api.ErrCodeInvalidArgument,
			"fifo: mask sizing requires power-of-two capacity").WithContext("capacity", capacity)
	}
	if cfg.storage != nil && cfg.offHeap {
		return nil, api.NewError(api.ErrCodeStorageConflict,
			"fifo: WithStorage and WithOffHeapStorage are mutually exclusive")
	}

	r := &Ring[T]{size: capacity}
	if cfg.sizing == api.SizingMask {
		r.mask = capacity - 1
	}

	switch {
	case cfg.storage != nil:
		if len(cfg.storage) < capacity {
			return nil, api.NewError(api.ErrCodeStorageTooSmall,
				"fifo: supplied storage is shorter than capacity").
				WithContext("capacity", capacity).
				WithContext("storage", len(cfg.storage))
		}
		r.data = cfg.storage[:capacity]
		r.ownership = api.StorageBorrowed
	case cfg.offHeap:
		region, data, err := arenaAlloc[T](capacity)
		if err != nil {
			return nil, err
		}
		r.region = region
		r.data = data
		r.ownership = api.StorageOwned
	default:
		r.data = make([]T, capacity)
		r.ownership = api.StorageOwned
	}
	return r, nil
}

// wrap maps an advanced index back into [0, size).
func (r *Ring[T]) wrap(i int) int {
	if r.mask != 0 {
		return i & r.mask
	}
	return i % r.size
}

// Insert appends one element; returns false if the ring is full or closed.
func (r *Ring[T]) Insert(v T) bool {
	if r.closed || r.wrap(r.in+1) == r.out {
		return false
	}
	r.data[r.in] = v
	r.in = r.wrap(r.in + 1)
	return true
}

// Remove pops the oldest element; ok is false if the ring is empty or closed.
func (r *Ring[T]) Remove() (T, bool) {
	var zero T
	if r.closed || r.in == r.out {
		return zero, false
	}
	v := r.data[r.out]
	r.out = r.wrap(r.out + 1)
	return v, true
}

// Peek reads the oldest element without advancing the read index.
func (r *Ring[T]) Peek() (T, bool) {
	var zero T
	if r.closed || r.in == r.out {
		return zero, false
	}
	return r.data[r.out], true
}

// Discard drops the oldest element without copying it out.
func (r *Ring[T]) Discard() bool {
	if r.closed || r.in == r.out {
		return false
	}
	r.out = r.wrap(r.out + 1)
	return true
}

// Len returns the number of occupied slots.
func (r *Ring[T]) Len() int {
	if r.closed {
		return 0
	}
	return r.wrap(r.in - r.out + r.size)
}

// Cap returns the physical slot count; usable capacity is Cap()-1.
func (r *Ring[T]) Cap() int { return r.size }

// Free returns how many elements can still be inserted.
func (r *Ring[T]) Free() int {
	if r.closed {
		return 0
	}
	return r.size - 1 - r.Len()
}

// IsEmpty reports whether the ring holds no elements.
func (r *Ring[T]) IsEmpty() bool { return r.in == r.out }

// IsFull reports whether the ring cannot accept another element.
func (r *Ring[T]) IsFull() bool {
	if r.closed {
		return false
	}
	return r.wrap(r.in+1) == r.out
}

// Ownership reports who releases the backing storage.
func (r *Ring[T]) Ownership() api.Ownership { return r.ownership }

// Sizing reports the wraparound strategy the ring was built with.
func (r *Ring[T]) Sizing() api.Sizing {
	if r.mask != 0 {
		return api.SizingMask
	}
	return api.SizingModulo
}

// Reset drops all elements. Storage contents are left as-is.
func (r *Ring[T]) Reset() {
	r.in, r.out = 0, 0
}

// Close releases owned off-heap storage exactly once and marks the ring
// closed. Borrowed storage is never released. Safe to call twice.
func (r *Ring[T]) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.in, r.out = 0, 0
	r.data = nil
	if r.region != nil {
		region := r.region
		r.region = nil
		return arenaRelease(region)
	}
	return nil
}
