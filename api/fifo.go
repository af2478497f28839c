// Package api
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity FIFO container contract.

package api

// Sizing selects the wraparound arithmetic of a ring.
type Sizing int

const (
	// SizingModulo supports arbitrary capacity via remainder arithmetic.
	SizingModulo Sizing = iota
	// SizingMask requires power-of-two capacity and wraps via bitwise AND.
	SizingMask
)

// Ownership records who releases the backing storage.
type Ownership int

const (
	// StorageOwned: the container allocated the storage and releases it on Close.
	StorageOwned Ownership = iota
	// StorageBorrowed: the caller supplied the storage and keeps ownership.
	StorageBorrowed
)

// FIFO is a fixed-capacity circular queue contract.
//
// One physical slot is reserved to disambiguate full from empty, so the
// usable capacity is Cap()-1 regardless of sizing mode. Implementations are
// not safe for concurrent use; callers synchronize externally.
type FIFO[T comparable] interface {
	// Insert appends one element, returns false if full.
	Insert(v T) bool
	// Remove pops the oldest element, ok false if empty.
	Remove() (T, bool)
	// Peek reads the oldest element without removing it.
	Peek() (T, bool)
	// Discard drops the oldest element, returns false if empty.
	Discard() bool

	// InsertMany appends all of src or nothing; false if free space is short.
	InsertMany(src []T) bool
	// RemoveMany fills dst with the len(dst) oldest elements or nothing.
	RemoveMany(dst []T) bool

	// IndexOf returns the logical offset (0 = oldest) of the first match, -1 if absent.
	IndexOf(v T) int
	// GetAt reads the element at logical offset i without removing it.
	GetAt(i int) (T, bool)
	// SetAt overwrites the element at logical offset i in place.
	SetAt(i int, v T) bool

	// Len returns the number of occupied slots.
	Len() int
	// Cap returns the physical slot count.
	Cap() int
	// Free returns the number of elements that can still be inserted.
	Free() int
	// IsEmpty reports whether no slot is occupied.
	IsEmpty() bool
	// IsFull reports whether no free slot remains.
	IsFull() bool

	// Reset drops all elements without touching storage contents.
	Reset()
	// Close releases owned storage exactly once; idempotent.
	Close() error
}
