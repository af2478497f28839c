// File: fifo/options.go
// Package fifo defines functional options for ring construction.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package fifo

import "github.com/momentics/ringfifo/api"

// Option customizes ring construction.
type Option[T comparable] func(*config[T])

type config[T comparable] struct {
	sizing  api.Sizing
	storage []T
	offHeap bool
}

// WithMaskSizing selects bitmask wraparound arithmetic.
// New rejects capacities that are not a power of two.
func WithMaskSizing[T comparable]() Option[T] {
	return func(c *config[T]) {
		c.sizing = api.SizingMask
	}
}

// WithStorage binds caller-owned backing storage of at least capacity slots.
// The ring never releases borrowed storage.
func WithStorage[T comparable](buf []T) Option[T] {
	return func(c *config[T]) {
		c.storage = buf
	}
}

// WithOffHeapStorage reserves the backing storage through the platform
// arena (anonymous mmap on Linux) instead of the Go heap. The region is
// unmapped on Close. Element types must not contain pointers: the garbage
// collector does not scan arena memory.
func WithOffHeapStorage[T comparable]() Option[T] {
	return func(c *config[T]) {
		c.offHeap = true
	}
}
