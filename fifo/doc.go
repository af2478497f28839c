// Package fifo
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity generic ring FIFO over contiguous storage.
// One implementation covers both wraparound strategies: modulo arithmetic
// for arbitrary capacity and bitmask arithmetic for power-of-two capacity.
// Backing storage may be heap-allocated, caller-supplied, or reserved
// off-heap through the platform arena.
// See ring.go, bulk.go, search.go for implementation details.
package fifo
