// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// property_test.go — Randomized operation sequences checked against an
// unbounded queue oracle and the index invariants.
package fifo_test

import (
	"math/rand"
	"testing"

	"github.com/eapache/queue"

	"github.com/momentics/ringfifo/fifo"
)

// TestRing_PropertyBased replays random interleavings on ring and oracle
// and requires identical observable behavior at every step.
func TestRing_PropertyBased(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		r, err := fifo.New[int](64, fifo.WithMaskSizing[int]())
		if err != nil {
			t.Fatal(err)
		}
		usable := r.Cap() - 1
		oracle := queue.New()

		for i := 0; i < 5000; i++ {
			switch op := rng.Intn(4); op {
			case 0: // insert
				val := rng.Intn(100000)
				ok := r.Insert(val)
				if want := oracle.Length() < usable; ok != want {
					t.Fatalf("seed %d step %d: Insert ok=%v with oracle len %d", seed, i, ok, oracle.Length())
				}
				if ok {
					oracle.Add(val)
				}
			case 1: // remove
				val, ok := r.Remove()
				if oracle.Length() == 0 {
					if ok {
						t.Fatalf("seed %d step %d: Remove succeeded on empty", seed, i)
					}
					continue
				}
				want := oracle.Remove().(int)
				if !ok || val != want {
					t.Fatalf("seed %d step %d: expected %d, got %d (ok=%v)", seed, i, want, val, ok)
				}
			case 2: // peek
				val, ok := r.Peek()
				if oracle.Length() == 0 {
					if ok {
						t.Fatalf("seed %d step %d: Peek succeeded on empty", seed, i)
					}
					continue
				}
				want := oracle.Peek().(int)
				if !ok || val != want {
					t.Fatalf("seed %d step %d: Peek expected %d, got %d (ok=%v)", seed, i, want, val, ok)
				}
			case 3: // indexed read
				if oracle.Length() == 0 {
					continue
				}
				idx := rng.Intn(oracle.Length())
				val, ok := r.GetAt(idx)
				want := oracle.Get(idx).(int)
				if !ok || val != want {
					t.Fatalf("seed %d step %d: GetAt(%d) expected %d, got %d (ok=%v)", seed, i, idx, want, val, ok)
				}
			}

			if r.Len() != oracle.Length() {
				t.Fatalf("seed %d step %d: Len %d diverged from oracle %d", seed, i, r.Len(), oracle.Length())
			}
			if r.Len() < 0 || r.Len() > usable {
				t.Fatalf("seed %d step %d: Len out of bounds: %d", seed, i, r.Len())
			}
		}
	}
}

// TestRing_PropertyBulk does the same with bulk transfers of random length.
func TestRing_PropertyBulk(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		r, err := fifo.New[int](50)
		if err != nil {
			t.Fatal(err)
		}
		usable := r.Cap() - 1
		oracle := queue.New()

		for i := 0; i < 2000; i++ {
			n := rng.Intn(8)
			if rng.Intn(2) == 0 {
				src := make([]int, n)
				for j := range src {
					src[j] = rng.Intn(100000)
				}
				ok := r.InsertMany(src)
				if want := usable-oracle.Length() >= n; ok != want {
					t.Fatalf("seed %d step %d: InsertMany(%d) ok=%v free=%d", seed, i, n, ok, usable-oracle.Length())
				}
				if ok {
					for _, v := range src {
						oracle.Add(v)
					}
				}
			} else {
				dst := make([]int, n)
				ok := r.RemoveMany(dst)
				if want := oracle.Length() >= n; ok != want {
					t.Fatalf("seed %d step %d: RemoveMany(%d) ok=%v len=%d", seed, i, n, ok, oracle.Length())
				}
				if ok {
					for j := 0; j < n; j++ {
						want := oracle.Remove().(int)
						if dst[j] != want {
							t.Fatalf("seed %d step %d: dst[%d] expected %d, got %d", seed, i, j, want, dst[j])
						}
					}
				}
			}
			if r.Len() != oracle.Length() {
				t.Fatalf("seed %d step %d: Len %d diverged from oracle %d", seed, i, r.Len(), oracle.Length())
			}
		}
	}
}
