// Copyright 2026 The Mapreduce Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package partition implements the in-memory shuffle engine: per-partition
// buffers of key/value pairs, bulk ordering, and the grouped-value cursor
// protocol reducers use to walk a sorted partition.
package partition

import (
	"sort"
	"sync"
)

// initialCapacity is the number of pairs a freshly created Buffer can hold
// before its first growth. 2^16 amortizes allocation cost across the large
// inputs this engine is meant for.
const initialCapacity = 1 << 16

// Pair is a single key/value pair owned by the engine.
type Pair struct {
	Key   string
	Value string
}

// Buffer is a growable, thread-safe, append-only sequence of pairs owned by
// a single partition. It is append-only and mutex-guarded during MapStage,
// then sorted once (single-threaded, caller guarantees no concurrent
// append) and read-only for the remainder of the run.
type Buffer struct {
	mu    sync.Mutex
	pairs []Pair
}

// NewBuffer returns an empty Buffer pre-sized to initialCapacity.
func NewBuffer() *Buffer {
	return &Buffer{pairs: make([]Pair, 0, initialCapacity)}
}

// Append adds a pair to the buffer. It is safe to call concurrently from
// any number of mapper goroutines. Growth is amortized O(1): when the
// buffer is full its capacity doubles, matching the original C ArrList's
// explicit doubling rule.
func (b *Buffer) Append(key, value string) {
	b.mu.Lock()
	if len(b.pairs) == cap(b.pairs) {
		newCap := 2 * cap(b.pairs)
		if newCap == 0 {
			newCap = initialCapacity
		}
		grown := make([]Pair, len(b.pairs), newCap)
		copy(grown, b.pairs)
		b.pairs = grown
	}
	b.pairs = append(b.pairs, Pair{Key: key, Value: value})
	b.mu.Unlock()
}

// Sort orders the buffer's pairs ascending by key, byte-wise. The caller
// must guarantee no concurrent Append is in flight; SortStage's barrier
// with MapStage provides this.
//
// sort.SliceStable is used rather than sort.Slice: spec leaves tie-break
// order for equal keys unspecified but requires it be deterministic within
// one run, which a stable sort gives for free.
func (b *Buffer) Sort() {
	sort.SliceStable(b.pairs, func(i, j int) bool {
		return b.pairs[i].Key < b.pairs[j].Key
	})
}

// Len returns the number of pairs in the buffer. Safe to call after Sort.
func (b *Buffer) Len() int {
	return len(b.pairs)
}

// At returns the pair at index i. Safe to call after Sort; i must be in
// [0, Len()).
func (b *Buffer) At(i int) Pair {
	return b.pairs[i]
}
