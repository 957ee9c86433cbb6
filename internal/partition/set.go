package partition

// Set is the fixed-length array of exactly R partition Buffers that make up
// one run's shuffle state. It is created at Run entry and dropped at Run
// exit; nothing about it survives across invocations.
type Set struct {
	buffers []*Buffer
}

// NewSet allocates a Set of n empty, independent Buffers.
func NewSet(n int) *Set {
	s := &Set{buffers: make([]*Buffer, n)}
	for i := range s.buffers {
		s.buffers[i] = NewBuffer()
	}
	return s
}

// Len returns the number of partitions, R.
func (s *Set) Len() int {
	return len(s.buffers)
}

// Buffer returns the Buffer owned by partition p.
func (s *Set) Buffer(p int) *Buffer {
	return s.buffers[p]
}

// Emit routes a key/value pair to the partition selected by partitionFn,
// storing both strings in engine-owned buffers. It is the EmitSink
// described in spec §4.3: fully reentrant across mapper goroutines, with no
// cross-partition ordering guarantee.
//
// The assignment below copies only the string headers; the stored key and
// value share the caller's bytes. Go strings are immutable, so nothing the
// caller does with its own variables after Emit returns changes the stored
// pair.
func (s *Set) Emit(key, value string, partitionFn func(key string, numPartitions int) int) {
	p := partitionFn(key, len(s.buffers))
	k, v := key, value
	s.buffers[p].Append(k, v)
}
