package mapreduce

import "context"

// Pair is a single emitted key/value pair.
type Pair struct {
	Key   string
	Value string
}

// EmitFunc publishes a key/value pair from a Mapper into the engine's
// partitioned buffers. It is safe to call from any mapper goroutine at any
// time during that mapper's invocation. The arguments are borrowed: once
// EmitFunc returns, the caller may freely reuse or overwrite key and value.
type EmitFunc func(key, value string)

// Mapper opens, reads and tokenizes the file at path, calling emit zero or
// more times, and returns when done. The engine invokes Mapper from many
// goroutines concurrently, one per input path in flight; a given Mapper
// value must be safe for that kind of concurrent use (most mappers are,
// since each invocation only touches its own path and a shared EmitFunc).
type Mapper func(ctx context.Context, path string, emit EmitFunc) error

// GetNextFunc is the grouped-value iterator passed to a Reducer. A call
// requesting a key other than the current group leader, or any call past
// the end of the partition, returns ("", false) without error. A Reducer
// must call GetNextFunc with its own key until it returns false before
// returning, or the engine will invoke it again for the same, undrained
// key.
type GetNextFunc func(key string) (value string, ok bool)

// Reducer repeatedly calls next(key) until it returns false, performing
// the user-defined reduction over the resulting values. The engine invokes
// Reducer single-threaded per partition: a given Reducer value only ever
// needs to be safe for sequential reuse across the groups of one
// partition, plus concurrent use across partitions if R > 1.
type Reducer func(ctx context.Context, key string, next GetNextFunc) error

// Partitioner maps a key to a partition index in [0, numPartitions). It
// must be a pure function of its two arguments and may be called
// concurrently from any mapper goroutine.
type Partitioner func(key string, numPartitions int) int
