package mapreduce

import "github.com/spaolacci/murmur3"

// DefaultPartition is the default Partitioner: djb2, reduced modulo
// numPartitions. It is deterministic and depends only on key and
// numPartitions, so the same key always lands in the same partition for a
// given numPartitions, across threads and across runs.
//
// Computed entirely in unsigned 64-bit arithmetic with wraparound, per
// spec's fix to the original C implementation's signed/unsigned mixing.
func DefaultPartition(key string, numPartitions int) int {
	h := uint64(5381)
	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}
	return int(h % uint64(numPartitions))
}

// MurmurPartition is an alternative Partitioner built on murmur3, offered
// for callers who want a faster, better-avalanching hash than djb2 on
// pathological key sets. It is never used unless a caller opts in via
// WithPartitioner; DefaultPartition remains the default.
func MurmurPartition(key string, numPartitions int) int {
	h := murmur3.Sum32([]byte(key))
	return int(h % uint32(numPartitions))
}
