package partition

import (
	"github.com/grailbio/base/log"

	"github.com/go-mapreduce/mapreduce"
)

// Debug mirrors mapreduce.Debug down into this package: when set, GetNext
// logs ContractViolation detections instead of silently treating them as
// group exhaustion. exec.New copies mapreduce.Debug here once per run.
var Debug = false

// Cursor is a per-partition monotonically advancing index into a sorted
// Buffer's pair list. Exactly one Cursor exists per partition, created at
// SortStage end (initialized to 0) and advanced only by ReduceStage; it is
// never shared across goroutines, since ReduceStage assigns one partition
// per worker.
type Cursor struct {
	buf *Buffer
	pos int

	active   bool
	groupKey string
}

// NewCursor returns a Cursor over buf, positioned at the start.
func NewCursor(buf *Buffer) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the cursor's current index. Exported for tests asserting
// monotonicity (spec §8).
func (c *Cursor) Pos() int {
	return c.pos
}

// Done reports whether the cursor has walked past the end of its buffer.
func (c *Cursor) Done() bool {
	return c.pos >= c.buf.Len()
}

// Key returns the key at the cursor's current position. It must only be
// called when Done reports false.
func (c *Cursor) Key() string {
	return c.buf.At(c.pos).Key
}

// BeginGroup marks the cursor as bound to a reducer invocation for key. The
// outer grouping walk in exec.Coordinator.reducePartition calls this
// immediately before invoking Reduce, and EndGroup immediately after.
func (c *Cursor) BeginGroup(key string) {
	c.active = true
	c.groupKey = key
}

// EndGroup releases the binding set by BeginGroup. A GetNext call that
// arrives after EndGroup (a reducer that saved the closure and calls it
// later) is a ContractViolation.
func (c *Cursor) EndGroup() {
	c.active = false
}

// GetNext is the grouped-value iterator exposed to a reducer: it must only
// be invoked from within the reducer call BeginGroup/EndGroup bracket for
// the partition that owns this cursor, and only with the key that call was
// invoked for. Two distinct "no more values" conditions exist:
//
//   - ordinary group exhaustion: requestedKey matches the group the cursor
//     is bound to, but the buffer has moved past the last pair with that
//     key (or past the end entirely). This is the expected way a reducer
//     learns to stop calling GetNext.
//   - ContractViolation: requestedKey doesn't match the bound group, or
//     GetNext is called outside any BeginGroup/EndGroup bracket. Both are
//     reducer bugs; per spec §7 they are defensively treated the same as
//     exhaustion (absent, no advance) but reported when Debug is set.
func (c *Cursor) GetNext(requestedKey string) (value string, ok bool) {
	if !c.active {
		if Debug {
			log.Printf("mapreduce: %v", mapreduce.ContractViolation(
				"partition.Cursor.GetNext", "called outside a reducer invocation"))
		}
		return "", false
	}
	if requestedKey != c.groupKey {
		if Debug {
			log.Printf("mapreduce: %v", mapreduce.ContractViolation(
				"partition.Cursor.GetNext", "requested key "+requestedKey+" does not match group leader "+c.groupKey))
		}
		return "", false
	}
	if c.Done() {
		return "", false
	}
	pair := c.buf.At(c.pos)
	if pair.Key != requestedKey {
		return "", false
	}
	c.pos++
	return pair.Value, true
}
