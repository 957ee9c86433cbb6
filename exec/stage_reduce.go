package exec

import (
	"context"

	"github.com/grailbio/base/status"
	"golang.org/x/sync/errgroup"

	"github.com/go-mapreduce/mapreduce"
	"github.com/go-mapreduce/mapreduce/internal/partition"
)

// runReduceStage spawns NumReducers workers, one per partition, each
// driving the user Reducer over its sorted buffer through the GetNext
// grouping walk described in spec §4.7. Each partition has its own
// Cursor; there is no shared state between reduce workers, so no
// additional synchronization is needed beyond the errgroup join barrier.
func (c *Coordinator) runReduceStage(ctx context.Context, group *status.Group) error {
	var task *status.Task
	if group != nil {
		task = group.Startf("reduce(%d partitions)", c.job.NumReducers)
		defer task.Done()
	}

	g, gctx := errgroup.WithContext(ctx)
	for p := 0; p < c.set.Len(); p++ {
		p := p
		g.Go(func() error {
			return c.reducePartition(gctx, p)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logStageDone(group, "reduce", reduceGroupCount(c.set, c.job.NumReducers))
	return nil
}

// reducePartition runs the outer grouping walk for a single partition:
// while the cursor has not reached the end, read the key at its current
// position, invoke Reduce with a GetNext bound to that cursor, and repeat.
// A Reducer that returns without draining its group (spec §4.7, §9) will
// cause the outer loop to invoke it again for the same key; this is
// accepted as specified rather than defended against.
func (c *Coordinator) reducePartition(ctx context.Context, p int) error {
	buf := c.set.Buffer(p)
	cursor := partition.NewCursor(buf)

	for !cursor.Done() {
		key := cursor.Key()
		cursor.BeginGroup(key)
		err := c.job.Reduce(ctx, key, cursor.GetNext)
		cursor.EndGroup()
		if err != nil {
			return mapreduce.UserCallbackFailure("exec.runReduceStage: reducer", err)
		}
	}
	return nil
}

// reduceGroupCount is a diagnostics-only count of the total pairs consumed
// across all partitions, used for the status/log line after ReduceStage.
func reduceGroupCount(set *partition.Set, numPartitions int) int {
	total := 0
	for p := 0; p < numPartitions; p++ {
		total += set.Buffer(p).Len()
	}
	return total
}
