package exec

import (
	"context"

	"github.com/grailbio/base/status"
	"golang.org/x/sync/errgroup"
)

// runSortStage spawns NumReducers workers, one per partition, each sorting
// its own PartitionBuffer ascending by key. Partitions are independent, so
// all R sorts run in parallel; the stage completes when all have joined.
// Sort itself cannot fail (spec models allocation failure as process-fatal,
// not as a recoverable per-partition error), so this stage only needs
// errgroup for the join barrier, not for error aggregation.
func (c *Coordinator) runSortStage(ctx context.Context, group *status.Group) error {
	var task *status.Task
	if group != nil {
		task = group.Startf("sort(%d partitions)", c.job.NumReducers)
		defer task.Done()
	}

	var g errgroup.Group
	for p := 0; p < c.set.Len(); p++ {
		p := p
		g.Go(func() error {
			c.set.Buffer(p).Sort()
			return nil
		})
	}
	return g.Wait()
}
