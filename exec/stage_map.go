package exec

import (
	"context"

	"github.com/grailbio/base/status"
	"golang.org/x/sync/errgroup"

	"github.com/go-mapreduce/mapreduce"
)

// runMapStage spawns NumMappers workers, each repeatedly pulling a path
// from the FileQueue and invoking the user Mapper until the queue is
// exhausted. M > len(files) is allowed: excess workers see an exhausted
// queue on their first pull and exit immediately. errgroup.Group joins all
// workers and reports the first observed Mapper error, discarding the
// rest, which is exactly spec §7's UserCallbackFailure propagation rule.
func (c *Coordinator) runMapStage(ctx context.Context, group *status.Group) error {
	var task *status.Task
	if group != nil {
		task = group.Startf("map(%d workers)", c.job.NumMappers)
		defer task.Done()
	}

	emit := func(key, value string) {
		c.set.Emit(key, value, c.job.EffectivePartitioner())
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < c.job.NumMappers; w++ {
		g.Go(func() error {
			for {
				path, ok := c.queue.Next()
				if !ok {
					return nil
				}
				if err := c.job.Map(gctx, path, emit); err != nil {
					return mapreduce.UserCallbackFailure("exec.runMapStage: mapper", err)
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for p := 0; p < c.set.Len(); p++ {
		total += c.set.Buffer(p).Len()
	}
	logStageDone(group, "map", total)
	return nil
}
