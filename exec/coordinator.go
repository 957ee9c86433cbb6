// Copyright 2026 The Mapreduce Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec runs a mapreduce.Job to completion: it builds the
// partition set and file queue, drives MapStage, SortStage and
// ReduceStage through strict barriers, and releases all engine-owned
// state before returning.
//
// This package is adapted from the teacher's own exec package: Run below
// generalizes the task-graph evaluator in the teacher's Eval (exec/eval.go)
// and the per-task dispatch loop in bigmachineExecutor.Run
// (exec/bigmachine.go) down to the three in-process barriers a single-
// process map/reduce run requires, dropping everything specific to
// running tasks on remote bigmachine-managed workers.
package exec

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/status"
	"github.com/grailbio/base/sync/once"

	"github.com/go-mapreduce/mapreduce"
	"github.com/go-mapreduce/mapreduce/internal/dispatch"
	"github.com/go-mapreduce/mapreduce/internal/partition"
)

// Coordinator owns the engine-wide state for exactly one run: the
// PartitionSet and FileQueue described in spec §3. It is created fresh by
// Run and torn down before Run returns; nothing about it survives across
// invocations.
type Coordinator struct {
	job   mapreduce.Job
	set   *partition.Set
	queue *dispatch.FileQueue

	release once.Task
}

// New builds a Coordinator for job. It does not start any stage; call Run.
func New(job mapreduce.Job) *Coordinator {
	partition.Debug = mapreduce.Debug
	return &Coordinator{
		job:   job,
		set:   partition.NewSet(job.NumReducers),
		queue: dispatch.NewFileQueue(job.Files),
	}
}

// Run is the coordinator entry point: spec's MR_Run. It validates job,
// then runs MapStage, SortStage and ReduceStage in strict sequence with a
// total happens-before barrier between each, and releases all
// coordinator-owned state before returning, regardless of which stage
// failed.
func Run(ctx context.Context, job mapreduce.Job) error {
	if err := job.Validate(); err != nil {
		return err
	}
	c := New(job)
	defer c.Close()
	return c.Run(ctx)
}

// Run drives c's job through all three stages. Between-stage barriers are
// total: no mapper, sort, or reduce goroutine from one stage is still
// running when the next stage's goroutines start, which is the
// correctness basis for dropping per-partition mutexes after MapStage
// (spec §4.8).
func (c *Coordinator) Run(ctx context.Context) error {
	group := c.job.Status()

	if err := c.runMapStage(ctx, group); err != nil {
		return err
	}
	if err := c.runSortStage(ctx, group); err != nil {
		return err
	}
	if err := c.runReduceStage(ctx, group); err != nil {
		return err
	}
	return nil
}

// Close releases all coordinator-owned storage. It is idempotent: calling
// it more than once (for example, once explicitly and once via a deferred
// call in Run) only releases storage on the first call, adapted from the
// teacher's once-per-key idempotent RPC idiom (bigmachineExecutor's
// Compiles/Commits, backed by github.com/grailbio/base/sync/once) down to
// a single always-fires-once release.
func (c *Coordinator) Close() error {
	return c.release.Do(func() error {
		c.set = nil
		c.queue = nil
		return nil
	})
}

func logStageDone(group *status.Group, stage string, pairs int) {
	msg := stage + ": processed " + humanize.Comma(int64(pairs)) + " pairs"
	log.Printf("mapreduce: %s", msg)
	if group != nil {
		group.Printf("%s", msg)
	}
}
