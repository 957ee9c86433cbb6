package mapreduce

import "github.com/grailbio/base/status"

// Job describes one map/reduce run: the input files, the user callables,
// and the worker pool sizes for the map and reduce stages.
//
// Job is built directly (every field but the status group is exported) for the required
// parameters, with Options layered on for the handful of optional knobs;
// this mirrors the teacher's own preference for plain struct literals over
// builder chains for its core Slice/Func types, reserving functional
// options for genuinely optional configuration.
type Job struct {
	// Files lists the input file paths. It may be empty: all stages still
	// run, partitions end up empty, and Reduce is never invoked.
	Files []string

	// Map is invoked once per file path, across NumMappers worker
	// goroutines. Required.
	Map Mapper

	// NumMappers is the size of the map worker pool (M in spec). Must be
	// at least 1.
	NumMappers int

	// Reduce is invoked once per distinct key per partition, across
	// NumReducers worker goroutines. Required.
	Reduce Reducer

	// NumReducers is the size of the sort and reduce worker pools, and the
	// number of partitions (R in spec). Must be at least 1.
	NumReducers int

	// Partitioner assigns each emitted key to a partition. If nil,
	// DefaultPartition is used.
	Partitioner Partitioner

	status *status.Group
}

// Option configures optional Job behavior not required for a correct run.
type Option func(*Job)

// WithPartitioner overrides the default partitioner.
func WithPartitioner(p Partitioner) Option {
	return func(j *Job) { j.Partitioner = p }
}

// WithStatus attaches a status.Group that the coordinator reports
// per-stage progress to. It is purely observational: nothing about
// correctness depends on whether a status group is attached.
func WithStatus(g *status.Group) Option {
	return func(j *Job) { j.status = g }
}

// NewJob builds a Job from its required parameters plus any Options.
func NewJob(files []string, mapFn Mapper, numMappers int, reduceFn Reducer, numReducers int, opts ...Option) Job {
	j := Job{
		Files:       files,
		Map:         mapFn,
		NumMappers:  numMappers,
		Reduce:      reduceFn,
		NumReducers: numReducers,
		Partitioner: DefaultPartition,
	}
	for _, opt := range opts {
		opt(&j)
	}
	return j
}

// Status returns the status.Group attached via WithStatus, or nil.
func (j Job) Status() *status.Group {
	return j.status
}

// Validate checks the InvalidArgument preconditions from spec §4.8/§7:
// NumMappers and NumReducers must each be at least 1, and Map/Reduce must
// be set. Partitioner is not required: a nil Partitioner is replaced by
// DefaultPartition.
func (j Job) Validate() error {
	switch {
	case j.NumMappers < 1:
		return invalidArgument("mapreduce.Job", "NumMappers must be at least 1")
	case j.NumReducers < 1:
		return invalidArgument("mapreduce.Job", "NumReducers must be at least 1")
	case j.Map == nil:
		return invalidArgument("mapreduce.Job", "Map must not be nil")
	case j.Reduce == nil:
		return invalidArgument("mapreduce.Job", "Reduce must not be nil")
	}
	return nil
}

// EffectivePartitioner returns j.Partitioner, or DefaultPartition if unset.
func (j Job) EffectivePartitioner() Partitioner {
	if j.Partitioner != nil {
		return j.Partitioner
	}
	return DefaultPartition
}
