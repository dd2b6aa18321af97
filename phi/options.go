package phi

import "runtime"

// Option configures a Compute call. Mirrors network.Option /
// networks.Option's functional-option shape.
type Option func(*options)

type options struct {
	parallel    bool
	selfLoopPhi bool
	workers     int
	cesSource   CESSource
}

// WithParallelCutEvaluation toggles concurrent cut evaluation. Defaults
// to true; set false for deterministic single-threaded debugging (§6's
// PARALLEL_CUT_EVALUATION).
func WithParallelCutEvaluation(b bool) Option {
	return func(o *options) { o.parallel = b }
}

// WithSelfLoopConvention sets whether a single node with a self-loop is
// reported at the fixed Φ=0.5 convention instead of a null result (§4.8's
// special case, §6's SINGLE_NODES_WITH_SELFLOOPS_HAVE_PHI). Defaults to
// false.
func WithSelfLoopConvention(b bool) Option {
	return func(o *options) { o.selfLoopPhi = b }
}

// WithWorkers caps the number of cuts evaluated concurrently. n <= 0 is
// ignored (the default stands).
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func gatherOptions(opts ...Option) *options {
	o := &options{parallel: true, selfLoopPhi: false, workers: defaultWorkers(), cesSource: directCESSource{}}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// defaultWorkers leaves one CPU free for the rest of the process, per
// §5's concurrency model.
func defaultWorkers() int {
	n := runtime.NumCPU() - 1
	if n < 1 {
		n = 1
	}

	return n
}
