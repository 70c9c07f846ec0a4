// Package bench runs convolution workloads under a measurement probe and
// summarizes the timings.
//
// The runner owns the three buffers for a case, optionally verifies the
// kernel output against the float64 golden model, then times repeated
// invocations. Each timed call is bracketed by the external probe's
// Begin/End markers; only the kernel call sits inside the window.
package bench

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/convbench-ml/convbench/internal/conv"
	"github.com/convbench-ml/convbench/internal/golden"
	"github.com/convbench-ml/convbench/internal/parallel"
	"github.com/convbench-ml/convbench/internal/probe"
	"github.com/convbench-ml/convbench/internal/tensor"
)

// Options controls a benchmark run.
type Options struct {
	Warmup   int             // untimed invocations before measurement
	Reps     int             // timed invocations
	Parallel bool            // use the row-parallel kernel
	Workers  parallel.Config // worker config for the parallel kernel
	Verify   bool            // check one output against the golden model first
	Tol      float64         // golden comparison tolerance
	Probe    probe.Probe     // external measurement markers; never nil after DefaultOptions
}

// DefaultOptions returns the standard run configuration: sequential kernel,
// golden verification on, and a no-op external probe.
func DefaultOptions() Options {
	return Options{
		Warmup:  3,
		Reps:    10,
		Workers: parallel.DefaultConfig(),
		Verify:  true,
		Tol:     golden.DefaultTol,
		Probe:   probe.Nop{},
	}
}

// Result holds per-rep durations and their summary statistics.
type Result struct {
	Case      Case
	Durations []time.Duration
	Mean      time.Duration
	StdDev    time.Duration
	Min       time.Duration
	Max       time.Duration
	GFLOPS    float64 // throughput at the mean duration
	Verified  bool
}

// Run executes one case and returns its timing summary.
func Run(c Case, opts Options) (*Result, error) {
	if opts.Reps <= 0 {
		return nil, fmt.Errorf("bench: reps must be positive, got %d", opts.Reps)
	}
	if opts.Probe == nil {
		opts.Probe = probe.Nop{}
	}
	if err := c.Dims.Validate(); err != nil {
		return nil, err
	}

	input, weight, err := c.Operands()
	if err != nil {
		return nil, err
	}
	output, err := tensor.New[float32](c.Dims.OutputShape())
	if err != nil {
		return nil, err
	}

	invoke := func() error {
		if opts.Parallel {
			return conv.Conv2DParallelInto(output, input, weight, c.Dims, opts.Workers)
		}
		return conv.Conv2DInto(output, input, weight, c.Dims)
	}

	result := &Result{Case: c}

	if opts.Verify {
		if err := invoke(); err != nil {
			return nil, err
		}
		if err := golden.Check(output, input, weight, c.Dims, opts.Tol); err != nil {
			return nil, fmt.Errorf("bench: case %q failed verification: %w", c.Name, err)
		}
		result.Verified = true
	}

	for i := 0; i < opts.Warmup; i++ {
		if err := invoke(); err != nil {
			return nil, err
		}
	}

	var sw probe.Stopwatch
	for i := 0; i < opts.Reps; i++ {
		opts.Probe.Begin()
		sw.Begin()
		err := invoke()
		sw.End()
		opts.Probe.End()
		if err != nil {
			return nil, err
		}
	}

	result.Durations = sw.Laps()
	result.summarize()
	return result, nil
}

// summarize fills the statistics fields from Durations.
func (r *Result) summarize() {
	secs := make([]float64, len(r.Durations))
	for i, d := range r.Durations {
		secs[i] = d.Seconds()
	}

	mean := stat.Mean(secs, nil)
	r.Mean = time.Duration(mean * float64(time.Second))
	if len(secs) > 1 {
		r.StdDev = time.Duration(stat.StdDev(secs, nil) * float64(time.Second))
	}
	r.Min = time.Duration(floats.Min(secs) * float64(time.Second))
	r.Max = time.Duration(floats.Max(secs) * float64(time.Second))
	if mean > 0 {
		r.GFLOPS = float64(r.Case.Dims.FLOPs()) / mean / 1e9
	}
}

// String renders one summary line for the CLI table.
func (r *Result) String() string {
	verified := " "
	if r.Verified {
		verified = "ok"
	}
	return fmt.Sprintf("%-16s %-22s reps=%-3d mean=%-12s stddev=%-12s min=%-12s max=%-12s %7.3f GFLOP/s verify=%s",
		r.Case.Name, r.Case.Dims, len(r.Durations), r.Mean, r.StdDev, r.Min, r.Max, r.GFLOPS, verified)
}
