// Copyright 2025 Convbench Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package bench provides the public API for running convolution workloads
// under a measurement probe.
//
// Example:
//
//	c, _ := bench.Lookup("conv_fp32")
//	result, err := bench.Run(c, bench.DefaultOptions())
//	fmt.Println(result)
package bench

import "github.com/convbench-ml/convbench/internal/bench"

// Case is one named benchmark workload.
type Case = bench.Case

// Options controls a benchmark run.
type Options = bench.Options

// Result holds per-rep durations and their summary statistics.
type Result = bench.Result

// DefaultOptions returns the standard run configuration.
func DefaultOptions() Options {
	return bench.DefaultOptions()
}

// Run executes one case and returns its timing summary.
func Run(c Case, opts Options) (*Result, error) {
	return bench.Run(c, opts)
}

// Cases returns the built-in workload catalog.
func Cases() []Case {
	return bench.Cases()
}

// Lookup finds a built-in case by name.
func Lookup(name string) (Case, bool) {
	return bench.Lookup(name)
}
