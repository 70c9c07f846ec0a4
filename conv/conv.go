// Copyright 2025 Convbench Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package conv provides the public API for the direct 2D convolution
// kernel.
//
// The kernel is the benchmark workload itself: naive, unpadded,
// unit-stride, channel-last, with a fixed six-loop reduction order that
// makes results bit-reproducible.
//
// Example:
//
//	d := conv.Dims{H: 7, W: 56, I: 3, J: 3, C: 32, K: 8}
//	output, err := conv.Conv2D(input, weight, d)
package conv

import (
	"github.com/convbench-ml/convbench/internal/conv"
	"github.com/convbench-ml/convbench/internal/parallel"
	"github.com/convbench-ml/convbench/tensor"
)

// Dims describes one convolution workload: input H*W*C, filter bank
// I*J*C*K, channel-last.
type Dims = conv.Dims

// ErrInvalidDimensions is the sentinel for every precondition violation.
var ErrInvalidDimensions = conv.ErrInvalidDimensions

// DimensionError describes which precondition failed; it wraps
// ErrInvalidDimensions.
type DimensionError = conv.DimensionError

// ParallelConfig controls worker behavior for the parallel kernel.
type ParallelConfig = parallel.Config

// DefaultParallelConfig derives worker settings from the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// Conv2D convolves input [H, W, C] with weight [I, J, C, K], returning a
// freshly allocated [Ho, Wo, K] output.
func Conv2D(input, weight *tensor.Tensor[float32], d Dims) (*tensor.Tensor[float32], error) {
	return conv.Conv2D(input, weight, d)
}

// Conv2DInto is the caller-owned-output form of Conv2D.
func Conv2DInto(output, input, weight *tensor.Tensor[float32], d Dims) error {
	return conv.Conv2DInto(output, input, weight, d)
}

// Conv2DParallel splits output positions across workers. Results are
// bit-identical to Conv2D's because the per-element reduction order is
// unchanged.
func Conv2DParallel(input, weight *tensor.Tensor[float32], d Dims, cfg ParallelConfig) (*tensor.Tensor[float32], error) {
	return conv.Conv2DParallel(input, weight, d, cfg)
}

// Conv2DParallelInto is the caller-owned-output form of Conv2DParallel.
func Conv2DParallelInto(output, input, weight *tensor.Tensor[float32], d Dims, cfg ParallelConfig) error {
	return conv.Conv2DParallelInto(output, input, weight, d, cfg)
}
