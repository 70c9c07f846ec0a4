// Copyright 2025 Convbench Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for convbench's shape-aware
// tensor views.
//
// A Tensor is a dense row-major, channel-last view over a contiguous
// float slice. Shapes are validated at construction, so index arithmetic
// downstream cannot run out of bounds.
//
// Example:
//
//	input, err := tensor.Full[float32](tensor.Shape{7, 56, 32}, 1.0)
//	weight, err := tensor.Full[float32](tensor.Shape{3, 3, 32, 8}, 0.1)
package tensor

import (
	"math/rand"

	"github.com/convbench-ml/convbench/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{7, 56, 32} is a height-7, width-56, 32-channel feature map.
type Shape = tensor.Shape

// Float is the element type constraint: float32 or float64.
type Float = tensor.Float

// Tensor is a dense row-major tensor over a contiguous slice.
type Tensor[T Float] = tensor.Tensor[T]

// New creates a zero-filled tensor with the given shape.
func New[T Float](shape Shape) (*Tensor[T], error) {
	return tensor.New[T](shape)
}

// FromSlice wraps an existing slice as a tensor; the slice length must
// match the shape exactly.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice(data, shape)
}

// Full creates a tensor with every element set to value.
func Full[T Float](shape Shape, value T) (*Tensor[T], error) {
	return tensor.Full(shape, value)
}

// Randn creates a tensor with values drawn from N(0, 1) using rng.
func Randn[T Float](shape Shape, rng *rand.Rand) (*Tensor[T], error) {
	return tensor.Randn[T](shape, rng)
}
