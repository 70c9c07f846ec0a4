// Package tensor provides shape-aware views over contiguous float buffers.
//
// A Tensor pairs a flat, dense, row-major slice with a validated Shape and
// precomputed strides. All index arithmetic for the convolution kernels goes
// through Shape/strides rather than hand-written offset math, so malformed
// shapes are rejected at construction instead of turning into silent
// out-of-bounds reads.
package tensor

import (
	"fmt"
	"math/rand"
)

// Float is the element type constraint for tensors.
// float32 is the benchmark dtype; float64 serves the golden reference model.
type Float interface {
	~float32 | ~float64
}

// Tensor is a dense row-major tensor over a contiguous slice.
//
// The tensor owns nothing beyond the slice header: the caller controls the
// backing array's lifetime, and operations never retain a tensor past the
// call that received it.
type Tensor[T Float] struct {
	data   []T
	shape  Shape
	stride []int
}

// New creates a zero-filled tensor with the given shape.
func New[T Float](shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Tensor[T]{
		data:   make([]T, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// FromSlice wraps an existing slice as a tensor with the given shape.
// The slice is used directly (no copy); its length must match the shape
// exactly.
func FromSlice[T Float](data []T, shape Shape) (*Tensor[T], error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return &Tensor[T]{
		data:   data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Full creates a tensor with every element set to value.
func Full[T Float](shape Shape, value T) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Randn creates a tensor with values drawn from N(0, 1) using the given
// source, so benchmark inputs are reproducible per seed.
func Randn[T Float](shape Shape, rng *rand.Rand) (*Tensor[T], error) {
	t, err := New[T](shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = T(rng.NormFloat64())
	}
	return t, nil
}

// Data returns the flat backing slice.
func (t *Tensor[T]) Data() []T {
	return t.data
}

// Shape returns the tensor's shape.
func (t *Tensor[T]) Shape() Shape {
	return t.shape
}

// Strides returns the tensor's row-major strides.
func (t *Tensor[T]) Strides() []int {
	return t.stride
}

// NumElements returns the total element count.
func (t *Tensor[T]) NumElements() int {
	return t.shape.NumElements()
}

// Index converts a multi-dimensional index to a flat offset.
// Panics if the number of indices or any index is out of range; kernels on
// the hot path use the strides directly and validate shapes up front instead.
func (t *Tensor[T]) Index(idx ...int) int {
	if len(idx) != len(t.shape) {
		panic(fmt.Sprintf("tensor: got %d indices for %d-D tensor", len(idx), len(t.shape)))
	}
	flat := 0
	for d, i := range idx {
		if i < 0 || i >= t.shape[d] {
			panic(fmt.Sprintf("tensor: index %d out of range [0, %d) in dimension %d", i, t.shape[d], d))
		}
		flat += i * t.stride[d]
	}
	return flat
}

// At returns the element at the given multi-dimensional index.
func (t *Tensor[T]) At(idx ...int) T {
	return t.data[t.Index(idx...)]
}

// Set writes the element at the given multi-dimensional index.
func (t *Tensor[T]) Set(value T, idx ...int) {
	t.data[t.Index(idx...)] = value
}

// Clone returns a deep copy of the tensor.
func (t *Tensor[T]) Clone() *Tensor[T] {
	data := make([]T, len(t.data))
	copy(data, t.data)
	return &Tensor[T]{
		data:   data,
		shape:  t.shape.Clone(),
		stride: t.shape.ComputeStrides(),
	}
}
