package conv

import (
	"errors"
	"fmt"

	"github.com/convbench-ml/convbench/internal/tensor"
)

// ErrInvalidDimensions is the sentinel for every precondition violation:
// non-positive dimensions, a kernel larger than the input, or an operand
// whose shape does not match the declared dimensions.
var ErrInvalidDimensions = errors.New("conv: invalid dimensions")

// DimensionError describes which precondition failed.
// It wraps ErrInvalidDimensions so callers can match with errors.Is.
type DimensionError struct {
	Field   string // Offending parameter or operand ("H", "W<J", "input", ...)
	Details string
}

// Error implements the error interface.
func (e *DimensionError) Error() string {
	return fmt.Sprintf("conv: invalid dimensions: %s: %s", e.Field, e.Details)
}

// Unwrap makes errors.Is(err, ErrInvalidDimensions) succeed.
func (e *DimensionError) Unwrap() error {
	return ErrInvalidDimensions
}

// Dims describes one convolution workload.
//
// The input feature map is H*W with C channels, the filter bank is I*J
// with C input channels and K output channels, all channel-last.
type Dims struct {
	H int // input height
	W int // input width
	I int // kernel height
	J int // kernel width
	C int // input channels
	K int // output channels
}

// Validate checks the workload preconditions: every dimension positive and
// the kernel no larger than the input along either spatial axis. A kernel
// larger than the input is rejected here rather than producing an empty or
// negative-sized output.
func (d Dims) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"H", d.H}, {"W", d.W}, {"I", d.I}, {"J", d.J}, {"C", d.C}, {"K", d.K},
	}
	for _, f := range fields {
		if f.value <= 0 {
			return &DimensionError{
				Field:   f.name,
				Details: fmt.Sprintf("must be positive, got %d", f.value),
			}
		}
	}
	if d.H < d.I {
		return &DimensionError{
			Field:   "H<I",
			Details: fmt.Sprintf("kernel height %d exceeds input height %d", d.I, d.H),
		}
	}
	if d.W < d.J {
		return &DimensionError{
			Field:   "W<J",
			Details: fmt.Sprintf("kernel width %d exceeds input width %d", d.J, d.W),
		}
	}
	return nil
}

// OutHeight returns Ho = H - I + 1.
func (d Dims) OutHeight() int {
	return d.H - d.I + 1
}

// OutWidth returns Wo = W - J + 1.
func (d Dims) OutWidth() int {
	return d.W - d.J + 1
}

// InputShape returns the expected input tensor shape [H, W, C].
func (d Dims) InputShape() tensor.Shape {
	return tensor.Shape{d.H, d.W, d.C}
}

// WeightShape returns the expected weight tensor shape [I, J, C, K].
func (d Dims) WeightShape() tensor.Shape {
	return tensor.Shape{d.I, d.J, d.C, d.K}
}

// OutputShape returns the output tensor shape [Ho, Wo, K].
func (d Dims) OutputShape() tensor.Shape {
	return tensor.Shape{d.OutHeight(), d.OutWidth(), d.K}
}

// FLOPs returns the multiply-add operation count as floating-point ops
// (2 per multiply-add), for throughput reporting.
func (d Dims) FLOPs() int64 {
	return 2 * int64(d.OutHeight()) * int64(d.OutWidth()) *
		int64(d.K) * int64(d.I) * int64(d.J) * int64(d.C)
}

// String returns a compact form like "7x56x32 * 3x3x32x8".
func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d * %dx%dx%dx%d", d.H, d.W, d.C, d.I, d.J, d.C, d.K)
}
