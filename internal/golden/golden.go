// Package golden provides the reference model the benchmark results are
// validated against.
//
// The reference recomputes the convolution in float64 with the exact loop
// nesting of the measured kernel, so the only difference from a correct
// float32 result is accumulation precision. Comparison is tolerance-based
// for that reason.
package golden

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/convbench-ml/convbench/internal/conv"
	"github.com/convbench-ml/convbench/internal/tensor"
)

// DefaultTol is the comparison tolerance. It absorbs float32
// summation-order rounding at the benchmark's channel depths.
const DefaultTol = 1e-3

// Reference convolves in float64. Operand shapes must match d.
func Reference(input, weight *tensor.Tensor[float32], d conv.Dims) (*tensor.Tensor[float64], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if !input.Shape().Equal(d.InputShape()) {
		return nil, fmt.Errorf("golden: input shape %v does not match %v", input.Shape(), d.InputShape())
	}
	if !weight.Shape().Equal(d.WeightShape()) {
		return nil, fmt.Errorf("golden: weight shape %v does not match %v", weight.Shape(), d.WeightShape())
	}

	output, err := tensor.New[float64](d.OutputShape())
	if err != nil {
		return nil, err
	}

	in, wt, out := input.Data(), weight.Data(), output.Data()
	Ho, Wo := d.OutHeight(), d.OutWidth()

	for h := 0; h < Ho; h++ {
		for w := 0; w < Wo; w++ {
			for k := 0; k < d.K; k++ {
				var sum float64
				for i := 0; i < d.I; i++ {
					for j := 0; j < d.J; j++ {
						inBase := ((h+i)*d.W + (w + j)) * d.C
						wtBase := (i*d.J + j) * d.C
						for c := 0; c < d.C; c++ {
							sum += float64(in[inBase+c]) * float64(wt[(wtBase+c)*d.K+k])
						}
					}
				}
				out[(h*Wo+w)*d.K+k] = sum
			}
		}
	}
	return output, nil
}

// Report summarizes one comparison against the reference.
type Report struct {
	OK          bool
	MaxAbsError float64
	Elements    int
}

// Compare checks a float32 result element-wise against the float64
// reference within tol (absolute or relative, whichever is looser).
func Compare(got *tensor.Tensor[float32], want *tensor.Tensor[float64], tol float64) (Report, error) {
	if !got.Shape().Equal(want.Shape()) {
		return Report{}, fmt.Errorf("golden: result shape %v does not match reference %v",
			got.Shape(), want.Shape())
	}

	got64 := make([]float64, got.NumElements())
	for i, v := range got.Data() {
		got64[i] = float64(v)
	}

	diff := make([]float64, len(got64))
	copy(diff, want.Data())
	floats.Sub(diff, got64)

	return Report{
		OK:          floats.EqualApprox(got64, want.Data(), tol),
		MaxAbsError: floats.Norm(diff, math.Inf(1)),
		Elements:    len(got64),
	}, nil
}

// Check runs the reference for (input, weight, d) and compares output
// against it, returning a descriptive error on mismatch. The benchmark
// runner calls this once per case before timing.
func Check(output, input, weight *tensor.Tensor[float32], d conv.Dims, tol float64) error {
	want, err := Reference(input, weight, d)
	if err != nil {
		return err
	}
	report, err := Compare(output, want, tol)
	if err != nil {
		return err
	}
	if !report.OK {
		return fmt.Errorf("golden: result deviates from reference: max abs error %.3e over %d elements (tol %.1e)",
			report.MaxAbsError, report.Elements, tol)
	}
	return nil
}
