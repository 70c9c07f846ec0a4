// Package conv implements the direct 2D convolution kernel that convbench
// measures.
//
// The kernel is deliberately naive: unpadded, unit-stride, no bias, no
// activation, and a fixed six-loop reduction order. The overlapping-window
// re-reads of the input are the workload under measurement, not an
// inefficiency to remove. The reduction order per output element is part of
// the contract: float32 addition is not associative, so fixing the order is
// what makes results bit-reproducible across runs and across the sequential
// and parallel paths.
package conv

import (
	"github.com/convbench-ml/convbench/internal/tensor"
)

// Conv2D convolves input [H, W, C] with weight [I, J, C, K] and returns a
// freshly allocated output [Ho, Wo, K], Ho = H-I+1, Wo = W-J+1.
//
// For every output position (h, w) and output channel k:
//
//	out[h][w][k] = sum_{i, j, c} in[h+i][w+j][c] * wt[i][j][c][k]
//
// accumulated in a single float32 accumulator over i, then j, then c.
// Returns an error wrapping ErrInvalidDimensions if d fails validation or an
// operand's shape does not match d. No output is produced on error.
func Conv2D(input, weight *tensor.Tensor[float32], d Dims) (*tensor.Tensor[float32], error) {
	if err := validateOperands(input, weight, d); err != nil {
		return nil, err
	}
	output, err := tensor.New[float32](d.OutputShape())
	if err != nil {
		return nil, err
	}
	conv2dDirect(output.Data(), input.Data(), weight.Data(), d)
	return output, nil
}

// Conv2DInto is the caller-owned-output form of Conv2D. The output buffer
// must match d.OutputShape() and must not alias input or weight. On error
// the output is left untouched.
func Conv2DInto(output, input, weight *tensor.Tensor[float32], d Dims) error {
	if err := validateOperands(input, weight, d); err != nil {
		return err
	}
	if !output.Shape().Equal(d.OutputShape()) {
		return &DimensionError{
			Field:   "output",
			Details: "shape " + output.Shape().String() + " does not match expected " + d.OutputShape().String(),
		}
	}
	conv2dDirect(output.Data(), input.Data(), weight.Data(), d)
	return nil
}

// validateOperands checks d itself, then that each operand carries exactly
// the shape d implies. Tensors validate length against shape at
// construction, so shape equality here also pins the buffer lengths.
func validateOperands(input, weight *tensor.Tensor[float32], d Dims) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !input.Shape().Equal(d.InputShape()) {
		return &DimensionError{
			Field:   "input",
			Details: "shape " + input.Shape().String() + " does not match expected " + d.InputShape().String(),
		}
	}
	if !weight.Shape().Equal(d.WeightShape()) {
		return &DimensionError{
			Field:   "weight",
			Details: "shape " + weight.Shape().String() + " does not match expected " + d.WeightShape().String(),
		}
	}
	return nil
}

// conv2dDirect is the measured inner kernel. Operands are the flat
// channel-last buffers; all shape checks happened in the caller.
//
// Loop nesting is fixed: output position (h, w) outer, output channel k,
// then kernel offsets i, j and input channel c innermost.
func conv2dDirect(out, in, wt []float32, d Dims) {
	Ho := d.OutHeight()
	Wo := d.OutWidth()

	for h := 0; h < Ho; h++ {
		for w := 0; w < Wo; w++ {
			for k := 0; k < d.K; k++ {
				var sum float32
				for i := 0; i < d.I; i++ {
					for j := 0; j < d.J; j++ {
						// in[h+i][w+j][c] -> ((h+i)*W + (w+j))*C + c
						// wt[i][j][c][k]  -> ((i*J + j)*C + c)*K + k
						inBase := ((h+i)*d.W + (w + j)) * d.C
						wtBase := (i*d.J + j) * d.C
						for c := 0; c < d.C; c++ {
							sum += in[inBase+c] * wt[(wtBase+c)*d.K+k]
						}
					}
				}
				out[(h*Wo+w)*d.K+k] = sum
			}
		}
	}
}
