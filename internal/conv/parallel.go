package conv

import (
	"github.com/convbench-ml/convbench/internal/parallel"
	"github.com/convbench-ml/convbench/internal/tensor"
)

// Conv2DParallel is Conv2D with the output positions split across workers.
//
// Output elements have disjoint accumulation regions, so positions can be
// computed concurrently without locks. Each element still uses the exact
// reduction order of the sequential kernel, which makes parallel output
// bit-identical to Conv2D's.
func Conv2DParallel(input, weight *tensor.Tensor[float32], d Dims, cfg parallel.Config) (*tensor.Tensor[float32], error) {
	if err := validateOperands(input, weight, d); err != nil {
		return nil, err
	}
	output, err := tensor.New[float32](d.OutputShape())
	if err != nil {
		return nil, err
	}
	conv2dGrid(output.Data(), input.Data(), weight.Data(), d, cfg)
	return output, nil
}

// Conv2DParallelInto is the caller-owned-output form of Conv2DParallel.
func Conv2DParallelInto(output, input, weight *tensor.Tensor[float32], d Dims, cfg parallel.Config) error {
	if err := validateOperands(input, weight, d); err != nil {
		return err
	}
	if !output.Shape().Equal(d.OutputShape()) {
		return &DimensionError{
			Field:   "output",
			Details: "shape " + output.Shape().String() + " does not match expected " + d.OutputShape().String(),
		}
	}
	conv2dGrid(output.Data(), input.Data(), weight.Data(), d, cfg)
	return nil
}

// conv2dGrid computes one output position per grid cell. The k/i/j/c loops
// match conv2dDirect exactly.
func conv2dGrid(out, in, wt []float32, d Dims, cfg parallel.Config) {
	Wo := d.OutWidth()

	parallel.ForGrid(d.OutHeight(), Wo, func(h, w int) {
		for k := 0; k < d.K; k++ {
			var sum float32
			for i := 0; i < d.I; i++ {
				for j := 0; j < d.J; j++ {
					inBase := ((h+i)*d.W + (w + j)) * d.C
					wtBase := (i*d.J + j) * d.C
					for c := 0; c < d.C; c++ {
						sum += in[inBase+c] * wt[(wtBase+c)*d.K+k]
					}
				}
			}
			out[(h*Wo+w)*d.K+k] = sum
		}
	}, cfg)
}
