package bench

import (
	"math/rand"

	"github.com/convbench-ml/convbench/internal/conv"
	"github.com/convbench-ml/convbench/internal/tensor"
)

// Case is one named benchmark workload: a convolution geometry plus how to
// fill its operands.
type Case struct {
	Name string
	Dims conv.Dims

	// Constant fills, used when RandomSeed is zero.
	InputFill  float32
	WeightFill float32

	// When non-zero, operands are drawn from N(0, 1) seeded with this
	// value, so every run of the case sees identical data.
	RandomSeed int64
}

// Cases returns the built-in workload catalog. conv_fp32 is the original
// hardware-benchmark workload; the others vary data and channel depth.
func Cases() []Case {
	return []Case{
		{
			Name:       "conv_fp32",
			Dims:       conv.Dims{H: 7, W: 56, I: 3, J: 3, C: 32, K: 8},
			InputFill:  1.0,
			WeightFill: 0.1,
		},
		{
			Name:       "conv_fp32_wide",
			Dims:       conv.Dims{H: 7, W: 56, I: 3, J: 3, C: 32, K: 32},
			InputFill:  1.0,
			WeightFill: 0.1,
		},
		{
			Name:       "conv_fp32_randn",
			Dims:       conv.Dims{H: 7, W: 56, I: 3, J: 3, C: 32, K: 8},
			RandomSeed: 42,
		},
		{
			Name:       "conv_fp32_224",
			Dims:       conv.Dims{H: 224, W: 224, I: 3, J: 3, C: 3, K: 16},
			RandomSeed: 42,
		},
	}
}

// Lookup finds a built-in case by name.
func Lookup(name string) (Case, bool) {
	for _, c := range Cases() {
		if c.Name == name {
			return c, true
		}
	}
	return Case{}, false
}

// Operands materializes the case's input and weight tensors.
func (c Case) Operands() (input, weight *tensor.Tensor[float32], err error) {
	if c.RandomSeed != 0 {
		rng := rand.New(rand.NewSource(c.RandomSeed))
		input, err = tensor.Randn[float32](c.Dims.InputShape(), rng)
		if err != nil {
			return nil, nil, err
		}
		weight, err = tensor.Randn[float32](c.Dims.WeightShape(), rng)
		if err != nil {
			return nil, nil, err
		}
		return input, weight, nil
	}

	input, err = tensor.Full(c.Dims.InputShape(), c.InputFill)
	if err != nil {
		return nil, nil, err
	}
	weight, err = tensor.Full(c.Dims.WeightShape(), c.WeightFill)
	if err != nil {
		return nil, nil, err
	}
	return input, weight, nil
}
