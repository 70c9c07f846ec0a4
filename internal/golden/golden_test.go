package golden

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convbench-ml/convbench/internal/conv"
	"github.com/convbench-ml/convbench/internal/tensor"
)

func TestReferenceConstantField(t *testing.T) {
	d := conv.Dims{H: 5, W: 7, I: 3, J: 3, C: 4, K: 2}

	input, err := tensor.Full[float32](d.InputShape(), 1.0)
	require.NoError(t, err)
	weight, err := tensor.Full[float32](d.WeightShape(), 0.5)
	require.NoError(t, err)

	ref, err := Reference(input, weight, d)
	require.NoError(t, err)

	// 3*3*4 * 1.0 * 0.5 = 18 exactly in float64.
	for i, v := range ref.Data() {
		assert.InDeltaf(t, 18.0, v, 1e-12, "element %d", i)
	}
}

func TestReferenceRejectsInvalidDims(t *testing.T) {
	d := conv.Dims{H: 2, W: 5, I: 3, J: 3, C: 1, K: 1}

	input, err := tensor.Full[float32](tensor.Shape{2, 5, 1}, 1)
	require.NoError(t, err)
	weight, err := tensor.Full[float32](tensor.Shape{3, 3, 1, 1}, 1)
	require.NoError(t, err)

	_, err = Reference(input, weight, d)
	require.ErrorIs(t, err, conv.ErrInvalidDimensions)
}

func TestCompareAcceptsKernelOutput(t *testing.T) {
	d := conv.Dims{H: 8, W: 10, I: 3, J: 3, C: 16, K: 4}
	rng := rand.New(rand.NewSource(17))

	input, err := tensor.Randn[float32](d.InputShape(), rng)
	require.NoError(t, err)
	weight, err := tensor.Randn[float32](d.WeightShape(), rng)
	require.NoError(t, err)

	output, err := conv.Conv2D(input, weight, d)
	require.NoError(t, err)
	ref, err := Reference(input, weight, d)
	require.NoError(t, err)

	report, err := Compare(output, ref, DefaultTol)
	require.NoError(t, err)
	assert.True(t, report.OK, "max abs error %.3e", report.MaxAbsError)
	assert.Equal(t, d.OutHeight()*d.OutWidth()*d.K, report.Elements)
	assert.Less(t, report.MaxAbsError, DefaultTol)
}

func TestCompareFlagsCorruption(t *testing.T) {
	d := conv.Dims{H: 4, W: 4, I: 2, J: 2, C: 2, K: 2}

	input, err := tensor.Full[float32](d.InputShape(), 1.0)
	require.NoError(t, err)
	weight, err := tensor.Full[float32](d.WeightShape(), 1.0)
	require.NoError(t, err)

	output, err := conv.Conv2D(input, weight, d)
	require.NoError(t, err)
	ref, err := Reference(input, weight, d)
	require.NoError(t, err)

	output.Data()[3] += 1.0

	report, err := Compare(output, ref, DefaultTol)
	require.NoError(t, err)
	assert.False(t, report.OK)
	assert.InDelta(t, 1.0, report.MaxAbsError, 1e-6)
}

func TestCompareShapeMismatch(t *testing.T) {
	a, err := tensor.Full[float32](tensor.Shape{2, 2, 1}, 1)
	require.NoError(t, err)
	b, err := tensor.Full[float64](tensor.Shape{2, 3, 1}, 1)
	require.NoError(t, err)

	_, err = Compare(a, b, DefaultTol)
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	d := conv.Dims{H: 7, W: 56, I: 3, J: 3, C: 32, K: 8}

	input, err := tensor.Full[float32](d.InputShape(), 1.0)
	require.NoError(t, err)
	weight, err := tensor.Full[float32](d.WeightShape(), 0.1)
	require.NoError(t, err)

	output, err := conv.Conv2D(input, weight, d)
	require.NoError(t, err)

	require.NoError(t, Check(output, input, weight, d, DefaultTol))

	output.Data()[0] = 0
	err = Check(output, input, weight, d, DefaultTol)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deviates from reference")
}
