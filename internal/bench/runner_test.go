package bench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convbench-ml/convbench/internal/conv"
	"github.com/convbench-ml/convbench/internal/probe"
)

// countingProbe counts Begin/End pairs to verify the measurement window is
// opened once per timed rep and nowhere else.
type countingProbe struct {
	begins int
	ends   int
}

func (p *countingProbe) Begin() { p.begins++ }
func (p *countingProbe) End()   { p.ends++ }

func smallCase() Case {
	return Case{
		Name:       "small",
		Dims:       conv.Dims{H: 5, W: 8, I: 3, J: 3, C: 4, K: 2},
		InputFill:  1.0,
		WeightFill: 0.1,
	}
}

func TestRunSequential(t *testing.T) {
	opts := DefaultOptions()
	opts.Warmup = 1
	opts.Reps = 5

	result, err := Run(smallCase(), opts)
	require.NoError(t, err)

	assert.Len(t, result.Durations, 5)
	assert.True(t, result.Verified)
	assert.Greater(t, result.Mean, time.Duration(0))
	assert.GreaterOrEqual(t, result.Max, result.Min)
	assert.Greater(t, result.GFLOPS, 0.0)
}

func TestRunParallel(t *testing.T) {
	opts := DefaultOptions()
	opts.Warmup = 0
	opts.Reps = 3
	opts.Parallel = true

	result, err := Run(smallCase(), opts)
	require.NoError(t, err)

	assert.Len(t, result.Durations, 3)
	assert.True(t, result.Verified)
}

func TestRunProbeBracketsTimedRepsOnly(t *testing.T) {
	var p countingProbe
	opts := DefaultOptions()
	opts.Warmup = 4
	opts.Reps = 7
	opts.Probe = &p

	_, err := Run(smallCase(), opts)
	require.NoError(t, err)

	// Warmup and the verification call stay outside the window.
	assert.Equal(t, 7, p.begins)
	assert.Equal(t, 7, p.ends)
}

func TestRunNilProbeDefaultsToNop(t *testing.T) {
	opts := DefaultOptions()
	opts.Reps = 1
	opts.Probe = nil

	result, err := Run(smallCase(), opts)
	require.NoError(t, err)
	assert.Len(t, result.Durations, 1)
	// Single rep: no spread to report.
	assert.Zero(t, result.StdDev)
}

func TestRunRejectsInvalidCase(t *testing.T) {
	c := smallCase()
	c.Dims.I = 10 // kernel taller than input

	_, err := Run(c, DefaultOptions())
	require.ErrorIs(t, err, conv.ErrInvalidDimensions)
}

func TestRunRejectsNonPositiveReps(t *testing.T) {
	opts := DefaultOptions()
	opts.Reps = 0

	_, err := Run(smallCase(), opts)
	require.Error(t, err)
}

func TestBuiltinCases(t *testing.T) {
	require.NotEmpty(t, Cases())

	// The original hardware-benchmark workload must be in the catalog
	// with its exact geometry and fills.
	c, ok := Lookup("conv_fp32")
	require.True(t, ok)
	assert.Equal(t, conv.Dims{H: 7, W: 56, I: 3, J: 3, C: 32, K: 8}, c.Dims)
	assert.Equal(t, float32(1.0), c.InputFill)
	assert.Equal(t, float32(0.1), c.WeightFill)

	_, ok = Lookup("no_such_case")
	assert.False(t, ok)

	// Every built-in case must validate and run.
	for _, c := range Cases() {
		t.Run(c.Name, func(t *testing.T) {
			require.NoError(t, c.Dims.Validate())
		})
	}
}

func TestCaseOperands(t *testing.T) {
	c := smallCase()
	input, weight, err := c.Operands()
	require.NoError(t, err)

	assert.True(t, input.Shape().Equal(c.Dims.InputShape()))
	assert.True(t, weight.Shape().Equal(c.Dims.WeightShape()))
	assert.Equal(t, float32(1.0), input.Data()[0])
	assert.Equal(t, float32(0.1), weight.Data()[0])

	// Seeded random operands are stable across calls.
	c.RandomSeed = 42
	in1, wt1, err := c.Operands()
	require.NoError(t, err)
	in2, wt2, err := c.Operands()
	require.NoError(t, err)
	assert.Equal(t, in1.Data(), in2.Data())
	assert.Equal(t, wt1.Data(), wt2.Data())
}

func TestResultString(t *testing.T) {
	opts := DefaultOptions()
	opts.Reps = 2
	result, err := Run(smallCase(), opts)
	require.NoError(t, err)

	s := result.String()
	assert.Contains(t, s, "small")
	assert.Contains(t, s, "reps=2")
	assert.Contains(t, s, "verify=ok")
}

var _ probe.Probe = (*countingProbe)(nil)
