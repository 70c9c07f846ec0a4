package probe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNopIsAProbe(t *testing.T) {
	var p Probe = Nop{}
	p.Begin()
	p.End()
}

func TestStopwatchRecordsLaps(t *testing.T) {
	var sw Stopwatch

	for i := 0; i < 3; i++ {
		sw.Begin()
		time.Sleep(time.Millisecond)
		sw.End()
	}

	laps := sw.Laps()
	assert.Len(t, laps, 3)
	for i, lap := range laps {
		assert.GreaterOrEqualf(t, lap, time.Millisecond, "lap %d too short", i)
	}
}

func TestStopwatchIgnoresUnpairedEnd(t *testing.T) {
	var sw Stopwatch

	sw.End()
	assert.Empty(t, sw.Laps())

	sw.Begin()
	sw.End()
	sw.End()
	assert.Len(t, sw.Laps(), 1)
}

func TestStopwatchReset(t *testing.T) {
	var sw Stopwatch

	sw.Begin()
	sw.End()
	sw.Reset()

	assert.Empty(t, sw.Laps())

	// A window left open before Reset must not leak into the next lap.
	sw.Begin()
	sw.Reset()
	sw.End()
	assert.Empty(t, sw.Laps())
}
