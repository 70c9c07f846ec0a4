// Package probe defines the measurement-boundary hooks that bracket a timed
// kernel invocation.
//
// The harness signals Begin immediately before calling the kernel and End
// immediately after it returns. Probes are opaque markers: the kernel depends
// on no particular implementation, and Nop substitutes for any probe without
// changing kernel semantics. This mirrors simulator-style stat windows, where
// an external profiler resets counters at Begin and dumps them at End.
package probe

import "time"

// Probe marks the start and end of one measurement window.
type Probe interface {
	Begin()
	End()
}

// Nop is the default probe: both markers do nothing.
type Nop struct{}

// Begin implements Probe.
func (Nop) Begin() {}

// End implements Probe.
func (Nop) End() {}

// Stopwatch is a wall-clock probe. Each Begin/End pair records one lap.
// Not safe for concurrent use; the runner drives it from a single goroutine.
type Stopwatch struct {
	start   time.Time
	pending bool
	laps    []time.Duration
}

// Begin opens a measurement window.
func (s *Stopwatch) Begin() {
	s.start = time.Now()
	s.pending = true
}

// End closes the window and records its duration.
// An End without a matching Begin is ignored.
func (s *Stopwatch) End() {
	if !s.pending {
		return
	}
	s.laps = append(s.laps, time.Since(s.start))
	s.pending = false
}

// Laps returns the recorded window durations in order.
func (s *Stopwatch) Laps() []time.Duration {
	return s.laps
}

// Reset discards all recorded laps and any open window.
func (s *Stopwatch) Reset() {
	s.laps = nil
	s.pending = false
}
