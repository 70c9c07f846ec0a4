// Copyright 2025 Convbench Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package probe provides the public API for measurement-boundary hooks.
//
// The benchmark runner calls Begin immediately before a timed kernel
// invocation and End immediately after it returns. External profiling
// subsystems implement Probe; Nop substitutes without changing anything.
package probe

import "github.com/convbench-ml/convbench/internal/probe"

// Probe marks the start and end of one measurement window.
type Probe = probe.Probe

// Nop is the default probe: both markers do nothing.
type Nop = probe.Nop

// Stopwatch records one wall-clock lap per Begin/End pair.
type Stopwatch = probe.Stopwatch
