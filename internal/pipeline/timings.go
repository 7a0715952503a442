package pipeline

import "time"

// Timings holds per-stage durations for one run.
type Timings struct {
	stages map[Stage]time.Duration
	total  time.Duration
}

func (t *Timings) ensure() {
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration, stageCount)
	}
}

// Set stores a duration for the given stage.
func (t *Timings) Set(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	t.ensure()
	t.stages[stage] = dur
}

// SetTotal stores the wall-clock duration of the whole run.
func (t *Timings) SetTotal(dur time.Duration) {
	if t == nil {
		return
	}
	t.total = dur
}

// Has reports whether a duration for stage is recorded. A stage that was
// skipped by gating or the empty-input short-circuit has no record.
func (t Timings) Has(stage Stage) bool {
	if t.stages == nil {
		return false
	}
	_, ok := t.stages[stage]
	return ok
}

// Duration returns the recorded duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	return t.stages[stage]
}

// Total returns the wall-clock duration of the whole run.
func (t Timings) Total() time.Duration {
	return t.total
}

// Sum returns the sum of durations across the provided stages.
func (t Timings) Sum(stages ...Stage) time.Duration {
	if t.stages == nil {
		return 0
	}
	var total time.Duration
	for _, stage := range stages {
		total += t.stages[stage]
	}
	return total
}
