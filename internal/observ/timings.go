// Package observ renders per-file timing breakdowns of obfuscation runs.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Sample is one timed slice of a run: an executed pipeline stage, or the
// generation and reconciliation work around the stages.
type Sample struct {
	Name string
	Dur  time.Duration
	Note string
}

// RunTimings collects the timed slices of one file's obfuscation run. The
// zero value is ready to use.
type RunTimings struct {
	samples []Sample
}

// Record appends a slice whose duration the pipeline already measured.
func (t *RunTimings) Record(name string, dur time.Duration, note string) {
	t.samples = append(t.samples, Sample{Name: name, Dur: dur, Note: note})
}

// Table renders the recorded slices as aligned rows with a total line.
func (t *RunTimings) Table() string {
	report := t.Report()
	var sb strings.Builder
	sb.WriteString("timings:\n")
	for _, s := range report.Samples {
		fmt.Fprintf(&sb, "  %-24s %7.2f ms", s.Name, s.DurationMS)
		if s.Note != "" {
			sb.WriteString("  // " + s.Note)
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "  %-24s %7.2f ms\n", "total", report.TotalMS)
	return sb.String()
}

// SampleReport is the serialized form of one timed slice.
type SampleReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates every recorded slice with the run total.
type Report struct {
	TotalMS float64        `json:"total_ms"`
	Samples []SampleReport `json:"samples"`
}

// Report converts the recorded slices to milliseconds and totals them.
func (t *RunTimings) Report() Report {
	if len(t.samples) == 0 {
		return Report{}
	}
	report := Report{Samples: make([]SampleReport, len(t.samples))}
	var total time.Duration
	for i, s := range t.samples {
		total += s.Dur
		report.Samples[i] = SampleReport{
			Name:       s.Name,
			DurationMS: toMillis(s.Dur),
			Note:       s.Note,
		}
	}
	report.TotalMS = toMillis(total)
	return report
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
