package observ

import (
	"strings"
	"testing"
	"time"
)

func TestRunTimingsTable(t *testing.T) {
	var rt RunTimings
	rt.Record("preparing", 1500*time.Microsecond, "")
	rt.Record("obfuscating", 2*time.Millisecond, "cached")
	out := rt.Table()
	for _, want := range []string{"timings:", "preparing", "1.50 ms", "// cached", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRunTimingsReport(t *testing.T) {
	var rt RunTimings
	rt.Record("converting", time.Millisecond, "")
	rt.Record("finalizing", 3*time.Millisecond, "")
	rep := rt.Report()
	if rep.TotalMS != 4 {
		t.Errorf("total = %v ms, want 4", rep.TotalMS)
	}
	if len(rep.Samples) != 2 || rep.Samples[0].Name != "converting" {
		t.Errorf("samples = %+v", rep.Samples)
	}
}

func TestRunTimingsEmpty(t *testing.T) {
	var rt RunTimings
	if rep := rt.Report(); len(rep.Samples) != 0 || rep.TotalMS != 0 {
		t.Errorf("empty run produced report %+v", rep)
	}
}
