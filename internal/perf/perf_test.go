package perf

import (
	"testing"
	"time"
)

func withPerf(t *testing.T) {
	t.Helper()
	prevOn := Enabled()
	prevInterval := time.Duration(logInterval.Load())
	SetEnabled(true, 0)
	Snapshot()
	t.Cleanup(func() {
		Snapshot()
		SetEnabled(prevOn, prevInterval)
	})
}

func TestP95(t *testing.T) {
	samples := []time.Duration{5, 1, 4, 2, 3}
	if got := p95(samples); got != 5 {
		t.Fatalf("p95 = %v, want 5", got)
	}
	if got := p95(nil); got != 0 {
		t.Fatalf("p95(nil) = %v", got)
	}
	if samples[0] != 5 {
		t.Fatalf("p95 must not reorder its input")
	}
}

func TestSnapshotAndReset(t *testing.T) {
	withPerf(t)

	Record("view", 50*time.Millisecond)
	Record("update", 10*time.Millisecond)
	Record("view", 150*time.Millisecond)
	Count("poll", 1)
	Count("poll", 2)

	stats, counters := Snapshot()
	if len(stats) != 2 || stats[0].Name != "update" || stats[1].Name != "view" {
		t.Fatalf("unexpected stats: %+v", stats)
	}
	v := stats[1]
	if v.Count != 2 || v.Avg != 100*time.Millisecond || v.Min != 50*time.Millisecond || v.Max != 150*time.Millisecond {
		t.Fatalf("unexpected view stat: %+v", v)
	}
	if len(counters) != 1 || counters[0].Value != 3 {
		t.Fatalf("unexpected counters: %+v", counters)
	}

	stats, counters = Snapshot()
	if len(stats) != 0 || len(counters) != 0 {
		t.Fatalf("snapshot should reset, got %d stats %d counters", len(stats), len(counters))
	}
}

func TestDisabledRecordsNothing(t *testing.T) {
	withPerf(t)
	SetEnabled(false, 0)

	Time("view")()
	Count("poll", 1)
	SetEnabled(true, 0)
	if stats, counters := Snapshot(); len(stats) != 0 || len(counters) != 0 {
		t.Fatalf("disabled perf should record nothing")
	}
}

func TestEnvParsing(t *testing.T) {
	cases := map[string]bool{"": false, "0": false, "false": false, "no": false, "1": true, "yes": true}
	for raw, want := range cases {
		if got := envEnabled(raw); got != want {
			t.Errorf("envEnabled(%q) = %v, want %v", raw, got, want)
		}
	}
	if got := envInterval(""); got != defaultIntervalMs*time.Millisecond {
		t.Errorf("default interval = %s", got)
	}
	if got := envInterval("250"); got != 250*time.Millisecond {
		t.Errorf("interval = %s", got)
	}
}
