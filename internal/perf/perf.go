// Package perf collects opt-in timing samples for the render loop.
// Set GRIDPAD_PROFILE=1 to enable; summaries go to the log.
package perf

import (
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andyrewlee/gridpad/internal/logging"
)

const (
	sampleWindow      = 128
	defaultIntervalMs = 5000
)

type stat struct {
	count   int64
	total   time.Duration
	min     time.Duration
	max     time.Duration
	samples []time.Duration
	idx     int
	full    bool
}

// StatSnapshot summarises one timer since the last snapshot.
type StatSnapshot struct {
	Name  string
	Count int64
	Avg   time.Duration
	Min   time.Duration
	Max   time.Duration
	P95   time.Duration
}

// CounterSnapshot is one counter's value since the last snapshot.
type CounterSnapshot struct {
	Name  string
	Value int64
}

var (
	enabled     atomic.Bool
	logInterval atomic.Int64
	lastLog     atomic.Int64

	mu       sync.Mutex
	stats    = map[string]*stat{}
	counters = map[string]int64{}
)

func init() {
	enabled.Store(envEnabled(os.Getenv("GRIDPAD_PROFILE")))
	logInterval.Store(int64(envInterval(os.Getenv("GRIDPAD_PROFILE_INTERVAL_MS"))))
}

// Enabled reports whether profiling is enabled.
func Enabled() bool {
	return enabled.Load()
}

// SetEnabled switches collection on or off. A zero interval disables
// periodic logging.
func SetEnabled(on bool, interval time.Duration) {
	enabled.Store(on)
	logInterval.Store(int64(interval))
	lastLog.Store(0)
}

// Time returns a function that records elapsed time when invoked.
func Time(name string) func() {
	if !Enabled() {
		return func() {}
	}
	start := time.Now()
	return func() {
		Record(name, time.Since(start))
	}
}

// Record captures a duration sample for name.
func Record(name string, d time.Duration) {
	if !Enabled() {
		return
	}
	mu.Lock()
	s, ok := stats[name]
	if !ok {
		s = &stat{samples: make([]time.Duration, sampleWindow)}
		stats[name] = s
	}
	s.count++
	s.total += d
	if s.count == 1 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.samples[s.idx] = d
	s.idx = (s.idx + 1) % len(s.samples)
	if s.idx == 0 {
		s.full = true
	}
	mu.Unlock()

	maybeLog()
}

// Count adds delta to a named counter.
func Count(name string, delta int64) {
	if !Enabled() {
		return
	}
	mu.Lock()
	counters[name] += delta
	mu.Unlock()

	maybeLog()
}

func maybeLog() {
	interval := time.Duration(logInterval.Load())
	if interval <= 0 {
		return
	}
	now := time.Now().UnixNano()
	last := lastLog.Load()
	if last != 0 && time.Duration(now-last) < interval {
		return
	}
	if !lastLog.CompareAndSwap(last, now) {
		return
	}
	Flush("")
}

// Flush logs and resets everything collected so far.
func Flush(reason string) {
	if !Enabled() {
		return
	}
	prefix := "PERF"
	if strings.TrimSpace(reason) != "" {
		prefix = "PERF " + reason
	}
	st, cs := Snapshot()
	for _, s := range st {
		logging.Info("%s %s count=%d avg=%s p95=%s min=%s max=%s",
			prefix, s.Name, s.Count, s.Avg, s.P95, s.Min, s.Max)
	}
	for _, c := range cs {
		logging.Info("%s %s count=%d", prefix, c.Name, c.Value)
	}
}

// Snapshot returns the collected stats sorted by name and resets them.
func Snapshot() ([]StatSnapshot, []CounterSnapshot) {
	mu.Lock()
	defer mu.Unlock()

	st := make([]StatSnapshot, 0, len(stats))
	for name, s := range stats {
		if s.count == 0 {
			continue
		}
		n := s.idx
		if s.full {
			n = len(s.samples)
		}
		st = append(st, StatSnapshot{
			Name:  name,
			Count: s.count,
			Avg:   s.total / time.Duration(s.count),
			Min:   s.min,
			Max:   s.max,
			P95:   p95(s.samples[:n]),
		})
	}
	stats = map[string]*stat{}

	cs := make([]CounterSnapshot, 0, len(counters))
	for name, v := range counters {
		if v != 0 {
			cs = append(cs, CounterSnapshot{Name: name, Value: v})
		}
	}
	counters = map[string]int64{}

	sort.Slice(st, func(i, j int) bool { return st[i].Name < st[j].Name })
	sort.Slice(cs, func(i, j int) bool { return cs[i].Name < cs[j].Name })
	return st, cs
}

func p95(window []time.Duration) time.Duration {
	if len(window) == 0 {
		return 0
	}
	sorted := append([]time.Duration(nil), window...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	pos := int(math.Ceil(0.95*float64(len(sorted)))) - 1
	return sorted[min(max(pos, 0), len(sorted)-1)]
}

func envEnabled(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no":
		return false
	default:
		return true
	}
}

func envInterval(raw string) time.Duration {
	ms := defaultIntervalMs
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v > 0 {
		ms = v
	}
	return time.Duration(ms) * time.Millisecond
}
