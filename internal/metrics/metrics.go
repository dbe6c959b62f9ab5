package metrics

import (
	"sync"
	"time"
)

type callStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about upstream calls.
// It is intentionally simple so it can be swapped for a real backend later.
type Recorder struct {
	mu       sync.Mutex
	sources  map[string]*callStats
	analysis map[string]*callStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		sources:  make(map[string]*callStats),
		analysis: make(map[string]*callStats),
		otel:     otel,
	}
}

// RecordSourceAttempt increments counters for a fixture-source fetch and
// stores the last observed latency.
func (r *Recorder) RecordSourceAttempt(source string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	record(r, r.sources, source, duration, err)
	if r.otel != nil {
		r.otel.recordSourceAttempt(source, duration, err)
	}
}

// RecordAnalysisAttempt increments counters for an analysis-provider call.
func (r *Recorder) RecordAnalysisAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	record(r, r.analysis, provider, duration, err)
	if r.otel != nil {
		r.otel.recordAnalysisAttempt(provider, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current stats for one source or provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// SourceSnapshot returns a copy of the current stats for a fixture source.
func (r *Recorder) SourceSnapshot(source string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return r.snapshot(r.sources, source)
}

// AnalysisSnapshot returns a copy of the current stats for an analysis provider.
func (r *Recorder) AnalysisSnapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	return r.snapshot(r.analysis, provider)
}

// SourceCalls returns the total attempts recorded for a fixture source.
func (r *Recorder) SourceCalls(source string) int {
	return r.SourceSnapshot(source).Calls
}

// SourceErrors returns the total failed attempts recorded for a fixture source.
func (r *Recorder) SourceErrors(source string) int {
	return r.SourceSnapshot(source).Errors
}

func record(r *Recorder, stats map[string]*callStats, key string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := stats[key]
	if !ok {
		s = &callStats{}
		stats[key] = s
	}
	s.calls++
	s.lastCallLatency = duration
	if err != nil {
		s.errors++
	}
}

func (r *Recorder) snapshot(stats map[string]*callStats, key string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := stats[key]; ok && s != nil {
		return Snapshot{Calls: s.calls, Errors: s.errors, LastCallLatency: s.lastCallLatency}
	}
	return Snapshot{}
}
