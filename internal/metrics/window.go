// Package metrics holds small in-process aggregates: a rolling window of
// finished analyses and order statistics over a set of values.
package metrics

import (
	"sync"
	"time"
)

// Analysis describes one finished coverage analysis.
type Analysis struct {
	Elapsed  time.Duration
	Packages int
	Types    int
	Percent  float64
}

// WindowSnapshot aggregates the analyses still inside the window.
type WindowSnapshot struct {
	Count       int          `json:"count"`
	Packages    int          `json:"packages"`
	Types       int          `json:"types"`
	ElapsedMs   Distribution `json:"elapsed_ms"`
	TypesPerSec Distribution `json:"types_per_sec"`
	Coverage    Distribution `json:"coverage"`
}

type observation struct {
	at time.Time
	Analysis
}

// Window keeps the analyses observed within maxAge.
type Window struct {
	mu     sync.Mutex
	obs    []observation
	maxAge time.Duration
	now    func() time.Time
}

// NewWindow creates a window. maxAge <= 0 means one hour.
func NewWindow(maxAge time.Duration) *Window {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Window{maxAge: maxAge, now: time.Now}
}

// Observe adds a. Negative durations are recorded as zero.
func (w *Window) Observe(a Analysis) {
	a.Elapsed = max(a.Elapsed, 0)

	w.mu.Lock()
	defer w.mu.Unlock()
	now := w.now()
	w.expireLocked(now)
	w.obs = append(w.obs, observation{at: now, Analysis: a})
}

// Snapshot summarizes the analyses inside the window.
func (w *Window) Snapshot() WindowSnapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expireLocked(w.now())

	snap := WindowSnapshot{Count: len(w.obs)}
	elapsed := make([]float64, 0, len(w.obs))
	rate := make([]float64, 0, len(w.obs))
	coverage := make([]float64, 0, len(w.obs))
	for _, o := range w.obs {
		snap.Packages += o.Packages
		snap.Types += o.Types
		elapsed = append(elapsed, float64(o.Elapsed.Milliseconds()))
		coverage = append(coverage, o.Percent)
		// Too fast to measure gives no meaningful rate.
		if secs := o.Elapsed.Seconds(); secs > 0 {
			rate = append(rate, float64(o.Types)/secs)
		}
	}
	snap.ElapsedMs = Summarize(elapsed)
	snap.TypesPerSec = Summarize(rate)
	snap.Coverage = Summarize(coverage)
	return snap
}

// expireLocked drops observations older than maxAge. Observations arrive in
// time order, so the expired ones form a prefix.
func (w *Window) expireLocked(now time.Time) {
	cutoff := now.Add(-w.maxAge)
	i := 0
	for i < len(w.obs) && w.obs[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		w.obs = append(w.obs[:0], w.obs[i:]...)
	}
}
