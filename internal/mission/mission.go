// Package mission replays the exchange between ground control and Major Tom:
// a launch countdown with an ignition check, then the astronaut's walk to the
// final transmission. The transcript goes to the configured writer;
// diagnostics go to the structured logger.
package mission

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Flight wires the two participants together: countdown first, then the walk,
// regardless of the countdown outcome. The participants never exchange state.
type Flight struct {
	Ground    *GroundControl
	Tom       *MajorTom
	StartFrom int

	metrics *Metrics
}

// NewFlight returns a flight with default participants writing to out.
func NewFlight(out io.Writer) *Flight {
	return &Flight{
		Ground:    NewGroundControl(out),
		Tom:       NewMajorTom(out),
		StartFrom: DefaultStartFrom,
		metrics:   NewMetrics(),
	}
}

// Run executes the full sequence. An aborted countdown does not suppress the
// walk; only context cancellation returns an error and skips it.
func (f *Flight) Run(ctx context.Context) error {
	start := time.Now()
	defer func() {
		f.metrics.RecordRun(time.Since(start))
	}()

	lifted, err := f.Ground.CommenceCountdown(ctx, f.StartFrom)
	if err != nil {
		return err
	}
	if !lifted {
		f.metrics.RecordAbort()
	}

	f.Tom.StepThroughDoor()

	runs, aborts, dur := f.metrics.GetStats()
	log.Debug().
		Bool("lifted", lifted).
		Int64("runs", runs).
		Int64("aborts", aborts).
		Dur("total_duration", dur).
		Msg("Mission sequence complete")
	return nil
}

// Metrics tracks basic flight statistics.
type Metrics struct {
	runs     int64
	aborts   int64
	duration time.Duration
	mu       sync.RWMutex
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordRun records a completed run.
func (m *Metrics) RecordRun(duration time.Duration) {
	m.mu.Lock()
	m.runs++
	m.duration += duration
	m.mu.Unlock()
}

// RecordAbort records a countdown that ended in an abort.
func (m *Metrics) RecordAbort() {
	m.mu.Lock()
	m.aborts++
	m.mu.Unlock()
}

// GetStats returns current statistics.
func (m *Metrics) GetStats() (int64, int64, time.Duration) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.runs, m.aborts, m.duration
}
