package mission

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// TestMain silences diagnostics so transcript assertions and benchmarks
// stay quiet.
func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func TestFlightRunTranscript(t *testing.T) {
	var buf bytes.Buffer
	flight := NewFlight(&buf)
	flight.Ground.sleep = noSleep

	if err := flight.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{
		"10...", "9...", "8...", "7...", "6...", "5...", "4...", "3...", "2...", "1...",
		"Liftoff!",
		"Here am I floating 'round my tin can",
		"Far above the Moon",
		"Planet Earth is blue",
		"And there's nothing I can do.",
	}
	got := lines(&buf)
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(want), len(got), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFlightRunAbortStillWalks(t *testing.T) {
	var buf bytes.Buffer
	flight := NewFlight(&buf)
	flight.Ground.sleep = noSleep
	flight.Ground.CommLinkActive = false

	if err := flight.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{
		"10...", "9...", "8...", "7...", "6...",
		"ABORT!",
		"Here am I floating 'round my tin can",
		"Far above the Moon",
		"Planet Earth is blue",
		"And there's nothing I can do.",
	}
	got := lines(&buf)
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d:\n%s", len(want), len(got), buf.String())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if strings.Contains(buf.String(), "Liftoff!") {
		t.Errorf("Expected no liftoff line after an abort")
	}

	runs, aborts, _ := flight.metrics.GetStats()
	if runs != 1 {
		t.Errorf("Expected 1 run recorded, got %d", runs)
	}
	if aborts != 1 {
		t.Errorf("Expected 1 abort recorded, got %d", aborts)
	}
}

func TestFlightRunCustomStart(t *testing.T) {
	var buf bytes.Buffer
	flight := NewFlight(&buf)
	flight.Ground.sleep = noSleep
	flight.StartFrom = 2

	if err := flight.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got := lines(&buf)
	if len(got) != 7 {
		t.Fatalf("Expected 7 lines, got %d:\n%s", len(got), buf.String())
	}
	if got[0] != "2..." {
		t.Errorf("Expected first line %q, got %q", "2...", got[0])
	}
	if got[2] != "Liftoff!" {
		t.Errorf("Expected third line %q, got %q", "Liftoff!", got[2])
	}
}

func TestFlightRunCanceled(t *testing.T) {
	var buf bytes.Buffer
	flight := NewFlight(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := flight.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if strings.Contains(buf.String(), "tin can") {
		t.Errorf("Expected the walk to be skipped on cancellation")
	}

	runs, aborts, _ := flight.metrics.GetStats()
	if runs != 1 {
		t.Errorf("Expected 1 run recorded, got %d", runs)
	}
	if aborts != 0 {
		t.Errorf("Expected no abort recorded for a cancellation, got %d", aborts)
	}
}

func TestMetrics(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRun(100 * time.Millisecond)
	metrics.RecordRun(200 * time.Millisecond)
	metrics.RecordAbort()

	runs, aborts, duration := metrics.GetStats()
	if runs != 2 {
		t.Errorf("Expected 2 runs, got %d", runs)
	}
	if aborts != 1 {
		t.Errorf("Expected 1 abort, got %d", aborts)
	}
	if duration != 300*time.Millisecond {
		t.Errorf("Expected 300ms total duration, got %v", duration)
	}
}
