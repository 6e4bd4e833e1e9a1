package mission

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog/log"
)

// Defaults for the launch procedure: count down from ten with a tenth of a
// second between calls.
const (
	DefaultStartFrom = 10
	DefaultTick      = 100 * time.Millisecond
)

// ignitionCheckpoint is the counter value at which the ignition systems are
// verified, once per countdown.
const ignitionCheckpoint = 6

// GroundControl is the mission control side of the exchange. It owns the
// launch countdown and the ignition verification that gates liftoff.
type GroundControl struct {
	// EnginesOn is armed exactly once, when a countdown commences.
	EnginesOn      bool
	CommLinkActive bool
	// Tick is the pause between countdown calls.
	Tick time.Duration

	out   io.Writer
	sleep func(ctx context.Context, d time.Duration) error
}

// NewGroundControl returns a controller with a live comm link and engines
// off, writing its transcript to out.
func NewGroundControl(out io.Writer) *GroundControl {
	return &GroundControl{
		CommLinkActive: true,
		Tick:           DefaultTick,
		out:            out,
		sleep:          sleepContext,
	}
}

// CommenceCountdown arms the engines and counts down from startFrom to 1,
// announcing each value. At the ignition checkpoint the systems are verified
// once; a failed check aborts the sequence before liftoff. The returned bool
// reports whether liftoff was reached. An abort is a normal outcome, not an
// error; only a canceled context returns one. A non-positive startFrom runs
// no iterations and goes straight to liftoff.
func (g *GroundControl) CommenceCountdown(ctx context.Context, startFrom int) (bool, error) {
	log.Info().Int("start_from", startFrom).Msg("Commencing countdown, engines on")
	g.EnginesOn = true

	for i := startFrom; i >= 1; i-- {
		fmt.Fprintf(g.out, "%d...\n", i)
		if err := g.sleep(ctx, g.Tick); err != nil {
			return false, err
		}

		if i == ignitionCheckpoint {
			log.Info().Msg("Check ignition")
			if !g.CheckIgnitionSystems() {
				log.Warn().
					Bool("engines_on", g.EnginesOn).
					Bool("comm_link_active", g.CommLinkActive).
					Msg("Ignition check failed, aborting countdown")
				fmt.Fprintln(g.out, "ABORT!")
				return false, nil
			}
		}
	}

	fmt.Fprintln(g.out, "Liftoff!")
	return true, nil
}

// CheckIgnitionSystems reports whether all primary thrusters are firing:
// the engines must be armed and the comm link must be up.
func (g *GroundControl) CheckIgnitionSystems() bool {
	return g.EnginesOn && g.CommLinkActive
}

// sleepContext pauses for d unless the context is canceled first. A
// non-positive d skips the timer but still observes cancellation.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
