package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	mission "majortom/internal/mission"
)

// Resolve countdown settings from config and flags, flags winning when set
func resolveCountdown(cmd *cobra.Command) (int, time.Duration, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := mission.LoadConfig(cfgPath)
	if err != nil {
		return 0, 0, err
	}
	from := cfg.Countdown.StartFrom
	if cmd.Flags().Changed("from") {
		from, _ = cmd.Flags().GetInt("from")
	}
	tick := cfg.Tick()
	if cmd.Flags().Changed("tick") {
		tick, _ = cmd.Flags().GetDuration("tick")
	}
	return from, tick, nil
}

// Fly the full mission
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full sequence: countdown, liftoff and the walk",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, tick, err := resolveCountdown(cmd)
			if err != nil {
				return err
			}
			flight := mission.NewFlight(cmd.OutOrStdout())
			flight.StartFrom = from
			flight.Ground.Tick = tick
			return flight.Run(cmd.Context())
		},
	}
	cmd.Flags().Int("from", mission.DefaultStartFrom, "countdown starting value")
	cmd.Flags().Duration("tick", mission.DefaultTick, "pause between countdown calls")
	return cmd
}

// Count down without the walk
func newCountdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Run only the countdown and ignition check",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, tick, err := resolveCountdown(cmd)
			if err != nil {
				return err
			}
			gc := mission.NewGroundControl(cmd.OutOrStdout())
			gc.Tick = tick
			_, err = gc.CommenceCountdown(cmd.Context(), from)
			return err
		},
	}
	cmd.Flags().Int("from", mission.DefaultStartFrom, "countdown starting value")
	cmd.Flags().Duration("tick", mission.DefaultTick, "pause between countdown calls")
	return cmd
}

// Walk without the countdown
func newSpacewalkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spacewalk",
		Short: "Replay Major Tom's walk and final transmission",
		Run: func(cmd *cobra.Command, args []string) {
			mission.NewMajorTom(cmd.OutOrStdout()).StepThroughDoor()
		},
	}
}

// Run the ignition check against a chosen flag state
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify ignition readiness for a given engine and comm link state",
		Run: func(cmd *cobra.Command, args []string) {
			enginesOn, _ := cmd.Flags().GetBool("engines-on")
			commLink, _ := cmd.Flags().GetBool("comm-link")
			gc := mission.NewGroundControl(cmd.OutOrStdout())
			gc.EnginesOn = enginesOn
			gc.CommLinkActive = commLink
			if gc.CheckIgnitionSystems() {
				fmt.Fprintln(cmd.OutOrStdout(), "ignition check: go")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "ignition check: no go")
			}
		},
	}
	cmd.Flags().Bool("engines-on", false, "treat the engines as armed")
	cmd.Flags().Bool("comm-link", true, "treat the comm link as active")
	return cmd
}
