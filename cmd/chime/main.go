package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// main is the entry point for the chime CLI; with no subcommand it opens
// the terminal UI.
func main() {
	rootCmd := &cobra.Command{
		Use:          "chime",
		Short:        "bouncing circles that play notes when they collide",
		SilenceUsage: true,
		RunE:         runTUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntSliceVar(&slots, "slots", nil, "enabled bodies, 1-5 (e.g. 1,3,5)")
	pf.Float64Var(&speed, "speed", 0, "initial speed range")
	pf.StringVar(&scaleName, "scale", "", "scale name (see 'chime scales')")
	pf.StringVar(&voiceName, "voice", "", "voice kind (see 'chime voices')")
	pf.BoolVar(&reverb, "reverb", false, "route voices through the reverb")
	pf.Float64Var(&width, "width", 0, "surface width")
	pf.Float64Var(&height, "height", 0, "surface height")
	pf.Int64Var(&seed, "seed", 0, "random seed (0 = time based)")
	pf.StringVar(&audioBackend, "audio", "", "audio backend: portaudio, ebiten, none")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn, error, none")
	pf.IntVar(&fps, "fps", 0, "frames per second")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "terminal front end",
		RunE:  runTUI,
	}
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	tuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "raylib window",
		RunE:  runGUI,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless simulation with collision and note statistics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "also write the results as JSON to this path")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "headless simulation rendered to a WAV file",
		RunE:  runRender,
	}
	renderCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	renderCmd.Flags().StringVar(&outFile, "out", "chime.wav", "output WAV path")
	renderCmd.Flags().DurationVar(&tail, "tail", defaultTail, "extra audio after the last frame")
	renderCmd.Flags().BoolVar(&analyze, "analyze", false, "print level and spectral peak of the result")

	scalesCmd := &cobra.Command{
		Use:   "scales",
		Short: "list available scales",
		Run:   listScales,
	}

	voicesCmd := &cobra.Command{
		Use:   "voices",
		Short: "list voice kinds",
		Run:   listVoices,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run:   listPresets,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  initConfig,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, renderCmd, scalesCmd, voicesCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
