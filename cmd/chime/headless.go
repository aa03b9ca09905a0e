package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/chime/internal/audio"
	"github.com/san-kum/chime/internal/config"
	"github.com/san-kum/chime/internal/experiment"
	"github.com/san-kum/chime/internal/log"
)

func newExperiment(cmd *cobra.Command, render bool) (*experiment.Experiment, *config.Config, *log.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := newLogger(os.Stderr, cfg)

	s := cfg.Seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	exp := experiment.New(experiment.Config{
		Settings:   cfg.Settings(),
		Frames:     frames,
		FPS:        cfg.FPS,
		SampleRate: cfg.SampleRate,
		Seed:       s,
		Render:     render,
	}, logger)
	return exp, cfg, logger, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	exp, cfg, _, err := newExperiment(cmd, false)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("running %d frames (%d bodies, %s, %s)...\n", frames, len(cfg.Slots), cfg.Scale, cfg.Voice)
	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (%v simulated)\n\n", result.Elapsed, result.Duration(cfg.FPS))
	printMetrics(result.Metrics)

	if len(result.Series) > 1 {
		fmt.Println()
		graph := asciigraph.Plot(result.Series,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("notes per frame"),
		)
		fmt.Println(graph)
	}

	if jsonOut != "" {
		if err := result.ExportJSON(jsonOut); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", jsonOut)
	}
	return nil
}

func printMetrics(m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.3f\n", name, m[name])
	}
	w.Flush()
}

func runRender(cmd *cobra.Command, args []string) error {
	exp, cfg, logger, err := newExperiment(cmd, true)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := exp.Run(ctx)
	if err != nil {
		return err
	}
	samples := append(result.Audio, exp.Tail(tail)...)

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := audio.WriteWAV(f, samples, result.SampleRate, 2); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	seconds := float64(len(samples)/2) / float64(cfg.SampleRate)
	logger.Infof("rendered %d frames, %.1fs of audio", result.Frames, seconds)
	fmt.Printf("wrote %s (%.1fs, %.0f notes)\n", outFile, seconds, result.Metrics["notes"])

	if analyze {
		mono := audio.Mono(samples)
		fmt.Printf("rms level:     %.4f\n", audio.RMS(samples))
		fmt.Printf("spectral peak: %.1f Hz\n", audio.PeakFrequency(mono, cfg.SampleRate))
	}
	return nil
}
