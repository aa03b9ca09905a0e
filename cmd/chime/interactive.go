package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/chime/internal/audio"
	"github.com/san-kum/chime/internal/gui"
	"github.com/san-kum/chime/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// the terminal is taken by the UI, so logs go to a file or nowhere
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	logger := newLogger(out, cfg)

	mixer := audio.NewMixer(cfg.SampleRate)
	output, err := audio.Open(cfg.Audio, mixer, logger)
	if err != nil {
		return err
	}
	defer output.Stop()

	return tui.Run(cfg, mixer, newRand(cfg), logger)
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := newLogger(os.Stderr, cfg)

	mixer := audio.NewMixer(cfg.SampleRate)
	output, err := audio.Open(cfg.Audio, mixer, logger)
	if err != nil {
		return err
	}
	defer output.Stop()

	gui.Run(cfg, mixer, newRand(cfg), logger)
	return nil
}
