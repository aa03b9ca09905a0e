package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/chime/internal/config"
	"github.com/san-kum/chime/internal/log"
	"github.com/san-kum/chime/internal/scale"
)

const defaultTail = 2 * time.Second

var (
	configFile   string
	preset       string
	slots        []int
	speed        float64
	scaleName    string
	voiceName    string
	reverb       bool
	width        float64
	height       float64
	seed         int64
	audioBackend string
	logLevel     string
	logFile      string
	fps          int

	frames  int
	jsonOut string
	outFile string
	tail    time.Duration
	analyze bool
	force   bool
)

// loadConfig builds the effective config: defaults, then the preset, then
// the config file, then any flag the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("slots") {
		cfg.Slots = slots
	}
	if flags.Changed("speed") {
		cfg.Speed = speed
	}
	if flags.Changed("scale") {
		cfg.Scale = scaleName
	}
	if flags.Changed("voice") {
		cfg.Voice = voiceName
	}
	if flags.Changed("reverb") {
		cfg.Reverb = reverb
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("audio") {
		cfg.Audio = audioBackend
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(out io.Writer, cfg *config.Config) *log.Logger {
	logger := log.New(out, log.LevelFromString(cfg.LogLevel))
	if _, ok := scale.Lookup(cfg.Scale); !ok {
		logger.Warnf("unknown scale %q, using %s", cfg.Scale, scale.Default)
	}
	if k, ok := cfg.VoiceKind(); !ok {
		logger.Warnf("unknown voice %q, using %s", cfg.Voice, k)
	}
	return logger
}

// newRand returns a seeded source, or nil to let the controller seed from
// the clock.
func newRand(cfg *config.Config) *rand.Rand {
	if cfg.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(cfg.Seed))
}
