package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/chime/internal/scale"
	"github.com/san-kum/chime/internal/sim"
	"github.com/san-kum/chime/internal/voice"
)

const (
	DefaultWidth      = 800.0
	DefaultHeight     = 500.0
	DefaultSpeed      = 5.0
	DefaultFPS        = 60
	DefaultSampleRate = 44100
	DefaultLogLevel   = "info"
	DefaultAudio      = "portaudio"
)

var ErrInvalidConfig = errors.New("config: invalid")

type Config struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Slots      []int   `yaml:"slots"`
	Speed      float64 `yaml:"speed"`
	Scale      string  `yaml:"scale"`
	Voice      string  `yaml:"voice"`
	Reverb     bool    `yaml:"reverb"`
	FPS        int     `yaml:"fps"`
	SampleRate int     `yaml:"sample_rate"`
	Seed       int64   `yaml:"seed"`
	LogLevel   string  `yaml:"log_level"`
	Audio      string  `yaml:"audio"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Slots:      []int{1, 2, 3},
		Speed:      DefaultSpeed,
		Scale:      scale.Default,
		Voice:      voice.DefaultKind.String(),
		FPS:        DefaultFPS,
		SampleRate: DefaultSampleRate,
		LogLevel:   DefaultLogLevel,
		Audio:      DefaultAudio,
	}
}

// Load reads a yaml file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values no run can use. Unknown scale and voice names
// are not errors; they fall back to the defaults when the run starts.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: surface %gx%g must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: speed %g is negative", ErrInvalidConfig, c.Speed)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.FPS)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample_rate %d must be positive", ErrInvalidConfig, c.SampleRate)
	}
	seen := make(map[int]bool, len(c.Slots))
	for _, s := range c.Slots {
		if s < 1 || s > sim.MaxSlots {
			return fmt.Errorf("%w: slot %d outside 1..%d", ErrInvalidConfig, s, sim.MaxSlots)
		}
		if seen[s] {
			return fmt.Errorf("%w: slot %d listed twice", ErrInvalidConfig, s)
		}
		seen[s] = true
	}
	return nil
}

// VoiceKind parses the voice name; ok is false when it fell back to the
// default kind.
func (c *Config) VoiceKind() (voice.Kind, bool) {
	return voice.ParseKind(c.Voice)
}

// Settings converts the config into what the controller's Start reads.
func (c *Config) Settings() sim.Settings {
	kind, _ := c.VoiceKind()
	s := sim.Settings{
		Bounds: sim.Bounds{Width: c.Width, Height: c.Height},
		Speed:  c.Speed,
		Scale:  c.Scale,
		Voice:  kind,
		Reverb: c.Reverb,
	}
	for _, n := range c.Slots {
		if n >= 1 && n <= sim.MaxSlots {
			s.Slots[n-1] = true
		}
	}
	return s
}

// SetSlots replaces the enabled slots from a settings array.
func (c *Config) SetSlots(slots [sim.MaxSlots]bool) {
	c.Slots = c.Slots[:0]
	for i, on := range slots {
		if on {
			c.Slots = append(c.Slots, i+1)
		}
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Slots = append([]int(nil), c.Slots...)
	return &out
}
