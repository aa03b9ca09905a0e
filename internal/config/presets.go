package config

import "sort"

func preset(edit func(*Config)) *Config {
	cfg := DefaultConfig()
	edit(cfg)
	return cfg
}

var Presets = map[string]*Config{
	"calm": preset(func(c *Config) {
		c.Slots = []int{1, 2}
		c.Speed = 2
		c.Scale = "pentatonic"
		c.Voice = "synth"
		c.Reverb = true
	}),
	"duo": preset(func(c *Config) {
		c.Slots = []int{2, 4}
		c.Speed = 4
		c.Scale = "japanese"
		c.Voice = "duosynth"
		c.Reverb = true
	}),
	"storm": preset(func(c *Config) {
		c.Slots = []int{1, 2, 3, 4, 5}
		c.Speed = 10
		c.Scale = "chromatic"
		c.Voice = "fmsynth"
	}),
	"full": preset(func(c *Config) {
		c.Slots = []int{1, 2, 3, 4, 5}
		c.Speed = 6
		c.Scale = "dorian"
		c.Voice = "polysynth"
		c.Reverb = true
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
