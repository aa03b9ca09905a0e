package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/chime/internal/config"
	"github.com/san-kum/chime/internal/scale"
	"github.com/san-kum/chime/internal/voice"
)

func listScales(cmd *cobra.Command, args []string) {
	for _, name := range scale.Names() {
		s, _ := scale.Lookup(name)
		marker := " "
		if name == scale.Default {
			marker = "*"
		}
		fmt.Printf("%s %-16s %s\n", marker, name, strings.Join(s.Notes(), " "))
	}
}

func listVoices(cmd *cobra.Command, args []string) {
	for _, k := range voice.Kinds() {
		marker := " "
		if k == voice.DefaultKind {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, k)
	}
}

func listPresets(cmd *cobra.Command, args []string) {
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Printf("  %-8s slots %v  speed %g  %s/%s  reverb %v\n",
			name, p.Slots, p.Speed, p.Scale, p.Voice, p.Reverb)
	}
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := "chime.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
