package main

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"github.com/hsiuhsiu/quest-go/pkg/quest"
	"github.com/hsiuhsiu/quest-go/pkg/quest/logging"
)

// settings is the questbind configuration file. Command-line flags override
// whatever the file sets.
//
//	seeds = [7, 11]
//	poison_on_native_error = false
//	log_level = "info"     # debug, info, warn, error
//	log_format = "text"    # text, json
//	color = "auto"         # auto, always, never
type settings struct {
	Seeds               []uint64 `toml:"seeds"`
	PoisonOnNativeError bool     `toml:"poison_on_native_error"`
	LogLevel            string   `toml:"log_level"`
	LogFormat           string   `toml:"log_format"`
	Color               string   `toml:"color"`
}

func defaultSettings() settings {
	return settings{LogLevel: "info", LogFormat: "text", Color: "auto"}
}

// loadSettings reads path over the defaults. An empty path yields the
// defaults. Unknown keys are rejected so typos do not pass silently.
func loadSettings(path string) (settings, error) {
	s := defaultSettings()
	if path == "" {
		return s, nil
	}
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return settings{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return s, nil
}

// flagSource is the subset of *cli.Context used to apply overrides.
type flagSource interface {
	IsSet(name string) bool
	Bool(name string) bool
	String(name string) string
	Uint64Slice(name string) []uint64
}

func (s *settings) applyFlags(f flagSource) {
	if f.IsSet(seedFlag.Name) {
		s.Seeds = f.Uint64Slice(seedFlag.Name)
	}
	if f.IsSet(poisonFlag.Name) {
		s.PoisonOnNativeError = f.Bool(poisonFlag.Name)
	}
	if f.IsSet(colorFlag.Name) {
		s.Color = f.String(colorFlag.Name)
	}
	if f.IsSet(logFormatFlag.Name) {
		s.LogFormat = f.String(logFormatFlag.Name)
	}
	if f.Bool(verboseFlag.Name) {
		s.LogLevel = "debug"
	}
}

func (s settings) validate() error {
	if _, err := s.level(); err != nil {
		return err
	}
	switch s.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format %q: want text or json", s.LogFormat)
	}
	switch s.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color %q: want auto, always or never", s.Color)
	}
	return nil
}

func (s settings) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level %q: %w", s.LogLevel, err)
	}
	return lvl, nil
}

// newLogger builds the slog handler selected by s, writing to w.
func (s settings) newLogger(w io.Writer) (*slog.Logger, error) {
	lvl, err := s.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if s.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func (s settings) applyColor() {
	switch s.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

func (s settings) questConfig(logger *slog.Logger) quest.Config {
	return quest.Config{
		Logger:              logging.New(logger),
		Seeds:               s.Seeds,
		PoisonOnNativeError: s.PoisonOnNativeError,
	}
}
