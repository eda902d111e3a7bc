// Package config loads reorient settings from defaults, a YAML file, the
// environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SeamusWaldron/reorient"
	"github.com/SeamusWaldron/reorient/internal/prune"
)

// EnvPrefix prefixes every environment variable, e.g. REORIENT_MAX_DEPTH.
const EnvPrefix = "REORIENT"

var (
	ErrInvalidDepth    = errors.New("config: depth must be at least 2")
	ErrInvalidMaxDepth = errors.New("config: max_depth must not be negative")
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// Settings holds every user-tunable option.
type Settings struct {
	Depth      int      `mapstructure:"depth" yaml:"depth"`
	Stickers   bool     `mapstructure:"stickers" yaml:"stickers"`
	All        bool     `mapstructure:"all" yaml:"all"`
	CheapMoves []string `mapstructure:"cheap_moves" yaml:"cheap_moves"`
	MaxDepth   int      `mapstructure:"max_depth" yaml:"max_depth"`
	DB         string   `mapstructure:"db" yaml:"db"`
	NoHistory  bool     `mapstructure:"no_history" yaml:"no_history"`
	LogLevel   string   `mapstructure:"log_level" yaml:"log_level"`
	Verbose    bool     `mapstructure:"verbose" yaml:"verbose"`
}

// HomeDir returns ~/.reorient, falling back to the working directory when
// the home directory is unknown.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".reorient"
	}
	return filepath.Join(home, ".reorient")
}

// DefaultConfigPath returns the config file read when --config is not set.
func DefaultConfigPath() string {
	return filepath.Join(HomeDir(), "config.yaml")
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Depth:      2,
		CheapMoves: []string{},
		MaxDepth:   3,
		DB:         filepath.Join(HomeDir(), "reorient.db"),
		LogLevel:   "info",
	}
}

// New returns a viper instance carrying the defaults and reading
// REORIENT_* environment variables.
func New() *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("depth", d.Depth)
	v.SetDefault("stickers", d.Stickers)
	v.SetDefault("all", d.All)
	v.SetDefault("cheap_moves", d.CheapMoves)
	v.SetDefault("max_depth", d.MaxDepth)
	v.SetDefault("db", d.DB)
	v.SetDefault("no_history", d.NoHistory)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("verbose", d.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds command-line flags to their settings keys. Flag names use
// dashes where keys use underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if !isKnownKey(key) {
			return
		}
		if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
			bindErr = fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	})
	return bindErr
}

func isKnownKey(key string) bool {
	switch key {
	case "depth", "stickers", "all", "cheap_moves", "max_depth", "db", "no_history", "log_level", "verbose":
		return true
	}
	return false
}

// Load reads the config file at path into v and returns validated
// settings. An empty path reads DefaultConfigPath if it exists.
func Load(v *viper.Viper, path string) (*Settings, error) {
	if path == "" {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	s.CheapMoves = splitNames(s.CheapMoves)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// splitNames accepts both repeated values and comma-separated lists.
func splitNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks settings that would otherwise fail deep inside a search.
func (s *Settings) Validate() error {
	if s.Depth < prune.MinDepth {
		return fmt.Errorf("%w (got: %d)", ErrInvalidDepth, s.Depth)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("%w (got: %d)", ErrInvalidMaxDepth, s.MaxDepth)
	}
	if _, err := reorient.ParseCheapSet(s.CheapMoves); err != nil {
		return fmt.Errorf("cheap_moves: %w", err)
	}
	if _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the zerolog level, forced to debug by Verbose.
func (s *Settings) Level() (zerolog.Level, error) {
	if s.Verbose {
		return zerolog.DebugLevel, nil
	}
	if s.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s.LogLevel)
	}
	return level, nil
}

// Notation returns the reorientation notation selected by Stickers.
func (s *Settings) Notation() reorient.Notation {
	if s.Stickers {
		return reorient.NotationSticker
	}
	return reorient.NotationXYZ
}

// SolverOptions translates the settings into solver options.
func (s *Settings) SolverOptions(logger zerolog.Logger) ([]reorient.Option, error) {
	cheap, err := reorient.ParseCheapSet(s.CheapMoves)
	if err != nil {
		return nil, fmt.Errorf("cheap_moves: %w", err)
	}
	return []reorient.Option{
		reorient.WithMaxDepth(s.MaxDepth),
		reorient.WithNotation(s.Notation()),
		reorient.WithCheapSet(cheap),
		reorient.WithLogger(logger),
	}, nil
}
