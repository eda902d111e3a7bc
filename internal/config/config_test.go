package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/reorient"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	home := isolateHome(t)
	d := Default()

	assert.Equal(t, 2, d.Depth)
	assert.Equal(t, 3, d.MaxDepth)
	assert.False(t, d.Stickers)
	assert.False(t, d.All)
	assert.Empty(t, d.CheapMoves)
	assert.Equal(t, filepath.Join(home, ".reorient", "reorient.db"), d.DB)
	assert.Equal(t, "info", d.LogLevel)
	require.NoError(t, d.Validate())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	isolateHome(t)

	s, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, s.Depth)
	assert.Equal(t, 3, s.MaxDepth)
	assert.Empty(t, s.CheapMoves)
}

func TestLoadFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, `
depth: 3
stickers: true
max_depth: 4
cheap_moves:
  - x
  - xy2
log_level: warn
`)

	s, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Depth)
	assert.True(t, s.Stickers)
	assert.Equal(t, 4, s.MaxDepth)
	assert.Equal(t, []string{"x", "xy2"}, s.CheapMoves)
	assert.Equal(t, reorient.NotationSticker, s.Notation())

	level, err := s.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)
}

func TestLoadDefaultPath(t *testing.T) {
	home := isolateHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".reorient"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".reorient", "config.yaml"), []byte("max_depth: 1\n"), 0644))

	s, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 1, s.MaxDepth)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	isolateHome(t)
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	isolateHome(t)
	path := writeConfig(t, "max_depth: 4\n")
	t.Setenv("REORIENT_MAX_DEPTH", "1")
	t.Setenv("REORIENT_CHEAP_MOVES", "x,y2")

	s, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, s.MaxDepth)
	assert.Equal(t, []string{"x", "y2"}, s.CheapMoves)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	isolateHome(t)
	t.Setenv("REORIENT_DEPTH", "4")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("depth", 2, "")
	flags.Bool("all", false, "")
	flags.StringSlice("cheap-moves", nil, "")
	flags.String("unrelated", "", "")
	require.NoError(t, flags.Parse([]string{"--depth", "5", "--all", "--cheap-moves", "z", "--cheap-moves", "Oxy2"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))

	s, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 5, s.Depth)
	assert.True(t, s.All)
	assert.Equal(t, []string{"z", "Oxy2"}, s.CheapMoves)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr error
	}{
		{"shallow depth", func(s *Settings) { s.Depth = 1 }, ErrInvalidDepth},
		{"negative max depth", func(s *Settings) { s.MaxDepth = -1 }, ErrInvalidMaxDepth},
		{"unknown cheap move", func(s *Settings) { s.CheapMoves = []string{"Oq"} }, reorient.ErrUnknownReorientation},
		{"unknown log level", func(s *Settings) { s.LogLevel = "loud" }, ErrInvalidLogLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(s)
			assert.ErrorIs(t, s.Validate(), tt.wantErr)
		})
	}
}

func TestVerboseForcesDebug(t *testing.T) {
	s := Default()
	s.Verbose = true
	s.LogLevel = "error"

	level, err := s.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)
}

func TestSolverOptions(t *testing.T) {
	s := Default()
	s.MaxDepth = 5
	s.Stickers = true
	s.CheapMoves = []string{"x"}

	opts, err := s.SolverOptions(zerolog.Nop())
	require.NoError(t, err)

	solver := reorient.NewSolver(nil, opts...)
	assert.Equal(t, 5, solver.MaxDepth())
	assert.Equal(t, reorient.NotationSticker, solver.Notation())
	assert.True(t, solver.CheapSet().Contains(reorient.ReorientR))
}
