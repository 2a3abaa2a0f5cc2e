package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/mazeball/model"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 6, cfg.Rows)
	assert.Equal(t, 7, cfg.Columns)
	assert.Equal(t, 5.0, cfg.VelocityStep)
	assert.True(t, cfg.GateInputAfterWin)
	assert.Equal(t, 0.7, cfg.Geometry().GoalScale)
	assert.Equal(t, 800.0, cfg.Maze().Width)
}

func TestReadOverridesDefaults(t *testing.T) {
	cfg, err := Read(strings.NewReader(`
rows: 10
columns: 12
seed: 42
gate_input_after_win: false
`))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Rows)
	assert.Equal(t, 12, cfg.Columns)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.Options().GateInput)
	// untouched keys keep defaults
	assert.Equal(t, 600.0, cfg.Height)
	assert.Equal(t, "8080", cfg.Port)
}

func TestReadEmpty(t *testing.T) {
	cfg, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestReadRejectsDimensions(t *testing.T) {
	_, err := Read(strings.NewReader("rows: 0\n"))
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
	_, err = Read(strings.NewReader("width: -3\n"))
	assert.ErrorIs(t, err, model.ErrInvalidDimension)
	_, err = Read(strings.NewReader("tick_rate: 0\n"))
	assert.Error(t, err)
	_, err = Read(strings.NewReader("rows: [\n"))
	assert.Error(t, err)
}

func TestReadRejectsNonPositiveSizes(t *testing.T) {
	for _, doc := range []string{
		"wall_thickness: 0\n",
		"boundary_thickness: -1\n",
		"goal_scale: 0\n",
		"ball_scale: 0\n",
		"ball_scale: -0.5\n",
		"velocity_step: 0\n",
	} {
		_, err := Read(strings.NewReader(doc))
		assert.Error(t, err, doc)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mazeball.yaml")
	require.NoError(t, os.WriteFile(path, []byte("columns: 3\nport: \"9000\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Columns)
	assert.Equal(t, "9000", cfg.Port)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("MAZE_ROWS", "4")
	t.Setenv("MAZE_COLUMNS", "5")
	t.Setenv("MAZE_SEED", "77")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 4, cfg.Rows)
	assert.Equal(t, 5, cfg.Columns)
	assert.Equal(t, int64(77), cfg.Seed)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv("MAZE_ROWS", "many")
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv())

	t.Setenv("MAZE_ROWS", "-2")
	cfg = Default()
	assert.ErrorIs(t, cfg.ApplyEnv(), model.ErrInvalidDimension)
}
