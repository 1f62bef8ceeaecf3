package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/maze"
)

var keys = []string{
	"MAZE_FILE", "MAZE_START", "MAZE_GOAL", "MAZE_CELL_SIZE", "MAZE_FRAMES_DIR",
	"MAZE_OUTPUT_PNG", "MAZE_CEILING", "MAZE_TEXT_FRAMES", "LOG_LEVEL",
}

// clearEnv blanks every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.MazeFile)
	assert.Equal(t, maze.Point{X: 1, Y: 1}, cfg.Start)
	assert.False(t, cfg.GoalSet)
	assert.Equal(t, 15, cfg.CellSize)
	assert.Equal(t, 10000, cfg.Ceiling)
	assert.False(t, cfg.TextFrames)
	assert.Equal(t, "maze.png", cfg.OutputPNG)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAZE_FILE", "mazes/big.txt")
	t.Setenv("MAZE_START", " 2 , 3 ")
	t.Setenv("MAZE_GOAL", "9,4")
	t.Setenv("MAZE_CELL_SIZE", "8")
	t.Setenv("MAZE_CEILING", "500")
	t.Setenv("MAZE_TEXT_FRAMES", "true")
	t.Setenv("MAZE_FRAMES_DIR", "out")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "mazes/big.txt", cfg.MazeFile)
	assert.Equal(t, maze.Point{X: 2, Y: 3}, cfg.Start)
	assert.True(t, cfg.GoalSet)
	assert.Equal(t, maze.Point{X: 9, Y: 4}, cfg.Goal)
	assert.Equal(t, 8, cfg.CellSize)
	assert.Equal(t, 500, cfg.Ceiling)
	assert.True(t, cfg.TextFrames)
	assert.Equal(t, "out", cfg.FramesDir)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
}

// TestFromEnv_Invalid rejects unparsable values.
func TestFromEnv_Invalid(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"MAZE_START", "1"},
		{"MAZE_START", "a,b"},
		{"MAZE_GOAL", "3;4"},
		{"MAZE_CELL_SIZE", "-2"},
		{"MAZE_CEILING", "lots"},
		{"MAZE_TEXT_FRAMES", "maybe"},
		{"LOG_LEVEL", "loud"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := config.FromEnv()
			assert.ErrorIs(t, err, config.ErrInvalidEnv)
		})
	}
}

// TestLoad_EnvFile reads values from a .env file without overriding the environment.
func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("MAZE_CEILING"))
	require.NoError(t, os.Unsetenv("MAZE_GOAL"))
	t.Setenv("MAZE_CELL_SIZE", "9")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAZE_CEILING=77\nMAZE_GOAL=4,5\nMAZE_CELL_SIZE=30\n"), 0o600))

	log, hook := test.NewNullLogger()
	cfg, err := config.Load(log, path)
	require.NoError(t, err)
	assert.Equal(t, 77, cfg.Ceiling)
	assert.Equal(t, maze.Point{X: 4, Y: 5}, cfg.Goal)
	assert.Equal(t, 9, cfg.CellSize)
	assert.Empty(t, hook.AllEntries())
}

// TestLoad_MissingFile logs and falls back to the environment.
func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	log, hook := test.NewNullLogger()
	cfg, err := config.Load(log, filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, 10000, cfg.Ceiling)
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}
