package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/maze"
)

func baseConfig(t *testing.T) config.Config {
	dir := t.TempDir()
	return config.Config{
		Start:     maze.Point{X: 1, Y: 1},
		CellSize:  4,
		OutputPNG: filepath.Join(dir, "maze.png"),
		FramesDir: filepath.Join(dir, "frames"),
		Ceiling:   10000,
		LogLevel:  "info",
	}
}

// TestRun_DefaultMaze solves the embedded maze and writes all outputs.
func TestRun_DefaultMaze(t *testing.T) {
	cfg := baseConfig(t)
	logger, hook := test.NewNullLogger()
	var out bytes.Buffer

	err := run(context.Background(), logger, "r1", cfg, &out)
	require.NoError(t, err)

	assert.Regexp(t, `^Found path of length \d+\n$`, out.String())
	_, err = os.Stat(cfg.OutputPNG)
	assert.NoError(t, err)
	frames, err := filepath.Glob(filepath.Join(cfg.FramesDir, "r1", "frame-*.png"))
	require.NoError(t, err)
	assert.NotEmpty(t, frames)
	assert.NotEmpty(t, hook.AllEntries())
}

// TestRun_WalledOff reports failure and the breach size.
func TestRun_WalledOff(t *testing.T) {
	cfg := baseConfig(t)
	cfg.FramesDir = ""
	cfg.TextFrames = true
	cfg.MazeFile = filepath.Join(t.TempDir(), "walled.txt")
	require.NoError(t, os.WriteFile(cfg.MazeFile, []byte("#####\n#.#.#\n#####\n"), 0o600))

	logger, hook := test.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), logger, "r2", cfg, &out))

	// The failing expansion is flushed once by the search itself.
	assert.Equal(t, 1, strings.Count(out.String(), "step 1\n"))
	assert.Contains(t, out.String(), "#*#.#\n")
	assert.Contains(t, out.String(), "Path not found\n")
	last := hook.LastEntry()
	require.NotNil(t, last)
	assert.Equal(t, logrus.InfoLevel, last.Level)
	assert.Equal(t, 1, last.Data["walls"])
	assert.Equal(t, 2, last.Data["regions"])
	assert.Equal(t, "r2", last.Data["run"])
}

func TestRun_BadMazeFile(t *testing.T) {
	cfg := baseConfig(t)
	cfg.MazeFile = filepath.Join(t.TempDir(), "missing.txt")
	logger, _ := test.NewNullLogger()
	err := run(context.Background(), logger, "r3", cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestEndpoints(t *testing.T) {
	g := maze.MustParse([]string{"#..", "..#"})
	cfg := config.Config{Start: maze.Point{X: 1, Y: 0}}
	start, goal, err := endpoints(g, cfg)
	require.NoError(t, err)
	assert.Equal(t, maze.Cell{X: 1, Y: 0}, start)
	assert.Equal(t, maze.Cell{X: 1, Y: 1}, goal)

	cfg.Goal, cfg.GoalSet = maze.Point{X: 7, Y: 7}, true
	_, goal, err = endpoints(g, cfg)
	require.NoError(t, err)
	assert.Equal(t, maze.Cell{X: 7, Y: 7}, goal)

	_, _, err = endpoints(maze.MustParse([]string{"##"}), config.Config{})
	assert.Error(t, err)
}
