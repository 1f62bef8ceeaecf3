package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/render"
	"github.com/katalvlaran/mazewalk/search"
)

// ErrInvalidEnv is returned when an environment variable cannot be parsed.
var ErrInvalidEnv = errors.New("config: invalid environment variable")

// Config holds the binary's configuration values.
type Config struct {
	MazeFile   string     // Path of a maze text file; empty selects the embedded maze
	Start      maze.Point // Start cell
	Goal       maze.Point // Goal cell, meaningful only if GoalSet
	GoalSet    bool       // False selects the bottom-right-most open cell
	CellSize   int        // Pixels per cell
	FramesDir  string     // Directory for PNG frames; empty disables frames
	OutputPNG  string     // Final image path; empty disables it
	Ceiling    int        // Frontier size at which the search gives up
	TextFrames bool       // Print ASCII frames to stdout
	LogLevel   string     // logrus level name
}

// Load reads env files (default ".env") if present and then the environment.
// Variables already set in the environment win over file values.
// A missing file is logged at Info and is not an error.
func Load(log logrus.FieldLogger, files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.WithError(err).Info(".env file not found or could not be loaded")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var (
		cfg Config
		err error
	)
	cfg.MazeFile = getEnvWithDefault("MAZE_FILE", "")
	cfg.FramesDir = getEnvWithDefault("MAZE_FRAMES_DIR", "")
	cfg.OutputPNG = getEnvWithDefault("MAZE_OUTPUT_PNG", "maze.png")
	cfg.LogLevel = getEnvWithDefault("LOG_LEVEL", "info")

	if cfg.Start, err = getEnvAsPoint("MAZE_START", "1,1"); err != nil {
		return Config{}, err
	}
	if raw := getEnvWithDefault("MAZE_GOAL", ""); raw != "" {
		if cfg.Goal, err = parsePoint("MAZE_GOAL", raw); err != nil {
			return Config{}, err
		}
		cfg.GoalSet = true
	}
	if cfg.CellSize, err = getEnvAsPositiveInt("MAZE_CELL_SIZE", render.DefaultCellSize); err != nil {
		return Config{}, err
	}
	if cfg.Ceiling, err = getEnvAsPositiveInt("MAZE_CEILING", search.DefaultCeiling); err != nil {
		return Config{}, err
	}
	if cfg.TextFrames, err = getEnvAsBool("MAZE_TEXT_FRAMES", false); err != nil {
		return Config{}, err
	}
	if _, err = logrus.ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, fmt.Errorf("%w: LOG_LEVEL: %v", ErrInvalidEnv, err)
	}
	return cfg, nil
}

// Level returns the parsed log level, Info if LogLevel is unparsable.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if unset or empty.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsPositiveInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", ErrInvalidEnv, key, raw)
	}
	return v, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", ErrInvalidEnv, key, raw)
	}
	return v, nil
}

func getEnvAsPoint(key, defaultValue string) (maze.Point, error) {
	return parsePoint(key, getEnvWithDefault(key, defaultValue))
}

// parsePoint accepts "x,y" with optional spaces.
func parsePoint(key, raw string) (maze.Point, error) {
	xs, ys, ok := strings.Cut(raw, ",")
	if !ok {
		return maze.Point{}, fmt.Errorf("%w: %s must be \"x,y\", got %q", ErrInvalidEnv, key, raw)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return maze.Point{}, fmt.Errorf("%w: %s must be \"x,y\", got %q", ErrInvalidEnv, key, raw)
	}
	return maze.Point{X: x, Y: y}, nil
}
