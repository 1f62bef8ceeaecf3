// Command mazewalk animates an ordered search across a maze.
//
// It loads a maze (MAZE_FILE or the embedded one), runs the ordered search
// from MAZE_START to MAZE_GOAL, paints every step on a canvas, optionally
// writing PNG frames and ASCII frames, saves the final image, and prints
// the status line.
//
// Usage:
//
//	MAZE_FRAMES_DIR=frames MAZE_TEXT_FRAMES=true go run ./cmd/mazewalk
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/render"
	"github.com/katalvlaran/mazewalk/search"
)

var log = logrus.New()

func main() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(log)
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	log.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, log, uuid.NewString(), cfg, os.Stdout); err != nil {
		stop()
		log.WithError(err).Fatal("mazewalk failed")
	}
}

// run wires grid → search → renderer → status sink. Frames go to
// cfg.FramesDir/runID.
func run(ctx context.Context, logger logrus.FieldLogger, runID string, cfg config.Config, stdout io.Writer) error {
	entry := logger.WithField("run", runID)
	grid, err := loadGrid(cfg.MazeFile)
	if err != nil {
		return err
	}
	start, goal, err := endpoints(grid, cfg)
	if err != nil {
		return err
	}
	entry = entry.WithFields(logrus.Fields{
		"width":  grid.Width,
		"height": grid.Height,
		"start":  fmt.Sprintf("%d,%d", start.X, start.Y),
		"goal":   fmt.Sprintf("%d,%d", goal.X, goal.Y),
	})
	if start.Wall || goal.Wall {
		entry.Warn("start or goal is a wall")
	}

	canvas := render.NewCanvas(grid, cfg.CellSize)
	painters := []render.Painter{canvas}
	var flushers []render.Flusher
	var frames *render.FrameRecorder
	if cfg.FramesDir != "" {
		if frames, err = render.NewFrameRecorder(canvas, filepath.Join(cfg.FramesDir, runID)); err != nil {
			return err
		}
		flushers = append(flushers, frames)
	}
	if cfg.TextFrames {
		txt := render.NewText(stdout, grid, render.DefaultPalette())
		painters = append(painters, txt)
		flushers = append(flushers, txt)
	}
	renderer, err := render.NewRenderer(render.Multi(painters...), render.WithFlushers(flushers...))
	if err != nil {
		return err
	}

	s, err := search.NewAStar(grid, start, goal,
		search.WithContext(ctx),
		search.WithCeiling(cfg.Ceiling),
		search.WithOnStep(renderer.OnStep()),
		search.WithLogger(entry),
	)
	if err != nil {
		return err
	}
	res, err := s.Run()
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}
	// Dequeuing the goal is not passed to OnStep.
	if res.State == search.Succeeded {
		if err := renderer.Frame(s.Snapshot()); err != nil {
			return err
		}
	}

	if cfg.OutputPNG != "" {
		if err := canvas.SavePNG(cfg.OutputPNG); err != nil {
			return fmt.Errorf("saving %s: %w", cfg.OutputPNG, err)
		}
		entry.WithField("file", cfg.OutputPNG).Info("final image saved")
	}
	if frames != nil {
		entry.WithField("frames", frames.Count()).Info("animation frames saved")
	}
	report(entry, grid, start, goal, res)

	var sink render.StatusSink = render.WriterSink{W: stdout}
	return sink.WriteStatus(res.String())
}

func loadGrid(path string) (*maze.Grid, error) {
	if path == "" {
		return maze.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening maze: %w", err)
	}
	defer f.Close()
	g, err := maze.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// endpoints resolves the configured start and goal. Out-of-bounds points are
// kept as bare coordinates; the search simply never matches them.
func endpoints(g *maze.Grid, cfg config.Config) (start, goal maze.Cell, err error) {
	start = lookup(g, cfg.Start)
	if cfg.GoalSet {
		return start, lookup(g, cfg.Goal), nil
	}
	goal, ok := g.LastOpen()
	if !ok {
		return start, goal, fmt.Errorf("maze has no open cell to use as goal")
	}
	return start, goal, nil
}

func lookup(g *maze.Grid, p maze.Point) maze.Cell {
	if c, ok := g.Node(p.X, p.Y); ok {
		return c
	}
	return maze.Cell{X: p.X, Y: p.Y}
}

// report compares the outcome with the breadth-first distance and, on
// failure, with the open regions and the fewest walls separating start from goal.
func report(entry *logrus.Entry, g *maze.Grid, start, goal maze.Cell, res search.Result) {
	shortest, reachable := g.Distances(start)[goal.Point()]
	switch {
	case res.State == search.Succeeded && res.Steps > shortest:
		entry.WithFields(logrus.Fields{"steps": res.Steps, "shortest": shortest}).
			Warn("ordered search returned a longer route than the shortest")
	case res.State == search.Succeeded:
		entry.WithField("steps", res.Steps).Info("route is a shortest route")
	case reachable:
		entry.WithField("shortest", shortest).Warn("goal was reachable but the frontier ceiling was hit")
	default:
		fields := logrus.Fields{"regions": len(g.Components())}
		if _, walls, err := g.Breach(start, goal); err == nil {
			fields["walls"] = len(walls)
		}
		entry.WithFields(fields).Info("goal is walled off from start")
	}
}
