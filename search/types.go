// Package search provides tunable options, result types and error definitions
// for stepwise maze search over a maze.Grid.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazewalk/maze"
)

// DefaultCeiling is the frontier size at which a search gives up.
const DefaultCeiling = 10000

// Sentinel errors for search execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("search: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrFinished is returned by Step once the search has terminated.
	ErrFinished = errors.New("search: search already finished")

	// ErrStepHook wraps an error returned from the OnStep callback.
	ErrStepHook = errors.New("search: OnStep aborted the search")
)

// State is the lifecycle of a search: Running until it either
// reaches the goal or gives up.
type State int

const (
	// Running means more steps are possible.
	Running State = iota
	// Succeeded means the goal was dequeued and a path is available.
	Succeeded
	// Failed means the frontier emptied or reached the ceiling.
	Failed
)

// String returns a lowercase name for logs.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Node is one entry of the search tree. Nodes live in an arena indexed by
// creation order; Parent is the arena index of the predecessor, -1 for the root.
type Node struct {
	Cell      maze.Cell
	Parent    int
	Cost      int // steps from the start
	Heuristic int // Manhattan estimate to the goal
}

// Priority is the estimated total cost Cost + Heuristic.
func (n Node) Priority() int {
	return n.Cost + n.Heuristic
}

// Snapshot is the observable state after one step.
// Walls and Open are shared between snapshots and must not be modified.
type Snapshot struct {
	Step     int
	State    State
	Current  maze.Cell
	Walls    []maze.Cell
	Open     []maze.Cell
	Explored []maze.Cell // in exploration order
	Frontier []maze.Cell // in pop order
	Path     []maze.Cell // start → Current
}

// Result summarizes a finished search.
//   - Path: start → goal, nil unless State == Succeeded.
//   - Steps: moves along Path, so len(Path) == Steps+1.
//   - Iterations: transitions performed.
//   - Explored: size of the explored set.
//   - FrontierPeak: largest frontier seen.
//   - Message: the status text, see String.
type Result struct {
	State        State
	Path         []maze.Cell
	Steps        int
	Iterations   int
	Explored     int
	FrontierPeak int
	Message      string
}

// String returns "Found path of length N", N being the number of cells on
// the path, or "Path not found".
func (r Result) String() string {
	if r.State == Succeeded {
		return fmt.Sprintf("Found path of length %d", len(r.Path))
	}
	return "Path not found"
}

// Option configures a search via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation
// by the constructor.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per step.
	Ctx context.Context

	// Ceiling is the frontier size at which the search fails.
	Ceiling int

	// OnStep receives the snapshot after every expansion, including a
	// failing one. A non-nil error aborts Run.
	OnStep func(Snapshot) error

	// Yield is called after OnStep to let other goroutines run.
	Yield func()

	// Logger receives per-step Debug lines and the outcome at Info.
	Logger logrus.FieldLogger

	hasOnStep bool
	err       error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Ceiling = DefaultCeiling
//   - no-op OnStep
//   - runtime.Gosched as Yield
//   - a logger that discards output.
func DefaultOptions() Options {
	silent := logrus.New()
	silent.SetOutput(io.Discard)
	return Options{
		Ctx:     context.Background(),
		Ceiling: DefaultCeiling,
		OnStep:  func(Snapshot) error { return nil },
		Yield:   runtime.Gosched,
		Logger:  silent,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithCeiling sets the frontier size limit.
//
//	n > 0: fail once the frontier holds n nodes
//	n <= 0: invalid option → ErrOptionViolation
func WithCeiling(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Ceiling must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Ceiling = n
	}
}

// WithOnStep registers the per-step observer.
func WithOnStep(fn func(Snapshot) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
			o.hasOnStep = true
		}
	}
}

// WithYield replaces runtime.Gosched as the between-steps yield.
func WithYield(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.Yield = fn
		}
	}
}

// WithLogger sets the logger used for progress and outcome lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
