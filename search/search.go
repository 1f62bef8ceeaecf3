package search

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazewalk/maze"
)

// Searcher encapsulates mutable search state. It is not safe for
// concurrent use.
type Searcher struct {
	grid  *maze.Grid
	start maze.Cell
	goal  maze.Cell
	opts  Options
	log   logrus.FieldLogger

	nodes    []Node
	frontier frontierPolicy
	explored map[maze.Point]struct{}
	order    []maze.Cell
	walls    []maze.Cell
	open     []maze.Cell

	state   State
	steps   int
	current int
	peak    int
	goalIdx int
}

// NewBreadthFirst prepares a breadth-first search from start to goal.
// Start and goal are not validated against the grid: an out-of-bounds or
// walled goal simply never matches.
// Returns ErrGridNil for a nil grid or ErrOptionViolation for bad options.
func NewBreadthFirst(g *maze.Grid, start, goal maze.Cell, opts ...Option) (*Searcher, error) {
	return newSearcher(g, start, goal, "breadth-first", func(s *Searcher) frontierPolicy { return newFIFO(s.node) }, opts)
}

// NewAStar prepares an ordered search from start to goal. Nodes are
// expanded lowest Cost + Heuristic first, ties broken by lower Heuristic.
// The heuristic of a new node is the Manhattan distance from the node being
// expanded, not from the new node itself, and explored cells are never
// reopened, so the returned path is not guaranteed to be shortest.
func NewAStar(g *maze.Grid, start, goal maze.Cell, opts ...Option) (*Searcher, error) {
	return newSearcher(g, start, goal, "ordered", func(s *Searcher) frontierPolicy { return newOrdered(s.node) }, opts)
}

// BreadthFirst runs NewBreadthFirst to completion.
func BreadthFirst(g *maze.Grid, start, goal maze.Cell, opts ...Option) (Result, error) {
	s, err := NewBreadthFirst(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run()
}

// AStar runs NewAStar to completion.
func AStar(g *maze.Grid, start, goal maze.Cell, opts ...Option) (Result, error) {
	s, err := NewAStar(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}
	return s.Run()
}

func newSearcher(g *maze.Grid, start, goal maze.Cell, policy string, frontier func(*Searcher) frontierPolicy, opts []Option) (*Searcher, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s := &Searcher{
		grid:     g,
		start:    start,
		goal:     goal,
		opts:     o,
		log:      o.Logger.WithField("policy", policy),
		explored: make(map[maze.Point]struct{}),
		walls:    g.Walls(),
		open:     g.Open(),
		state:    Running,
		current:  0,
		goalIdx:  -1,
	}
	s.frontier = frontier(s)

	// Seed the frontier with the root.
	s.nodes = append(s.nodes, Node{Cell: start, Parent: -1, Heuristic: maze.Manhattan(start, goal)})
	s.frontier.Push(0)
	s.peak = 1

	return s, nil
}

// node is the arena accessor handed to frontiers.
func (s *Searcher) node(idx int) Node {
	return s.nodes[idx]
}

// State reports the current lifecycle state.
func (s *Searcher) State() State {
	return s.state
}

// Step performs one transition and returns the resulting snapshot.
// After termination it returns the terminal snapshot with ErrFinished.
// A cancelled context is returned as-is and leaves the state unchanged.
func (s *Searcher) Step() (Snapshot, error) {
	if err := s.advance(); err != nil {
		return s.Snapshot(), err
	}
	return s.Snapshot(), nil
}

// advance performs one transition without building a snapshot.
func (s *Searcher) advance() error {
	if s.state != Running {
		return ErrFinished
	}
	select {
	case <-s.opts.Ctx.Done():
		return s.opts.Ctx.Err()
	default:
	}

	s.steps++
	idx := s.frontier.Pop()
	s.current = idx
	cur := s.nodes[idx]

	if cur.Cell.Same(s.goal) {
		s.state = Succeeded
		s.goalIdx = idx
		return nil
	}

	s.explored[cur.Cell.Point()] = struct{}{}
	s.order = append(s.order, cur.Cell)
	s.expand(idx, cur)

	n := s.frontier.Len()
	if n > s.peak {
		s.peak = n
	}
	if n == 0 || n >= s.opts.Ceiling {
		s.state = Failed
	}
	s.log.WithFields(logrus.Fields{
		"step":     s.steps,
		"x":        cur.Cell.X,
		"y":        cur.Cell.Y,
		"frontier": n,
		"explored": len(s.order),
	}).Debug("expanded")
	return nil
}

// expand pushes every successor not yet explored or waiting.
func (s *Searcher) expand(idx int, cur Node) {
	h := maze.Manhattan(cur.Cell, s.goal)
	for _, next := range s.grid.Successors(cur.Cell) {
		p := next.Point()
		if _, seen := s.explored[p]; seen || s.frontier.Contains(p) {
			continue
		}
		s.nodes = append(s.nodes, Node{
			Cell:      next,
			Parent:    idx,
			Cost:      cur.Cost + 1,
			Heuristic: h,
		})
		s.frontier.Push(len(s.nodes) - 1)
	}
}

// Snapshot returns the observable state as of the last step.
func (s *Searcher) Snapshot() Snapshot {
	idxs := s.frontier.Indices()
	frontier := make([]maze.Cell, len(idxs))
	for i, idx := range idxs {
		frontier[i] = s.nodes[idx].Cell
	}
	return Snapshot{
		Step:     s.steps,
		State:    s.state,
		Current:  s.nodes[s.current].Cell,
		Walls:    s.walls,
		Open:     s.open,
		Explored: s.order[:len(s.order):len(s.order)],
		Frontier: frontier,
		Path:     s.pathTo(s.current),
	}
}

// Run steps until the search terminates. After every expansion, including
// the one that fails the search, it calls OnStep and then Yield. Dequeuing
// the goal expands nothing and is not reported. An OnStep error aborts with
// ErrStepHook; a cancelled context aborts with ctx.Err().
func (s *Searcher) Run() (Result, error) {
	for s.state == Running {
		if err := s.advance(); err != nil {
			return s.Result(), err
		}
		if s.state == Succeeded {
			break
		}
		if s.opts.hasOnStep {
			if err := s.opts.OnStep(s.Snapshot()); err != nil {
				return s.Result(), fmt.Errorf("%w at step %d: %v", ErrStepHook, s.steps, err)
			}
		}
		s.opts.Yield()
	}

	res := s.Result()
	s.log.WithFields(logrus.Fields{
		"state":      res.State,
		"steps":      res.Steps,
		"iterations": res.Iterations,
		"explored":   res.Explored,
		"peak":       res.FrontierPeak,
	}).Info(res.Message)
	return res, nil
}

// Result summarizes the search so far.
func (s *Searcher) Result() Result {
	r := Result{
		State:        s.state,
		Iterations:   s.steps,
		Explored:     len(s.order),
		FrontierPeak: s.peak,
	}
	if s.state == Succeeded {
		r.Path = s.pathTo(s.goalIdx)
		r.Steps = s.nodes[s.goalIdx].Cost
	}
	r.Message = r.String()
	return r
}

// pathTo follows parents from idx to the root and returns start → idx.
func (s *Searcher) pathTo(idx int) []maze.Cell {
	var path []maze.Cell
	for cur := idx; cur != -1; cur = s.nodes[cur].Parent {
		path = append(path, s.nodes[cur].Cell)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
