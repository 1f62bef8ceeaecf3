package search

import (
	"github.com/katalvlaran/mazewalk/maze"
)

// frontierPolicy holds arena indices of nodes awaiting expansion.
type frontierPolicy interface {
	// Push adds a node according to the frontier's policy.
	Push(idx int)
	// Pop removes and returns the next node. Panics if empty.
	Pop() int
	// Len is the number of waiting nodes.
	Len() int
	// Contains reports whether a node at p is waiting.
	Contains(p maze.Point) bool
	// Indices lists waiting nodes in pop order. The slice is a copy.
	Indices() []int
}

// queue is the storage shared by both policies.
type queue struct {
	items  []int
	member map[maze.Point]struct{}
	node   func(int) Node
}

func newQueue(node func(int) Node) queue {
	return queue{member: make(map[maze.Point]struct{}), node: node}
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Contains(p maze.Point) bool {
	_, ok := q.member[p]
	return ok
}

func (q *queue) Indices() []int {
	out := make([]int, len(q.items))
	copy(out, q.items)
	return out
}

func (q *queue) Pop() int {
	idx := q.items[0]
	q.items = q.items[1:]
	delete(q.member, q.node(idx).Cell.Point())
	return idx
}

// fifoFrontier pops in insertion order (breadth-first).
type fifoFrontier struct {
	queue
}

func newFIFO(node func(int) Node) *fifoFrontier {
	return &fifoFrontier{queue: newQueue(node)}
}

func (f *fifoFrontier) Push(idx int) {
	f.items = append(f.items, idx)
	f.member[f.node(idx).Cell.Point()] = struct{}{}
}

// orderedFrontier keeps nodes sorted by Priority, ties by Heuristic.
// Equal keys keep insertion order.
type orderedFrontier struct {
	queue
}

func newOrdered(node func(int) Node) *orderedFrontier {
	return &orderedFrontier{queue: newQueue(node)}
}

// Push splices idx before the first node it strictly improves on,
// or appends it.
func (f *orderedFrontier) Push(idx int) {
	n := f.node(idx)
	at := len(f.items)
	for i, other := range f.items {
		if improves(n, f.node(other)) {
			at = i
			break
		}
	}
	f.items = append(f.items, 0)
	copy(f.items[at+1:], f.items[at:])
	f.items[at] = idx
	f.member[n.Cell.Point()] = struct{}{}
}

// improves reports whether a should be expanded before b.
func improves(a, b Node) bool {
	if a.Priority() != b.Priority() {
		return a.Priority() < b.Priority()
	}
	return a.Heuristic < b.Heuristic
}
