package maze

import (
	"container/list"
)

// Components finds all 4-connected regions of open cells.
// Components are ordered by their first cell in row-major order;
// cells within a component are in breadth-first discovery order.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Cell {
	seen := make([]bool, len(g.cells))
	var comps [][]Cell

	for i0, c0 := range g.cells {
		if c0.Wall || seen[i0] {
			continue
		}
		queue := []Cell{c0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for _, n := range g.Successors(queue[qi]) {
				ni := g.index(n.X, n.Y)
				if !seen[ni] {
					seen[ni] = true
					queue = append(queue, n)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Distances returns the unweighted step distance from `from` to every open
// cell reachable from it, keyed by coordinate. `from` maps to 0.
// An out-of-bounds or wall `from` yields an empty map.
//
// Time:   O(W·H).
// Memory: O(W·H).
func (g *Grid) Distances(from Cell) map[Point]int {
	dist := make(map[Point]int)
	src, ok := g.Node(from.X, from.Y)
	if !ok || src.Wall {
		return dist
	}
	dist[src.Point()] = 0
	queue := []Cell{src}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, n := range g.Successors(u) {
			if _, done := dist[n.Point()]; done {
				continue
			}
			dist[n.Point()] = dist[u.Point()] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Breach finds a route from a to b that knocks through as few walls as
// possible. Entering an open cell costs 0, entering a wall costs 1.
// Returns the route (inclusive of a and b) and the walls it crosses.
// Returns ErrOutOfBounds if either endpoint is outside the grid.
//
// Behavior:
//  1. 0–1 BFS from a: open moves go to the deque front, wall moves to the back.
//  2. Stop when b is popped.
//  3. Reconstruct via predecessor indices.
//
// Complexity: O(W·H) time and memory.
func (g *Grid) Breach(a, b Cell) (route []Cell, walls []Cell, err error) {
	if !g.InBounds(a.X, a.Y) || !g.InBounds(b.X, b.Y) {
		return nil, nil, ErrOutOfBounds
	}
	n := len(g.cells)
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.index(a.X, a.Y), g.index(b.X, b.Y)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		u := e.Value.(int)
		if u == dst {
			break
		}
		ux, uy := u%g.Width, u/g.Width
		for _, d := range successorOffsets {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			w := 0
			if g.cells[v].Wall {
				w = 1
			}
			if dist[u]+w < dist[v] {
				dist[v] = dist[u] + w
				prev[v] = u
				if w == 0 {
					dq.PushFront(v)
				} else {
					dq.PushBack(v)
				}
			}
		}
	}

	for cur := dst; cur != -1; cur = prev[cur] {
		route = append(route, g.cells[cur])
		if g.cells[cur].Wall {
			walls = append(walls, g.cells[cur])
		}
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	for i, j := 0, len(walls)-1; i < j; i, j = i+1, j-1 {
		walls[i], walls[j] = walls[j], walls[i]
	}
	return route, walls, nil
}
