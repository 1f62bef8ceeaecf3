// Package mazewalk animates path search through grid mazes.
//
// What:
//
//   - maze:   rectangular text mazes, lookup, successors, region and distance analysis.
//   - search: stepwise breadth-first and ordered (A*-like) search with snapshots.
//   - render: gg canvas, ASCII frames, PNG frame recording and the status sink.
//
// The cmd/mazewalk binary wires them together, configured from the
// environment (see internal/config).
//
// Quick start:
//
//	g := maze.Default()
//	start, _ := g.Node(1, 1)
//	goal, _ := g.LastOpen()
//	res, _ := search.AStar(g, start, goal)
//	fmt.Println(res) // Found path of length N
package mazewalk
