package search_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/search"
)

// ExampleBreadthFirst finds the shortest route through a small maze.
func ExampleBreadthFirst() {
	g := maze.MustParse([]string{
		"#######",
		"#   # #",
		"# # # #",
		"# #   #",
		"#######",
	})
	start, _ := g.Node(1, 1)
	goal, _ := g.Node(5, 1)

	res, err := search.BreadthFirst(g, start, goal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res)
	for _, c := range res.Path {
		fmt.Printf("(%d,%d) ", c.X, c.Y)
	}
	fmt.Println()
	// Output:
	// Found path of length 9
	// (1,1) (2,1) (3,1) (3,2) (3,3) (4,3) (5,3) (5,2) (5,1)
}

// ExampleSearcher_Step drives a search by hand and prints each frontier.
func ExampleSearcher_Step() {
	g := maze.MustParse([]string{
		"....",
	})
	start, _ := g.Node(0, 0)
	goal, _ := g.Node(3, 0)

	s, _ := search.NewAStar(g, start, goal)
	for s.State() == search.Running {
		snap, _ := s.Step()
		fmt.Println(snap.Step, snap.State, len(snap.Explored), len(snap.Frontier))
	}
	fmt.Println(s.Result())
	// Output:
	// 1 running 1 1
	// 2 running 2 1
	// 3 running 3 1
	// 4 succeeded 3 0
	// Found path of length 4
}
