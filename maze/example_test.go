package maze_test

import (
	"fmt"

	"github.com/katalvlaran/mazewalk/maze"
)

// ExampleGrid_Successors shows the fixed neighbor order around an open cell.
func ExampleGrid_Successors() {
	g := maze.MustParse([]string{
		"#.#",
		"...",
		"###",
	})
	c, _ := g.Node(1, 1)
	for _, n := range g.Successors(c) {
		fmt.Printf("(%d,%d)\n", n.X, n.Y)
	}
	// Output:
	// (1,0)
	// (0,1)
	// (2,1)
}

// ExampleGrid_Node shows that lookups outside the grid are absent, not errors.
func ExampleGrid_Node() {
	g := maze.MustParse([]string{"..", ".."})
	_, inside := g.Node(1, 1)
	_, outside := g.Node(2, 0)
	fmt.Println(inside, outside)
	// Output: true false
}
