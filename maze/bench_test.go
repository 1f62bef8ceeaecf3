package maze_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/mazewalk/maze"
)

func openRows(w, h int) []string {
	rows := make([]string, h)
	for y := range rows {
		rows[y] = strings.Repeat(".", w)
	}
	return rows
}

// BenchmarkParse measures parsing a 500×500 open maze.
func BenchmarkParse(b *testing.B) {
	rows := openRows(500, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = maze.Parse(rows)
	}
}

// BenchmarkDistances measures the BFS oracle on a 300×300 open maze.
func BenchmarkDistances(b *testing.B) {
	g := maze.MustParse(openRows(300, 300))
	start, _ := g.Node(0, 0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Distances(start)
	}
}
