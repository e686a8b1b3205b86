package render_test

import (
	"os"

	"github.com/katalvlaran/spath/core"
	"github.com/katalvlaran/spath/render"
)

// ExampleText prints a small graph with its shortest route starred,
// using the 1-based labels a user would type.
func ExampleText() {
	adj, _ := core.Build([]core.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 0, V: 2, Weight: 1},
		{U: 2, V: 1, Weight: 2},
	}, 3)
	scene := render.NewScene(adj, []int{0, 2, 1}, "Shortest Path from 1 to 2")

	_ = render.Text(os.Stdout, scene, render.WithOneBased())
	// Output:
	// Shortest Path from 1 to 2
	// vertices: 3, edges: 3
	//   1 -- 2 (4)
	//   1 -- 3 (1) *
	//   3 -- 2 (2) *
	// path: 1 -> 3 -> 2
}
