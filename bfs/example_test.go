package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/gridres/bfs"
)

// ExampleBFS_shortestPath finds the fewest-hop route on a small ring with a chord.
func ExampleBFS_shortestPath() {
	// 0-1-2-3-4-5-0 ring plus chord 0-3 (edge 6)
	g := newArcList(6,
		[2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 0},
		[2]int{0, 3},
	)
	res, err := bfs.BFS(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(4)
	fmt.Println(path)

	// Take the chord out of service.
	res, _ = bfs.BFS(g, 0, bfs.WithoutEdges(map[int]struct{}{6: {}}))
	path, _ = res.PathTo(3)
	fmt.Println(path)
	// Output:
	// [0 5 4]
	// [0 1 2 3]
}
