package cover_test

import (
	"fmt"

	"github.com/matzehuels/pathcover/pkg/cover"
)

func ExampleCompute() {
	// Diamond: 1 → {2, 3} → 4
	c, err := cover.Compute(4, []cover.Edge{
		{From: 1, To: 2},
		{From: 1, To: 3},
		{From: 2, To: 4},
		{From: 3, To: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("Paths:", c.Count())
	for _, p := range c.Paths {
		fmt.Println(p)
	}
	// Output:
	// Paths: 2
	// [1 2 4]
	// [3]
}

func ExampleCompute_cycle() {
	_, err := cover.Compute(2, []cover.Edge{{From: 1, To: 2}, {From: 2, To: 1}})
	fmt.Println(err)
	// Output:
	// reconstruct: vertex 1 unreachable from any path start: input graph contains a cycle
}
