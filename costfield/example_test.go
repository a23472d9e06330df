package costfield_test

import (
	"fmt"

	"github.com/katalvlaran/gdt/costfield"
	"github.com/katalvlaran/gdt/dt"
)

// ExampleFromMask computes squared distances to the marked cells of a mask.
func ExampleFromMask() {
	mask := [][]int{
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1},
	}
	g, _ := costfield.FromMask(mask, costfield.DefaultOptions())
	out, _, _ := dt.DistanceTransform(g)
	fmt.Print(out)
	// Output:
	// [0, 1, 4, 4]
	// [1, 2, 2, 1]
	// [4, 4, 1, 0]
}
