package qtree_test

import (
	"errors"
	"fmt"

	"github.com/robert-butts/qtree"
)

func Example() {
	tree := qtree.New[float64, int](0, 0, 100, 100)

	for _, p := range []struct {
		x, y float64
		v    int
	}{{10, 10, 1}, {90, 90, 2}, {12, 12, 3}, {10, 10, 99}, {150, 50, 4}} {
		if err := tree.Insert(p.x, p.y, p.v); err != nil {
			fmt.Println(err)
		}
	}

	points, _ := tree.Search(10, 10, 5)
	for _, p := range points {
		fmt.Println(p, p.Value())
	}

	if p, ok := tree.FindNearest(10, 10, 5); ok {
		fmt.Println("nearest", p, p.Value())
	}
	// Output:
	// insert [10,10]: duplicate point
	// insert [150,50]: point out of bounds
	// [10,10] 1
	// [12,12] 3
	// nearest [10,10] 1
}

func ExampleTree_FindNearest() {
	tree := qtree.New[int, string](0, 0, 1000, 1000)
	_ = tree.Insert(20, 20, "depot")

	if _, ok := tree.FindNearest(10, 10, 14); !ok {
		fmt.Println("nothing within 14")
	}
	if p, ok := tree.FindNearest(10, 10, 15); ok {
		fmt.Println(p.Value(), "within 15")
	}
	// Output:
	// nothing within 14
	// depot within 15
}

func ExamplePointError() {
	tree := qtree.New[float64, struct{}](0, 0, 1, 1)
	err := tree.Insert(2, 2, struct{}{})

	var pe *qtree.PointError[float64]
	if errors.As(err, &pe) && errors.Is(err, qtree.ErrOutOfBounds) {
		fmt.Println("rejected", pe.X, pe.Y)
	}
	// Output:
	// rejected 2 2
}
