package qtree

import "fmt"

// Point is a stored point and its payload. Points are created by
// Tree.Insert and never change afterwards; query results are pointers to
// the points held by the tree.
type Point[C Coordinate, V any] struct {
	x     C
	y     C
	value V
}

func (p *Point[C, V]) X() C { return p.x }

func (p *Point[C, V]) Y() C { return p.y }

// Value returns the payload given to Insert.
func (p *Point[C, V]) Value() V { return p.value }

func (p *Point[C, V]) String() string {
	return fmt.Sprintf("[%v,%v]", p.x, p.y)
}

func (p *Point[C, V]) within(x, y, radius C) bool {
	return squaredDistance(p.x, p.y, x, y).atMost(reach(radius))
}

func (*Point[C, V]) isNode() {}
