package qtree

// node is either a *Point (leaf) or a *region (internal node).
type node interface {
	isNode()
}

// region is an internal node. Each child slot is empty, a leaf or another
// region, and is owned by this region alone. count is the number of points
// stored below the region and only ever grows.
type region[C Coordinate, V any] struct {
	rect     Rect[C]
	children [4]node
	count    int
}

func newRegion[C Coordinate, V any](rect Rect[C]) *region[C, V] {
	return &region[C, V]{rect: rect}
}

func (*region[C, V]) isNode() {}

// insert places p below r. On error r and every node below it are left
// exactly as they were.
func (r *region[C, V]) insert(t tolerance, p *Point[C, V]) error {
	if !r.rect.Contains(p.x, p.y) {
		return ErrOutOfBounds
	}
	index, sub := r.rect.quadrant(p.x, p.y)
	if sub.degenerate(t) {
		return ErrDegenerateSubdivision
	}
	switch child := r.children[index].(type) {
	case nil:
		r.children[index] = p
	case *region[C, V]:
		if err := child.insert(t, p); err != nil {
			return err
		}
	case *Point[C, V]:
		if nearlyEqual(t, child.x, p.x) && nearlyEqual(t, child.y, p.y) {
			return ErrDuplicatePoint
		}
		// split; the candidate is dropped unless both points fit
		split := newRegion[C, V](sub)
		if err := split.insert(t, child); err != nil {
			return err
		}
		if err := split.insert(t, p); err != nil {
			return err
		}
		r.children[index] = split
	}
	r.count++
	return nil
}

// search calls fn for every leaf below r within radius of (x, y), in child
// order. It returns false once fn has asked to stop.
func (r *region[C, V]) search(x, y, radius C, fn func(*Point[C, V]) bool) bool {
	if r.count == 0 || !r.rect.intersectsCircle(x, y, radius) {
		return true
	}
	for _, c := range r.children {
		switch child := c.(type) {
		case *Point[C, V]:
			if child.within(x, y, radius) && !fn(child) {
				return false
			}
		case *region[C, V]:
			if !child.search(x, y, radius, fn) {
				return false
			}
		}
	}
	return true
}
