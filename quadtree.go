/*
Package qtree implements a point quadtree over a fixed rectangle.

Each stored point occupies one leaf. A quadrant is only subdivided when a
second point lands in it, so the tree is deep only where points cluster.
Queries find every point within a radius of a location, or the nearest one.

A Tree is not safe for concurrent use. Wrap it in a SyncTree to allow one
writer or many readers at a time.
*/
package qtree

import "time"

// Tree is a point quadtree with coordinates of type C and payloads of
// type V. Use New to create one; a Tree must not be copied.
type Tree[C Coordinate, V any] struct {
	noCopy noCopy

	root *region[C, V]
	tol  tolerance
	opts options
	// timed is false while the no-op collector is installed.
	timed bool
}

// New creates an empty tree covering the rectangle with corners (x0, y0)
// and (x1, y1). The corners may be given in any order per axis; the edges
// at x0 and y0 are inclusive and the edges at x1 and y1 exclusive.
func New[C Coordinate, V any](x0, y0, x1, y1 C, opts ...Option) *Tree[C, V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	_, noop := o.metrics.(NoopMetricsCollector)
	return &Tree[C, V]{
		root:  newRegion[C, V](Rect[C]{Left: x0, Top: y0, Right: x1, Bottom: y1}),
		tol:   toleranceFor[C](),
		opts:  o,
		timed: !noop,
	}
}

// Bounds returns the rectangle the tree was created with.
func (t *Tree[C, V]) Bounds() Rect[C] {
	return t.root.rect
}

// Len returns the number of stored points.
func (t *Tree[C, V]) Len() int {
	return t.root.count
}

// Insert stores value at (x, y). It returns a *PointError wrapping
// ErrOutOfBounds, ErrDuplicatePoint or ErrDegenerateSubdivision if the
// point cannot be stored, in which case the tree is unchanged.
func (t *Tree[C, V]) Insert(x, y C, value V) error {
	start := t.now()
	err := t.root.insert(t.tol, &Point[C, V]{x: x, y: y, value: value})
	if err != nil {
		err = &PointError[C]{X: x, Y: y, Err: err}
	}
	if t.timed {
		t.opts.metrics.RecordInsert(time.Since(start), err)
	}
	if t.opts.logger.debugEnabled() {
		t.opts.logger.LogInsert(x, y, t.root.count, err)
	}
	return err
}

// SearchFunc calls fn for each stored point whose distance to (x, y) is at
// most radius, until fn returns false. Points are visited in tree order,
// not by distance.
func (t *Tree[C, V]) SearchFunc(x, y, radius C, fn func(p *Point[C, V]) bool) {
	t.root.search(x, y, radius, fn)
}

// Search returns the stored points whose distance to (x, y) is at most
// radius, and whether there were any. The order of the result is
// unspecified.
func (t *Tree[C, V]) Search(x, y, radius C) ([]*Point[C, V], bool) {
	start := t.now()
	var result []*Point[C, V]
	t.root.search(x, y, radius, func(p *Point[C, V]) bool {
		result = append(result, p)
		return true
	})
	if t.timed {
		t.opts.metrics.RecordSearch(len(result), time.Since(start))
	}
	if t.opts.logger.debugEnabled() {
		t.opts.logger.LogSearch(x, y, radius, len(result))
	}
	return result, len(result) > 0
}

// FindNearest returns the stored point closest to (x, y) among those within
// radius. Points further away are never considered, so ok is false when
// nothing lies within radius even if the tree is not empty. Ties go to the
// point visited first.
func (t *Tree[C, V]) FindNearest(x, y, radius C) (nearest *Point[C, V], ok bool) {
	start := t.now()
	var best area
	t.root.search(x, y, radius, func(p *Point[C, V]) bool {
		d := squaredDistance(p.x, p.y, x, y)
		if nearest == nil || d.less(best) {
			nearest, best = p, d
		}
		return true
	})
	ok = nearest != nil
	if t.timed {
		t.opts.metrics.RecordNearest(ok, time.Since(start))
	}
	if t.opts.logger.debugEnabled() {
		t.opts.logger.LogNearest(x, y, radius, ok)
	}
	return nearest, ok
}

func (t *Tree[C, V]) now() time.Time {
	if !t.timed {
		return time.Time{}
	}
	return time.Now()
}

// noCopy may be embedded into structs which must not be copied after first
// use. See https://golang.org/issues/8005#issuecomment-190753527.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
