package qtree

import "fmt"

// Rect is an axis-aligned rectangle given by two opposite corners. Each
// axis may run in either direction: Left may be greater than Right and Top
// greater than Bottom.
type Rect[C Coordinate] struct {
	Left   C
	Top    C
	Right  C
	Bottom C
}

func (r Rect[C]) String() string {
	return fmt.Sprintf("[%v,%v %v,%v]", r.Left, r.Top, r.Right, r.Bottom)
}

// between is a half-open interval test that works for both orientations.
func between[C Coordinate](a, b, v C) bool {
	if a <= b {
		return a <= v && v < b
	}
	return a >= v && v > b
}

// Contains reports whether (x, y) lies inside r. The Left and Top edges are
// inclusive, the Right and Bottom edges exclusive.
func (r Rect[C]) Contains(x, y C) bool {
	return between(r.Left, r.Right, x) && between(r.Top, r.Bottom, y)
}

func (r Rect[C]) center() (C, C) {
	return midpoint(r.Left, r.Right), midpoint(r.Top, r.Bottom)
}

// quadrant returns the index and rectangle of the quadrant of r that holds
// (x, y). The caller must have checked that r contains the point.
func (r Rect[C]) quadrant(x, y C) (int, Rect[C]) {
	mx, my := r.center()
	quads := [3]Rect[C]{
		{r.Left, r.Top, mx, my},
		{mx, r.Top, r.Right, my},
		{mx, my, r.Right, r.Bottom},
	}
	for i, q := range quads {
		if q.Contains(x, y) {
			return i, q
		}
	}
	return 3, Rect[C]{r.Left, my, mx, r.Bottom}
}

// degenerate reports whether r has collapsed to zero width or height at
// the coordinate precision described by t.
func (r Rect[C]) degenerate(t tolerance) bool {
	return nearlyEqual(t, r.Left, r.Right) || nearlyEqual(t, r.Top, r.Bottom)
}

// intersectsCircle clamps the offset of (x, y) from the centre of r to the
// half extents of r and compares the remaining distance with the radius.
func (r Rect[C]) intersectsCircle(x, y, radius C) bool {
	cx, cy := r.center()
	hx := widest(spanOf(r.Left, cx), spanOf(r.Right, cx))
	hy := widest(spanOf(r.Top, cy), spanOf(r.Bottom, cy))
	ux := spanOf(x, cx).beyond(hx)
	uy := spanOf(y, cy).beyond(hy)
	return ux.squared().plus(uy.squared()).atMost(reach(radius))
}
