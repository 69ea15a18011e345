package qtree

import "math"

// Coordinate is the set of numeric types a tree can index.
type Coordinate interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// tolerance holds the machine epsilon and smallest normal value of a
// coordinate kind. Both are zero for integer kinds, which makes
// nearlyEqual an exact comparison.
type tolerance struct {
	epsilon  float64
	smallest float64
}

func toleranceFor[C Coordinate]() tolerance {
	eps64 := 0x1p-52
	if kindOf[C]() != floatKind {
		return tolerance{}
	}
	if C(1)+C(eps64) != C(1) {
		return tolerance{epsilon: eps64, smallest: 0x1p-1022}
	}
	return tolerance{epsilon: 0x1p-23, smallest: 0x1p-126}
}

// nearlyEqual reports whether a and b are equal within the combined
// absolute and relative tolerance of the coordinate kind.
//
// The 1-epsilon bound is not an absolute tolerance; it only rejects
// differences of one or more. Duplicate detection depends on this exact
// formula near precision limits.
func nearlyEqual[C Coordinate](t tolerance, a, b C) bool {
	if a == b {
		return true
	}
	d := spanOf(a, b).float()
	return d < 1-t.epsilon &&
		(d < t.epsilon*math.Abs(float64(a)+float64(b)) || d < t.smallest)
}

// midpoint bisects [a, b] in either orientation. No intermediate value
// leaves the range of C, so bounds may span the whole coordinate type.
func midpoint[C Coordinate](a, b C) C {
	switch kindOf[C]() {
	case floatKind:
		return a/2 + b/2
	case unsignedKind:
		if a <= b {
			return a + (b-a)/2
		}
		return b + (a-b)/2
	}
	x, y := int64(a), int64(b)
	return C(x/2 + y/2 + (x%2+y%2)/2)
}
