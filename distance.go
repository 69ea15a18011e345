package qtree

import (
	"math"
	"math/bits"
)

type kind uint8

const (
	signedKind kind = iota
	unsignedKind
	floatKind
)

func kindOf[C Coordinate]() kind {
	var zero C
	half := 0.5
	switch {
	case C(half) != zero:
		return floatKind
	case zero-1 > zero:
		return unsignedKind
	}
	return signedKind
}

// span is the distance between two coordinates on one axis. Integer kinds
// keep it in n, which holds any difference of two 64-bit values exactly;
// float kinds keep it in f. The other field stays zero.
type span struct {
	n uint64
	f float64
}

func spanOf[C Coordinate](a, b C) span {
	switch kindOf[C]() {
	case floatKind:
		return span{f: math.Abs(float64(a) - float64(b))}
	case unsignedKind:
		if a > b {
			return span{n: uint64(a - b)}
		}
		return span{n: uint64(b - a)}
	}
	x, y := int64(a), int64(b)
	if x > y {
		return span{n: uint64(x) - uint64(y)}
	}
	return span{n: uint64(y) - uint64(x)}
}

func (s span) float() float64 {
	return s.f + float64(s.n)
}

// beyond returns how far s exceeds limit, or zero if it does not.
func (s span) beyond(limit span) span {
	var d span
	if s.n > limit.n {
		d.n = s.n - limit.n
	}
	if s.f > limit.f {
		d.f = s.f - limit.f
	}
	return d
}

func widest(a, b span) span {
	return span{n: max(a.n, b.n), f: max(a.f, b.f)}
}

// area is a squared distance. Integer kinds square into 128 bits so small
// coordinate types cannot wrap.
type area struct {
	hi, lo uint64
	f      float64
}

func (s span) squared() area {
	hi, lo := bits.Mul64(s.n, s.n)
	return area{hi: hi, lo: lo, f: s.f * s.f}
}

// plus saturates on overflow. A saturated sum is larger than the square of
// any span, so it never compares as within reach.
func (a area) plus(b area) area {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	hi, carry := bits.Add64(a.hi, b.hi, carry)
	if carry != 0 {
		hi, lo = math.MaxUint64, math.MaxUint64
	}
	return area{hi: hi, lo: lo, f: a.f + b.f}
}

func (a area) less(b area) bool {
	if a.hi != b.hi {
		return a.hi < b.hi
	}
	if a.lo != b.lo {
		return a.lo < b.lo
	}
	return a.f < b.f
}

func (a area) atMost(b area) bool {
	if a.hi != b.hi {
		return a.hi < b.hi
	}
	if a.lo != b.lo {
		return a.lo < b.lo
	}
	return a.f <= b.f
}

func squaredDistance[C Coordinate](x0, y0, x1, y1 C) area {
	return spanOf(x0, x1).squared().plus(spanOf(y0, y1).squared())
}

// reach is the squared radius; a negative radius reaches as far as its
// absolute value.
func reach[C Coordinate](radius C) area {
	var zero C
	return spanOf(radius, zero).squared()
}
