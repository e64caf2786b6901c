package calculation

import "sort"

type CurvePoint struct {
	X Number `json:"x"`
	Y Number `json:"y"`
}

// Curve is a piecewise-linear scaling curve. Points may be stored in any order.
type Curve []CurvePoint

type knot struct {
	in, out float64
}

// Interpolate returns the curve value at x. Outside the curve domain the first or
// last segment is extended linearly. An empty curve yields 0 and a single point
// yields its y.
func Interpolate(x float64, curve Curve) float64 {
	return lookup(x, knots(curve, false))
}

// ReverseInterpolate returns the x at which the curve reaches y, with the same
// rules as Interpolate and the axes swapped.
func ReverseInterpolate(y float64, curve Curve) float64 {
	return lookup(y, knots(curve, true))
}

// knots sorts the points by the query axis. Of several points sharing a query
// value only the first stored one is kept, so every segment has a defined slope.
func knots(curve Curve, reverse bool) []knot {
	ks := make([]knot, 0, len(curve))
	for _, p := range curve {
		k := knot{in: p.X.Float(), out: p.Y.Float()}
		if reverse {
			k.in, k.out = k.out, k.in
		}
		ks = append(ks, k)
	}

	sort.SliceStable(ks, func(i, j int) bool { return ks[i].in < ks[j].in })

	uniq := ks[:0]
	for _, k := range ks {
		if len(uniq) > 0 && uniq[len(uniq)-1].in == k.in {
			continue
		}
		uniq = append(uniq, k)
	}
	return uniq
}

func lookup(v float64, ks []knot) float64 {
	switch len(ks) {
	case 0:
		return 0
	case 1:
		return ks[0].out
	}

	first, last := ks[0], ks[len(ks)-1]
	if v <= first.in {
		return extend(v, first, ks[1], first)
	}
	if v >= last.in {
		return extend(v, ks[len(ks)-2], last, last)
	}

	for i := 1; i < len(ks); i++ {
		right := ks[i]
		if v == right.in {
			return right.out
		}
		if v < right.in {
			left := ks[i-1]
			if right.in == left.in {
				return left.out
			}
			t := (v - left.in) / (right.in - left.in)
			return left.out + t*(right.out-left.out)
		}
	}
	return last.out
}

// extend projects v from origin along the line through a and b.
func extend(v float64, a, b, origin knot) float64 {
	if b.in == a.in {
		return origin.out
	}
	slope := (b.out - a.out) / (b.in - a.in)
	return origin.out + slope*(v-origin.in)
}
