package interp

import "github.com/ivlev/svg2pptx/internal/model"

const (
	bezierIterations = 50
	bezierTolerance  = 1e-6
)

// CubicBezier evaluates the unit cubic Bézier easing curve with
// endpoints (0,0) and (1,1) and control points from spline. The input t
// is the curve's x (progress); the result is the eased y. The curve is
// inverted with a binary search for the parameter u with x(u) == t.
func CubicBezier(t float64, spline model.Spline) float64 {
	if t <= 0 {
		return 0.0
	}
	if t >= 1 {
		return 1.0
	}
	x1, y1, x2, y2 := spline[0], spline[1], spline[2], spline[3]

	lo, hi := 0.0, 1.0
	u := t
	for i := 0; i < bezierIterations; i++ {
		x := bezierAxis(u, x1, x2)
		diff := x - t
		if diff > -bezierTolerance && diff < bezierTolerance {
			break
		}
		if diff > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return bezierAxis(u, y1, y2)
}

// bezierAxis computes one coordinate of the unit cubic Bézier at
// parameter u given its two inner control values.
func bezierAxis(u, c1, c2 float64) float64 {
	inv := 1 - u
	return 3*inv*inv*u*c1 + 3*inv*u*u*c2 + u*u*u
}
