package interp

import "github.com/ivlev/svg2pptx/internal/model"

// colorAttributes are interpolated through the color parser.
var colorAttributes = map[string]bool{
	"fill": true, "stroke": true, "stop-color": true, "flood-color": true,
	"lighting-color": true, "color": true, "background-color": true,
}

// numericAttributes are interpolated as number-with-unit values.
var numericAttributes = map[string]bool{
	"opacity": true, "fill-opacity": true, "stroke-opacity": true,
	"stroke-width": true, "r": true, "cx": true, "cy": true,
	"x": true, "y": true, "width": true, "height": true,
	"rx": true, "ry": true, "x1": true, "y1": true, "x2": true, "y2": true,
	"dx": true, "dy": true, "offset": true, "font-size": true,
}

// IsColorAttribute reports whether attribute holds a CSS color.
func IsColorAttribute(attribute string) bool { return colorAttributes[attribute] }

// IsNumericAttribute reports whether attribute holds a linearly
// interpolatable number.
func IsNumericAttribute(attribute string) bool { return numericAttributes[attribute] }

// Keyframes resolves the value of an animation at the given overall
// progress in [0,1]. keyTimes, when length-matched to values, positions
// the segments; otherwise they are spaced uniformly. keySplines, when
// present, eases each segment's local progress. The bracketing values
// are then interpolated by attribute class: color, numeric, transform
// (when kind is non-nil), or a discrete switch for everything else.
//
// The discrete switch uses a fixed 0.5 threshold inside each segment.
// That mirrors the behavior this converter is compatible with; strict
// SMIL discrete stepping would hold each value until the next keyTime.
func Keyframes(values []string, keyTimes []float64, keySplines []model.Spline, progress float64, attribute string, kind *model.TransformType) string {
	if len(values) == 0 {
		return ""
	}
	if len(values) == 1 {
		return values[0]
	}
	if progress <= 0 {
		return values[0]
	}
	if progress >= 1 {
		return values[len(values)-1]
	}

	times := keyTimes
	if len(times) != len(values) {
		times = uniformTimes(len(values))
	}

	// keyTimes need not span all of [0,1]; outside the covered range
	// the boundary values hold rather than extrapolating.
	if progress <= times[0] {
		return values[0]
	}
	if progress >= times[len(values)-1] {
		return values[len(values)-1]
	}

	seg := len(values) - 2
	for i := 0; i < len(values)-1; i++ {
		if progress < times[i+1] {
			seg = i
			break
		}
	}

	span := times[seg+1] - times[seg]
	local := 1.0
	if span > 0 {
		local = (progress - times[seg]) / span
	}
	if len(keySplines) == len(values)-1 {
		local = CubicBezier(local, keySplines[seg])
	}

	from, to := values[seg], values[seg+1]
	switch {
	case kind != nil:
		return Transform(from, to, local, *kind)
	case IsColorAttribute(attribute):
		return Color(from, to, local)
	case IsNumericAttribute(attribute):
		return Numeric(from, to, local)
	default:
		return discrete(from, to, local)
	}
}

func uniformTimes(n int) []float64 {
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / float64(n-1)
	}
	return times
}
