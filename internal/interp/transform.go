package interp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ivlev/svg2pptx/internal/model"
)

// tokenRe matches every signed decimal inside a transform value string.
var tokenRe = regexp.MustCompile(`[-+]?(\d+\.?\d*|\.\d+)`)

// Numbers extracts every numeric token from a transform value string.
func Numbers(s string) []float64 {
	var out []float64
	for _, m := range tokenRe.FindAllString(s, -1) {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil
		}
		out = append(out, v)
	}
	return out
}

// Transform interpolates the positional numbers of two transform value
// strings and re-formats them for the given transform kind. Token count
// mismatches fall back to a discrete switch at t=0.5.
func Transform(from, to string, t float64, kind model.TransformType) string {
	fn := Numbers(from)
	tn := Numbers(to)
	if len(fn) == 0 || len(fn) != len(tn) {
		return discrete(from, to, t)
	}
	vals := make([]float64, len(fn))
	for i := range fn {
		vals[i] = fn[i] + (tn[i]-fn[i])*t
	}
	return formatTransform(vals, kind)
}

func formatTransform(vals []float64, kind model.TransformType) string {
	switch kind {
	case model.TransformTranslate:
		if len(vals) >= 2 {
			return fmt.Sprintf("translate(%s, %s)", ftoa(vals[0]), ftoa(vals[1]))
		}
		return fmt.Sprintf("translate(%s)", ftoa(vals[0]))
	case model.TransformScale:
		if len(vals) >= 2 {
			return fmt.Sprintf("scale(%s, %s)", ftoa(vals[0]), ftoa(vals[1]))
		}
		return fmt.Sprintf("scale(%s)", ftoa(vals[0]))
	case model.TransformRotate:
		if len(vals) >= 3 {
			return fmt.Sprintf("rotate(%s, %s, %s)", ftoa(vals[0]), ftoa(vals[1]), ftoa(vals[2]))
		}
		return fmt.Sprintf("rotate(%s)", ftoa(vals[0]))
	case model.TransformSkewX:
		return fmt.Sprintf("skewX(%s)", ftoa(vals[0]))
	case model.TransformSkewY:
		return fmt.Sprintf("skewY(%s)", ftoa(vals[0]))
	case model.TransformMatrix:
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = ftoa(v)
		}
		return fmt.Sprintf("matrix(%s)", strings.Join(parts, " "))
	default:
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = ftoa(v)
		}
		return strings.Join(parts, " ")
	}
}

// FormatPoint renders an "x,y" motion point.
func FormatPoint(x, y float64) string {
	return ftoa(x) + "," + ftoa(y)
}

func ftoa(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}
