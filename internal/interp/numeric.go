// Package interp holds the stateless value interpolators: numeric,
// color and transform interpolation plus cubic-Bézier easing and the
// keyframe dispatcher that ties them together.
package interp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numberRe matches a leading signed decimal: 12, 12., 12.5, .5.
var numberRe = regexp.MustCompile(`^[-+]?(\d+\.?\d*|\.\d+)`)

// SplitNumber separates a value like "12.5px" into its numeric part and
// trailing unit.
func SplitNumber(s string) (value float64, unit string, ok bool) {
	s = strings.TrimSpace(s)
	m := numberRe.FindString(s)
	if m == "" {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, "", false
	}
	return v, s[len(m):], true
}

// Numeric linearly interpolates between two number-with-unit strings.
// Unparsable inputs or mismatched units fall back to a discrete switch
// at t=0.5.
func Numeric(from, to string, t float64) string {
	fv, fu, fok := SplitNumber(from)
	tv, tu, tok := SplitNumber(to)
	if !fok || !tok || fu != tu {
		return discrete(from, to, t)
	}
	v := fv + (tv-fv)*t
	decimal := strings.Contains(from, ".") || strings.Contains(to, ".")
	return FormatNumber(v, decimal) + fu
}

// FormatNumber renders v with 3 decimal places when decimal is set
// (trimming trailing zeros), else as an integer.
func FormatNumber(v float64, decimal bool) string {
	if !decimal {
		return strconv.Itoa(int(v))
	}
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

func discrete(from, to string, t float64) string {
	if t < 0.5 {
		return from
	}
	return to
}
