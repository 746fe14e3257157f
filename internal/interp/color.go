package interp

import (
	"github.com/ivlev/svg2pptx/internal/colorutil"
)

// Color interpolates two CSS color strings per RGB channel and formats
// the result as lowercase #rrggbb. Either side failing to parse falls
// back to a discrete switch at t=0.5.
func Color(from, to string, t float64) string {
	fc, ferr := colorutil.Parse(from)
	tc, terr := colorutil.Parse(to)
	if ferr != nil || terr != nil {
		return discrete(from, to, t)
	}
	return colorutil.HexLower(fc.BlendRgb(tc, clampUnit(t)))
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
