package cssanim

import (
	"strconv"
	"strings"

	"github.com/ivlev/svg2pptx/internal/model"
)

// namedEasings are the fixed cubic-Bézier control points of the CSS
// timing-function keywords.
var namedEasings = map[string]model.Spline{
	"linear":      {0, 0, 1, 1},
	"ease":        {0.25, 0.1, 0.25, 1},
	"ease-in":     {0.42, 0, 1, 1},
	"ease-out":    {0, 0, 0.58, 1},
	"ease-in-out": {0.42, 0, 0.58, 1},
}

// parseEasing maps a CSS timing-function value to Bézier control
// points. Returns false for anything it cannot express.
func parseEasing(s string) (model.Spline, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	if sp, ok := namedEasings[s]; ok {
		return sp, true
	}
	if strings.HasPrefix(s, "cubic-bezier(") && strings.HasSuffix(s, ")") {
		parts := strings.Split(s[len("cubic-bezier("):len(s)-1], ",")
		if len(parts) != 4 {
			return model.Spline{}, false
		}
		var sp model.Spline
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil || v < 0 || v > 1 {
				return model.Spline{}, false
			}
			sp[i] = v
		}
		return sp, true
	}
	return model.Spline{}, false
}

// segmentSplines builds the per-segment spline list for a keyframe
// track: segment i uses the easing of waypoint i+1 when declared, else
// the animation-level timing function. Any unrecognized easing aborts
// the whole list and the definition falls back to linear.
func segmentSplines(track []model.Keyframe, animationEasing string) []model.Spline {
	if len(track) < 2 {
		return nil
	}
	splines := make([]model.Spline, 0, len(track)-1)
	for i := 0; i < len(track)-1; i++ {
		easing := track[i+1].Easing
		if easing == "" {
			easing = animationEasing
		}
		if easing == "" {
			easing = "linear"
		}
		sp, ok := parseEasing(easing)
		if !ok {
			return nil
		}
		splines = append(splines, sp)
	}
	return splines
}
