package sampler

import (
	"math"

	"github.com/ivlev/svg2pptx/internal/interp"
	"github.com/ivlev/svg2pptx/internal/model"
)

// predictTolerance is the relative deviation below which an
// intermediate value counts as linearly predictable from its neighbors.
const predictTolerance = 0.10

// optimizeScenes drops intermediate scenes whose every value sits
// within tolerance of the midpoint of its neighbors. The first and
// last scenes always survive; any non-numeric change or missing
// neighbor value keeps a scene.
func optimizeScenes(scenes []*model.AnimationScene) []*model.AnimationScene {
	if len(scenes) <= 2 {
		return scenes
	}
	out := []*model.AnimationScene{scenes[0]}
	for i := 1; i < len(scenes)-1; i++ {
		if predictable(scenes[i-1], scenes[i], scenes[i+1]) {
			continue
		}
		out = append(out, scenes[i])
	}
	return append(out, scenes[len(scenes)-1])
}

func predictable(prev, cur, next *model.AnimationScene) bool {
	for elementID, attrs := range cur.States {
		for name, value := range attrs {
			pv, pok := prev.Get(elementID, name)
			nv, nok := next.Get(elementID, name)
			if !pok || !nok {
				return false
			}
			if !midpointClose(pv, value, nv) {
				return false
			}
		}
	}
	// A scene introducing or dropping keys relative to its neighbors is
	// structurally significant.
	return sameKeys(cur, prev) && sameKeys(cur, next)
}

func sameKeys(a, b *model.AnimationScene) bool {
	if len(a.States) != len(b.States) {
		return false
	}
	for elementID, attrs := range a.States {
		other, ok := b.States[elementID]
		if !ok || len(other) != len(attrs) {
			return false
		}
		for name := range attrs {
			if _, ok := other[name]; !ok {
				return false
			}
		}
	}
	return true
}

// midpointClose reports whether cur is within tolerance of the linear
// midpoint between prev and next. Non-numeric or unit-mixed values are
// predictable only when all three are identical.
func midpointClose(prev, cur, next string) bool {
	pv, pu, pok := interp.SplitNumber(prev)
	cv, cu, cok := interp.SplitNumber(cur)
	nv, nu, nok := interp.SplitNumber(next)
	if !pok || !cok || !nok || pu != cu || cu != nu {
		return prev == cur && cur == next
	}
	mid := (pv + nv) / 2
	span := math.Abs(nv - pv)
	if span == 0 {
		return math.Abs(cv-mid) < 1e-9
	}
	return math.Abs(cv-mid) <= span*predictTolerance
}
