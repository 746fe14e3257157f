package sampler

import (
	"sort"
	"strings"

	"github.com/ivlev/svg2pptx/internal/interp"
	"github.com/ivlev/svg2pptx/internal/model"
)

// sceneAt computes one scene: every active definition's value at time
// t, with conflicts between same-attribute definitions resolved.
func sceneAt(defs []model.AnimationDefinition, t float64) *model.AnimationScene {
	scene := model.NewScene(t)

	groups := make(map[[2]string][]*model.AnimationDefinition)
	for i := range defs {
		d := &defs[i]
		if !d.Timing.IsActiveAt(t) {
			continue
		}
		key := [2]string{d.ElementID, d.TargetAttribute}
		groups[key] = append(groups[key], d)
	}

	for key, group := range groups {
		scene.SetProperty(key[0], key[1], resolveGroup(group, t))
	}
	return scene
}

// resolveGroup picks the value when several animations drive one
// attribute: the first additive=replace definition (by begin) is the
// base, then sum-additive values either fold numerically onto it or,
// for non-summable attributes, the last one wins.
func resolveGroup(group []*model.AnimationDefinition, t float64) string {
	if len(group) == 1 {
		return valueAt(group[0], t)
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Timing.Begin < group[j].Timing.Begin
	})

	base := group[0]
	for _, d := range group {
		if d.Additive == model.AdditiveReplace {
			base = d
			break
		}
	}
	baseValue := valueAt(base, t)

	var additive []string
	for _, d := range group {
		if d == base || d.Additive != model.AdditiveSum {
			continue
		}
		additive = append(additive, valueAt(d, t))
	}
	if len(additive) == 0 {
		return baseValue
	}

	if interp.IsNumericAttribute(base.TargetAttribute) {
		return sumValues(baseValue, additive)
	}
	return additive[len(additive)-1]
}

// sumValues folds additive numeric values onto the base. Only values
// in the base's unit contribute; mismatched or unparsable ones add 0.
func sumValues(baseValue string, additive []string) string {
	base, unit, ok := interp.SplitNumber(baseValue)
	if !ok {
		return baseValue
	}
	total := base
	decimal := strings.Contains(baseValue, ".")
	for _, v := range additive {
		n, u, ok := interp.SplitNumber(v)
		if !ok || u != unit {
			continue
		}
		total += n
		decimal = decimal || strings.Contains(v, ".")
	}
	return interp.FormatNumber(total, decimal) + unit
}

// valueAt evaluates one definition at absolute time t.
func valueAt(d *model.AnimationDefinition, t float64) string {
	progress := d.Timing.LocalProgress(t)
	if d.Type == model.AnimateMotion {
		return motionValueAt(d, progress)
	}
	return interp.Keyframes(d.Values, d.KeyTimes, d.KeySplines, progress, d.TargetAttribute, d.Transform)
}

// motionValueAt interpolates "x,y" point values pairwise so motion
// shows up in sampled scenes; path-string values switch discretely.
func motionValueAt(d *model.AnimationDefinition, progress float64) string {
	if len(d.Values) < 2 {
		return d.Values[0]
	}
	n := len(d.Values)
	pos := progress * float64(n-1)
	seg := int(pos)
	if seg >= n-1 {
		return d.Values[n-1]
	}
	local := pos - float64(seg)

	from := interp.Numbers(d.Values[seg])
	to := interp.Numbers(d.Values[seg+1])
	if len(from) != 2 || len(to) != 2 {
		if local < 0.5 {
			return d.Values[seg]
		}
		return d.Values[seg+1]
	}
	x := from[0] + (to[0]-from[0])*local
	y := from[1] + (to[1]-from[1])*local
	return interp.FormatPoint(x, y)
}
