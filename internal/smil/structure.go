package smil

import (
	"fmt"
	"math"
	"sort"

	"github.com/ivlev/svg2pptx/internal/model"
)

// densityFactor flags documents carrying more than this many animations
// per animated element.
const densityFactor = 3

// ValidateStructure inspects a parsed definition list for advisory
// problems: excessive animation density and timing overlaps between
// animations driving the same element attribute.
func ValidateStructure(defs []model.AnimationDefinition) []string {
	var warnings []string

	elements := make(map[string]struct{})
	for i := range defs {
		elements[defs[i].ElementID] = struct{}{}
	}
	if len(elements) > 0 && len(defs) > len(elements)*densityFactor {
		warnings = append(warnings, fmt.Sprintf(
			"high animation density: %d animations across %d elements", len(defs), len(elements)))
	}

	groups := make(map[[2]string][]int)
	for i := range defs {
		key := [2]string{defs[i].ElementID, defs[i].TargetAttribute}
		groups[key] = append(groups[key], i)
	}

	keys := make([][2]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i][0] != keys[j][0] {
			return keys[i][0] < keys[j][0]
		}
		return keys[i][1] < keys[j][1]
	})

	for _, key := range keys {
		idx := groups[key]
		for a := 0; a < len(idx); a++ {
			for b := a + 1; b < len(idx); b++ {
				if windowsOverlap(&defs[idx[a]], &defs[idx[b]]) {
					warnings = append(warnings, fmt.Sprintf(
						"overlapping animations on %s/%s", key[0], key[1]))
				}
			}
		}
	}
	return warnings
}

// windowsOverlap reports whether two [begin, end) windows intersect.
// An indefinite end overlaps anything starting at or after its begin.
func windowsOverlap(a, b *model.AnimationDefinition) bool {
	aEnd, bEnd := a.EndTime(), b.EndTime()
	if math.IsInf(aEnd, 1) && b.Timing.Begin >= a.Timing.Begin {
		return true
	}
	if math.IsInf(bEnd, 1) && a.Timing.Begin >= b.Timing.Begin {
		return true
	}
	return a.Timing.Begin < bEnd && b.Timing.Begin < aEnd
}
