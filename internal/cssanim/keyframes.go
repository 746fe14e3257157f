// Package cssanim extracts CSS @keyframes animations (with their
// animation-* bindings) from a document's stylesheets into animation
// definitions.
package cssanim

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/css"
)

// KeyframeStep is one keyframe of an @keyframes block.
type KeyframeStep struct {
	Offset     float64 // normalized position in [0,1]
	Properties map[string]string
	Easing     string // animation-timing-function declared inside the step
}

// parseKeyframeBlocks collects every @keyframes rule from a parsed
// stylesheet into name -> ordered steps.
func parseKeyframeBlocks(sheet *css.Stylesheet) map[string][]KeyframeStep {
	blocks := make(map[string][]KeyframeStep)
	for _, rule := range sheet.Rules {
		if rule.Kind != css.AtRule || !strings.HasSuffix(strings.ToLower(rule.Name), "keyframes") {
			continue
		}
		name := strings.TrimSpace(rule.Prelude)
		if name == "" {
			continue
		}
		var steps []KeyframeStep
		for _, stepRule := range rule.Rules {
			props := make(map[string]string)
			easing := ""
			for _, decl := range stepRule.Declarations {
				value := strings.TrimSpace(decl.Value)
				if strings.EqualFold(decl.Property, "animation-timing-function") {
					easing = value
					continue
				}
				props[strings.ToLower(decl.Property)] = value
			}
			// A selector like "0%, 100%" produces one step per offset.
			for _, sel := range stepSelectors(stepRule) {
				offset, ok := parseStepOffset(sel)
				if !ok {
					continue
				}
				steps = append(steps, KeyframeStep{Offset: offset, Properties: props, Easing: easing})
			}
		}
		sort.SliceStable(steps, func(i, j int) bool { return steps[i].Offset < steps[j].Offset })
		blocks[name] = steps
	}
	return blocks
}

func stepSelectors(rule *css.Rule) []string {
	if len(rule.Selectors) > 0 {
		return rule.Selectors
	}
	return strings.Split(rule.Prelude, ",")
}

// parseStepOffset maps "from", "to" or a percentage to [0,1].
func parseStepOffset(sel string) (float64, bool) {
	sel = strings.TrimSpace(strings.ToLower(sel))
	switch sel {
	case "from":
		return 0, true
	case "to":
		return 1, true
	}
	if strings.HasSuffix(sel, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(sel, "%"), 64)
		if err != nil || pct < 0 || pct > 100 {
			return 0, false
		}
		return pct / 100, true
	}
	return 0, false
}
