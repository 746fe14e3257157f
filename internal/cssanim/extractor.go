package cssanim

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aymerick/douceur/parser"

	"github.com/ivlev/svg2pptx/internal/dom"
	"github.com/ivlev/svg2pptx/internal/model"
)

// Extract reads every <style> element in the document, parses
// @keyframes blocks and animation-* bindings, and returns one
// definition per animated CSS property per bound element. Problems are
// reported as warnings, never as a failed extraction.
func Extract(root *dom.Element) ([]model.AnimationDefinition, []string) {
	var warnings []string
	if root == nil {
		return nil, warnings
	}

	var buf strings.Builder
	for _, styleEl := range root.FindAll("style") {
		buf.WriteString(styleEl.Text)
		buf.WriteString("\n")
	}
	if strings.TrimSpace(buf.String()) == "" {
		return nil, warnings
	}

	sheet, err := parser.Parse(buf.String())
	if err != nil {
		warnings = append(warnings, fmt.Sprintf("stylesheet parse failed: %v", err))
		return nil, warnings
	}

	keyframes := parseKeyframeBlocks(sheet)
	if len(keyframes) == 0 {
		return nil, warnings
	}
	cascade := newResolver(sheet)

	var defs []model.AnimationDefinition
	root.Walk(func(el *dom.Element) {
		decls := cascade.declarations(el)
		bindings := animationBindings(decls)
		if len(bindings) == 0 {
			return
		}
		if el.ID() == "" {
			warnings = append(warnings, fmt.Sprintf("<%s> has CSS animations but no id, skipped", el.Name))
			return
		}
		for _, b := range bindings {
			if strings.EqualFold(b.Name, "none") {
				continue
			}
			steps, ok := keyframes[b.Name]
			if !ok {
				warnings = append(warnings, fmt.Sprintf("@keyframes %q not defined, skipped on %q", b.Name, el.ID()))
				continue
			}
			if b.Duration <= 0 {
				// CSS: zero or negative duration animates nothing.
				continue
			}
			built, ws := buildDefinitions(el.ID(), b, steps)
			defs = append(defs, built...)
			warnings = append(warnings, ws...)
		}
	})
	return defs, warnings
}

// buildDefinitions emits the definitions for one element/binding pair:
// an opacity track, and the changing components of a transform track.
func buildDefinitions(elementID string, b animationBinding, steps []KeyframeStep) ([]model.AnimationDefinition, []string) {
	var defs []model.AnimationDefinition
	var warnings []string

	timing := model.AnimationTiming{
		Begin:    b.Delay,
		Duration: b.Duration,
		Repeat:   parseIterationCount(b.IterationCount),
		Fill:     parseFillMode(b.FillMode),
	}

	if track := propertyTrack(steps, "opacity", formatCSSNumber); len(track) > 0 {
		values := make([]string, len(track))
		for i, k := range track {
			values[i] = k.Values[0]
		}
		def, err := finishDefinition(
			model.NewBuilder(elementID, "opacity").Type(model.Animate).Values(values),
			track, timing, b.TimingFunction)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("opacity animation on %q: %v", elementID, err))
		} else {
			defs = append(defs, def)
		}
	}

	if track := propertyTrack(steps, "transform", nil); len(track) > 1 {
		built, ws := buildTransformDefinitions(elementID, b, track, timing)
		defs = append(defs, built...)
		warnings = append(warnings, ws...)
	}

	return defs, warnings
}

// propertyTrack filters steps to those declaring the property, carrying
// each surviving step as a validated keyframe waypoint.
func propertyTrack(steps []KeyframeStep, property string, format func(string) string) []model.Keyframe {
	var track []model.Keyframe
	for _, step := range steps {
		v, ok := step.Properties[property]
		if !ok {
			continue
		}
		if format != nil {
			v = format(v)
		}
		k := model.Keyframe{Time: step.Offset, Values: []string{v}, Easing: step.Easing}
		if k.Validate() != nil {
			continue
		}
		track = append(track, k)
	}
	return track
}

// buildTransformDefinitions decomposes the transform track into up to
// three definitions (translate, rotate, scale), emitting only the
// components that actually change across the keyframes.
func buildTransformDefinitions(elementID string, b animationBinding, track []model.Keyframe, timing model.AnimationTiming) ([]model.AnimationDefinition, []string) {
	var defs []model.AnimationDefinition
	var warnings []string

	comps := make([]transformComponents, len(track))
	for i, k := range track {
		comps[i] = parseTransform(k.Values[0])
	}

	var translateChanges, rotateChanges, scaleChanges bool
	for i := 1; i < len(comps); i++ {
		if comps[i].TX != comps[0].TX || comps[i].TY != comps[0].TY {
			translateChanges = true
		}
		if comps[i].Rotate != comps[0].Rotate {
			rotateChanges = true
		}
		if comps[i].SX != comps[0].SX || comps[i].SY != comps[0].SY {
			scaleChanges = true
		}
	}

	emit := func(kind model.TransformType, values []string) {
		def, err := finishDefinition(
			model.NewBuilder(elementID, "transform").
				Type(model.AnimateTransform).
				Transform(kind).
				Values(values),
			track, timing, b.TimingFunction)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s animation on %q: %v", kind, elementID, err))
			return
		}
		defs = append(defs, def)
	}

	if translateChanges {
		values := make([]string, len(comps))
		for i, c := range comps {
			values[i] = fmt.Sprintf("translate(%s, %s)", formatFloat(c.TX), formatFloat(c.TY))
		}
		emit(model.TransformTranslate, values)
	}
	if rotateChanges {
		values := make([]string, len(comps))
		for i, c := range comps {
			values[i] = fmt.Sprintf("rotate(%s)", formatFloat(c.Rotate))
		}
		emit(model.TransformRotate, values)
	}
	if scaleChanges {
		values := make([]string, len(comps))
		for i, c := range comps {
			values[i] = fmt.Sprintf("scale(%s, %s)", formatFloat(c.SX), formatFloat(c.SY))
		}
		emit(model.TransformScale, values)
	}
	return defs, warnings
}

// finishDefinition attaches timing, key times from the track waypoints,
// and per-segment easing splines, then validates.
func finishDefinition(builder model.Builder, track []model.Keyframe, timing model.AnimationTiming, timingFunction string) (model.AnimationDefinition, error) {
	builder = builder.Timing(timing)
	if len(track) > 1 {
		keyTimes := make([]float64, len(track))
		for i, k := range track {
			keyTimes[i] = k.Time
		}
		builder = builder.KeyTimes(keyTimes)

		if hasEasing(track, timingFunction) {
			if splines := segmentSplines(track, timingFunction); splines != nil {
				builder = builder.CalcMode(model.CalcSpline).KeySplines(splines)
			}
		}
	}
	return builder.Build()
}

func hasEasing(track []model.Keyframe, timingFunction string) bool {
	tf := strings.ToLower(strings.TrimSpace(timingFunction))
	if tf != "" && tf != "linear" {
		return true
	}
	for _, k := range track {
		e := strings.ToLower(strings.TrimSpace(k.Easing))
		if e != "" && e != "linear" {
			return true
		}
	}
	return false
}

func parseIterationCount(s string) model.RepeatCount {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "infinite" {
		return model.RepeatIndefinite()
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil && n >= 1 {
		return model.RepeatFinite(uint32(n))
	}
	return model.RepeatFinite(1)
}

func parseFillMode(s string) model.FillMode {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "forwards", "both":
		return model.FillFreeze
	default:
		return model.FillRemove
	}
}

// formatCSSNumber normalizes a numeric CSS value so "0" and "1" read
// as "0.0" and "1.0"; non-numeric values pass through.
func formatCSSNumber(s string) string {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return s
	}
	out := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "-0" || s == "" {
		return "0"
	}
	return s
}
