// Package smil reads SMIL animation elements (animate, animateTransform,
// animateColor, animateMotion, set) out of a parsed document into
// animation definitions.
package smil

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ivlev/svg2pptx/internal/dom"
	"github.com/ivlev/svg2pptx/internal/model"
)

var animationTags = []string{"animate", "animateTransform", "animateColor", "animateMotion", "set"}

// Parse walks the document for animation elements and returns one
// definition per parseable element plus the accumulated summary.
// Per-element problems are recorded as summary warnings, never aborting
// the document.
func Parse(root *dom.Element) ([]model.AnimationDefinition, *model.AnimationSummary) {
	summary := model.NewSummary()
	if root == nil {
		summary.Warn("no document root")
		return nil, summary
	}

	var defs []model.AnimationDefinition
	for _, el := range root.FindAll(animationTags...) {
		def, ok := parseElement(el, summary)
		if !ok {
			continue
		}
		defs = append(defs, def)
		summary.Record(&def)
	}
	return defs, summary
}

func parseElement(el *dom.Element, summary *model.AnimationSummary) (model.AnimationDefinition, bool) {
	var zero model.AnimationDefinition

	animType := typeForTag(el.Name)
	elementID := targetElementID(el)
	if elementID == "" {
		summary.Warn(fmt.Sprintf("%s element has no resolvable target, skipped", el.Name))
		return zero, false
	}

	attribute := el.Attr("attributeName")
	if animType == model.AnimateMotion {
		attribute = "position"
	}
	if attribute == "" {
		summary.Warn(fmt.Sprintf("%s on %q has no attributeName, skipped", el.Name, elementID))
		return zero, false
	}

	values := resolveValues(el, animType)
	if len(values) == 0 {
		summary.Warn(fmt.Sprintf("%s on %q has no values, skipped", el.Name, elementID))
		return zero, false
	}

	builder := model.NewBuilder(elementID, attribute).
		Type(animType).
		Values(values).
		Timing(parseTiming(el)).
		CalcMode(parseCalcMode(el.Attr("calcMode"))).
		Additive(parseAdditive(el.Attr("additive"))).
		Accumulate(parseAccumulate(el.Attr("accumulate")))

	if kt, ok := parseKeyTimes(el.Attr("keyTimes")); ok {
		builder = builder.KeyTimes(kt)
	} else if el.HasAttr("keyTimes") {
		summary.Warn(fmt.Sprintf("%s on %q has malformed keyTimes, ignored", el.Name, elementID))
	}

	if ks, ok := parseKeySplines(el.Attr("keySplines")); ok {
		builder = builder.KeySplines(ks)
	} else if el.HasAttr("keySplines") {
		summary.Warn(fmt.Sprintf("%s on %q has malformed keySplines, ignored", el.Name, elementID))
	}

	if animType == model.AnimateTransform {
		if tt, ok := parseTransformType(el.Attr("type")); ok {
			builder = builder.Transform(tt)
		}
	}

	def, err := builder.Build()
	if err != nil {
		summary.Warn(fmt.Sprintf("%s on %q: %v, skipped", el.Name, elementID, err))
		return zero, false
	}
	return def, true
}

func typeForTag(tag string) model.AnimationType {
	switch strings.ToLower(tag) {
	case "animatetransform":
		return model.AnimateTransform
	case "animatecolor":
		return model.AnimateColor
	case "animatemotion":
		return model.AnimateMotion
	case "set":
		return model.Set
	default:
		return model.Animate
	}
}

// targetElementID resolves which element the animation drives:
// href/xlink:href fragment, then the parent's id, then an explicit
// target attribute fragment.
func targetElementID(el *dom.Element) string {
	if href := el.Attr("href"); strings.HasPrefix(href, "#") {
		return href[1:]
	}
	if el.Parent != nil && el.Parent.ID() != "" {
		return el.Parent.ID()
	}
	if target := el.Attr("target"); strings.HasPrefix(target, "#") {
		return target[1:]
	}
	return ""
}

func resolveValues(el *dom.Element, animType model.AnimationType) []string {
	if raw := el.Attr("values"); raw != "" {
		if vals := splitList(raw, ";"); len(vals) > 0 {
			return vals
		}
	}
	from := strings.TrimSpace(el.Attr("from"))
	to := strings.TrimSpace(el.Attr("to"))
	if from != "" && to != "" {
		return []string{from, to}
	}
	if to != "" {
		return []string{to}
	}

	// Motion paths have their own fallback chain and always yield
	// something to follow.
	if animType == model.AnimateMotion {
		if path := strings.TrimSpace(el.Attr("path")); path != "" {
			return []string{path}
		}
		if mpath := el.Child("mpath"); mpath != nil {
			if href := strings.TrimSpace(mpath.Attr("href")); href != "" {
				return []string{resolveMotionPath(el, strings.TrimPrefix(href, "#"))}
			}
		}
		return []string{"M 0,0"}
	}
	return nil
}

// resolveMotionPath looks the mpath's referenced element up in the
// document and returns its path data. When the reference is dangling or
// carries no path data, the bare id remains as a placeholder.
func resolveMotionPath(el *dom.Element, id string) string {
	root := el
	for root.Parent != nil {
		root = root.Parent
	}
	var d string
	root.Walk(func(candidate *dom.Element) {
		if d == "" && candidate.ID() == id {
			d = strings.TrimSpace(candidate.Attr("d"))
		}
	})
	if d != "" {
		return d
	}
	return id
}

func parseTiming(el *dom.Element) model.AnimationTiming {
	begin := ParseClockValue(el.Attr("begin"))

	var duration float64
	if dur := strings.TrimSpace(el.Attr("dur")); dur == "indefinite" {
		duration = math.Inf(1)
	} else {
		duration = ParseClockValue(dur)
	}

	repeat := model.RepeatFinite(1)
	if rc := strings.TrimSpace(el.Attr("repeatCount")); rc != "" {
		if rc == "indefinite" {
			repeat = model.RepeatIndefinite()
		} else if n, err := strconv.Atoi(rc); err == nil && n > 0 {
			repeat = model.RepeatFinite(uint32(n))
		}
	}

	fill := model.FillRemove
	if el.Attr("fill") == "freeze" {
		fill = model.FillFreeze
	}

	return model.AnimationTiming{Begin: begin, Duration: duration, Repeat: repeat, Fill: fill}
}

func parseCalcMode(s string) model.CalcMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "discrete":
		return model.CalcDiscrete
	case "paced":
		return model.CalcPaced
	case "spline":
		return model.CalcSpline
	default:
		return model.CalcLinear
	}
}

func parseAdditive(s string) model.AdditiveMode {
	if strings.TrimSpace(s) == "sum" {
		return model.AdditiveSum
	}
	return model.AdditiveReplace
}

func parseAccumulate(s string) model.AccumulateMode {
	if strings.TrimSpace(s) == "sum" {
		return model.AccumulateSum
	}
	return model.AccumulateNone
}

// parseKeyTimes reads a semicolon-separated float list. The whole field
// is rejected when any entry is unparsable or outside [0,1].
func parseKeyTimes(s string) ([]float64, bool) {
	parts := splitList(s, ";")
	if len(parts) == 0 {
		return nil, false
	}
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v < 0 || v > 1 {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// parseKeySplines reads semicolon-separated groups of four
// comma/space-separated control values. Any malformed group rejects the
// whole field.
func parseKeySplines(s string) ([]model.Spline, bool) {
	groups := splitList(s, ";")
	if len(groups) == 0 {
		return nil, false
	}
	out := make([]model.Spline, 0, len(groups))
	for _, g := range groups {
		fields := strings.FieldsFunc(g, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) != 4 {
			return nil, false
		}
		var sp model.Spline
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, false
			}
			sp[i] = v
		}
		out = append(out, sp)
	}
	return out, true
}

func parseTransformType(s string) (model.TransformType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "translate":
		return model.TransformTranslate, true
	case "scale":
		return model.TransformScale, true
	case "rotate":
		return model.TransformRotate, true
	case "skewx":
		return model.TransformSkewX, true
	case "skewy":
		return model.TransformSkewY, true
	case "matrix":
		return model.TransformMatrix, true
	default:
		return 0, false
	}
}

func splitList(s, sep string) []string {
	var out []string
	for _, p := range strings.Split(s, sep) {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
