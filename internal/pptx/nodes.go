package pptx

import (
	"fmt"
	"math"
	"strings"

	"github.com/ivlev/svg2pptx/internal/colorutil"
	"github.com/ivlev/svg2pptx/internal/interp"
	"github.com/ivlev/svg2pptx/internal/model"
)

// indent of effect nodes inside the parallel group's childTnLst.
const nodeIndent = "                      "

// fallbackColor stands in for colors the parser cannot resolve.
const fallbackColor = "000000"

// behavior renders the shared cBhvr block: timing node, shape target
// and optional attribute name.
func (g *Generator) behavior(def *model.AnimationDefinition, attrName string) string {
	accel, decel := easingPercents(def)
	var b strings.Builder
	b.WriteString(nodeIndent + "  <p:cBhvr>\n")
	fmt.Fprintf(&b, nodeIndent+"    <p:cTn id=\"%d\" dur=\"%s\" delay=\"%d\" accel=\"%d\" decel=\"%d\"/>\n",
		g.ids.Next(), durationMillis(def), delayMillis(def), accel, decel)
	fmt.Fprintf(&b, nodeIndent+"    <p:tgtEl><p:spTgt spid=\"%s\"/></p:tgtEl>\n",
		xmlEscape(shapeRef(g.mapper, def.ElementID)))
	if attrName != "" {
		fmt.Fprintf(&b, nodeIndent+"    <p:attrNameLst><p:attrName>%s</p:attrName></p:attrNameLst>\n",
			xmlEscape(attrName))
	}
	b.WriteString(nodeIndent + "  </p:cBhvr>\n")
	return b.String()
}

// fadeNode maps opacity-family animations to a fade effect. Direction
// follows the numeric trend: rising opacity fades in.
func (g *Generator) fadeNode(def *model.AnimationDefinition) string {
	transition := "out"
	from, _, fok := interp.SplitNumber(def.Values[0])
	to, _, tok := interp.SplitNumber(def.Values[len(def.Values)-1])
	if fok && tok && to > from {
		transition = "in"
	} else if !fok || !tok {
		transition = "in"
	}

	var b strings.Builder
	fmt.Fprintf(&b, nodeIndent+"<p:animEffect transition=\"%s\" filter=\"fade\">\n", transition)
	b.WriteString(g.behavior(def, ""))
	b.WriteString(nodeIndent + "</p:animEffect>\n")
	return b.String()
}

// valueNode maps size and position animations to a two-keyframe value
// animation carrying the literal from/to strings.
func (g *Generator) valueNode(def *model.AnimationDefinition) string {
	return g.twoKeyframeNode(def, def.Values[0], def.Values[len(def.Values)-1])
}

// genericNode is the fallback for any other animate: the same
// two-keyframe shape as valueNode.
func (g *Generator) genericNode(def *model.AnimationDefinition) string {
	return g.twoKeyframeNode(def, def.Values[0], def.Values[len(def.Values)-1])
}

func (g *Generator) twoKeyframeNode(def *model.AnimationDefinition, from, to string) string {
	endTm := durationMillis(def)
	var b strings.Builder
	b.WriteString(nodeIndent + "<p:anim calcmode=\"lin\" valueType=\"str\">\n")
	b.WriteString(g.behavior(def, def.TargetAttribute))
	b.WriteString(nodeIndent + "  <p:tavLst>\n")
	fmt.Fprintf(&b, nodeIndent+"    <p:tav tm=\"0\"><p:val><p:strVal val=\"%s\"/></p:val></p:tav>\n", xmlEscape(from))
	fmt.Fprintf(&b, nodeIndent+"    <p:tav tm=\"%s\"><p:val><p:strVal val=\"%s\"/></p:val></p:tav>\n", endTm, xmlEscape(to))
	b.WriteString(nodeIndent + "  </p:tavLst>\n")
	b.WriteString(nodeIndent + "</p:anim>\n")
	return b.String()
}

// scaleNode maps a scale transform to a native scale animation from
// the first to the last parsed factor pair.
func (g *Generator) scaleNode(def *model.AnimationDefinition) string {
	fx, fy := scaleFactors(def.Values[0])
	tx, ty := scaleFactors(def.Values[len(def.Values)-1])

	var b strings.Builder
	b.WriteString(nodeIndent + "<p:animScale>\n")
	b.WriteString(g.behavior(def, ""))
	fmt.Fprintf(&b, nodeIndent+"  <p:from x=\"%s\" y=\"%s\"/>\n", formatFactor(fx), formatFactor(fy))
	fmt.Fprintf(&b, nodeIndent+"  <p:to x=\"%s\" y=\"%s\"/>\n", formatFactor(tx), formatFactor(ty))
	b.WriteString(nodeIndent + "</p:animScale>\n")
	return b.String()
}

func scaleFactors(value string) (x, y float64) {
	nums := interp.Numbers(value)
	switch len(nums) {
	case 0:
		return 1, 1
	case 1:
		return nums[0], nums[0]
	default:
		return nums[0], nums[1]
	}
}

func formatFactor(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}

// rotateNode maps a rotate transform to a relative rotation in
// 1/60000-degree units.
func (g *Generator) rotateNode(def *model.AnimationDefinition) string {
	from := firstNumber(def.Values[0])
	to := firstNumber(def.Values[len(def.Values)-1])
	by := int((to - from) * angleUnit)

	var b strings.Builder
	fmt.Fprintf(&b, nodeIndent+"<p:animRot by=\"%d\">\n", by)
	b.WriteString(g.behavior(def, "r"))
	b.WriteString(nodeIndent + "</p:animRot>\n")
	return b.String()
}

func firstNumber(value string) float64 {
	nums := interp.Numbers(value)
	if len(nums) == 0 {
		return 0
	}
	return nums[0]
}

// colorNode maps color animations to a native color animation with one
// keyframe value node per resolved color.
func (g *Generator) colorNode(def *model.AnimationDefinition) string {
	endMillis := 0.0
	if !math.IsInf(def.Timing.Duration, 1) {
		endMillis = float64(int(def.Timing.Duration * 1000))
	}

	var b strings.Builder
	b.WriteString(nodeIndent + "<p:animClr clrSpc=\"rgb\">\n")
	b.WriteString(g.behavior(def, def.TargetAttribute))
	b.WriteString(nodeIndent + "  <p:tavLst>\n")
	n := len(def.Values)
	for i, v := range def.Values {
		tm := keyframeMillis(def, i, n, endMillis)
		fmt.Fprintf(&b, nodeIndent+"    <p:tav tm=\"%d\"><p:val><a:srgbClr val=\"%s\"/></p:val></p:tav>\n",
			tm, resolveHex(v))
	}
	b.WriteString(nodeIndent + "  </p:tavLst>\n")
	b.WriteString(nodeIndent + "</p:animClr>\n")
	return b.String()
}

func keyframeMillis(def *model.AnimationDefinition, i, n int, endMillis float64) int {
	if n == 1 {
		return 0
	}
	frac := float64(i) / float64(n-1)
	if len(def.KeyTimes) == n {
		frac = def.KeyTimes[i]
	}
	return int(frac * endMillis)
}

// resolveHex renders a color value as uppercase RRGGBB without '#',
// falling back to black when unparsable.
func resolveHex(value string) string {
	c, err := colorutil.Parse(value)
	if err != nil {
		return fallbackColor
	}
	return colorutil.HexUpper(c)
}

// motionNode maps animateMotion to a path-following animation. Point
// lists become an M/L path; a single path value is carried literally.
func (g *Generator) motionNode(def *model.AnimationDefinition) string {
	path := def.Values[0]
	if len(def.Values) > 1 {
		var parts []string
		for i, v := range def.Values {
			cmd := "L"
			if i == 0 {
				cmd = "M"
			}
			parts = append(parts, cmd+" "+strings.TrimSpace(v))
		}
		path = strings.Join(parts, " ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, nodeIndent+"<p:animMotion origin=\"layout\" path=\"%s\" pathEditMode=\"relative\">\n",
		xmlEscape(path))
	b.WriteString(g.behavior(def, ""))
	b.WriteString(nodeIndent + "</p:animMotion>\n")
	return b.String()
}

// setNode maps set to an instantaneous value assignment at the
// animation's begin, with no duration.
func (g *Generator) setNode(def *model.AnimationDefinition) string {
	var b strings.Builder
	b.WriteString(nodeIndent + "<p:set>\n")
	b.WriteString(nodeIndent + "  <p:cBhvr>\n")
	fmt.Fprintf(&b, nodeIndent+"    <p:cTn id=\"%d\" delay=\"%d\" fill=\"hold\"/>\n",
		g.ids.Next(), delayMillis(def))
	fmt.Fprintf(&b, nodeIndent+"    <p:tgtEl><p:spTgt spid=\"%s\"/></p:tgtEl>\n",
		xmlEscape(shapeRef(g.mapper, def.ElementID)))
	fmt.Fprintf(&b, nodeIndent+"    <p:attrNameLst><p:attrName>%s</p:attrName></p:attrNameLst>\n",
		xmlEscape(def.TargetAttribute))
	b.WriteString(nodeIndent + "  </p:cBhvr>\n")
	fmt.Fprintf(&b, nodeIndent+"  <p:to><p:strVal val=\"%s\"/></p:to>\n",
		xmlEscape(def.Values[len(def.Values)-1]))
	b.WriteString(nodeIndent + "</p:set>\n")
	return b.String()
}
