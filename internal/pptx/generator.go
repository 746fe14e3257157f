// Package pptx renders approved animation definitions into the
// presentation format's native timing tree: one sequential root whose
// single parallel group holds one effect node per animation.
package pptx

import (
	"fmt"
	"math"
	"strings"

	"github.com/ivlev/svg2pptx/internal/model"
)

// angleUnit converts degrees to the target format's 1/60000-degree
// angle unit.
const angleUnit = 60000

// Generator renders timing XML. One Generator serves one conversion
// call; its id allocator is never shared between documents.
type Generator struct {
	ids    *IdAllocator
	mapper ShapeMapper
}

// New returns a generator resolving shape references through mapper,
// which may be nil.
func New(mapper ShapeMapper) *Generator {
	return &Generator{ids: NewIdAllocator(), mapper: mapper}
}

// Generate renders the timing tree for defs. Scenes inform the overall
// timeline length only. Definitions with no native representation are
// omitted, never errors. An empty node list yields an empty string.
func (g *Generator) Generate(defs []model.AnimationDefinition, scenes []*model.AnimationScene) string {
	var nodes []string
	for i := range defs {
		if node, ok := g.nodeFor(&defs[i]); ok {
			nodes = append(nodes, node)
		}
	}
	if len(nodes) == 0 {
		return ""
	}

	rootID := g.ids.Next()
	seqID := g.ids.Next()
	parID := g.ids.Next()

	var b strings.Builder
	b.WriteString("<p:timing>\n")
	b.WriteString("  <p:tnLst>\n")
	b.WriteString("    <p:par>\n")
	fmt.Fprintf(&b, "      <p:cTn id=\"%d\" dur=\"indefinite\" restart=\"never\" nodeType=\"tmRoot\">\n", rootID)
	b.WriteString("        <p:childTnLst>\n")
	b.WriteString("          <p:seq concurrent=\"1\" nextAc=\"seek\">\n")
	fmt.Fprintf(&b, "            <p:cTn id=\"%d\" dur=\"indefinite\" nodeType=\"mainSeq\">\n", seqID)
	b.WriteString("              <p:childTnLst>\n")
	b.WriteString("                <p:par>\n")
	fmt.Fprintf(&b, "                  <p:cTn id=\"%d\" fill=\"hold\">\n", parID)
	b.WriteString("                    <p:childTnLst>\n")
	for _, node := range nodes {
		b.WriteString(node)
	}
	b.WriteString("                    </p:childTnLst>\n")
	b.WriteString("                  </p:cTn>\n")
	b.WriteString("                </p:par>\n")
	b.WriteString("              </p:childTnLst>\n")
	b.WriteString("            </p:cTn>\n")
	b.WriteString("          </p:seq>\n")
	b.WriteString("        </p:childTnLst>\n")
	b.WriteString("      </p:cTn>\n")
	b.WriteString("    </p:par>\n")
	b.WriteString("  </p:tnLst>\n")
	b.WriteString("</p:timing>\n")
	return b.String()
}

// nodeFor dispatches one definition to its native effect node.
func (g *Generator) nodeFor(def *model.AnimationDefinition) (string, bool) {
	switch def.Type {
	case model.Set:
		return g.setNode(def), true
	case model.AnimateMotion:
		return g.motionNode(def), true
	case model.AnimateColor:
		return g.colorNode(def), true
	case model.AnimateTransform:
		if def.Transform == nil {
			return "", false
		}
		switch *def.Transform {
		case model.TransformScale:
			return g.scaleNode(def), true
		case model.TransformRotate:
			return g.rotateNode(def), true
		default:
			// Skews, matrices and raw translates have no native node.
			return "", false
		}
	case model.Animate:
		switch {
		case isOpacityAttribute(def.TargetAttribute):
			return g.fadeNode(def), true
		case isColorAttribute(def.TargetAttribute):
			return g.colorNode(def), true
		case isSizeAttribute(def.TargetAttribute), isPositionAttribute(def.TargetAttribute):
			return g.valueNode(def), true
		default:
			return g.genericNode(def), true
		}
	}
	return "", false
}

func isOpacityAttribute(attr string) bool {
	switch attr {
	case "opacity", "fill-opacity", "stroke-opacity":
		return true
	}
	return false
}

func isColorAttribute(attr string) bool {
	switch attr {
	case "fill", "stroke":
		return true
	}
	return false
}

func isSizeAttribute(attr string) bool {
	switch attr {
	case "width", "height", "r", "rx", "ry":
		return true
	}
	return false
}

func isPositionAttribute(attr string) bool {
	switch attr {
	case "x", "y", "cx", "cy":
		return true
	}
	return false
}

// durationMillis truncates the per-iteration duration to whole
// milliseconds; "indefinite" for an unbounded duration.
func durationMillis(def *model.AnimationDefinition) string {
	if math.IsInf(def.Timing.Duration, 1) {
		return "indefinite"
	}
	return fmt.Sprintf("%d", int(def.Timing.Duration*1000))
}

func delayMillis(def *model.AnimationDefinition) int {
	begin := def.Timing.Begin
	if begin < 0 {
		begin = 0
	}
	return int(begin * 1000)
}

// easingPercents maps the first keySpline to the native accel/decel
// pair (0-50000, i.e. 0-50%). accel measures how far the curve's start
// slope y1/x1 sits below 1, decel the same for the end slope.
func easingPercents(def *model.AnimationDefinition) (accel, decel int) {
	if def.CalcMode != model.CalcSpline || len(def.KeySplines) == 0 {
		return 0, 0
	}
	sp := def.KeySplines[0]
	x1, y1, x2, y2 := sp[0], sp[1], sp[2], sp[3]
	if x1 > 0 {
		if ratio := y1 / x1; ratio < 1 {
			accel = clampPercent((1 - ratio) * 50000)
		}
	}
	if x2 < 1 {
		if ratio := (1 - y2) / (1 - x2); ratio < 1 {
			decel = clampPercent((1 - ratio) * 50000)
		}
	}
	return accel, decel
}

func clampPercent(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 50000 {
		return 50000
	}
	return int(v)
}

func xmlEscape(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}
