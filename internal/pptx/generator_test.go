package pptx

import (
	"strings"
	"testing"

	"github.com/ivlev/svg2pptx/internal/model"
)

func buildDef(t *testing.T, b model.Builder) model.AnimationDefinition {
	t.Helper()
	def, err := b.Build()
	if err != nil {
		t.Fatalf("build definition: %v", err)
	}
	return def
}

func TestGenerateEmptyInput(t *testing.T) {
	g := New(nil)
	if xml := g.Generate(nil, nil); xml != "" {
		t.Errorf("empty input produced output:\n%s", xml)
	}
}

func TestGenerateFade(t *testing.T) {
	fade := buildDef(t, model.NewBuilder("r1", "opacity").
		Values([]string{"0", "1"}).
		Timing(model.NewTiming(0, 2)))

	xml := New(nil).Generate([]model.AnimationDefinition{fade}, nil)
	for _, want := range []string{
		"<p:timing>",
		`nodeType="tmRoot"`,
		`nodeType="mainSeq"`,
		`<p:animEffect transition="in" filter="fade">`,
		`dur="2000"`,
		`spid="r1"`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("output missing %q:\n%s", want, xml)
		}
	}
}

func TestGenerateFadeOutDirection(t *testing.T) {
	fade := buildDef(t, model.NewBuilder("r1", "opacity").
		Values([]string{"1", "0"}).
		Timing(model.NewTiming(0, 1)))
	xml := New(nil).Generate([]model.AnimationDefinition{fade}, nil)
	if !strings.Contains(xml, `transition="out"`) {
		t.Errorf("falling opacity should fade out:\n%s", xml)
	}
}

func TestGenerateColorKeyframes(t *testing.T) {
	color := buildDef(t, model.NewBuilder("r1", "fill").
		Values([]string{"#ff0000", "#00ff00", "#0000ff"}).
		Timing(model.NewTiming(0, 3)))

	xml := New(nil).Generate([]model.AnimationDefinition{color}, nil)
	for _, want := range []string{
		`<p:animClr clrSpc="rgb">`,
		`<p:tav tm="0"><p:val><a:srgbClr val="FF0000"/></p:val></p:tav>`,
		`<p:tav tm="1500"><p:val><a:srgbClr val="00FF00"/></p:val></p:tav>`,
		`<p:tav tm="3000"><p:val><a:srgbClr val="0000FF"/></p:val></p:tav>`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("output missing %q:\n%s", want, xml)
		}
	}
}

func TestGenerateMotionPath(t *testing.T) {
	motion := buildDef(t, model.NewBuilder("m1", "position").
		Type(model.AnimateMotion).
		Values([]string{"0,0", "100,0", "100,100"}).
		Timing(model.NewTiming(0, 3)))

	xml := New(nil).Generate([]model.AnimationDefinition{motion}, nil)
	if !strings.Contains(xml, `path="M 0,0 L 100,0 L 100,100"`) {
		t.Errorf("output missing point path:\n%s", xml)
	}
}

func TestGenerateMotionLiteralPath(t *testing.T) {
	motion := buildDef(t, model.NewBuilder("m1", "position").
		Type(model.AnimateMotion).
		Values([]string{"M 10,10 L 50,50"}).
		Timing(model.NewTiming(0, 1)))

	xml := New(nil).Generate([]model.AnimationDefinition{motion}, nil)
	if !strings.Contains(xml, `path="M 10,10 L 50,50"`) {
		t.Errorf("single path value should pass through:\n%s", xml)
	}
}

func TestGenerateRotate(t *testing.T) {
	rotate := buildDef(t, model.NewBuilder("r1", "transform").
		Type(model.AnimateTransform).
		Transform(model.TransformRotate).
		Values([]string{"0", "90"}).
		Timing(model.NewTiming(0, 1)))

	xml := New(nil).Generate([]model.AnimationDefinition{rotate}, nil)
	if !strings.Contains(xml, `<p:animRot by="5400000">`) {
		t.Errorf("90 degrees should be 5400000 angle units:\n%s", xml)
	}
	if !strings.Contains(xml, `<p:attrName>r</p:attrName>`) {
		t.Errorf("rotation should target the r attribute:\n%s", xml)
	}
}

func TestGenerateScale(t *testing.T) {
	scale := buildDef(t, model.NewBuilder("r1", "transform").
		Type(model.AnimateTransform).
		Transform(model.TransformScale).
		Values([]string{"1", "2, 0.5"}).
		Timing(model.NewTiming(0, 1)))

	xml := New(nil).Generate([]model.AnimationDefinition{scale}, nil)
	if !strings.Contains(xml, `<p:from x="1" y="1"/>`) {
		t.Errorf("single factor should apply to both axes:\n%s", xml)
	}
	if !strings.Contains(xml, `<p:to x="2" y="0.5"/>`) {
		t.Errorf("output missing scale target:\n%s", xml)
	}
}

func TestGenerateSet(t *testing.T) {
	set := buildDef(t, model.NewBuilder("r1", "visibility").
		Type(model.Set).
		Values([]string{"hidden"}).
		Timing(model.NewTiming(1.5, 1)))

	xml := New(nil).Generate([]model.AnimationDefinition{set}, nil)
	for _, want := range []string{
		"<p:set>",
		`delay="1500"`,
		`<p:to><p:strVal val="hidden"/></p:to>`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("output missing %q:\n%s", want, xml)
		}
	}
}

func TestGenerateUnmappableTransformOmitted(t *testing.T) {
	translate := buildDef(t, model.NewBuilder("r1", "transform").
		Type(model.AnimateTransform).
		Transform(model.TransformTranslate).
		Values([]string{"0 0", "100 0"}).
		Timing(model.NewTiming(0, 1)))

	if xml := New(nil).Generate([]model.AnimationDefinition{translate}, nil); xml != "" {
		t.Errorf("translate-only input should yield no tree:\n%s", xml)
	}
}

func TestGenerateValueAnimation(t *testing.T) {
	move := buildDef(t, model.NewBuilder("r1", "x").
		Values([]string{"0", "200"}).
		Timing(model.NewTiming(0, 1.5)))

	xml := New(nil).Generate([]model.AnimationDefinition{move}, nil)
	for _, want := range []string{
		`<p:anim calcmode="lin" valueType="str">`,
		`<p:tav tm="0"><p:val><p:strVal val="0"/></p:val></p:tav>`,
		`<p:tav tm="1500"><p:val><p:strVal val="200"/></p:val></p:tav>`,
		`<p:attrName>x</p:attrName>`,
	} {
		if !strings.Contains(xml, want) {
			t.Errorf("output missing %q:\n%s", want, xml)
		}
	}
}

func TestGenerateShapeMapping(t *testing.T) {
	fade := buildDef(t, model.NewBuilder("box", "opacity").
		Values([]string{"0", "1"}).
		Timing(model.NewTiming(0, 1)))

	mapper := StaticMapper{"box": "4"}
	xml := New(mapper).Generate([]model.AnimationDefinition{fade}, nil)
	if !strings.Contains(xml, `spid="4"`) {
		t.Errorf("mapped shape id missing:\n%s", xml)
	}
	if strings.Contains(xml, `spid="box"`) {
		t.Errorf("raw element id should not appear when mapped:\n%s", xml)
	}
}

func TestGenerateEasingPercents(t *testing.T) {
	eased := buildDef(t, model.NewBuilder("r1", "opacity").
		Values([]string{"0", "1"}).
		Timing(model.NewTiming(0, 1)).
		CalcMode(model.CalcSpline).
		KeySplines([]model.Spline{{0.5, 0, 0.5, 1}}))

	xml := New(nil).Generate([]model.AnimationDefinition{eased}, nil)
	if !strings.Contains(xml, `accel="50000" decel="50000"`) {
		t.Errorf("symmetric ease-in-out spline should yield 50%%/50%%:\n%s", xml)
	}
}

func TestIdAllocatorMonotonic(t *testing.T) {
	ids := NewIdAllocator()
	prev := 0
	for i := 0; i < 5; i++ {
		next := ids.Next()
		if next <= prev {
			t.Fatalf("id %d after %d, want strictly increasing", next, prev)
		}
		prev = next
	}
	if prev != 5 {
		t.Errorf("fifth id = %d, want ids to start at 1", prev)
	}
}

func TestGenerateDistinctIDs(t *testing.T) {
	defs := []model.AnimationDefinition{
		buildDef(t, model.NewBuilder("a", "opacity").
			Values([]string{"0", "1"}).Timing(model.NewTiming(0, 1))),
		buildDef(t, model.NewBuilder("b", "opacity").
			Values([]string{"0", "1"}).Timing(model.NewTiming(0, 1))),
	}
	xml := New(nil).Generate(defs, nil)

	seen := make(map[string]bool)
	for _, line := range strings.Split(xml, "\n") {
		idx := strings.Index(line, `id="`)
		if idx < 0 {
			continue
		}
		rest := line[idx+len(`id="`):]
		end := strings.Index(rest, `"`)
		if end < 0 {
			continue
		}
		id := rest[:end]
		if seen[id] {
			t.Fatalf("duplicate timing node id %q:\n%s", id, xml)
		}
		seen[id] = true
	}
	if len(seen) < 5 {
		t.Errorf("found %d ids, want root, seq, par and one per behavior", len(seen))
	}
}
