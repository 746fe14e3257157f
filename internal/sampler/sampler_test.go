package sampler

import (
	"reflect"
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

func fadeDef(t *testing.T) model.AnimationDefinition {
	t.Helper()
	return buildDef(t, model.NewBuilder("r1", "opacity").
		Values([]string{"0", "1"}).
		Timing(model.NewTiming(0, 2)))
}

func TestSampleEmpty(t *testing.T) {
	s := New(DefaultConfig())
	if scenes := s.Sample(nil, 0); scenes != nil {
		t.Errorf("got %v scenes for no definitions, want none", len(scenes))
	}
}

func TestSampleEndpoints(t *testing.T) {
	fade := buildDef(t, model.NewBuilder("r1", "opacity").
		Values([]string{"0", "1"}).
		Timing(model.AnimationTiming{
			Duration: 2,
			Repeat:   model.RepeatFinite(1),
			Fill:     model.FillFreeze,
		}))
	s := New(Config{SampleRate: 10, Optimize: false})
	scenes := s.Sample([]model.AnimationDefinition{fade}, 0)
	if len(scenes) < 2 {
		t.Fatalf("got %d scenes, want at least first and last", len(scenes))
	}
	first, last := scenes[0], scenes[len(scenes)-1]
	if first.Time != 0 {
		t.Errorf("first scene at %v, want 0", first.Time)
	}
	if last.Time != 2.0 {
		t.Errorf("last scene at %v, want 2", last.Time)
	}
	if v, ok := first.Get("r1", "opacity"); !ok || v != "0" {
		t.Errorf("first opacity = %q, want 0", v)
	}
	if v, ok := last.Get("r1", "opacity"); !ok || v != "1" {
		t.Errorf("last opacity = %q, want 1", v)
	}
}

func TestSampleDeterministic(t *testing.T) {
	defs := []model.AnimationDefinition{
		fadeDef(t),
		buildDef(t, model.NewBuilder("r1", "x").
			Values([]string{"0", "100"}).
			Timing(model.NewTiming(0.5, 1))),
	}
	s := New(DefaultConfig())
	a := s.Sample(defs, 0)
	b := s.Sample(defs, 0)
	if !reflect.DeepEqual(a, b) {
		t.Error("two runs over identical input differ")
	}
}

func TestSampleWorkersMatchSequential(t *testing.T) {
	defs := []model.AnimationDefinition{fadeDef(t)}
	seq := New(Config{SampleRate: 30, Workers: 1}).Sample(defs, 0)
	par := New(Config{SampleRate: 30, Workers: 4}).Sample(defs, 0)
	if !reflect.DeepEqual(seq, par) {
		t.Error("parallel sampling differs from sequential")
	}
}

func TestAdditiveSum(t *testing.T) {
	base := buildDef(t, model.NewBuilder("c1", "r").
		Values([]string{"10", "20"}).
		Timing(model.NewTiming(0, 2)))
	add := buildDef(t, model.NewBuilder("c1", "r").
		Values([]string{"5"}).
		Timing(model.NewTiming(0, 2)).
		Additive(model.AdditiveSum))

	scene := sceneAt([]model.AnimationDefinition{base, add}, 1)
	if v, ok := scene.Get("c1", "r"); !ok || v != "20" {
		t.Errorf("summed value at t=1 = %q, want 20", v)
	}
}

func TestAdditiveNonNumericLastWins(t *testing.T) {
	base := buildDef(t, model.NewBuilder("c1", "visibility").
		Values([]string{"visible"}).
		Timing(model.NewTiming(0, 2)))
	add := buildDef(t, model.NewBuilder("c1", "visibility").
		Values([]string{"hidden"}).
		Timing(model.NewTiming(0, 2)).
		Additive(model.AdditiveSum))

	scene := sceneAt([]model.AnimationDefinition{base, add}, 1)
	if v, _ := scene.Get("c1", "visibility"); v != "hidden" {
		t.Errorf("non-numeric additive = %q, want last additive value", v)
	}
}

func TestFreezeHoldsPastEnd(t *testing.T) {
	frozen := buildDef(t, model.NewBuilder("r1", "opacity").
		Values([]string{"0", "1"}).
		Timing(model.AnimationTiming{
			Duration: 1,
			Repeat:   model.RepeatFinite(1),
			Fill:     model.FillFreeze,
		}))

	scene := sceneAt([]model.AnimationDefinition{frozen}, 3)
	if v, ok := scene.Get("r1", "opacity"); !ok || v != "1" {
		t.Errorf("frozen value at t=3 = %q, want 1", v)
	}
}

func TestRemoveDropsPastEnd(t *testing.T) {
	def := fadeDef(t)
	scene := sceneAt([]model.AnimationDefinition{def}, 3)
	if !scene.Empty() {
		t.Errorf("scene past a remove-fill window should be empty, got %v", scene.States)
	}
}

func TestMotionSampling(t *testing.T) {
	motion := buildDef(t, model.NewBuilder("m1", "position").
		Type(model.AnimateMotion).
		Values([]string{"0,0", "100,0"}).
		Timing(model.NewTiming(0, 2)))

	scene := sceneAt([]model.AnimationDefinition{motion}, 1)
	if v, _ := scene.Get("m1", "position"); v != "50,0" {
		t.Errorf("motion midpoint = %q, want 50,0", v)
	}
}

func TestOptimizerDropsLinearIntermediates(t *testing.T) {
	sceneWith := func(tm float64, value string) *model.AnimationScene {
		sc := model.NewScene(tm)
		sc.SetProperty("r1", "x", value)
		return sc
	}
	scenes := []*model.AnimationScene{
		sceneWith(0, "0"),
		sceneWith(1, "50"),
		sceneWith(2, "100"),
	}
	out := optimizeScenes(scenes)
	if len(out) != 2 {
		t.Fatalf("got %d scenes, want first and last only", len(out))
	}
	if out[0].Time != 0 || out[1].Time != 2 {
		t.Errorf("kept scenes at %v and %v, want 0 and 2", out[0].Time, out[1].Time)
	}
}

func TestOptimizerKeepsNonlinearScenes(t *testing.T) {
	sceneWith := func(tm float64, value string) *model.AnimationScene {
		sc := model.NewScene(tm)
		sc.SetProperty("r1", "x", value)
		return sc
	}
	scenes := []*model.AnimationScene{
		sceneWith(0, "0"),
		sceneWith(1, "90"),
		sceneWith(2, "100"),
	}
	if out := optimizeScenes(scenes); len(out) != 3 {
		t.Errorf("got %d scenes, nonlinear middle must survive", len(out))
	}
}

func TestTotalDurationFallbacks(t *testing.T) {
	s := New(DefaultConfig())

	if d := s.totalDuration([]model.AnimationDefinition{fadeDef(t)}, 7); d != 7 {
		t.Errorf("explicit target = %v, want 7", d)
	}
	if d := s.totalDuration([]model.AnimationDefinition{fadeDef(t)}, 0); d != 2 {
		t.Errorf("longest end = %v, want 2", d)
	}

	spinner := buildDef(t, model.NewBuilder("r1", "transform").
		Type(model.AnimateTransform).
		Transform(model.TransformRotate).
		Values([]string{"0", "360"}).
		Timing(model.AnimationTiming{
			Duration: 2,
			Repeat:   model.RepeatIndefinite(),
		}))
	if d := s.totalDuration([]model.AnimationDefinition{spinner}, 0); d != 5.0 {
		t.Errorf("indefinite-only fallback = %v, want default duration", d)
	}
}
