package model

import (
	"errors"
	"testing"
)

func validDefinition() AnimationDefinition {
	return AnimationDefinition{
		ElementID:       "r1",
		Type:            Animate,
		TargetAttribute: "opacity",
		Values:          []string{"0", "1"},
		Timing:          NewTiming(0, 2),
	}
}

func TestKeyframeValidate(t *testing.T) {
	tests := []struct {
		name  string
		kf    Keyframe
		field string // empty means valid
	}{
		{"plain waypoint", Keyframe{Time: 0.5, Values: []string{"1"}}, ""},
		{"start boundary", Keyframe{Time: 0, Values: []string{"0"}, Easing: "ease-in"}, ""},
		{"end boundary", Keyframe{Time: 1, Values: []string{"0", "1"}}, ""},
		{"negative time", Keyframe{Time: -0.1, Values: []string{"0"}}, "time"},
		{"time past one", Keyframe{Time: 1.5, Values: []string{"0"}}, "time"},
		{"no values", Keyframe{Time: 0.5}, "values"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.kf.Validate()
			if tt.field == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("error field = %q, want %q", verr.Field, tt.field)
			}
		})
	}
}

func TestNewDefinitionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AnimationDefinition)
		field  string
	}{
		{"empty element id", func(d *AnimationDefinition) { d.ElementID = "" }, "element_id"},
		{"empty attribute", func(d *AnimationDefinition) { d.TargetAttribute = "" }, "target_attribute"},
		{"empty values", func(d *AnimationDefinition) { d.Values = nil }, "values"},
		{"key times length", func(d *AnimationDefinition) { d.KeyTimes = []float64{0} }, "key_times"},
		{"key times range", func(d *AnimationDefinition) { d.KeyTimes = []float64{0, 1.5} }, "key_times"},
		{"key times order", func(d *AnimationDefinition) { d.KeyTimes = []float64{1, 0} }, "key_times"},
		{"splines without spline mode", func(d *AnimationDefinition) {
			d.KeySplines = []Spline{{0, 0, 1, 1}}
		}, "key_splines"},
		{"splines length", func(d *AnimationDefinition) {
			d.CalcMode = CalcSpline
			d.KeySplines = []Spline{{0, 0, 1, 1}, {0, 0, 1, 1}}
		}, "key_splines"},
		{"spline control range", func(d *AnimationDefinition) {
			d.CalcMode = CalcSpline
			d.KeySplines = []Spline{{0, 0, 1, 2}}
		}, "key_splines"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := validDefinition()
			tt.mutate(&def)
			_, err := NewDefinition(def)
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("error field = %q, want %q", verr.Field, tt.field)
			}
		})
	}

	if _, err := NewDefinition(validDefinition()); err != nil {
		t.Errorf("valid definition rejected: %v", err)
	}
}

func TestBuilderChain(t *testing.T) {
	def, err := NewBuilder("r1", "fill").
		Type(AnimateColor).
		Values([]string{"#ff0000", "#00ff00"}).
		Timing(NewTiming(1, 3)).
		KeyTimes([]float64{0, 1}).
		CalcMode(CalcSpline).
		KeySplines([]Spline{{0.42, 0, 0.58, 1}}).
		Additive(AdditiveSum).
		Accumulate(AccumulateSum).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if def.Type != AnimateColor || def.Additive != AdditiveSum {
		t.Errorf("builder lost fields: %+v", def)
	}
	if def.EndTime() != 4 {
		t.Errorf("EndTime = %v, want 4", def.EndTime())
	}
}

func TestBuilderValueSemantics(t *testing.T) {
	base := NewBuilder("r1", "opacity").Values([]string{"0", "1"})
	a := base.Timing(NewTiming(0, 1))
	b := base.Timing(NewTiming(0, 9))

	da, _ := a.Build()
	db, _ := b.Build()
	if da.Timing.Duration == db.Timing.Duration {
		t.Error("builder steps alias shared state")
	}
}

func TestSequenceComposition(t *testing.T) {
	seq := NewSequence(0.5)

	first := validDefinition() // 0..2s
	second := validDefinition()
	seq.Append(first)
	seq.Append(second)

	defs := seq.Definitions()
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	if defs[0].Timing.Begin != 0 {
		t.Errorf("first begin = %v, want 0", defs[0].Timing.Begin)
	}
	if defs[1].Timing.Begin != 2.5 {
		t.Errorf("second begin = %v, want 2.5", defs[1].Timing.Begin)
	}
	if seq.Duration() != 4.5 {
		t.Errorf("sequence duration = %v, want 4.5", seq.Duration())
	}
}

func TestSceneMerge(t *testing.T) {
	a := NewScene(1)
	a.SetProperty("r1", "opacity", "0.5")
	a.SetProperty("r1", "x", "10")

	b := NewScene(1)
	b.SetProperty("r1", "opacity", "0.9")
	b.SetProperty("r2", "y", "20")

	a.Merge(b)

	if v, _ := a.Get("r1", "opacity"); v != "0.9" {
		t.Errorf("merge should prefer other: got %q", v)
	}
	if v, _ := a.Get("r1", "x"); v != "10" {
		t.Errorf("merge dropped existing key: got %q", v)
	}
	if v, _ := a.Get("r2", "y"); v != "20" {
		t.Errorf("merge missed new element: got %q", v)
	}
}

func TestSummaryComplexity(t *testing.T) {
	s := NewSummary()
	def := validDefinition()
	s.Record(&def)
	if got := s.CalculateComplexity(); got != ComplexitySimple {
		t.Errorf("single short animation complexity = %v, want simple", got)
	}

	busy := NewSummary()
	for i := 0; i < 12; i++ {
		d := validDefinition()
		busy.Record(&d)
	}
	motion := validDefinition()
	motion.Type = AnimateMotion
	busy.Record(&motion)
	if got := busy.CalculateComplexity(); got == ComplexitySimple {
		t.Errorf("busy document complexity = %v, want above simple", got)
	}
}

func TestSummaryWarnDeduplicates(t *testing.T) {
	s := NewSummary()
	s.Warn("same")
	s.Warn("same")
	s.Warn("other")
	if len(s.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2 entries", s.Warnings)
	}
}
