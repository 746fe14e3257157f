package model

import "math"

// Complexity buckets a document's animation workload.
type Complexity int

const (
	ComplexitySimple Complexity = iota
	ComplexityModerate
	ComplexityComplex
	ComplexityVeryComplex
)

func (c Complexity) String() string {
	switch c {
	case ComplexityModerate:
		return "moderate"
	case ComplexityComplex:
		return "complex"
	case ComplexityVeryComplex:
		return "very_complex"
	default:
		return "simple"
	}
}

// AnimationSummary accumulates counters and feature flags while parsing
// and converting. Finalize with CalculateComplexity before returning it.
type AnimationSummary struct {
	TotalAnimations int
	ElementCount    int
	Duration        float64 // max end time seen, seconds

	HasTransforms bool
	HasMotion     bool
	HasColor      bool
	HasEasing     bool
	HasSequencing bool

	Complexity Complexity
	Warnings   []string

	elements map[string]struct{}
}

// NewSummary returns an empty summary.
func NewSummary() *AnimationSummary {
	return &AnimationSummary{elements: make(map[string]struct{})}
}

// Record folds one definition into the counters and feature flags.
func (s *AnimationSummary) Record(def *AnimationDefinition) {
	s.TotalAnimations++
	if s.elements == nil {
		s.elements = make(map[string]struct{})
	}
	if _, seen := s.elements[def.ElementID]; !seen {
		s.elements[def.ElementID] = struct{}{}
		s.ElementCount++
	}
	if end := def.EndTime(); !math.IsInf(end, 1) && end > s.Duration {
		s.Duration = end
	}
	switch def.Type {
	case AnimateTransform:
		s.HasTransforms = true
	case AnimateMotion:
		s.HasMotion = true
	case AnimateColor:
		s.HasColor = true
	}
	switch def.TargetAttribute {
	case "fill", "stroke", "stop-color", "color":
		s.HasColor = true
	}
	if def.CalcMode == CalcSpline || len(def.KeySplines) > 0 {
		s.HasEasing = true
	}
	if def.Timing.Begin > 0 {
		s.HasSequencing = true
	}
}

// Warn appends a warning, dropping exact duplicates.
func (s *AnimationSummary) Warn(msg string) {
	for _, w := range s.Warnings {
		if w == msg {
			return
		}
	}
	s.Warnings = append(s.Warnings, msg)
}

// CalculateComplexity derives the complexity bucket from a weighted
// score over the accumulated counters. Weights are heuristic; see the
// thresholds below for the bucket edges.
func (s *AnimationSummary) CalculateComplexity() Complexity {
	score := float64(s.TotalAnimations)
	if s.HasTransforms {
		score += 2
	}
	if s.HasMotion {
		score += 3
	}
	if s.HasColor {
		score++
	}
	if s.HasEasing {
		score += 2
	}
	if s.HasSequencing {
		score += 2
	}
	score += s.Duration / 5

	switch {
	case score <= 4:
		s.Complexity = ComplexitySimple
	case score <= 8:
		s.Complexity = ComplexityModerate
	case score <= 20:
		s.Complexity = ComplexityComplex
	default:
		s.Complexity = ComplexityVeryComplex
	}
	return s.Complexity
}
