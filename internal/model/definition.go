package model

import (
	"fmt"
	"math"
)

// AnimationType identifies the source animation element kind.
type AnimationType int

const (
	Animate AnimationType = iota
	AnimateTransform
	AnimateColor
	AnimateMotion
	Set
)

func (a AnimationType) String() string {
	switch a {
	case AnimateTransform:
		return "animateTransform"
	case AnimateColor:
		return "animateColor"
	case AnimateMotion:
		return "animateMotion"
	case Set:
		return "set"
	default:
		return "animate"
	}
}

// CalcMode is the interpolation strategy between keyframes.
type CalcMode int

const (
	CalcLinear CalcMode = iota
	CalcDiscrete
	CalcPaced
	CalcSpline
)

func (c CalcMode) String() string {
	switch c {
	case CalcDiscrete:
		return "discrete"
	case CalcPaced:
		return "paced"
	case CalcSpline:
		return "spline"
	default:
		return "linear"
	}
}

// TransformType is the geometric operation of an animateTransform.
type TransformType int

const (
	TransformTranslate TransformType = iota
	TransformScale
	TransformRotate
	TransformSkewX
	TransformSkewY
	TransformMatrix
)

func (t TransformType) String() string {
	switch t {
	case TransformScale:
		return "scale"
	case TransformRotate:
		return "rotate"
	case TransformSkewX:
		return "skewX"
	case TransformSkewY:
		return "skewY"
	case TransformMatrix:
		return "matrix"
	default:
		return "translate"
	}
}

// AdditiveMode controls whether a definition replaces or sums with
// other animations on the same attribute.
type AdditiveMode int

const (
	AdditiveReplace AdditiveMode = iota
	AdditiveSum
)

// AccumulateMode controls whether repeat iterations build on each other.
type AccumulateMode int

const (
	AccumulateNone AccumulateMode = iota
	AccumulateSum
)

// ValidationError reports a malformed definition. It is always
// recoverable: callers skip the definition and record a warning.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid animation definition: %s: %s", e.Field, e.Reason)
}

// Keyframe is a single waypoint in an animation's value progression.
type Keyframe struct {
	Time   float64 // normalized position in [0,1]
	Values []string
	Easing string // timing-function name or cubic-bezier(...), empty for linear
}

// Validate checks the keyframe invariants.
func (k Keyframe) Validate() error {
	if k.Time < 0 || k.Time > 1 {
		return &ValidationError{Field: "time", Reason: fmt.Sprintf("%v outside [0,1]", k.Time)}
	}
	if len(k.Values) == 0 {
		return &ValidationError{Field: "values", Reason: "empty"}
	}
	return nil
}

// Spline holds the four cubic-Bézier control values (x1,y1,x2,y2)
// for one keyframe segment.
type Spline [4]float64

// AnimationDefinition is one parsed animation track: which element and
// attribute it drives, the value list, and how values progress in time.
// Immutable after validation except for Sequence shifting Timing.Begin.
type AnimationDefinition struct {
	ElementID       string
	Type            AnimationType
	TargetAttribute string
	Values          []string
	Timing          AnimationTiming
	KeyTimes        []float64 // nil, or ascending, len == len(Values), each in [0,1]
	KeySplines      []Spline  // nil, or len == len(Values)-1, only with CalcSpline
	CalcMode        CalcMode
	Transform       *TransformType // set only for AnimateTransform
	Additive        AdditiveMode
	Accumulate      AccumulateMode
}

// NewDefinition validates and returns a definition. Violated invariants
// yield a *ValidationError, never a panic.
func NewDefinition(d AnimationDefinition) (AnimationDefinition, error) {
	if d.ElementID == "" {
		return d, &ValidationError{Field: "element_id", Reason: "empty"}
	}
	if d.TargetAttribute == "" {
		return d, &ValidationError{Field: "target_attribute", Reason: "empty"}
	}
	if len(d.Values) == 0 {
		return d, &ValidationError{Field: "values", Reason: "empty"}
	}
	if d.KeyTimes != nil {
		if len(d.KeyTimes) != len(d.Values) {
			return d, &ValidationError{Field: "key_times", Reason: "length mismatch with values"}
		}
		prev := math.Inf(-1)
		for _, kt := range d.KeyTimes {
			if kt < 0 || kt > 1 {
				return d, &ValidationError{Field: "key_times", Reason: fmt.Sprintf("%v outside [0,1]", kt)}
			}
			if kt < prev {
				return d, &ValidationError{Field: "key_times", Reason: "not ascending"}
			}
			prev = kt
		}
	}
	if d.KeySplines != nil {
		if d.CalcMode != CalcSpline {
			return d, &ValidationError{Field: "key_splines", Reason: "requires calcMode=spline"}
		}
		if len(d.KeySplines) != len(d.Values)-1 {
			return d, &ValidationError{Field: "key_splines", Reason: "length must be len(values)-1"}
		}
		for _, sp := range d.KeySplines {
			for _, v := range sp {
				if v < 0 || v > 1 {
					return d, &ValidationError{Field: "key_splines", Reason: fmt.Sprintf("control value %v outside [0,1]", v)}
				}
			}
		}
	}
	return d, nil
}

// EndTime is shorthand for the timing window end.
func (d *AnimationDefinition) EndTime() float64 { return d.Timing.EndTime() }

// ShiftBegin moves the animation later by offset seconds. This is the
// single sanctioned mutation after validation, used when composing
// definitions into a sequence.
func (d *AnimationDefinition) ShiftBegin(offset float64) {
	d.Timing = d.Timing.Shifted(offset)
}
