// Package policy decides which animation definitions may be natively
// represented in the target timing tree.
package policy

import (
	"math"

	"github.com/ivlev/svg2pptx/internal/model"
)

// Rejection reason tags. Stable strings: callers branch on them.
const (
	ReasonUnsupportedCalcMode = "unsupported_calc_mode"
	ReasonTooManyKeyframes    = "too_many_keyframes"
	ReasonExceedsLimits       = "exceeds_limits"
	ReasonUnsupportedRepeat   = "unsupported_repeat"
)

// Limits are the complexity thresholds of the gate.
type Limits struct {
	MaxKeyframes int     `yaml:"max_keyframes"` // maximum values per definition
	MaxDuration  float64 `yaml:"max_duration"`  // seconds, 0 disables the check
	AllowPaced   bool    `yaml:"allow_paced"`   // accept calcMode=paced
}

// DefaultLimits returns the standard gate configuration.
func DefaultLimits() Limits {
	return Limits{
		MaxKeyframes: 10,
		MaxDuration:  300,
		AllowPaced:   false,
	}
}

// Decision is the gate's verdict for one definition.
type Decision struct {
	Approved bool
	Reason   string // rejection tag, empty when approved
}

// Decide classifies one definition against the limits.
func Decide(def *model.AnimationDefinition, limits Limits) Decision {
	if !limits.AllowPaced && def.CalcMode == model.CalcPaced {
		return Decision{Reason: ReasonUnsupportedCalcMode}
	}
	if limits.MaxKeyframes > 0 && len(def.Values) > limits.MaxKeyframes {
		return Decision{Reason: ReasonTooManyKeyframes}
	}
	if def.Type == model.AnimateMotion && def.Timing.Repeat.IsIndefinite() {
		return Decision{Reason: ReasonUnsupportedRepeat}
	}
	if limits.MaxDuration > 0 {
		if end := def.EndTime(); !math.IsInf(end, 1) && end > limits.MaxDuration {
			return Decision{Reason: ReasonExceedsLimits}
		}
		if !math.IsInf(def.Timing.Duration, 1) && def.Timing.Duration > limits.MaxDuration {
			return Decision{Reason: ReasonExceedsLimits}
		}
	}
	return Decision{Approved: true}
}

// Partition splits definitions into approved and rejected, returning
// the rejection tags in definition order.
func Partition(defs []model.AnimationDefinition, limits Limits) (approved, rejected []model.AnimationDefinition, reasons []string) {
	for i := range defs {
		d := Decide(&defs[i], limits)
		if d.Approved {
			approved = append(approved, defs[i])
			continue
		}
		rejected = append(rejected, defs[i])
		reasons = append(reasons, d.Reason)
	}
	return approved, rejected, reasons
}
