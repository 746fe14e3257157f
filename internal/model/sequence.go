package model

import "math"

// Sequence composes definitions one after another by shifting each
// definition's begin to the end of the previous one plus a gap.
type Sequence struct {
	Gap  float64 // seconds between consecutive steps
	defs []AnimationDefinition
	end  float64
}

// NewSequence returns a sequence with the given inter-step gap.
func NewSequence(gap float64) *Sequence {
	return &Sequence{Gap: gap}
}

// Append shifts def to start at the current sequence end and adds it.
// Definitions with indefinite end extend the sequence by one iteration
// of their duration.
func (q *Sequence) Append(def AnimationDefinition) {
	offset := q.end
	if len(q.defs) > 0 {
		offset += q.Gap
	}
	def.ShiftBegin(offset)
	q.defs = append(q.defs, def)

	end := def.EndTime()
	if math.IsInf(end, 1) {
		end = def.Timing.Begin + def.Timing.Duration
		if math.IsInf(end, 1) {
			end = def.Timing.Begin
		}
	}
	if end > q.end {
		q.end = end
	}
}

// Definitions returns the composed, shifted definitions.
func (q *Sequence) Definitions() []AnimationDefinition { return q.defs }

// Duration returns the total sequence span in seconds.
func (q *Sequence) Duration() float64 { return q.end }
