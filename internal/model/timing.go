package model

import "math"

// FillMode controls what happens to an animated value after the
// animation's active window ends.
type FillMode int

const (
	FillRemove FillMode = iota // value reverts to the base value
	FillFreeze                 // final value persists
)

func (f FillMode) String() string {
	if f == FillFreeze {
		return "freeze"
	}
	return "remove"
}

// RepeatCount is either a finite iteration count or indefinite.
type RepeatCount struct {
	indefinite bool
	count      uint32
}

// RepeatFinite returns a repeat count of n iterations.
func RepeatFinite(n uint32) RepeatCount { return RepeatCount{count: n} }

// RepeatIndefinite returns an indefinite repeat count.
func RepeatIndefinite() RepeatCount { return RepeatCount{indefinite: true} }

// IsIndefinite reports whether the animation repeats forever.
func (r RepeatCount) IsIndefinite() bool { return r.indefinite }

// Count returns the finite iteration count, 0 when indefinite.
func (r RepeatCount) Count() uint32 {
	if r.indefinite {
		return 0
	}
	return r.count
}

// AnimationTiming describes one animation's active window.
type AnimationTiming struct {
	Begin    float64     // start offset in seconds; negative means CSS pre-roll
	Duration float64     // seconds per iteration, +Inf for "indefinite"
	Repeat   RepeatCount // iteration count
	Fill     FillMode    // behavior after the window ends
}

// NewTiming returns a single-iteration, remove-fill timing.
func NewTiming(begin, duration float64) AnimationTiming {
	return AnimationTiming{
		Begin:    begin,
		Duration: duration,
		Repeat:   RepeatFinite(1),
		Fill:     FillRemove,
	}
}

// EndTime returns the absolute end of the active window,
// +Inf for indefinite duration or repeat.
func (t AnimationTiming) EndTime() float64 {
	if t.Repeat.IsIndefinite() || math.IsInf(t.Duration, 1) {
		return math.Inf(1)
	}
	return t.Begin + t.Duration*float64(t.Repeat.Count())
}

// IsActiveAt reports whether the animation affects its target at time tm.
// A frozen animation stays active past its end.
func (t AnimationTiming) IsActiveAt(tm float64) bool {
	if tm < t.Begin {
		return false
	}
	if tm < t.EndTime() {
		return true
	}
	return t.Fill == FillFreeze
}

// LocalProgress maps absolute time tm to progress in [0,1] within the
// current iteration. After the window ends it clamps to 1.0 under
// FillFreeze and to 0.0 under FillRemove.
func (t AnimationTiming) LocalProgress(tm float64) float64 {
	if tm < t.Begin {
		return 0.0
	}
	if tm >= t.EndTime() {
		if t.Fill == FillFreeze {
			return 1.0
		}
		return 0.0
	}
	if t.Duration <= 0 || math.IsInf(t.Duration, 1) {
		return 0.0
	}
	elapsed := (tm - t.Begin) / t.Duration
	// Exact iteration boundaries read as the start of the next iteration;
	// the final instant is handled by the EndTime branch above.
	return elapsed - math.Floor(elapsed)
}

// Shifted returns the timing moved later by offset seconds.
func (t AnimationTiming) Shifted(offset float64) AnimationTiming {
	t.Begin += offset
	return t
}
