// Package sampler turns a definition list into a time-ordered sequence
// of per-element attribute snapshots, resolving conflicts between
// animations that drive the same attribute at the same time.
package sampler

import (
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ivlev/svg2pptx/internal/model"
)

// Config tunes the sampling pass.
type Config struct {
	SampleRate      float64 `yaml:"sample_rate"`      // uniform grid frequency, Hz
	Precision       float64 `yaml:"precision"`        // merge tolerance between sample points, seconds
	DefaultDuration float64 `yaml:"default_duration"` // used when no definition bounds the timeline
	Optimize        bool    `yaml:"optimize"`         // drop linearly predictable intermediate scenes
	Workers         int     `yaml:"workers"`          // fork-join width, <=1 means sequential
}

// DefaultConfig returns the standard 30 Hz sampling setup.
func DefaultConfig() Config {
	return Config{
		SampleRate:      30,
		Precision:       0.001,
		DefaultDuration: 5.0,
		Optimize:        true,
		Workers:         1,
	}
}

// Sampler computes scenes from definitions. Sampling is deterministic:
// identical inputs produce identical scene sequences.
type Sampler struct {
	cfg Config
}

// New returns a sampler, filling zero config fields with defaults.
func New(cfg Config) *Sampler {
	def := DefaultConfig()
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	if cfg.Precision <= 0 {
		cfg.Precision = def.Precision
	}
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = def.DefaultDuration
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Sampler{cfg: cfg}
}

// Sample produces the scene sequence for defs. targetDuration bounds
// the timeline when positive; otherwise the longest finite animation
// end is used, falling back to the default duration.
func (s *Sampler) Sample(defs []model.AnimationDefinition, targetDuration float64) []*model.AnimationScene {
	if len(defs) == 0 {
		return nil
	}

	duration := s.totalDuration(defs, targetDuration)
	times := s.sampleTimes(defs, duration)

	scenes := make([]*model.AnimationScene, len(times))
	if s.cfg.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(s.cfg.Workers)
		for i, t := range times {
			i, t := i, t
			g.Go(func() error {
				scenes[i] = sceneAt(defs, t)
				return nil
			})
		}
		// Workers never return errors; Wait only joins them.
		_ = g.Wait()
	} else {
		for i, t := range times {
			scenes[i] = sceneAt(defs, t)
		}
	}

	if s.cfg.Optimize {
		scenes = optimizeScenes(scenes)
	}

	out := scenes[:0]
	for _, sc := range scenes {
		if !sc.Empty() {
			out = append(out, sc)
		}
	}
	return out
}

func (s *Sampler) totalDuration(defs []model.AnimationDefinition, target float64) float64 {
	if target > 0 {
		return target
	}
	max := 0.0
	for i := range defs {
		if end := defs[i].EndTime(); !math.IsInf(end, 1) && end > max {
			max = end
		}
	}
	if max <= 0 {
		return s.cfg.DefaultDuration
	}
	return max
}

// sampleTimes builds the union of structurally significant instants
// (window edges, key-time instants) and a uniform grid, merged to the
// configured precision.
func (s *Sampler) sampleTimes(defs []model.AnimationDefinition, duration float64) []float64 {
	times := []float64{0, duration}
	for i := range defs {
		d := &defs[i]
		times = append(times, d.Timing.Begin)
		if end := d.EndTime(); !math.IsInf(end, 1) && end <= duration {
			times = append(times, end)
		}
		if d.KeyTimes != nil && !math.IsInf(d.Timing.Duration, 1) {
			for _, kt := range d.KeyTimes {
				times = append(times, d.Timing.Begin+kt*d.Timing.Duration)
			}
		}
	}
	step := 1.0 / s.cfg.SampleRate
	for t := 0.0; t < duration; t += step {
		times = append(times, t)
	}

	sort.Float64s(times)
	merged := times[:0]
	for _, t := range times {
		if t < 0 || t > duration {
			continue
		}
		if len(merged) > 0 && t-merged[len(merged)-1] < s.cfg.Precision {
			continue
		}
		merged = append(merged, t)
	}
	return append([]float64(nil), merged...)
}
