// Package convert wires the pipeline together: parsers, policy gate,
// sampler and generator, returning a single conversion result.
package convert

import (
	"github.com/ivlev/svg2pptx/internal/cssanim"
	"github.com/ivlev/svg2pptx/internal/dom"
	"github.com/ivlev/svg2pptx/internal/model"
	"github.com/ivlev/svg2pptx/internal/policy"
	"github.com/ivlev/svg2pptx/internal/pptx"
	"github.com/ivlev/svg2pptx/internal/sampler"
	"github.com/ivlev/svg2pptx/internal/smil"
)

// Options tune one conversion call. The zero value uses defaults.
type Options struct {
	TargetDuration float64 // bound the sampled timeline, 0 derives it
	Sampler        sampler.Config
	Limits         policy.Limits
	ShapeMap       pptx.ShapeMapper // nil uses element ids verbatim
}

// Result is what one conversion returns. Success is false only when
// the document itself is unusable; per-animation problems surface as
// warnings instead.
type Result struct {
	Success     bool
	XML         string // empty when no animation was approved
	Scenes      []*model.AnimationScene
	Definitions []model.AnimationDefinition // approved definitions
	Summary     *model.AnimationSummary
	Warnings    []string
	Errors      []string
}

// Convert runs the full pipeline over a parsed document. A nil or
// empty root yields a successful empty result carrying a warning.
func Convert(root *dom.Element, opts Options) *Result {
	result := &Result{Success: true, Summary: model.NewSummary()}

	if root == nil {
		result.Summary.Warn("no document to convert")
		result.finish()
		return result
	}

	smilDefs, summary := smil.Parse(root)
	result.Summary = summary

	cssDefs, cssWarnings := cssanim.Extract(root)
	for _, w := range cssWarnings {
		summary.Warn(w)
	}
	for i := range cssDefs {
		summary.Record(&cssDefs[i])
	}

	defs := append(smilDefs, cssDefs...)
	if len(defs) == 0 {
		summary.Warn("document contains no convertible animations")
		result.finish()
		return result
	}

	for _, w := range smil.ValidateStructure(defs) {
		summary.Warn(w)
	}

	limits := opts.Limits
	if limits == (policy.Limits{}) {
		limits = policy.DefaultLimits()
	}
	samplerCfg := opts.Sampler
	if samplerCfg == (sampler.Config{}) {
		samplerCfg = sampler.DefaultConfig()
	}
	approved, _, reasons := policy.Partition(defs, limits)
	result.Warnings = append(result.Warnings, reasons...)
	result.Definitions = approved

	if len(approved) > 0 {
		result.Scenes = sampler.New(samplerCfg).Sample(approved, opts.TargetDuration)
		result.XML = pptx.New(opts.ShapeMap).Generate(approved, result.Scenes)
	}

	result.finish()
	return result
}

// finish folds summary warnings into the result and seals the summary.
func (r *Result) finish() {
	r.Summary.CalculateComplexity()
	r.Warnings = append(r.Warnings, r.Summary.Warnings...)
}
