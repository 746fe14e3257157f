package convert

import (
	"github.com/ivlev/svg2pptx/internal/cssanim"
	"github.com/ivlev/svg2pptx/internal/dom"
	"github.com/ivlev/svg2pptx/internal/model"
	"github.com/ivlev/svg2pptx/internal/smil"
)

// Statistics is the diagnostics-only view of a document's animations.
type Statistics struct {
	Total          int
	UniqueElements int
	Duration       float64
	Warnings       []string
	Complexity     model.Complexity
}

// Stats parses a document's animations without converting them,
// for callers that only need diagnostics.
func Stats(root *dom.Element) Statistics {
	if root == nil {
		return Statistics{Warnings: []string{"no document to inspect"}}
	}

	defs, summary := smil.Parse(root)
	cssDefs, cssWarnings := cssanim.Extract(root)
	for _, w := range cssWarnings {
		summary.Warn(w)
	}
	for i := range cssDefs {
		summary.Record(&cssDefs[i])
	}
	defs = append(defs, cssDefs...)
	for _, w := range smil.ValidateStructure(defs) {
		summary.Warn(w)
	}
	summary.CalculateComplexity()

	return Statistics{
		Total:          summary.TotalAnimations,
		UniqueElements: summary.ElementCount,
		Duration:       summary.Duration,
		Warnings:       summary.Warnings,
		Complexity:     summary.Complexity,
	}
}
