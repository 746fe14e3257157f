package cssanim

import (
	"strconv"
	"strings"
)

// animationBinding is one element's resolved animation-* values for a
// single animation-name entry.
type animationBinding struct {
	Name           string
	Duration       float64 // seconds
	Delay          float64 // seconds, may be negative
	TimingFunction string
	IterationCount string // raw value: number or "infinite"
	FillMode       string
}

// animationBindings expands an element's resolved declarations into one
// binding per comma-separated animation-name, cycling the per-index
// longhand values the way the CSS animation shorthand lists do.
func animationBindings(decls map[string]string) []animationBinding {
	names := splitCommaList(decls["animation-name"])
	durations := splitCommaList(decls["animation-duration"])
	delays := splitCommaList(decls["animation-delay"])
	timings := splitCommaList(decls["animation-timing-function"])
	iterations := splitCommaList(decls["animation-iteration-count"])
	fills := splitCommaList(decls["animation-fill-mode"])

	// The shorthand only applies where the longhands are absent.
	if len(names) == 0 {
		names, durations, delays, timings = parseShorthand(decls["animation"])
	}
	if len(names) == 0 {
		return nil
	}

	bindings := make([]animationBinding, 0, len(names))
	for i, name := range names {
		b := animationBinding{
			Name:           name,
			Duration:       parseCSSTime(cycle(durations, i)),
			Delay:          parseCSSTime(cycle(delays, i)),
			TimingFunction: cycle(timings, i),
			IterationCount: cycle(iterations, i),
			FillMode:       cycle(fills, i),
		}
		bindings = append(bindings, b)
	}
	return bindings
}

// parseShorthand reads `animation: name duration delay timing-function`
// entries, positionally, one per comma-separated animation.
func parseShorthand(value string) (names, durations, delays, timings []string) {
	for _, entry := range splitCommaList(value) {
		fields := strings.Fields(entry)
		if len(fields) == 0 {
			continue
		}
		names = append(names, fields[0])
		get := func(i int) string {
			if i < len(fields) {
				return fields[i]
			}
			return ""
		}
		durations = append(durations, get(1))
		delays = append(delays, get(2))
		timings = append(timings, get(3))
	}
	return names, durations, delays, timings
}

// parseCSSTime converts "2s" or "150ms" to seconds; 0 when absent or
// unparsable.
func parseCSSTime(s string) float64 {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0
	}
	unit := 1.0
	switch {
	case strings.HasSuffix(s, "ms"):
		unit = 0.001
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "s"):
		s = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v * unit
}

func splitCommaList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// cycle indexes vals modulo its length, the CSS list-repeat rule.
func cycle(vals []string, i int) string {
	if len(vals) == 0 {
		return ""
	}
	return vals[i%len(vals)]
}
