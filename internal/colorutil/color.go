// Package colorutil parses CSS/SVG color notations into colorful.Color
// values for the interpolator and the timing-tree generator.
package colorutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Parse reads #rgb, #rrggbb, rgb(r,g,b) (integers or percentages) and
// SVG named colors.
func Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return colorful.Color{}, fmt.Errorf("empty color")
	}
	if strings.HasPrefix(s, "#") {
		return colorful.Hex(s)
	}
	if strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")") {
		return parseRGBFunc(s[4 : len(s)-1])
	}
	if rgba, ok := colornames.Map[s]; ok {
		c, _ := colorful.MakeColor(rgba)
		return c, nil
	}
	return colorful.Color{}, fmt.Errorf("unrecognized color %q", s)
}

func parseRGBFunc(args string) (colorful.Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return colorful.Color{}, fmt.Errorf("rgb() needs 3 components, got %d", len(parts))
	}
	var ch [3]float64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if strings.HasSuffix(p, "%") {
			pct, err := strconv.ParseFloat(strings.TrimSuffix(p, "%"), 64)
			if err != nil {
				return colorful.Color{}, fmt.Errorf("rgb() component %q: %w", p, err)
			}
			ch[i] = clamp01(pct / 100)
			continue
		}
		n, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("rgb() component %q: %w", p, err)
		}
		ch[i] = clamp01(n / 255)
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// RGB returns the 0-255 channel values of c, rounded and clamped.
func RGB(c colorful.Color) (r, g, b int) {
	return channel(c.R), channel(c.G), channel(c.B)
}

// HexLower formats c as lowercase #rrggbb.
func HexLower(c colorful.Color) string {
	r, g, b := RGB(c)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HexUpper formats c as uppercase RRGGBB without the leading '#',
// the form the timing-tree color nodes carry.
func HexUpper(c colorful.Color) string {
	r, g, b := RGB(c)
	return fmt.Sprintf("%02X%02X%02X", r, g, b)
}

func channel(v float64) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
