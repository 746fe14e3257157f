package cssanim

import (
	"regexp"
	"strconv"
	"strings"
)

// transformComponents is the decomposed form of a CSS transform value.
type transformComponents struct {
	TX, TY float64
	Rotate float64
	SX, SY float64
}

func identityComponents() transformComponents {
	return transformComponents{SX: 1, SY: 1}
}

var transformFuncRe = regexp.MustCompile(`(translate|rotate|scale)([xy]?)\s*\(([^)]*)\)`)

// parseTransform decomposes a CSS transform property value into
// translate/rotate/scale components. Unknown functions are ignored.
func parseTransform(value string) transformComponents {
	c := identityComponents()
	for _, m := range transformFuncRe.FindAllStringSubmatch(strings.ToLower(value), -1) {
		args := splitArgs(m[3])
		if len(args) == 0 {
			continue
		}
		axis := m[2]
		switch m[1] {
		case "translate":
			switch axis {
			case "y":
				c.TY = args[0]
			case "x":
				c.TX = args[0]
			default:
				c.TX = args[0]
				if len(args) > 1 {
					c.TY = args[1]
				} else {
					c.TY = 0
				}
			}
		case "rotate":
			c.Rotate = args[0]
		case "scale":
			switch axis {
			case "y":
				c.SY = args[0]
			case "x":
				c.SX = args[0]
			default:
				c.SX = args[0]
				if len(args) > 1 {
					c.SY = args[1]
				} else {
					c.SY = args[0]
				}
			}
		}
	}
	return c
}

// splitArgs reads the numeric arguments of one transform function,
// dropping units (px, deg).
func splitArgs(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	var out []float64
	for _, f := range fields {
		f = strings.TrimSuffix(strings.TrimSuffix(f, "px"), "deg")
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
