package smil

import (
	"strconv"
	"strings"
)

// ParseClockValue converts a SMIL clock value ("2s", "500ms", "1min",
// "2h", or a bare numeral meaning seconds) to seconds. Unparsable
// input yields 0.
func ParseClockValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	unit := 1.0
	num := s
	switch {
	case strings.HasSuffix(s, "ms"):
		unit = 0.001
		num = s[:len(s)-2]
	case strings.HasSuffix(s, "min"):
		unit = 60
		num = s[:len(s)-3]
	case strings.HasSuffix(s, "s"):
		num = s[:len(s)-1]
	case strings.HasSuffix(s, "h"):
		unit = 3600
		num = s[:len(s)-1]
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0
	}
	return v * unit
}
