package numeric

import "strconv"

// formatFloat renders a float the way petal displays numeric literals:
// shortest round-trip representation, always with a decimal point so
// floats are visually distinct from integers.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}
