package store

import "strconv"

// ParsePrice derives a numeric value from a display-formatted price
// string. The grammar is deliberately narrow and locale-free: ASCII digits
// and the first decimal point are kept, every other rune (currency symbol,
// spaces, thousands separators, further dots) is dropped. A string with no
// digits parses to 0.
//
//	"KSh 8,999" -> 8999
//	"$12.50"    -> 12.5
func ParsePrice(display string) float64 {
	buf := make([]byte, 0, len(display))
	seenDot := false

	for i := 0; i < len(display); i++ {
		c := display[i]

		switch {
		case c >= '0' && c <= '9':
			buf = append(buf, c)
		case c == '.' && !seenDot:
			seenDot = true

			buf = append(buf, c)
		}
	}

	if len(buf) == 0 {
		return 0
	}

	value, err := strconv.ParseFloat(string(buf), 64)
	if err != nil {
		return 0
	}

	return value
}
