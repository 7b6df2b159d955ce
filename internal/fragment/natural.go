package fragment

import "strings"

// NaturalLess orders file names so that digit runs compare as numbers:
// card2.lua sorts before card10.lua.
func NaturalLess(a, b string) bool {
	return Compare(a, b) < 0
}

// Compare is the three-way form of NaturalLess. Non-digit runs compare
// lexicographically; digit runs by value, then by length so "01" and "1"
// still have a fixed order.
func Compare(a, b string) int {
	for a != "" && b != "" {
		ra, restA := nextRun(a)
		rb, restB := nextRun(b)

		if isDigit(ra[0]) && isDigit(rb[0]) {
			if c := compareNumbers(ra, rb); c != 0 {
				return c
			}
		} else if c := strings.Compare(ra, rb); c != 0 {
			return c
		}

		a, b = restA, restB
	}

	return strings.Compare(a, b)
}

// nextRun splits off the leading run of digits or non-digits
func nextRun(s string) (run, rest string) {
	digit := isDigit(s[0])
	i := 1
	for i < len(s) && isDigit(s[i]) == digit {
		i++
	}
	return s[:i], s[i:]
}

func compareNumbers(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")

	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}

	// equal value, fewer leading zeros first
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
