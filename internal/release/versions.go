package release

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// ParseVersions splits report output on whitespace and orders the tokens
// latest first. Duplicates are dropped.
func ParseVersions(out []byte) []string {
	tokens := strings.Fields(string(out))
	if len(tokens) == 0 {
		return nil
	}
	SortDescending(tokens)
	return slices.Compact(tokens)
}

// SortDescending orders versions by their leading numeric value, highest
// first. Tokens without a numeric prefix count as zero; equal values fall
// back to reverse byte order.
func SortDescending(versions []string) {
	slices.SortStableFunc(versions, func(a, b string) int {
		if c := cmp.Compare(numericValue(b), numericValue(a)); c != 0 {
			return c
		}
		return strings.Compare(b, a)
	})
}

// numericValue parses the leading [-]digits[.digits] of s.
func numericValue(s string) float64 {
	end := 0
	if end < len(s) && s[end] == '-' {
		end++
	}
	digits := 0
	for end < len(s) && isDigit(s[end]) {
		end++
		digits++
	}
	if end < len(s) && s[end] == '.' {
		end++
		for end < len(s) && isDigit(s[end]) {
			end++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
