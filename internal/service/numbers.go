package service

import (
	"strconv"
	"strings"
)

// parseLeadingInt reads an optionally signed run of decimal digits at the
// start of s (after leading whitespace) and ignores whatever follows, so
// "30", " 30 " and "30min" all give 30. ok is false when s has no leading
// digits or the number overflows int.
func parseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
