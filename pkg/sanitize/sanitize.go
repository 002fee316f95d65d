// Package sanitize normalizes free-text form input into tokens that are safe
// to hand to hostnames, DNS labels and instance parameters.
package sanitize

import "strings"

// Clean strips every character that is not an ASCII letter or digit.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Enum lowercases the input and strips everything that is not a lowercase
// ASCII letter. Used for gamemode and difficulty values.
func Enum(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
