package validation

import (
	"regexp"
	"strings"
	"unicode"
)

var controlCharRegex = regexp.MustCompile(`[\p{Cc}\p{Cf}]`)

// NormalizeName trims the name, drops control characters and collapses runs
// of whitespace into a single space.
func NormalizeName(name string) string {
	name = controlCharRegex.ReplaceAllStringFunc(name, func(s string) string {
		if strings.TrimSpace(s) == "" {
			return " "
		}
		return ""
	})

	var result strings.Builder
	prevSpace := false
	for _, r := range strings.TrimSpace(name) {
		if unicode.IsSpace(r) {
			if !prevSpace {
				result.WriteRune(' ')
				prevSpace = true
			}
		} else {
			result.WriteRune(r)
			prevSpace = false
		}
	}

	return result.String()
}

// SameName reports whether two names are equal once normalized, ignoring case.
func SameName(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}

// FindName returns the first known spelling that SameName matches.
func FindName(name string, known []string) (string, bool) {
	for _, k := range known {
		if SameName(name, k) {
			return k, true
		}
	}
	return "", false
}
