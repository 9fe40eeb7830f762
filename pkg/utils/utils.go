package utils

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// Normalize unifies control characters and whitespace in text scraped
// from HTML. Every rune from the Unicode "Other" (C) or "Separator" (Z)
// categories becomes a plain space, runs of whitespace collapse to a
// single space and the ends are trimmed.
func Normalize(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if unicode.In(r, unicode.C, unicode.Z) {
			result.WriteRune(' ')
		} else {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(reWhitespace.ReplaceAllString(result.String(), " "))
}

func FormatDate(t time.Time) string {
	if t.Unix() <= 0 {
		return ""
	}

	return t.Format("2006-01-02")
}

func FormatDateShort(t time.Time) string {
	if t.Unix() <= 0 {
		return ""
	}

	return t.Format("02. 01.")
}
