package utils

import (
	"regexp"
	"strings"
)

// --- Validation ---

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// --- Slug Helpers ---

var slugStrip = regexp.MustCompile(`[^a-z0-9-]`)
var slugSpaces = regexp.MustCompile(`\s+`)

// Slugify turns a title into a URL-safe slug the same way the propose
// form does: lowercase, spaces to dashes, everything else dropped.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSpaces.ReplaceAllString(s, "-")
	return slugStrip.ReplaceAllString(s, "")
}
