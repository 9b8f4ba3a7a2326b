package slug

import (
	"regexp"
	"strings"
)

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	nonWordRe  = regexp.MustCompile(`[^\w\-]+`)
	multiDash  = regexp.MustCompile(`\-\-+`)
	leadDashRe = regexp.MustCompile(`^-+`)
	tailDashRe = regexp.MustCompile(`-+$`)
)

// Make builds a URL-safe slug: lowercase, whitespace to hyphens, non-word
// characters stripped, hyphen runs collapsed and trimmed. Idempotent.
func Make(text string) string {
	s := strings.ToLower(text)
	s = spaceRe.ReplaceAllString(s, "-")
	s = nonWordRe.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	s = leadDashRe.ReplaceAllString(s, "")
	s = tailDashRe.ReplaceAllString(s, "")
	return s
}
