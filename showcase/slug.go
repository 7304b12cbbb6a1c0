package showcase

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	nordicReplacer = strings.NewReplacer("å", "a", "ä", "a", "ö", "o")
	// \s rather than a plain space, so tabs and newlines also become separators.
	invalidSlugChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	dashRuns         = regexp.MustCompile(`-+`)
)

// fallbackSlug is used when a name has no characters that survive slugging.
const fallbackSlug = "participant"

// Slugify derives a URL-safe slug from a display name.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nordicReplacer.Replace(s)
	s = invalidSlugChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugSequence hands out unique slugs over a stream of names. The counter is per
// base slug and advances on every call, so the result depends on traversal order:
// the Nth occurrence of a base slug gets the suffix "-N".
type SlugSequence struct {
	counts map[string]int
}

func NewSlugSequence() *SlugSequence {
	return &SlugSequence{counts: make(map[string]int)}
}

// Next returns the slug for the next occurrence of name.
func (s *SlugSequence) Next(name string) string {
	base := Slugify(name)
	if base == "" {
		base = fallbackSlug
	}
	s.counts[base]++
	if n := s.counts[base]; n > 1 {
		return base + "-" + strconv.Itoa(n)
	}
	return base
}
