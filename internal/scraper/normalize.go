package scraper

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// each <...> run up to the nearest closing bracket
	tagPattern   = regexp.MustCompile(`<[^>]*>`)
	spacePattern = regexp.MustCompile(` {2,}`)
)

// Normalize joins text fragments taken from one element and cleans the
// result: embedded tags are stripped, newlines and tabs become spaces, runs
// of spaces collapse, invisible characters are dropped and the ends are
// trimmed.
func Normalize(fragments []string) string {
	joined := strings.Join(fragments, "")
	joined = tagPattern.ReplaceAllString(joined, "")
	return clean(joined)
}

// Dedupe keeps the first occurrence of every distinct non-empty fragment and
// joins them with a single space. Nested spans often repeat the same value.
func Dedupe(fragments []string) string {
	seen := make(map[string]struct{}, len(fragments))
	kept := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = clean(f)
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

func clean(s string) string {
	s = norm.NFC.String(s)
	s = strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsPrint(r):
			return r
		default:
			return -1
		}
	}, s)
	s = spacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
