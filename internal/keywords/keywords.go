// Package keywords extracts deduplicated, stop-word-filtered keywords
// from free text. It is used by the resume parser's section guessing and
// by the ATS scorer's job-description matching.
package keywords

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// DefaultLimit is the maximum number of keywords returned when the
// caller does not specify one.
const DefaultLimit = 40

// MinTokenLength is the shortest token that survives extraction
const MinTokenLength = 4

var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "that": {}, "have": {},
	"this": {}, "from": {}, "your": {}, "will": {}, "into": {}, "about": {},
	"such": {}, "their": {}, "would": {}, "there": {}, "other": {},
	"which": {}, "should": {}, "could": {}, "while": {}, "where": {},
	"within": {}, "using": {}, "these": {}, "those": {}, "over": {},
	"more": {}, "than": {}, "when": {}, "able": {}, "least": {}, "well": {},
	"must": {}, "also": {}, "both": {}, "each": {}, "high": {}, "very": {},
	"like": {}, "make": {}, "made": {}, "through": {},
}

var tokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// Extract tokenizes text into lowercase keywords, dropping stop words
// and tokens shorter than MinTokenLength, deduplicating in first-seen
// order, and stopping once limit keywords have been collected. A limit
// of zero or less falls back to DefaultLimit. The result is never nil.
func Extract(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultLimit
	}
	normalized := normalize(text)
	tokens := tokenPattern.FindAllString(normalized, -1)

	seen := make(map[string]struct{}, len(tokens))
	result := make([]string, 0, limit)
	for _, tok := range tokens {
		if len(tok) < MinTokenLength {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		result = append(result, tok)
		if len(result) >= limit {
			break
		}
	}
	return result
}

// normalize lowercases the text, decomposes accented characters, and
// replaces everything outside [a-z0-9] with a space.
func normalize(text string) string {
	decomposed := norm.NFKD.String(strings.ToLower(text))
	var sb strings.Builder
	sb.Grow(len(decomposed))
	for _, r := range decomposed {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			sb.WriteRune(r)
		} else if unicode.Is(unicode.Mn, r) {
			// drop combining marks left over from decomposition
			continue
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

var regexpMeta = strings.NewReplacer(
	`\`, `\\`,
	`.`, `\.`,
	`*`, `\*`,
	`+`, `\+`,
	`?`, `\?`,
	`^`, `\^`,
	`$`, `\$`,
	`{`, `\{`,
	`}`, `\}`,
	`(`, `\(`,
	`)`, `\)`,
	`|`, `\|`,
	`[`, `\[`,
	`]`, `\]`,
)

// EscapeRegexp escapes regular-expression metacharacters in s so the
// result matches s literally when compiled into a pattern.
func EscapeRegexp(s string) string {
	return regexpMeta.Replace(s)
}
