package ats

import (
	"regexp"
	"sort"
	"strings"
)

// jobStopWords is the scorer's own stop-word list. It is broader than
// the generic keyword extractor's because job descriptions carry more
// filler prose than resumes do.
var jobStopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"from": {}, "as": {}, "is": {}, "was": {}, "are": {}, "were": {},
	"been": {}, "be": {}, "have": {}, "has": {}, "had": {}, "do": {},
	"does": {}, "did": {}, "will": {}, "would": {}, "should": {},
	"could": {}, "may": {}, "might": {}, "must": {}, "can": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "i": {}, "you": {}, "he": {},
	"she": {}, "it": {}, "we": {}, "they": {}, "what": {}, "which": {},
	"who": {}, "when": {}, "where": {}, "why": {}, "how": {}, "all": {},
	"each": {}, "every": {}, "both": {}, "few": {}, "more": {}, "most": {},
	"other": {}, "some": {}, "such": {},
}

var (
	jobTokenCleaner = regexp.MustCompile(`[^\w\s-]`)
	acronymRegex    = regexp.MustCompile(`^[A-Z]{2,}$`)
	camelCaseRegex  = regexp.MustCompile(`[A-Z][a-z]+[A-Z]`)
	digitRegex      = regexp.MustCompile(`\d`)
)

// jobKeywords extracts the significant terms from a job description:
// words kept are longer than the minimum, not stop words, and either
// repeated or recognizable as technical terms. The result is ordered
// by descending frequency (first appearance breaking ties), capped at
// the configured limit, and lowercased for substring matching.
func (s *Scorer) jobKeywords(jobDescription string) []string {
	cleaned := jobTokenCleaner.ReplaceAllString(jobDescription, " ")

	type entry struct {
		word     string // lowercase form used for matching
		original string // first-seen casing used for the technical check
		count    int
	}
	var entries []*entry
	index := make(map[string]*entry)

	for _, token := range strings.Fields(cleaned) {
		lower := strings.ToLower(token)
		if len(lower) < s.thresholds.KeywordMinLength {
			continue
		}
		if _, stop := jobStopWords[lower]; stop {
			continue
		}
		if e, ok := index[lower]; ok {
			e.count++
			continue
		}
		e := &entry{word: lower, original: token, count: 1}
		index[lower] = e
		entries = append(entries, e)
	}

	kept := make([]*entry, 0, len(entries))
	for _, e := range entries {
		if e.count >= s.thresholds.KeywordMinCount || isTechnicalTerm(e.original) {
			kept = append(kept, e)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].count > kept[j].count })

	if len(kept) > s.thresholds.KeywordLimit {
		kept = kept[:s.thresholds.KeywordLimit]
	}
	result := make([]string, len(kept))
	for i, e := range kept {
		result[i] = e.word
	}
	return result
}

// isTechnicalTerm recognizes acronyms (SQL, AWS), internal-capital
// names (JavaScript, PostgreSQL) and words carrying digits (Python3).
func isTechnicalTerm(word string) bool {
	return acronymRegex.MatchString(word) ||
		camelCaseRegex.MatchString(word) ||
		digitRegex.MatchString(word)
}
