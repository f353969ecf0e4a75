package search

import "strings"

// Matcher decides whether a piece of text matches a normalized query term.
// The ranking and fetch-orchestration logic only depends on this interface,
// so substring matching can be swapped for a tokenized or scored approach
// without touching either.
type Matcher interface {
	Matches(text, term string) bool
}

// SubstringMatcher matches any occurrence of the term as a contiguous,
// case-insensitive substring. No tokenization, no stemming, no word
// boundaries. The term is expected to be lowercased already.
type SubstringMatcher struct{}

// Matches implements Matcher.
func (SubstringMatcher) Matches(text, term string) bool {
	return strings.Contains(strings.ToLower(text), term)
}
