package model

// MatchType classifies where the query term was found for a hit. It exists
// purely for ranking: both < title < content. It never filters hits.
type MatchType string

const (
	MatchTypeBoth    MatchType = "both"
	MatchTypeTitle   MatchType = "title"
	MatchTypeContent MatchType = "content"
)

// Rank returns the ordinal sort key for this match type. Lower ranks sort
// first. Unknown values sink to the end.
func (m MatchType) Rank() int {
	switch m {
	case MatchTypeBoth:
		return 0
	case MatchTypeTitle:
		return 1
	case MatchTypeContent:
		return 2
	default:
		return 3
	}
}

// ClassifyMatch derives the match type from the two match phases.
// Callers must only invoke it when at least one phase matched.
func ClassifyMatch(titleMatch bool, contentMatches int) MatchType {
	switch {
	case titleMatch && contentMatches > 0:
		return MatchTypeBoth
	case titleMatch:
		return MatchTypeTitle
	default:
		return MatchTypeContent
	}
}

// SearchHit is a single search result: a flattened entry plus up to three
// content snippets (document order) and the tier classification.
type SearchHit struct {
	Label          string    `json:"label"`
	Route          string    `json:"route"`
	Breadcrumb     string    `json:"breadcrumb"`
	ContentMatches []string  `json:"content_matches"`
	MatchType      MatchType `json:"match_type"`
}
