package search

import "strings"

const (
	// maxSnippetsPerDocument caps how many snippets one document can
	// contribute. Scanning stops at the cap: the earliest matching lines
	// win, not the "best" ones.
	maxSnippetsPerDocument = 3

	// maxSnippetLength is the hard character cut applied to a joined
	// snippet window. The cut is not word-aware.
	maxSnippetLength = 200

	// snippetContextLines is how many neighboring lines surround a
	// matching line on each side.
	snippetContextLines = 1
)

// extractSnippets scans content top-to-bottom and returns up to three
// snippets around lines containing term, in document order. term must be
// lowercased; matching is case-insensitive substring containment per line.
func extractSnippets(content, term string, matcher Matcher) []string {
	lines := strings.Split(content, "\n")
	var snippets []string
	for i, line := range lines {
		if !matcher.Matches(line, term) {
			continue
		}
		snippets = append(snippets, buildSnippet(lines, i))
		if len(snippets) >= maxSnippetsPerDocument {
			break
		}
	}
	return snippets
}

// buildSnippet joins the window of lines around index i (one neighbor each
// side, where present) and truncates the result to maxSnippetLength.
func buildSnippet(lines []string, i int) string {
	start := i - snippetContextLines
	if start < 0 {
		start = 0
	}
	end := i + snippetContextLines + 1
	if end > len(lines) {
		end = len(lines)
	}
	return truncate(strings.Join(lines[start:end], "\n"), maxSnippetLength)
}

// truncate hard-cuts s to at most n characters (runes, not bytes, so a
// multi-byte character is never split).
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
