package filter

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/nao1215/credscan/internal/model"
)

// KeywordFilter retains matches whose URL contains at least one keyword.
// Matching is a case-insensitive substring test using Unicode case folding,
// so "EXAMPLE" matches "example.com" and folded characters compare equal.
//
// An empty keyword set matches everything. This is a deliberate policy, not
// an accident: an omitted filter should behave like no filter, the same way
// a grep with no pattern restriction passes every line. The CLI still
// requires at least one keyword, so this path is only reachable through the
// library API.
type KeywordFilter struct {
	// keywords holds the case-folded keyword set.
	keywords []string

	// caser performs Unicode case folding.
	caser cases.Caser
}

// New creates a KeywordFilter from the given keywords.
// Keywords are case-folded once at construction; empty keywords are dropped.
func New(keywords []string) *KeywordFilter {
	caser := cases.Fold()

	folded := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		folded = append(folded, caser.String(kw))
	}

	return &KeywordFilter{
		keywords: folded,
		caser:    cases.Fold(),
	}
}

// MatchURL reports whether the URL contains at least one keyword.
// With an empty keyword set it always returns true.
func (f *KeywordFilter) MatchURL(url string) bool {
	if len(f.keywords) == 0 {
		return true
	}

	foldedURL := f.caser.String(url)
	for _, kw := range f.keywords {
		if strings.Contains(foldedURL, kw) {
			return true
		}
	}
	return false
}

// Apply returns the matches whose URL contains at least one keyword,
// preserving input order. Applying the filter to its own output returns an
// equal slice: filtering is idempotent.
func (f *KeywordFilter) Apply(matches []model.Match) []model.Match {
	if len(f.keywords) == 0 {
		return matches
	}

	var kept []model.Match
	for _, m := range matches {
		if f.MatchURL(m.URL) {
			kept = append(kept, m)
		}
	}
	return kept
}

// Keywords returns the case-folded keyword set.
func (f *KeywordFilter) Keywords() []string {
	return f.keywords
}
