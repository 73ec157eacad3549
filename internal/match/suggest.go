package match

import (
	"sort"

	"mids/internal/model"
)

// Thresholds for suggesting a field name.
const (
	// DefaultMinScore is the minimum similarity for a name to be suggested.
	DefaultMinScore = 0.75
	// DefaultMaxSuggestions caps the number of names returned by Closest.
	DefaultMaxSuggestions = 3
)

// Suggestion is a candidate name scored against a wanted name.
type Suggestion struct {
	Wanted string
	Name   string
	Score  float64
}

// SuggestionList is sorted by descending score, then by name.
type SuggestionList []Suggestion

// RankFields scores every candidate against wanted. Candidates identical to
// wanted are skipped since they are not a "near" miss.
func RankFields(wanted string, candidates []string) SuggestionList {
	wantedNorm := NormalizeIdent(wanted)

	var list SuggestionList

	for _, c := range candidates {
		if c == wanted {
			continue
		}

		list = append(list, Suggestion{
			Wanted: wanted,
			Name:   c,
			Score:  Similarity(wantedNorm, NormalizeIdent(c)),
		})
	}

	sort.Sort(list)

	return list
}

// Len implements sort.Interface.
func (s SuggestionList) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s SuggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
func (s SuggestionList) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}

	return s[i].Name < s[j].Name
}

// AboveThreshold returns the suggestions scoring at least threshold.
func (s SuggestionList) AboveThreshold(threshold float64) SuggestionList {
	var out SuggestionList

	for _, sg := range s {
		if sg.Score >= threshold {
			out = append(out, sg)
		}
	}

	return out
}

// Top returns at most n suggestions.
func (s SuggestionList) Top(n int) SuggestionList {
	if n >= len(s) {
		return s
	}

	return s[:n]
}

// Names returns the suggested names in order, or nil when there are none.
func (s SuggestionList) Names() []string {
	if len(s) == 0 {
		return nil
	}

	out := make([]string, 0, len(s))
	for _, sg := range s {
		out = append(out, sg.Name)
	}

	return out
}

// Closest returns up to DefaultMaxSuggestions candidates similar to wanted.
func Closest(wanted string, candidates []string) []string {
	return RankFields(wanted, candidates).
		AboveThreshold(DefaultMinScore).
		Top(DefaultMaxSuggestions).
		Names()
}

// NearMisses returns, for every field m needs but r lacks, the best
// non-empty record field whose name is similar enough to be a likely
// misspelling or alternative spelling.
func NearMisses(m model.Matcher, r model.Record) SuggestionList {
	var filled []string

	for name, v := range r {
		if !IsEmpty(v) {
			filled = append(filled, name)
		}
	}

	var out SuggestionList

	for _, wanted := range m.Fields() {
		if Present(r, wanted) {
			continue
		}

		best := RankFields(wanted, filled).AboveThreshold(DefaultMinScore).Top(1)
		out = append(out, best...)
	}

	return out
}
