package stats

import (
	"sort"
	"strings"

	"github.com/anglerlog/anglerlog/internal/domain"
)

// LabelCount is one row of a categorical tally.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Extractor yields the labels a single trip contributes to a tally.
type Extractor func(domain.Trip) []string

// FishTokens splits the trip's fish-caught field on commas, trims each
// token, and drops empties. Tokens are case-sensitive ("Bass" and "bass"
// tally separately) and every occurrence counts, including repeats within
// one trip.
func FishTokens(t domain.Trip) []string {
	var tokens []string
	for _, raw := range strings.Split(t.FishCaught, ",") {
		if tok := strings.TrimSpace(raw); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// WeatherLabel yields the trip's weather condition once, if recorded.
func WeatherLabel(t domain.Trip) []string {
	if t.Weather == "" {
		return nil
	}
	return []string{t.Weather}
}

// CategoricalTally counts label occurrences across trips using the given
// extractor, sorted descending by count with ties broken by label
// ascending. Empty input yields an empty (non-nil) slice.
func CategoricalTally(trips []domain.Trip, extract Extractor) []LabelCount {
	counts := make(map[string]int)
	for _, t := range trips {
		for _, label := range extract(t) {
			counts[label]++
		}
	}

	tally := make([]LabelCount, 0, len(counts))
	for label, n := range counts {
		tally = append(tally, LabelCount{Label: label, Count: n})
	}
	sort.Slice(tally, func(i, j int) bool {
		if tally[i].Count != tally[j].Count {
			return tally[i].Count > tally[j].Count
		}
		return tally[i].Label < tally[j].Label
	})
	return tally
}
