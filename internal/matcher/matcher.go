// Package matcher ranks catalog entities that may duplicate a search query.
//
// Every entity contributes at most one result. The first rule that fires wins:
//
//   - exact (100): the normalized query equals the normalized name or id
//   - contains (80): either normalized string contains the other
//   - partial (50 + 10 per word hit): query words overlap name or id words
//
// Entities that match none of the rules are left out.
package matcher

import (
	"slices"
	"strings"

	"chronicle/internal/models"
	"chronicle/internal/normalizer"
)

// Tier is the rule class that produced a match.
type Tier string

// Match tiers, strongest first.
const (
	TierExact    Tier = "exact"
	TierContains Tier = "contains"
	TierPartial  Tier = "partial"
)

// Scores assigned per tier.
const (
	ScoreExact       = 100
	ScoreContains    = 80
	ScorePartialBase = 50
	ScorePerWordHit  = 10
)

// Result is one candidate duplicate for a query.
type Result[E models.Entity] struct {
	Entity E
	Tier   Tier
	Score  int
	// WordMatches is the overlap count behind a partial score; zero for other tiers.
	WordMatches int
}

// Filter selects which entities are scored at all.
type Filter[E models.Entity] func(E) bool

// FindMatches scores every entity in corpus that passes filter (nil keeps all)
// against query and returns the hits sorted by descending score. Equal scores
// keep corpus order. A query with no letters or digits matches nothing.
func FindMatches[E models.Entity](query string, corpus []E, filter Filter[E]) []Result[E] {
	q := newQuery(query)
	// Contains is bidirectional, so an empty query would be a substring of
	// every name. Short queries still match broadly; only empty ones are cut.
	if q.norm == "" {
		return nil
	}

	var results []Result[E]

	for _, e := range corpus {
		if filter != nil && !filter(e) {
			continue
		}

		if r, ok := score(q, e); ok {
			results = append(results, r)
		}
	}

	slices.SortStableFunc(results, func(a, b Result[E]) int {
		return b.Score - a.Score
	})

	return results
}

type query struct {
	norm  string
	words []string
}

func newQuery(s string) query {
	return query{
		norm:  normalizer.Normalize(s),
		words: normalizer.Words(s),
	}
}

func score[E models.Entity](q query, e E) (Result[E], bool) {
	name := normalizer.Normalize(e.DisplayName())
	id := normalizer.Normalize(e.Identifier())

	if q.norm == name || q.norm == id {
		return Result[E]{Entity: e, Tier: TierExact, Score: ScoreExact}, true
	}

	// a name with no letters or digits normalizes to "" and would sit inside any query
	if name != "" && (strings.Contains(name, q.norm) || strings.Contains(q.norm, name)) {
		return Result[E]{Entity: e, Tier: TierContains, Score: ScoreContains}, true
	}

	hits := wordMatches(q.words, normalizer.Words(e.DisplayName()), normalizer.IDWords(e.Identifier()))
	if hits == 0 {
		return Result[E]{}, false
	}

	return Result[E]{
		Entity:      e,
		Tier:        TierPartial,
		Score:       ScorePartialBase + ScorePerWordHit*hits,
		WordMatches: hits,
	}, true
}

// wordMatches counts, per query word, one hit for overlapping any name word and
// one more for overlapping any id word.
func wordMatches(queryWords, nameWords, idWords []string) int {
	hits := 0

	for _, w := range queryWords {
		if overlapsAny(w, nameWords) {
			hits++
		}

		if overlapsAny(w, idWords) {
			hits++
		}
	}

	return hits
}

func overlapsAny(w string, words []string) bool {
	for _, other := range words {
		if strings.Contains(other, w) || strings.Contains(w, other) {
			return true
		}
	}

	return false
}
