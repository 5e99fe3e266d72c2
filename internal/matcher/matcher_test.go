package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle/internal/models"
)

func intPtr(v int) *int { return &v }

func councils() []models.Event {
	return []models.Event{
		{ID: "first-council-of-nicaea", Name: "First Council of Nicaea", Type: "council", StartYear: intPtr(325)},
		{ID: "second-council-of-nicaea", Name: "Second Council of Nicaea", Type: "council", StartYear: intPtr(787)},
		{ID: "council-of-trent", Name: "Council of Trent", Type: "council", StartYear: intPtr(1545)},
		{ID: "great-schism", Name: "Great Schism", Type: "schism", StartYear: intPtr(1054)},
	}
}

func TestFindMatches_ExactOnName(t *testing.T) {
	corpus := councils()

	for _, e := range corpus {
		results := FindMatches(e.Name, corpus, nil)

		var found *Result[models.Event]

		for i := range results {
			if results[i].Entity.ID == e.ID {
				found = &results[i]
			}
		}

		require.NotNil(t, found, "query %q did not return its own entity", e.Name)
		assert.Equal(t, TierExact, found.Tier)
		assert.Equal(t, ScoreExact, found.Score)
	}
}

func TestFindMatches_PartialCanOutscoreExact(t *testing.T) {
	results := FindMatches("First Council of Nicaea", councils(), nil)
	require.GreaterOrEqual(t, len(results), 2)

	// partial scores are uncapped: the sibling council overlaps on six words
	assert.Equal(t, "second-council-of-nicaea", results[0].Entity.ID)
	assert.Equal(t, 110, results[0].Score)
	assert.Equal(t, "first-council-of-nicaea", results[1].Entity.ID)
	assert.Equal(t, TierExact, results[1].Tier)
}

func TestFindMatches_ExactOnID(t *testing.T) {
	results := FindMatches("council_of_trent", councils(), nil)
	require.NotEmpty(t, results)

	assert.Equal(t, "council-of-trent", results[0].Entity.ID)
	assert.Equal(t, TierExact, results[0].Tier)
}

func TestFindMatches_ContainsBothDirections(t *testing.T) {
	places := []models.Place{
		{ID: "basilica-of-st-peter", Name: "Basilica of St. Peter"},
		{ID: "st-peter", Name: "St. Peter"},
	}

	results := FindMatches("St Peter", places, nil)
	require.Len(t, results, 2)

	// exact on the short name, contains on the longer one
	assert.Equal(t, "st-peter", results[0].Entity.ID)
	assert.Equal(t, TierExact, results[0].Tier)
	assert.Equal(t, "basilica-of-st-peter", results[1].Entity.ID)
	assert.Equal(t, TierContains, results[1].Tier)
	assert.Equal(t, ScoreContains, results[1].Score)

	// query is the superstring of the name
	results = FindMatches("Pope St. Peter the Apostle", []models.Place{{ID: "x", Name: "St. Peter"}}, nil)
	require.Len(t, results, 1)
	assert.Equal(t, TierContains, results[0].Tier)
}

func TestFindMatches_PartialAccumulation(t *testing.T) {
	corpus := []models.Event{
		{ID: "first-council-of-nicaea", Name: "First Council of Nicaea"},
	}

	results := FindMatches("first council nicaea", corpus, nil)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, TierPartial, r.Tier)
	assert.Equal(t, 6, r.WordMatches)
	assert.Equal(t, 110, r.Score)
}

func TestFindMatches_PartialNameOnly(t *testing.T) {
	corpus := []models.Person{
		{ID: "p-0042", Name: "Ignatius of Loyola"},
	}

	results := FindMatches("loyola ignatius", corpus, nil)
	require.Len(t, results, 1)

	assert.Equal(t, TierPartial, results[0].Tier)
	assert.Equal(t, 2, results[0].WordMatches)
	assert.Equal(t, 70, results[0].Score)
}

func TestFindMatches_NoMatchExcluded(t *testing.T) {
	results := FindMatches("Chalcedon", councils(), nil)
	assert.Empty(t, results)
}

func TestFindMatches_OneResultPerEntity(t *testing.T) {
	corpus := councils()

	results := FindMatches("Nicaea", corpus, nil)

	seen := map[string]int{}
	for _, r := range results {
		seen[r.Entity.ID]++
	}

	for id, n := range seen {
		assert.Equal(t, 1, n, "entity %s returned %d times", id, n)
	}

	assert.Len(t, results, 2)
}

func TestFindMatches_StableOnTies(t *testing.T) {
	corpus := []models.Event{
		{ID: "b", Name: "Council of Nicaea II"},
		{ID: "a", Name: "Council of Nicaea I"},
		{ID: "c", Name: "Nicaea"},
	}

	results := FindMatches("Council of Nicaea", corpus, nil)
	require.Len(t, results, 3)

	assert.Equal(t, "b", results[0].Entity.ID)
	assert.Equal(t, "a", results[1].Entity.ID)
	assert.Equal(t, "c", results[2].Entity.ID)

	for _, r := range results {
		assert.Equal(t, ScoreContains, r.Score)
	}
}

func TestFindMatches_SortedDescending(t *testing.T) {
	corpus := []models.Event{
		{ID: "nicaea-region", Name: "Bithynia"},
		{ID: "first-council-of-nicaea", Name: "First Council of Nicaea"},
		{ID: "nicaea", Name: "Nicaea"},
	}

	results := FindMatches("Nicaea", corpus, nil)
	require.Len(t, results, 3)

	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Score, results[i].Score)
	}

	assert.Equal(t, "nicaea", results[0].Entity.ID)
	assert.Equal(t, TierPartial, results[2].Tier)
	assert.Equal(t, 60, results[2].Score)
}

func TestFindMatches_EmptyQuery(t *testing.T) {
	assert.Nil(t, FindMatches("", councils(), nil))
	assert.Nil(t, FindMatches(" -- ", councils(), nil))
}

func TestFindMatches_UnnormalizableNameNotContained(t *testing.T) {
	corpus := append(councils(), models.Event{ID: "cave-chapel", Name: "???"})

	for _, r := range FindMatches("Council of Trent", corpus, nil) {
		assert.NotEqual(t, "cave-chapel", r.Entity.ID)
	}

	results := FindMatches("Cave Chapel", corpus, nil)
	require.Len(t, results, 1)
	assert.Equal(t, TierExact, results[0].Tier)
}

func TestFindMatches_ShortQueryMatchesBroadly(t *testing.T) {
	results := FindMatches("c", councils(), nil)

	for _, r := range results {
		assert.Equal(t, TierContains, r.Tier)
	}

	assert.Len(t, results, 4)
}

func TestFindMatches_FilterAppliedBeforeScoring(t *testing.T) {
	results := FindMatches("Great Schism", councils(), ByEventType[models.Event]("council"))
	assert.Empty(t, results)

	results = FindMatches("Nicaea", councils(), ByCentury[models.Event](4))
	require.Len(t, results, 1)
	assert.Equal(t, "first-council-of-nicaea", results[0].Entity.ID)
}

func TestFindMatches_TierOrderingForFixedPair(t *testing.T) {
	e := []models.Event{{ID: "council-of-trent", Name: "Council of Trent"}}

	exact := FindMatches("Council of Trent", e, nil)
	contains := FindMatches("Trent", e, nil)
	partial := FindMatches("trent council", e, nil)

	require.Len(t, exact, 1)
	require.Len(t, contains, 1)
	require.Len(t, partial, 1)

	assert.Equal(t, TierExact, exact[0].Tier)
	assert.Equal(t, TierContains, contains[0].Tier)
	assert.Equal(t, TierPartial, partial[0].Tier)
	assert.Greater(t, exact[0].Score, contains[0].Score)
}
