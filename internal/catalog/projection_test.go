package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrishare/backend/internal/models"
)

func projectionFixture() []models.Recipe {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
	}
	return []models.Recipe{
		{ID: 1, Title: "Quinoa Buddha Bowl", Description: "Roasted vegetables with tahini.", Category: "Vegan", Difficulty: "easy", PrepTime: 25, Rating: 4.8, CreatedAt: day(15)},
		{ID: 2, Title: "Turkey Meatballs", Description: "Lean protein with zucchini noodles.", Category: "High Protein", Difficulty: "medium", PrepTime: 35, Rating: 4.6, CreatedAt: day(14)},
		{ID: 3, Title: "Keto Cauliflower Rice", Description: "Low carb rice alternative.", Category: "Low Carb", Difficulty: "easy", PrepTime: 30, Rating: 4.5, CreatedAt: day(13)},
		{ID: 4, Title: "Banana Bread", Description: "Gluten-free loaf with walnuts.", Category: "Gluten-Free", Difficulty: "medium", PrepTime: 60, Rating: 4.7, CreatedAt: day(12)},
		{ID: 5, Title: "Chickpea Salad", Description: "Quick vegan lunch bowl.", Category: "Vegan", Difficulty: "easy", PrepTime: 15, Rating: 4.5, CreatedAt: day(20)},
	}
}

func ids(recipes []models.Recipe) []int64 {
	out := make([]int64, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestProjectDefaultCriteriaKeepsInsertionOrder(t *testing.T) {
	got := Project(projectionFixture(), DefaultCriteria())
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(got))
}

func TestProjectCategoryNormalization(t *testing.T) {
	fixture := projectionFixture()

	// All spellings of the same key select the same recipes.
	for _, selection := range []string{"Low Carb", "lowcarb", "LOWCARB", " low carb "} {
		got := Project(fixture, Criteria{Category: selection})
		assert.Equal(t, []int64{3}, ids(got), "selection %q", selection)
	}
}

func TestProjectCategoryAllMatchesEverything(t *testing.T) {
	fixture := projectionFixture()

	for _, selection := range []string{"all", "All", " ALL ", ""} {
		got := Project(fixture, Criteria{Category: selection})
		assert.Len(t, got, len(fixture), "selection %q", selection)
	}
}

func TestProjectSearchMatchesTitleOrDescription(t *testing.T) {
	fixture := projectionFixture()

	byTitle := Project(fixture, Criteria{SearchQuery: "buddha"})
	assert.Equal(t, []int64{1}, ids(byTitle))

	byDescription := Project(fixture, Criteria{SearchQuery: "zucchini"})
	assert.Equal(t, []int64{2}, ids(byDescription))

	caseInsensitive := Project(fixture, Criteria{SearchQuery: "VEGAN"})
	assert.Equal(t, []int64{5}, ids(caseInsensitive))

	noMatch := Project(fixture, Criteria{SearchQuery: "sushi"})
	assert.Empty(t, noMatch)
}

func TestProjectDifficultyIsExact(t *testing.T) {
	got := Project(projectionFixture(), Criteria{Difficulty: "medium"})
	assert.Equal(t, []int64{2, 4}, ids(got))
}

func TestProjectPrepTimeWindowIsHalfOpen(t *testing.T) {
	fixture := projectionFixture()

	// [30, 60): 30 is in, 60 is out.
	got := Project(fixture, Criteria{PrepTimeRange: &PrepTimeRange{Min: 30, Max: 60}})
	assert.Equal(t, []int64{2, 3}, ids(got))
}

func TestProjectPrepTimeUnboundedMax(t *testing.T) {
	got := Project(projectionFixture(), Criteria{PrepTimeRange: &PrepTimeRange{Min: 30}})
	assert.Equal(t, []int64{2, 3, 4}, ids(got))
}

func TestProjectFiltersCombineWithAnd(t *testing.T) {
	criteria := Criteria{
		Category:      "vegan",
		Difficulty:    "easy",
		PrepTimeRange: &PrepTimeRange{Max: 30},
	}
	got := Project(projectionFixture(), criteria)
	assert.Equal(t, []int64{5}, ids(got))
}

func TestProjectSortByRatingDescending(t *testing.T) {
	got := Project(projectionFixture(), Criteria{Category: "all", SortBy: SortRating})
	assert.Equal(t, []int64{1, 4, 2, 3, 5}, ids(got))
}

func TestProjectSortByRatingIsStable(t *testing.T) {
	// Recipes 3 and 5 tie at 4.5; insertion order breaks the tie.
	got := Project(projectionFixture(), Criteria{Category: "all", SortBy: SortRating})
	require.Len(t, got, 5)
	assert.Equal(t, int64(3), got[3].ID)
	assert.Equal(t, int64(5), got[4].ID)
}

func TestProjectSortByPrepTimeAscending(t *testing.T) {
	got := Project(projectionFixture(), Criteria{Category: "all", SortBy: SortPrepTime})
	assert.Equal(t, []int64{5, 1, 3, 2, 4}, ids(got))
}

func TestProjectSortByNewestFirst(t *testing.T) {
	got := Project(projectionFixture(), Criteria{Category: "all", SortBy: SortNewest})
	assert.Equal(t, []int64{5, 1, 2, 3, 4}, ids(got))
}

func TestProjectDoesNotMutateInput(t *testing.T) {
	fixture := projectionFixture()

	Project(fixture, Criteria{Category: "all", SortBy: SortPrepTime})

	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(fixture))
}
