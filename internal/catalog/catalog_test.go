package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutrishare/backend/internal/models"
)

var (
	testNutritionist = Actor{
		ID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Name: "Dana",
		Type: models.UserTypeNutritionist,
	}
	testClient = Actor{
		ID:   uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Name: "Casey",
		Type: models.UserTypeClient,
	}
)

func testClock() time.Time {
	return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func validDraft() RecipeDraft {
	return RecipeDraft{
		Title:        "Lentil Soup",
		Description:  "Hearty red lentil soup with cumin.",
		Image:        "https://example.com/lentil.jpg",
		PrepTime:     35,
		Difficulty:   "easy",
		Category:     "Vegan",
		Ingredients:  []string{"1 cup red lentils", "1 onion"},
		Instructions: []string{"Saute onion", "Simmer lentils"},
		NutritionFacts: models.NutritionFacts{
			Calories: 320, Protein: 18, Carbs: 45, Fat: 6, Fiber: 11,
		},
	}
}

func newTestCatalog(t *testing.T, recipeCount int) *Catalog {
	t.Helper()
	cat := New(WithClock(testClock))
	for i := 0; i < recipeCount; i++ {
		_, err := cat.Create(context.Background(), testNutritionist, validDraft())
		require.NoError(t, err)
	}
	return cat
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	cat := newTestCatalog(t, 3)

	recipes := cat.List()
	require.Len(t, recipes, 3)
	assert.Equal(t, int64(1), recipes[0].ID)
	assert.Equal(t, int64(2), recipes[1].ID)
	assert.Equal(t, int64(3), recipes[2].ID)
}

func TestCreateIDIsMaxPlusOne(t *testing.T) {
	cat := newTestCatalog(t, 3)
	ctx := context.Background()

	// Removing an earlier recipe must not cause id reuse.
	require.NoError(t, cat.Delete(ctx, testNutritionist, 2))

	recipe, err := cat.Create(ctx, testNutritionist, validDraft())
	require.NoError(t, err)
	assert.Equal(t, int64(4), recipe.ID)
}

func TestCreateSetsAuthorAndTimestamps(t *testing.T) {
	cat := New(WithClock(testClock))

	recipe, err := cat.Create(context.Background(), testNutritionist, validDraft())
	require.NoError(t, err)

	assert.Equal(t, testNutritionist.ID, recipe.AuthorID)
	assert.Equal(t, testClock(), recipe.CreatedAt)
	assert.Equal(t, testClock(), recipe.UpdatedAt)
	assert.Zero(t, recipe.Rating)
	assert.Empty(t, recipe.Reviews)
}

func TestCreateRejectsClients(t *testing.T) {
	cat := newTestCatalog(t, 1)

	_, err := cat.Create(context.Background(), testClient, validDraft())

	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 1, cat.Count())
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RecipeDraft)
		field  string
	}{
		{"blank title", func(d *RecipeDraft) { d.Title = "   " }, "title"},
		{"blank description", func(d *RecipeDraft) { d.Description = "" }, "description"},
		{"blank image", func(d *RecipeDraft) { d.Image = "" }, "image"},
		{"zero prep time", func(d *RecipeDraft) { d.PrepTime = 0 }, "prep_time"},
		{"negative prep time", func(d *RecipeDraft) { d.PrepTime = -5 }, "prep_time"},
		{"unknown difficulty", func(d *RecipeDraft) { d.Difficulty = "extreme" }, "difficulty"},
		{"no ingredients", func(d *RecipeDraft) { d.Ingredients = nil }, "ingredients"},
		{"no instructions", func(d *RecipeDraft) { d.Instructions = nil }, "instructions"},
		{"negative nutrition", func(d *RecipeDraft) { d.NutritionFacts.Protein = -1 }, "nutrition_facts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := newTestCatalog(t, 1)
			draft := validDraft()
			tt.mutate(&draft)

			_, err := cat.Create(context.Background(), testNutritionist, draft)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)
			assert.Equal(t, 1, cat.Count(), "catalog must be unchanged after a rejected create")
		})
	}
}

func TestUpdateReplacesEditableFields(t *testing.T) {
	later := testClock().Add(time.Hour)
	clock := testClock
	cat := New(WithClock(func() time.Time { return clock() }))
	ctx := context.Background()

	created, err := cat.Create(ctx, testNutritionist, validDraft())
	require.NoError(t, err)

	clock = func() time.Time { return later }
	draft := validDraft()
	draft.Title = "Spiced Lentil Soup"
	draft.PrepTime = 40

	updated, err := cat.Update(ctx, testNutritionist, created.ID, draft)
	require.NoError(t, err)

	assert.Equal(t, "Spiced Lentil Soup", updated.Title)
	assert.Equal(t, 40, updated.PrepTime)
	assert.Equal(t, later, updated.UpdatedAt)
}

func TestUpdatePreservesIdentityAndReviews(t *testing.T) {
	cat := newTestCatalog(t, 1)
	ctx := context.Background()

	_, err := cat.AddReview(ctx, testClient, 1, ReviewDraft{Rating: 4, Comment: "Great"})
	require.NoError(t, err)
	before, err := cat.Get(1)
	require.NoError(t, err)

	updated, err := cat.Update(ctx, testNutritionist, 1, validDraft())
	require.NoError(t, err)

	assert.Equal(t, before.AuthorID, updated.AuthorID)
	assert.Equal(t, before.CreatedAt, updated.CreatedAt)
	assert.Equal(t, before.Rating, updated.Rating)
	assert.Equal(t, before.Reviews, updated.Reviews)
}

func TestUpdateMissingRecipe(t *testing.T) {
	cat := newTestCatalog(t, 1)

	_, err := cat.Update(context.Background(), testNutritionist, 99, validDraft())

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, int64(99), notFound.RecipeID)
}

func TestUpdateOnlyByAuthor(t *testing.T) {
	cat := newTestCatalog(t, 1)

	other := Actor{ID: uuid.New(), Name: "Riley", Type: models.UserTypeNutritionist}
	_, err := cat.Update(context.Background(), other, 1, validDraft())

	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
}

func TestDeleteRemovesRecipeAndFavorites(t *testing.T) {
	cat := newTestCatalog(t, 2)
	ctx := context.Background()

	require.NoError(t, cat.AddFavorite(ctx, testClient.ID, 1))
	require.NoError(t, cat.AddFavorite(ctx, testClient.ID, 2))
	require.NoError(t, cat.AddFavorite(ctx, testNutritionist.ID, 1))

	require.NoError(t, cat.Delete(ctx, testNutritionist, 1))

	assert.Equal(t, 1, cat.Count())
	assert.False(t, cat.IsFavorite(testClient.ID, 1))
	assert.False(t, cat.IsFavorite(testNutritionist.ID, 1))
	assert.True(t, cat.IsFavorite(testClient.ID, 2))

	_, err := cat.Get(1)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteOnlyByAuthor(t *testing.T) {
	cat := newTestCatalog(t, 1)

	other := Actor{ID: uuid.New(), Type: models.UserTypeNutritionist}
	err := cat.Delete(context.Background(), other, 1)

	var authErr *AuthorizationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, 1, cat.Count())
}

func TestFavoriteIsIdempotent(t *testing.T) {
	cat := newTestCatalog(t, 1)
	ctx := context.Background()

	require.NoError(t, cat.AddFavorite(ctx, testClient.ID, 1))
	require.NoError(t, cat.AddFavorite(ctx, testClient.ID, 1))

	assert.True(t, cat.IsFavorite(testClient.ID, 1))
	assert.Len(t, cat.FavoriteRecipes(testClient.ID), 1)
}

func TestFavoriteMissingRecipe(t *testing.T) {
	cat := newTestCatalog(t, 1)

	err := cat.AddFavorite(context.Background(), testClient.ID, 42)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestRemoveFavoriteIsNoOpWhenAbsent(t *testing.T) {
	cat := newTestCatalog(t, 1)

	require.NoError(t, cat.RemoveFavorite(context.Background(), testClient.ID, 1))
	assert.False(t, cat.IsFavorite(testClient.ID, 1))
}

func TestFavoritesArePerUser(t *testing.T) {
	cat := newTestCatalog(t, 2)
	ctx := context.Background()

	require.NoError(t, cat.AddFavorite(ctx, testClient.ID, 1))

	assert.True(t, cat.IsFavorite(testClient.ID, 1))
	assert.False(t, cat.IsFavorite(testNutritionist.ID, 1))
	assert.Empty(t, cat.FavoriteRecipes(testNutritionist.ID))
}

func TestFavoriteRecipesInCatalogOrder(t *testing.T) {
	cat := newTestCatalog(t, 3)
	ctx := context.Background()

	// Favorited out of order; listing still follows the catalog.
	require.NoError(t, cat.AddFavorite(ctx, testClient.ID, 3))
	require.NoError(t, cat.AddFavorite(ctx, testClient.ID, 1))

	favs := cat.FavoriteRecipes(testClient.ID)
	require.Len(t, favs, 2)
	assert.Equal(t, int64(1), favs[0].ID)
	assert.Equal(t, int64(3), favs[1].ID)
}

func TestAuthoredRecipes(t *testing.T) {
	cat := newTestCatalog(t, 2)

	other := Actor{ID: uuid.New(), Name: "Riley", Type: models.UserTypeNutritionist}
	_, err := cat.Create(context.Background(), other, validDraft())
	require.NoError(t, err)

	assert.Len(t, cat.AuthoredRecipes(testNutritionist.ID), 2)
	assert.Len(t, cat.AuthoredRecipes(other.ID), 1)
	assert.Empty(t, cat.AuthoredRecipes(testClient.ID))
}

func TestAddReviewAveragesWithPreviousRating(t *testing.T) {
	cat := newTestCatalog(t, 1)
	ctx := context.Background()

	// First review on a fresh recipe: (0 + 4) / 2.
	_, err := cat.AddReview(ctx, testClient, 1, ReviewDraft{Rating: 4, Comment: "Solid"})
	require.NoError(t, err)
	recipe, err := cat.Get(1)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, recipe.Rating, 1e-9)

	// The aggregate folds in pairwise, not as a running mean.
	_, err = cat.AddReview(ctx, testClient, 1, ReviewDraft{Rating: 5, Comment: "Even better"})
	require.NoError(t, err)
	recipe, err = cat.Get(1)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, recipe.Rating, 1e-9)
}

func TestAddReviewPairwiseFromExistingAggregate(t *testing.T) {
	cat := New(WithClock(testClock))
	ctx := context.Background()

	seed := StarterRecipes()[:1]
	require.NoError(t, cat.Seed(ctx, seed))
	require.InDelta(t, 4.8, seed[0].Rating, 1e-9)

	_, err := cat.AddReview(ctx, testClient, seed[0].ID, ReviewDraft{Rating: 3, Comment: "Too much tahini"})
	require.NoError(t, err)

	recipe, err := cat.Get(seed[0].ID)
	require.NoError(t, err)
	assert.InDelta(t, (4.8+3)/2, recipe.Rating, 1e-9)
}

func TestAddReviewFields(t *testing.T) {
	cat := newTestCatalog(t, 1)

	review, err := cat.AddReview(context.Background(), testClient, 1, ReviewDraft{Rating: 5, Comment: "Loved it"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), review.ID)
	assert.Equal(t, int64(1), review.RecipeID)
	assert.Equal(t, testClient.ID, review.UserID)
	assert.Equal(t, "Casey", review.UserName)
	assert.Equal(t, "2024-06-01", review.Date)
}

func TestAddReviewSequentialIDsPerRecipe(t *testing.T) {
	cat := newTestCatalog(t, 2)
	ctx := context.Background()

	first, err := cat.AddReview(ctx, testClient, 1, ReviewDraft{Rating: 4, Comment: "Nice"})
	require.NoError(t, err)
	second, err := cat.AddReview(ctx, testClient, 1, ReviewDraft{Rating: 5, Comment: "Better"})
	require.NoError(t, err)
	otherRecipe, err := cat.AddReview(ctx, testClient, 2, ReviewDraft{Rating: 3, Comment: "Fine"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(1), otherRecipe.ID)
}

func TestAddReviewValidation(t *testing.T) {
	tests := []struct {
		name  string
		draft ReviewDraft
		field string
	}{
		{"rating too low", ReviewDraft{Rating: 0, Comment: "ok"}, "rating"},
		{"rating too high", ReviewDraft{Rating: 6, Comment: "ok"}, "rating"},
		{"blank comment", ReviewDraft{Rating: 3, Comment: "  "}, "comment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := newTestCatalog(t, 1)

			_, err := cat.AddReview(context.Background(), testClient, 1, tt.draft)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, tt.field, valErr.Field)

			recipe, getErr := cat.Get(1)
			require.NoError(t, getErr)
			assert.Empty(t, recipe.Reviews)
			assert.Zero(t, recipe.Rating)
		})
	}
}

func TestAddReviewMissingRecipe(t *testing.T) {
	cat := newTestCatalog(t, 1)

	_, err := cat.AddReview(context.Background(), testClient, 7, ReviewDraft{Rating: 4, Comment: "ok"})

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestListReturnsSnapshot(t *testing.T) {
	cat := newTestCatalog(t, 1)

	snapshot := cat.List()
	snapshot[0].Title = "mutated"
	snapshot[0].Ingredients[0] = "mutated"

	recipe, err := cat.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "Lentil Soup", recipe.Title)
	assert.Equal(t, "1 cup red lentils", recipe.Ingredients[0])
}

// stubBackend records calls and can fail on demand.
type stubBackend struct {
	recipes   []models.Recipe
	favorites []models.RecipeFavorite
	failSave  error
	saved     []int64
}

func (s *stubBackend) LoadRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes, nil
}

func (s *stubBackend) LoadFavorites(ctx context.Context) ([]models.RecipeFavorite, error) {
	return s.favorites, nil
}

func (s *stubBackend) SaveRecipe(ctx context.Context, recipe *models.Recipe) error {
	if s.failSave != nil {
		return s.failSave
	}
	s.saved = append(s.saved, recipe.ID)
	return nil
}

func (s *stubBackend) DeleteRecipe(ctx context.Context, id int64) error { return nil }

func (s *stubBackend) SaveReview(ctx context.Context, r *models.Review) error { return nil }

func (s *stubBackend) SaveFavorite(ctx context.Context, f models.RecipeFavorite) error {
	return nil
}
func (s *stubBackend) DeleteFavorite(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	return nil
}

func TestHydrateLoadsBackendState(t *testing.T) {
	backend := &stubBackend{
		recipes: StarterRecipes()[:2],
		favorites: []models.RecipeFavorite{
			{RecipeID: 1, UserID: testClient.ID},
		},
	}
	cat := New(WithBackend(backend))

	require.NoError(t, cat.Hydrate(context.Background()))

	assert.Equal(t, 2, cat.Count())
	assert.True(t, cat.IsFavorite(testClient.ID, 1))
	assert.False(t, cat.IsFavorite(testClient.ID, 2))
}

func TestCreatePersistenceFailureLeavesCatalogUnchanged(t *testing.T) {
	backend := &stubBackend{failSave: errors.New("disk full")}
	cat := New(WithBackend(backend), WithClock(testClock))

	_, err := cat.Create(context.Background(), testNutritionist, validDraft())

	require.Error(t, err)
	assert.Zero(t, cat.Count())
}

func TestCreatePersistsThroughBackend(t *testing.T) {
	backend := &stubBackend{}
	cat := New(WithBackend(backend), WithClock(testClock))

	recipe, err := cat.Create(context.Background(), testNutritionist, validDraft())
	require.NoError(t, err)

	assert.Equal(t, []int64{recipe.ID}, backend.saved)
}
