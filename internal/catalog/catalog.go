// Package catalog owns the canonical recipe list and the per-user
// favorites sets, and derives the filtered view served to clients.
package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nutrishare/backend/internal/models"
)

// Actor identifies the user performing a catalog operation.
type Actor struct {
	ID   uuid.UUID
	Name string
	Type models.UserType
}

// CanAuthorRecipes reports whether the actor may create recipes.
func (a Actor) CanAuthorRecipes() bool {
	return a.Type == models.UserTypeNutritionist
}

// RecipeDraft is a recipe payload as submitted by the create/edit form,
// prior to validation and id assignment.
type RecipeDraft struct {
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Image          string                `json:"image"`
	PrepTime       int                   `json:"prep_time"`
	Difficulty     string                `json:"difficulty"`
	Category       string                `json:"category"`
	Ingredients    []string              `json:"ingredients"`
	Instructions   []string              `json:"instructions"`
	NutritionFacts models.NutritionFacts `json:"nutrition_facts"`
}

// ReviewDraft is a review payload prior to id assignment.
type ReviewDraft struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Backend persists catalog mutations. Every mutating operation maps 1:1
// to a backend call; the call happens before the in-memory commit so a
// persistence failure leaves the catalog unchanged.
type Backend interface {
	LoadRecipes(ctx context.Context) ([]models.Recipe, error)
	LoadFavorites(ctx context.Context) ([]models.RecipeFavorite, error)
	SaveRecipe(ctx context.Context, recipe *models.Recipe) error
	DeleteRecipe(ctx context.Context, id int64) error
	SaveReview(ctx context.Context, review *models.Review) error
	SaveFavorite(ctx context.Context, fav models.RecipeFavorite) error
	DeleteFavorite(ctx context.Context, userID uuid.UUID, recipeID int64) error
}

// Catalog is the canonical store of recipes and favorites. Handlers run
// concurrently, so all access goes through the mutex; writes are
// serialized, last write wins.
type Catalog struct {
	mu        sync.RWMutex
	recipes   []models.Recipe
	favorites map[uuid.UUID]map[int64]struct{}
	backend   Backend
	now       func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithBackend attaches a persistence backend.
func WithBackend(b Backend) Option {
	return func(c *Catalog) { c.backend = b }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// New returns an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		favorites: make(map[uuid.UUID]map[int64]struct{}),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Hydrate replaces the in-memory state with the backend's contents.
func (c *Catalog) Hydrate(ctx context.Context) error {
	if c.backend == nil {
		return nil
	}
	recipes, err := c.backend.LoadRecipes(ctx)
	if err != nil {
		return err
	}
	favs, err := c.backend.LoadFavorites(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.recipes = recipes
	c.favorites = make(map[uuid.UUID]map[int64]struct{})
	for _, f := range favs {
		c.addFavoriteLocked(f.UserID, f.RecipeID)
	}
	return nil
}

// Seed inserts pre-built recipes, persisting each. Used to load the
// starter dataset into an empty catalog.
func (c *Catalog) Seed(ctx context.Context, recipes []models.Recipe) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, r := range recipes {
		if c.backend != nil {
			if err := c.backend.SaveRecipe(ctx, &r); err != nil {
				return err
			}
			for i := range r.Reviews {
				r.Reviews[i].RecipeID = r.ID
				if err := c.backend.SaveReview(ctx, &r.Reviews[i]); err != nil {
					return err
				}
			}
		}
		c.recipes = append(c.recipes, cloneRecipe(r))
	}
	return nil
}

// Count returns the number of recipes in the catalog.
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.recipes)
}

// List returns a snapshot of the catalog in insertion order.
func (c *Catalog) List() []models.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshotLocked()
}

// Get returns the recipe with the given id.
func (c *Catalog) Get(id int64) (models.Recipe, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexLocked(id); i >= 0 {
		return cloneRecipe(c.recipes[i]), nil
	}
	return models.Recipe{}, &NotFoundError{RecipeID: id}
}

// Create validates the draft, assigns the next id and appends the recipe.
// Only nutritionists may create recipes.
func (c *Catalog) Create(ctx context.Context, actor Actor, draft RecipeDraft) (models.Recipe, error) {
	if !actor.CanAuthorRecipes() {
		return models.Recipe{}, &AuthorizationError{Reason: "only nutritionists can create recipes"}
	}
	if err := validateDraft(draft); err != nil {
		return models.Recipe{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	recipe := models.Recipe{
		ID:             c.nextIDLocked(),
		Title:          draft.Title,
		Description:    draft.Description,
		Image:          draft.Image,
		PrepTime:       draft.PrepTime,
		Difficulty:     draft.Difficulty,
		Category:       draft.Category,
		Ingredients:    append(models.JSONStringArray(nil), draft.Ingredients...),
		Instructions:   append(models.JSONStringArray(nil), draft.Instructions...),
		NutritionFacts: draft.NutritionFacts,
		Rating:         0,
		Reviews:        []models.Review{},
		AuthorID:       actor.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if c.backend != nil {
		if err := c.backend.SaveRecipe(ctx, &recipe); err != nil {
			return models.Recipe{}, err
		}
	}
	c.recipes = append(c.recipes, recipe)
	return cloneRecipe(recipe), nil
}

// Update replaces the recipe's editable fields and refreshes UpdatedAt.
// The author, creation time, rating and reviews are not editable through
// this path. Only the author may update.
func (c *Catalog) Update(ctx context.Context, actor Actor, id int64, draft RecipeDraft) (models.Recipe, error) {
	if err := validateDraft(draft); err != nil {
		return models.Recipe{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return models.Recipe{}, &NotFoundError{RecipeID: id}
	}
	if c.recipes[i].AuthorID != actor.ID {
		return models.Recipe{}, &AuthorizationError{Reason: "only the author can edit this recipe"}
	}

	updated := c.recipes[i]
	updated.Title = draft.Title
	updated.Description = draft.Description
	updated.Image = draft.Image
	updated.PrepTime = draft.PrepTime
	updated.Difficulty = draft.Difficulty
	updated.Category = draft.Category
	updated.Ingredients = append(models.JSONStringArray(nil), draft.Ingredients...)
	updated.Instructions = append(models.JSONStringArray(nil), draft.Instructions...)
	updated.NutritionFacts = draft.NutritionFacts
	updated.UpdatedAt = c.now()

	if c.backend != nil {
		if err := c.backend.SaveRecipe(ctx, &updated); err != nil {
			return models.Recipe{}, err
		}
	}
	c.recipes[i] = updated
	return cloneRecipe(updated), nil
}

// Delete removes the recipe and cascades the removal to every user's
// favorites, so favorites never reference a deleted recipe. Only the
// author may delete.
func (c *Catalog) Delete(ctx context.Context, actor Actor, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return &NotFoundError{RecipeID: id}
	}
	if c.recipes[i].AuthorID != actor.ID {
		return &AuthorizationError{Reason: "only the author can delete this recipe"}
	}

	if c.backend != nil {
		if err := c.backend.DeleteRecipe(ctx, id); err != nil {
			return err
		}
	}
	c.recipes = append(c.recipes[:i], c.recipes[i+1:]...)
	for _, set := range c.favorites {
		delete(set, id)
	}
	return nil
}

// AddFavorite marks the recipe as a favorite of the user. Idempotent:
// favoriting an already-favorited recipe is a no-op.
func (c *Catalog) AddFavorite(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexLocked(recipeID) < 0 {
		return &NotFoundError{RecipeID: recipeID}
	}
	if set, ok := c.favorites[userID]; ok {
		if _, ok := set[recipeID]; ok {
			return nil
		}
	}
	if c.backend != nil {
		fav := models.RecipeFavorite{RecipeID: recipeID, UserID: userID, CreatedAt: c.now()}
		if err := c.backend.SaveFavorite(ctx, fav); err != nil {
			return err
		}
	}
	c.addFavoriteLocked(userID, recipeID)
	return nil
}

// RemoveFavorite drops the recipe from the user's favorites. Removing a
// recipe that is not favorited is a no-op.
func (c *Catalog) RemoveFavorite(ctx context.Context, userID uuid.UUID, recipeID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	set, ok := c.favorites[userID]
	if !ok {
		return nil
	}
	if _, ok := set[recipeID]; !ok {
		return nil
	}
	if c.backend != nil {
		if err := c.backend.DeleteFavorite(ctx, userID, recipeID); err != nil {
			return err
		}
	}
	delete(set, recipeID)
	return nil
}

// IsFavorite reports whether the user has favorited the recipe.
func (c *Catalog) IsFavorite(userID uuid.UUID, recipeID int64) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	set, ok := c.favorites[userID]
	if !ok {
		return false
	}
	_, ok = set[recipeID]
	return ok
}

// FavoriteRecipes returns the user's favorited recipes in catalog order.
func (c *Catalog) FavoriteRecipes(userID uuid.UUID) []models.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()

	set, ok := c.favorites[userID]
	if !ok {
		return []models.Recipe{}
	}
	out := make([]models.Recipe, 0, len(set))
	for _, r := range c.recipes {
		if _, ok := set[r.ID]; ok {
			out = append(out, cloneRecipe(r))
		}
	}
	return out
}

// AuthoredRecipes returns the recipes created by the user, catalog order.
func (c *Catalog) AuthoredRecipes(authorID uuid.UUID) []models.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []models.Recipe{}
	for _, r := range c.recipes {
		if r.AuthorID == authorID {
			out = append(out, cloneRecipe(r))
		}
	}
	return out
}

// AddReview appends the review to the recipe and recomputes the recipe
// rating as the average of the previous aggregate and the new review's
// rating. The two-term formula matches the behavior this service
// replaces; it is not a running mean over all reviews.
func (c *Catalog) AddReview(ctx context.Context, actor Actor, recipeID int64, draft ReviewDraft) (models.Review, error) {
	if draft.Rating < 1 || draft.Rating > 5 {
		return models.Review{}, &ValidationError{Field: "rating", Reason: "must be between 1 and 5"}
	}
	if strings.TrimSpace(draft.Comment) == "" {
		return models.Review{}, &ValidationError{Field: "comment", Reason: "must not be empty"}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(recipeID)
	if i < 0 {
		return models.Review{}, &NotFoundError{RecipeID: recipeID}
	}
	recipe := &c.recipes[i]

	var maxID int64
	for _, r := range recipe.Reviews {
		if r.ID > maxID {
			maxID = r.ID
		}
	}
	review := models.Review{
		ID:       maxID + 1,
		RecipeID: recipeID,
		UserID:   actor.ID,
		UserName: actor.Name,
		Rating:   draft.Rating,
		Comment:  draft.Comment,
		Date:     c.now().Format("2006-01-02"),
	}
	newRating := (recipe.Rating + float64(draft.Rating)) / 2

	if c.backend != nil {
		if err := c.backend.SaveReview(ctx, &review); err != nil {
			return models.Review{}, err
		}
		rated := cloneRecipe(*recipe)
		rated.Rating = newRating
		if err := c.backend.SaveRecipe(ctx, &rated); err != nil {
			return models.Review{}, err
		}
	}
	recipe.Reviews = append(recipe.Reviews, review)
	recipe.Rating = newRating
	return review, nil
}

func (c *Catalog) addFavoriteLocked(userID uuid.UUID, recipeID int64) {
	set, ok := c.favorites[userID]
	if !ok {
		set = make(map[int64]struct{})
		c.favorites[userID] = set
	}
	set[recipeID] = struct{}{}
}

func (c *Catalog) indexLocked(id int64) int {
	for i := range c.recipes {
		if c.recipes[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) nextIDLocked() int64 {
	var max int64
	for i := range c.recipes {
		if c.recipes[i].ID > max {
			max = c.recipes[i].ID
		}
	}
	return max + 1
}

func (c *Catalog) snapshotLocked() []models.Recipe {
	out := make([]models.Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = cloneRecipe(r)
	}
	return out
}

func cloneRecipe(r models.Recipe) models.Recipe {
	r.Ingredients = append(models.JSONStringArray(nil), r.Ingredients...)
	r.Instructions = append(models.JSONStringArray(nil), r.Instructions...)
	r.Reviews = append([]models.Review(nil), r.Reviews...)
	return r
}

func validateDraft(d RecipeDraft) error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if strings.TrimSpace(d.Description) == "" {
		return &ValidationError{Field: "description", Reason: "must not be empty"}
	}
	if strings.TrimSpace(d.Image) == "" {
		return &ValidationError{Field: "image", Reason: "must not be empty"}
	}
	if d.PrepTime <= 0 {
		return &ValidationError{Field: "prep_time", Reason: "must be a positive number of minutes"}
	}
	switch d.Difficulty {
	case "easy", "medium", "hard":
	default:
		return &ValidationError{Field: "difficulty", Reason: "must be easy, medium or hard"}
	}
	if len(d.Ingredients) == 0 {
		return &ValidationError{Field: "ingredients", Reason: "at least one ingredient is required"}
	}
	if len(d.Instructions) == 0 {
		return &ValidationError{Field: "instructions", Reason: "at least one step is required"}
	}
	n := d.NutritionFacts
	if n.Calories < 0 || n.Protein < 0 || n.Carbs < 0 || n.Fat < 0 || n.Fiber < 0 {
		return &ValidationError{Field: "nutrition_facts", Reason: "values must not be negative"}
	}
	return nil
}
