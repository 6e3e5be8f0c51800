package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/nutrishare/backend/internal/models"
)

// Well-known author ids for the starter dataset, shared with cmd/seed so
// the demo nutritionist accounts own their recipes.
var (
	SeedAuthorSarah  = uuid.MustParse("6b1f6d1e-9a34-4c86-a1d5-0d5c7a3f9b01")
	SeedAuthorMarcos = uuid.MustParse("2c8e4f7a-51bd-4e29-9f3c-8a1b6d4e7c02")
	SeedAuthorLina   = uuid.MustParse("9d3a2b6c-7e15-48f0-b4a8-5f2c9e1d8a03")
)

func seedDate(day int) time.Time {
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

// StarterRecipes returns the built-in dataset used to bootstrap an empty
// catalog.
func StarterRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          1,
			Title:       "Quinoa Buddha Bowl",
			Description: "A nutritious bowl packed with quinoa, roasted vegetables, and tahini dressing.",
			Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c",
			PrepTime:    25,
			Difficulty:  "easy",
			Category:    "Vegan",
			Ingredients: models.JSONStringArray{
				"1 cup quinoa",
				"2 cups mixed vegetables (broccoli, carrots, sweet potato)",
				"1 can chickpeas",
				"2 tbsp olive oil",
				"1 avocado",
				"2 tbsp tahini",
				"Salt and pepper to taste",
			},
			Instructions: models.JSONStringArray{
				"Cook quinoa according to package instructions",
				"Preheat oven to 400°F (200°C)",
				"Roast vegetables with olive oil for 20-25 minutes",
				"Drain and rinse chickpeas",
				"Assemble bowl with quinoa base, roasted vegetables, and chickpeas",
				"Top with sliced avocado and drizzle with tahini",
			},
			NutritionFacts: models.NutritionFacts{Calories: 450, Protein: 15, Carbs: 52, Fat: 22, Fiber: 12},
			Rating:         4.8,
			Reviews: []models.Review{
				{
					ID:       1,
					RecipeID: 1,
					UserID:   SeedAuthorSarah,
					UserName: "Sarah",
					Rating:   5,
					Comment:  "Perfect healthy lunch option!",
					Date:     "2024-03-15",
				},
			},
			AuthorID:  SeedAuthorSarah,
			CreatedAt: seedDate(15),
			UpdatedAt: seedDate(15),
		},
		{
			ID:          2,
			Title:       "High-Protein Turkey Meatballs",
			Description: "Lean turkey meatballs packed with protein and Mediterranean herbs.",
			Image:       "https://images.unsplash.com/photo-1529042410759-befb1204b468",
			PrepTime:    35,
			Difficulty:  "medium",
			Category:    "High Protein",
			Ingredients: models.JSONStringArray{
				"1 lb ground turkey",
				"1/2 cup almond flour",
				"1 egg",
				"2 cloves garlic, minced",
				"1 tbsp Italian herbs",
				"1/4 cup grated Parmesan",
				"Salt and pepper to taste",
			},
			Instructions: models.JSONStringArray{
				"Mix all ingredients in a large bowl",
				"Form into 12-15 meatballs",
				"Heat olive oil in a large skillet",
				"Cook meatballs for 12-15 minutes, turning occasionally",
				"Serve with your favorite sauce",
			},
			NutritionFacts: models.NutritionFacts{Calories: 320, Protein: 28, Carbs: 8, Fat: 18, Fiber: 2},
			Rating:         4.6,
			Reviews:        []models.Review{},
			AuthorID:       SeedAuthorMarcos,
			CreatedAt:      seedDate(16),
			UpdatedAt:      seedDate(16),
		},
		{
			ID:          3,
			Title:       "Keto Cauliflower Mac and Cheese",
			Description: "A low-carb twist on the classic comfort food using cauliflower.",
			Image:       "https://images.unsplash.com/photo-1543339494-b4cd4f7ba686",
			PrepTime:    30,
			Difficulty:  "easy",
			Category:    "Low Carb",
			Ingredients: models.JSONStringArray{
				"1 large cauliflower head",
				"2 cups shredded cheddar",
				"1 cup heavy cream",
				"2 oz cream cheese",
				"2 tbsp butter",
				"1 tsp mustard powder",
				"Salt and pepper to taste",
			},
			Instructions: models.JSONStringArray{
				"Cut cauliflower into florets",
				"Steam until tender-crisp",
				"In a saucepan, combine cream, cream cheese, and butter",
				"Add cheese and seasonings",
				"Pour over cauliflower and bake at 350°F for 15 minutes",
			},
			NutritionFacts: models.NutritionFacts{Calories: 380, Protein: 18, Carbs: 9, Fat: 32, Fiber: 3},
			Rating:         4.7,
			Reviews:        []models.Review{},
			AuthorID:       SeedAuthorMarcos,
			CreatedAt:      seedDate(16),
			UpdatedAt:      seedDate(16),
		},
		{
			ID:          4,
			Title:       "Gluten-Free Banana Bread",
			Description: "Moist and delicious banana bread made with almond and coconut flour.",
			Image:       "https://images.unsplash.com/photo-1678526773090-a207482f7917",
			PrepTime:    55,
			Difficulty:  "medium",
			Category:    "Gluten Free",
			Ingredients: models.JSONStringArray{
				"3 ripe bananas",
				"2 cups almond flour",
				"1/4 cup coconut flour",
				"3 eggs",
				"1/4 cup maple syrup",
				"1 tsp baking soda",
				"1 tsp vanilla extract",
				"1/2 tsp cinnamon",
			},
			Instructions: models.JSONStringArray{
				"Preheat oven to 350°F (175°C)",
				"Mash bananas in a large bowl",
				"Mix in eggs, maple syrup, and vanilla",
				"Add dry ingredients and mix well",
				"Pour into a lined loaf pan",
				"Bake for 45-50 minutes",
			},
			NutritionFacts: models.NutritionFacts{Calories: 220, Protein: 8, Carbs: 24, Fat: 12, Fiber: 4},
			Rating:         4.9,
			Reviews:        []models.Review{},
			AuthorID:       SeedAuthorLina,
			CreatedAt:      seedDate(17),
			UpdatedAt:      seedDate(17),
		},
		{
			ID:          5,
			Title:       "Mediterranean Chickpea Salad",
			Description: "Fresh and vibrant salad with chickpeas, vegetables, and herbs.",
			Image:       "https://images.unsplash.com/photo-1512621776951-a57141f2eefd",
			PrepTime:    15,
			Difficulty:  "easy",
			Category:    "Vegetarian",
			Ingredients: models.JSONStringArray{
				"2 cans chickpeas, drained",
				"1 cucumber, diced",
				"2 cups cherry tomatoes, halved",
				"1 red onion, diced",
				"1 cup kalamata olives",
				"1/2 cup fresh parsley",
				"1/4 cup olive oil",
				"Juice of 2 lemons",
			},
			Instructions: models.JSONStringArray{
				"Combine all vegetables in a large bowl",
				"Whisk together olive oil and lemon juice",
				"Add herbs and seasonings",
				"Pour dressing over salad and toss",
				"Chill for at least 30 minutes before serving",
			},
			NutritionFacts: models.NutritionFacts{Calories: 280, Protein: 10, Carbs: 32, Fat: 14, Fiber: 8},
			Rating:         4.5,
			Reviews:        []models.Review{},
			AuthorID:       SeedAuthorLina,
			CreatedAt:      seedDate(17),
			UpdatedAt:      seedDate(17),
		},
	}
}
