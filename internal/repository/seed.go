package repository

import (
	"time"

	"github.com/pageza/recipe-share/backend/internal/models"
)

// PublishCategories are the categories offered when publishing a recipe.
// Category stays free-form; this list only drives the form.
var PublishCategories = []string{
	"Italian", "Asian", "Mexican", "American", "French",
	"Indian", "Mediterranean", "Healthy", "Dessert", "Breakfast",
}

// DefaultRecipes returns a fresh copy of the example recipes used when no
// snapshot has been persisted yet.
func DefaultRecipes() []models.Recipe {
	return []models.Recipe{
		{
			ID:          "1",
			Title:       "Classic Margherita Pizza",
			Description: "A traditional Italian pizza with fresh mozzarella, tomatoes, and basil.",
			Image:       "https://images.pexels.com/photos/315755/pexels-photo-315755.jpeg?auto=compress&cs=tinysrgb&w=500",
			CookTime:    25,
			Servings:    4,
			Difficulty:  models.DifficultyMedium,
			Ingredients: []string{
				"1 pizza dough",
				"1/2 cup marinara sauce",
				"8 oz fresh mozzarella",
				"2 large tomatoes",
				"Fresh basil leaves",
				"2 tbsp olive oil",
				"Salt and pepper to taste",
			},
			Instructions: []string{
				"Preheat oven to 475°F (245°C)",
				"Roll out pizza dough on floured surface",
				"Spread marinara sauce evenly",
				"Add sliced mozzarella and tomatoes",
				"Drizzle with olive oil and season",
				"Bake for 12-15 minutes until golden",
				"Top with fresh basil before serving",
			},
			Author:    models.Author{ID: "1", Name: "Chef Mario"},
			CreatedAt: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
			Likes:     124,
			Category:  "Italian",
			Tags:      []string{"pizza", "vegetarian", "classic"},
		},
		{
			ID:          "2",
			Title:       "Creamy Chicken Alfredo",
			Description: "Rich and creamy pasta dish with tender chicken and parmesan cheese.",
			Image:       "https://images.pexels.com/photos/1279330/pexels-photo-1279330.jpeg?auto=compress&cs=tinysrgb&w=500",
			CookTime:    30,
			Servings:    4,
			Difficulty:  models.DifficultyEasy,
			Ingredients: []string{
				"1 lb fettuccine pasta",
				"2 chicken breasts",
				"1 cup heavy cream",
				"1/2 cup butter",
				"1 cup parmesan cheese",
				"3 cloves garlic",
				"Salt, pepper, parsley",
			},
			Instructions: []string{
				"Cook pasta according to package directions",
				"Season and grill chicken, then slice",
				"Melt butter in large pan, add garlic",
				"Pour in cream and bring to simmer",
				"Add parmesan and stir until smooth",
				"Toss pasta with sauce",
				"Top with chicken and parsley",
			},
			Author:    models.Author{ID: "2", Name: "Sarah Johnson"},
			CreatedAt: time.Date(2024, time.January, 14, 15, 30, 0, 0, time.UTC),
			Likes:     89,
			Category:  "Italian",
			Tags:      []string{"pasta", "chicken", "creamy"},
		},
		{
			ID:          "3",
			Title:       "Fresh Garden Salad",
			Description: "Crisp mixed greens with seasonal vegetables and homemade vinaigrette.",
			Image:       "https://images.pexels.com/photos/1640777/pexels-photo-1640777.jpeg?auto=compress&cs=tinysrgb&w=500",
			CookTime:    15,
			Servings:    2,
			Difficulty:  models.DifficultyEasy,
			Ingredients: []string{
				"Mixed greens",
				"1 cucumber",
				"2 tomatoes",
				"1/2 red onion",
				"1/4 cup olive oil",
				"2 tbsp balsamic vinegar",
				"1 tsp honey",
				"Salt and pepper",
			},
			Instructions: []string{
				"Wash and dry all greens thoroughly",
				"Chop vegetables into bite-sized pieces",
				"Whisk olive oil, vinegar, and honey",
				"Season dressing with salt and pepper",
				"Combine vegetables in large bowl",
				"Drizzle with dressing just before serving",
				"Toss gently and serve immediately",
			},
			Author:    models.Author{ID: "3", Name: "Emma Green"},
			CreatedAt: time.Date(2024, time.January, 13, 12, 0, 0, 0, time.UTC),
			Likes:     67,
			Category:  "Healthy",
			Tags:      []string{"salad", "vegetarian", "fresh"},
		},
		{
			ID:          "4",
			Title:       "Chocolate Chip Cookies",
			Description: "Soft and chewy chocolate chip cookies that are perfect for any occasion.",
			Image:       "https://images.pexels.com/photos/890577/pexels-photo-890577.jpeg?auto=compress&cs=tinysrgb&w=500",
			CookTime:    45,
			Servings:    24,
			Difficulty:  models.DifficultyEasy,
			Ingredients: []string{
				"2 1/4 cups flour",
				"1 tsp baking soda",
				"1 cup butter",
				"1/2 cup sugar",
				"1 cup brown sugar",
				"2 eggs",
				"2 tsp vanilla",
				"2 cups chocolate chips",
			},
			Instructions: []string{
				"Preheat oven to 375°F (190°C)",
				"Mix flour and baking soda in bowl",
				"Cream butter and both sugars",
				"Beat in eggs and vanilla",
				"Gradually add flour mixture",
				"Stir in chocolate chips",
				"Drop spoonfuls on baking sheet",
				"Bake 9-11 minutes until golden",
			},
			Author:    models.Author{ID: "4", Name: "Baker Bob"},
			CreatedAt: time.Date(2024, time.January, 12, 9, 15, 0, 0, time.UTC),
			Likes:     156,
			Category:  "Dessert",
			Tags:      []string{"cookies", "chocolate", "baking"},
		},
		{
			ID:          "5",
			Title:       "Spicy Thai Pad Thai",
			Description: "Authentic Thai stir-fried noodles with shrimp, tofu, and fresh vegetables.",
			Image:       "https://images.pexels.com/photos/1410235/pexels-photo-1410235.jpeg?auto=compress&cs=tinysrgb&w=500",
			CookTime:    20,
			Servings:    4,
			Difficulty:  models.DifficultyMedium,
			Ingredients: []string{
				"8 oz rice noodles",
				"1/2 lb shrimp",
				"4 oz firm tofu",
				"2 eggs",
				"1 cup bean sprouts",
				"3 green onions",
				"Pad thai sauce",
				"Peanuts, lime wedges",
			},
			Instructions: []string{
				"Soak rice noodles in warm water",
				"Heat oil in large wok or pan",
				"Scramble eggs and set aside",
				"Stir-fry shrimp and tofu",
				"Add drained noodles and sauce",
				"Toss in vegetables and eggs",
				"Garnish with peanuts and lime",
				"Serve immediately while hot",
			},
			Author:    models.Author{ID: "5", Name: "Chef Lin"},
			CreatedAt: time.Date(2024, time.January, 11, 18, 45, 0, 0, time.UTC),
			Likes:     98,
			Category:  "Asian",
			Tags:      []string{"thai", "noodles", "spicy"},
		},
	}
}
