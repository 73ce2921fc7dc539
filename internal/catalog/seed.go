package catalog

import "github.com/gatera900/bite-backend/pkg/models"

// SeedMenuItems is the sample menu loaded into an empty store on boot.
func SeedMenuItems() []models.MenuItem {
	return []models.MenuItem{
		{
			ID:              1,
			Name:            "Garden Fresh Salad",
			Description:     "Mixed greens with seasonal vegetables, goat cheese, and herb vinaigrette",
			Price:           14,
			Category:        "mains",
			Ingredients:     []string{"mixed greens", "goat cheese", "cherry tomatoes", "cucumber", "herb vinaigrette"},
			Allergens:       []string{"dairy"},
			Dietary:         []string{"vegetarian", "gluten-free", "organic"},
			ImageURL:        "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400&q=80",
			Available:       true,
			SeasonalScore:   0.95,
			PopularityScore: 0.85,
		},
		{
			ID:              2,
			Name:            "Herb Crusted Salmon",
			Description:     "Wild-caught salmon with roasted root vegetables and lemon herb sauce",
			Price:           24,
			Category:        "mains",
			Ingredients:     []string{"wild salmon", "root vegetables", "herbs", "lemon", "olive oil"},
			Allergens:       []string{"fish"},
			Dietary:         []string{"gluten-free", "high-protein"},
			ImageURL:        "https://images.unsplash.com/photo-1485963631004-f2f00b1d6606?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400&q=80",
			Available:       true,
			SeasonalScore:   0.88,
			PopularityScore: 0.92,
		},
		{
			ID:              3,
			Name:            "Seasonal Vegetable Soup",
			Description:     "Daily changing soup made with seasonal vegetables and herbs",
			Price:           9,
			Category:        "starters",
			Ingredients:     []string{"seasonal vegetables", "vegetable broth", "fresh herbs"},
			Allergens:       []string{},
			Dietary:         []string{"vegan", "gluten-free", "organic"},
			ImageURL:        "https://images.unsplash.com/photo-1547592166-23ac45744acd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400&q=80",
			Available:       true,
			SeasonalScore:   1.0,
			PopularityScore: 0.78,
		},
		{
			ID:              4,
			Name:            "Farm Apple Pie",
			Description:     "Made with apples from our orchard partners, served with vanilla cream",
			Price:           8,
			Category:        "desserts",
			Ingredients:     []string{"local apples", "pastry", "vanilla cream", "cinnamon"},
			Allergens:       []string{"gluten", "dairy", "eggs"},
			Dietary:         []string{"vegetarian"},
			ImageURL:        "https://images.unsplash.com/photo-1568571780765-9276ac8b75a2?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400&q=80",
			Available:       true,
			SeasonalScore:   0.92,
			PopularityScore: 0.88,
		},
		{
			ID:              5,
			Name:            "Fresh Pressed Juice",
			Description:     "Daily selection of fresh-pressed juices from local fruits",
			Price:           6,
			Category:        "beverages",
			Ingredients:     []string{"seasonal fruits"},
			Allergens:       []string{},
			Dietary:         []string{"vegan", "gluten-free", "organic"},
			ImageURL:        "https://images.unsplash.com/photo-1622597467836-f3285f2131b8?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400&q=80",
			Available:       true,
			SeasonalScore:   0.98,
			PopularityScore: 0.75,
		},
		{
			ID:              6,
			Name:            "Farm Burger",
			Description:     "Grass-fed beef with local cheese, greens, and house-made bun",
			Price:           18,
			Category:        "mains",
			Ingredients:     []string{"grass-fed beef", "local cheese", "greens", "house-made bun"},
			Allergens:       []string{"gluten", "dairy"},
			Dietary:         []string{"grass-fed"},
			ImageURL:        "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=400&q=80",
			Available:       true,
			SeasonalScore:   0.85,
			PopularityScore: 0.95,
		},
	}
}
