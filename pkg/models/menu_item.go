package models

// MenuItem is a catalog entry. Category is one of starters, mains,
// desserts, beverages.
type MenuItem struct {
	ID              int      `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Name            string   `json:"name" gorm:"column:name;not null"`
	Description     string   `json:"description" gorm:"column:description;not null"`
	Price           float64  `json:"price" gorm:"column:price;not null"`
	Category        string   `json:"category" gorm:"column:category;not null;index"`
	Ingredients     []string `json:"ingredients" gorm:"column:ingredients;serializer:json"`
	Allergens       []string `json:"allergens" gorm:"column:allergens;serializer:json"`
	Dietary         []string `json:"dietary" gorm:"column:dietary;serializer:json"`
	ImageURL        string   `json:"imageUrl" gorm:"column:image_url"`
	Available       bool     `json:"available" gorm:"column:available;default:true"`
	SeasonalScore   float64  `json:"seasonalScore" gorm:"column:seasonal_score;default:0"`
	PopularityScore float64  `json:"popularityScore" gorm:"column:popularity_score;default:0"`
}

func (MenuItem) TableName() string { return "menu_items" }

// MenuItemPatch carries the optional fields of a shallow-merge update.
// Nil fields are left untouched.
type MenuItemPatch struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	Price           *float64  `json:"price"`
	Category        *string   `json:"category"`
	Ingredients     *[]string `json:"ingredients"`
	Allergens       *[]string `json:"allergens"`
	Dietary         *[]string `json:"dietary"`
	ImageURL        *string   `json:"imageUrl"`
	Available       *bool     `json:"available"`
	SeasonalScore   *float64  `json:"seasonalScore"`
	PopularityScore *float64  `json:"popularityScore"`
}

// Apply merges the patch onto the item.
func (p MenuItemPatch) Apply(item *MenuItem) {
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.Price != nil {
		item.Price = *p.Price
	}
	if p.Category != nil {
		item.Category = *p.Category
	}
	if p.Ingredients != nil {
		item.Ingredients = *p.Ingredients
	}
	if p.Allergens != nil {
		item.Allergens = *p.Allergens
	}
	if p.Dietary != nil {
		item.Dietary = *p.Dietary
	}
	if p.ImageURL != nil {
		item.ImageURL = *p.ImageURL
	}
	if p.Available != nil {
		item.Available = *p.Available
	}
	if p.SeasonalScore != nil {
		item.SeasonalScore = *p.SeasonalScore
	}
	if p.PopularityScore != nil {
		item.PopularityScore = *p.PopularityScore
	}
}
