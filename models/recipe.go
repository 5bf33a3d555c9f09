package models

import "gorm.io/gorm"

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

const (
	CategoryBreakfast = "breakfast"
	CategoryLunch     = "lunch"
	CategoryDinner    = "dinner"
	CategorySnack     = "snack"
	CategoryDessert   = "dessert"
)

// Recipe carries denormalized nutrition totals and a rating summary.
// Both are derived values: totals are recomputed whenever the ingredient
// list is replaced, the rating summary whenever a rating is mutated.
type Recipe struct {
	gorm.Model
	Name             string `gorm:"not null" json:"name"`
	AuthorID         uint   `gorm:"index;not null" json:"author_id"`
	Author           User   `json:"author"`
	ShortDescription string `gorm:"size:200;not null" json:"short_description"`
	LongDescription  string `json:"long_description"`
	Difficulty       string `gorm:"not null" json:"difficulty"`
	Category         string `gorm:"not null" json:"category"`
	Image            string `json:"image"`
	PrepMinutes      int    `gorm:"not null;default:0" json:"prep_minutes"`

	Ingredients []RecipeIngredient `gorm:"constraint:OnDelete:CASCADE" json:"ingredients"`

	// rounded totals over the ingredient list
	Calories int `gorm:"not null;default:0" json:"calories"`
	Protein  int `gorm:"not null;default:0" json:"protein"`
	Fat      int `gorm:"not null;default:0" json:"fat"`
	Carbs    int `gorm:"not null;default:0" json:"carbs"`

	// true when the author is a nutritionist or an admin
	Official bool `gorm:"not null;default:false" json:"official"`

	RatingAverage float64 `gorm:"not null;default:0" json:"rating_average"`
	RatingCount   int     `gorm:"not null;default:0" json:"rating_count"`
}

type RecipeIngredient struct {
	gorm.Model
	RecipeID     uint       `gorm:"index;not null" json:"recipe_id"`
	IngredientID uint       `gorm:"index;not null" json:"ingredient_id"`
	Ingredient   Ingredient `json:"ingredient"`
	Quantity     float64    `gorm:"not null" json:"quantity"`
	Position     int        `gorm:"not null;default:0" json:"position"`
}
