package models

import "gorm.io/gorm"

// Favorite is a pure existence marker, unique per (user, recipe).
type Favorite struct {
	gorm.Model
	UserID   uint   `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"user_id"`
	RecipeID uint   `gorm:"not null;uniqueIndex:idx_favorites_user_recipe" json:"recipe_id"`
	Recipe   Recipe `json:"recipe"`
}
