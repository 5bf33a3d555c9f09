package models

import "gorm.io/gorm"

// One rating per user per recipe.
type Rating struct {
	gorm.Model
	UserID   uint   `gorm:"not null;uniqueIndex:idx_ratings_user_recipe" json:"user_id"`
	User     User   `json:"user"`
	RecipeID uint   `gorm:"not null;uniqueIndex:idx_ratings_user_recipe" json:"recipe_id"`
	Score    int    `gorm:"not null" json:"score"`
	Comment  string `gorm:"size:500" json:"comment"`
}
