package models

import (
	"time"

	"gorm.io/gorm"
)

// History is one user's food log for one calendar day. Date is always
// truncated to the start of the day, so the unique index enforces a
// single record per (user, day). Totals always equal the sum over the
// current item list.
type History struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:idx_history_user_day" json:"user_id"`
	Date   time.Time `gorm:"not null;uniqueIndex:idx_history_user_day" json:"date"`

	Items []HistoryItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`

	TotalCalories int `gorm:"not null;default:0" json:"total_calories"`
	TotalProtein  int `gorm:"not null;default:0" json:"total_protein"`
	TotalFat      int `gorm:"not null;default:0" json:"total_fat"`
	TotalCarbs    int `gorm:"not null;default:0" json:"total_carbs"`
}

// HistoryItem snapshots the macro contribution of one consumed entry.
// The macros are supplied by the caller, not re-resolved from the
// referenced recipe or ingredient.
type HistoryItem struct {
	gorm.Model
	HistoryID    uint    `gorm:"index;not null" json:"history_id"`
	RecipeID     *uint   `json:"recipe_id"`
	IngredientID *uint   `json:"ingredient_id"`
	Quantity     float64 `gorm:"not null" json:"quantity"`
	Calories     float64 `gorm:"not null;default:0" json:"calories"`
	Protein      float64 `gorm:"not null;default:0" json:"protein"`
	Fat          float64 `gorm:"not null;default:0" json:"fat"`
	Carbs        float64 `gorm:"not null;default:0" json:"carbs"`
	TimeOfDay    string  `json:"time_of_day"`
	Position     int     `gorm:"not null;default:0" json:"position"`
}
