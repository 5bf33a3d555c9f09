package models

import "gorm.io/gorm"

const (
	UnitGram       = "g"
	UnitMilliliter = "ml"
	UnitPiece      = "unit"
)

// Macro values are stored per 100 units of the ingredient's measurement unit.
type Ingredient struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Calories    float64 `gorm:"not null" json:"calories"`
	Unit        string  `gorm:"not null;default:g" json:"unit"`
	Protein     float64 `gorm:"not null;default:0" json:"protein"`
	Fat         float64 `gorm:"not null;default:0" json:"fat"`
	Carbs       float64 `gorm:"not null;default:0" json:"carbs"`
	Description string  `json:"description"`
}
