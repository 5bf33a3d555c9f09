package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"

	"gorm.io/gorm"
)

type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

type IngredientInput struct {
	Name        string   `json:"name"`
	Calories    *float64 `json:"calories"`
	Unit        string   `json:"unit"`
	Protein     *float64 `json:"protein"`
	Fat         *float64 `json:"fat"`
	Carbs       *float64 `json:"carbs"`
	Description *string  `json:"description"`
}

func validUnit(u string) bool {
	switch u {
	case models.UnitGram, models.UnitMilliliter, models.UnitPiece:
		return true
	}
	return false
}

func (s *IngredientService) Create(in IngredientInput) (*models.Ingredient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Calories == nil {
		return nil, fmt.Errorf("%w: name and calories are required", ErrValidation)
	}
	if *in.Calories < 0 {
		return nil, fmt.Errorf("%w: calories cannot be negative", ErrValidation)
	}
	unit := in.Unit
	if unit == "" {
		unit = models.UnitGram
	}
	if !validUnit(unit) {
		return nil, fmt.Errorf("%w: unknown unit %q", ErrValidation, unit)
	}

	var existing models.Ingredient
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: ingredient %q already exists", ErrConflict, name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ing := models.Ingredient{
		Name:     name,
		Calories: *in.Calories,
		Unit:     unit,
	}
	if in.Protein != nil {
		ing.Protein = *in.Protein
	}
	if in.Fat != nil {
		ing.Fat = *in.Fat
	}
	if in.Carbs != nil {
		ing.Carbs = *in.Carbs
	}
	if in.Description != nil {
		ing.Description = *in.Description
	}

	if err := s.db.Create(&ing).Error; err != nil {
		return nil, err
	}
	return &ing, nil
}

type ListIngredientsFilter struct {
	Query string
	Page  int
	Limit int
}

func (s *IngredientService) List(f ListIngredientsFilter) ([]models.Ingredient, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}

	q := s.db.Model(&models.Ingredient{})
	if f.Query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(f.Query)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ingredients []models.Ingredient
	err := q.
		Order("name ASC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&ingredients).Error
	return ingredients, total, err
}

func (s *IngredientService) Get(id uint) (*models.Ingredient, error) {
	var ing models.Ingredient
	err := s.db.First(&ing, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: ingredient %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (s *IngredientService) Update(id uint, in IngredientInput) (*models.Ingredient, error) {
	ing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(in.Name); name != "" && name != ing.Name {
		var existing models.Ingredient
		err := s.db.Where("name = ? AND id <> ?", name, id).First(&existing).Error
		if err == nil {
			return nil, fmt.Errorf("%w: ingredient %q already exists", ErrConflict, name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		ing.Name = name
	}
	if in.Calories != nil {
		if *in.Calories < 0 {
			return nil, fmt.Errorf("%w: calories cannot be negative", ErrValidation)
		}
		ing.Calories = *in.Calories
	}
	if in.Unit != "" {
		if !validUnit(in.Unit) {
			return nil, fmt.Errorf("%w: unknown unit %q", ErrValidation, in.Unit)
		}
		ing.Unit = in.Unit
	}
	if in.Protein != nil {
		ing.Protein = *in.Protein
	}
	if in.Fat != nil {
		ing.Fat = *in.Fat
	}
	if in.Carbs != nil {
		ing.Carbs = *in.Carbs
	}
	if in.Description != nil {
		ing.Description = *in.Description
	}

	if err := s.db.Save(ing).Error; err != nil {
		return nil, err
	}
	return ing, nil
}

// Delete refuses to remove an ingredient that is still referenced by a
// recipe, so stored recipe totals keep matching their ingredient lists.
func (s *IngredientService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	var refs int64
	if err := s.db.Model(&models.RecipeIngredient{}).
		Where("ingredient_id = ?", id).
		Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return fmt.Errorf("%w: ingredient is used by %d recipe(s)", ErrConflict, refs)
	}

	return s.db.Delete(&models.Ingredient{}, id).Error
}
