package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"

	"gorm.io/gorm"
)

type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

type RecipeItemInput struct {
	IngredientID uint    `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
}

type CreateRecipeInput struct {
	Name             string            `json:"name"`
	ShortDescription string            `json:"short_description"`
	LongDescription  string            `json:"long_description"`
	Difficulty       string            `json:"difficulty"`
	Category         string            `json:"category"`
	Ingredients      []RecipeItemInput `json:"ingredients"`
	PrepMinutes      int               `json:"prep_minutes"`
	Image            string            `json:"image"`
}

// UpdateRecipeInput uses pointers so absent fields stay untouched.
// A non-nil Ingredients slice replaces the list wholesale and triggers
// a totals recomputation; every other field leaves the totals alone.
type UpdateRecipeInput struct {
	Name             *string           `json:"name"`
	ShortDescription *string           `json:"short_description"`
	LongDescription  *string           `json:"long_description"`
	Difficulty       *string           `json:"difficulty"`
	Category         *string           `json:"category"`
	Ingredients      []RecipeItemInput `json:"ingredients"`
	PrepMinutes      *int              `json:"prep_minutes"`
	Image            *string           `json:"image"`
}

type macroTotals struct {
	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
}

// computeTotals sums the macro contribution of each (ingredient,
// quantity) pair, scaled against the ingredient's per-100-unit values.
// An ingredient that no longer exists contributes nothing.
func (s *RecipeService) computeTotals(items []RecipeItemInput) macroTotals {
	var t macroTotals
	for _, it := range items {
		var ing models.Ingredient
		if err := s.db.First(&ing, it.IngredientID).Error; err != nil {
			continue
		}
		t.Calories += ing.Calories * it.Quantity / 100
		t.Protein += ing.Protein * it.Quantity / 100
		t.Fat += ing.Fat * it.Quantity / 100
		t.Carbs += ing.Carbs * it.Quantity / 100
	}
	return t
}

// Each total is rounded independently for storage.
func (s *RecipeService) applyTotals(r *models.Recipe, t macroTotals) {
	r.Calories = int(math.Round(t.Calories))
	r.Protein = int(math.Round(t.Protein))
	r.Fat = int(math.Round(t.Fat))
	r.Carbs = int(math.Round(t.Carbs))
}

func validDifficulty(d string) bool {
	switch d {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}

func validCategory(c string) bool {
	switch c {
	case models.CategoryBreakfast, models.CategoryLunch, models.CategoryDinner,
		models.CategorySnack, models.CategoryDessert:
		return true
	}
	return false
}

func validateRecipeItems(items []RecipeItemInput) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one ingredient is required", ErrValidation)
	}
	for _, it := range items {
		if it.IngredientID == 0 {
			return fmt.Errorf("%w: ingredient id is required", ErrValidation)
		}
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be greater than zero", ErrValidation)
		}
	}
	return nil
}

func (s *RecipeService) Create(authorID uint, role string, in CreateRecipeInput) (*models.Recipe, error) {
	if in.Name == "" || in.ShortDescription == "" || in.Difficulty == "" || in.Category == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if len(in.ShortDescription) > 200 {
		return nil, fmt.Errorf("%w: short description cannot exceed 200 characters", ErrValidation)
	}
	if !validDifficulty(in.Difficulty) {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrValidation, in.Difficulty)
	}
	if !validCategory(in.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if err := validateRecipeItems(in.Ingredients); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Name:             in.Name,
		AuthorID:         authorID,
		ShortDescription: in.ShortDescription,
		LongDescription:  in.LongDescription,
		Difficulty:       in.Difficulty,
		Category:         in.Category,
		Image:            in.Image,
		PrepMinutes:      in.PrepMinutes,
		Official:         role != models.RoleUser,
	}
	s.applyTotals(&recipe, s.computeTotals(in.Ingredients))

	for i, it := range in.Ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			Position:     i,
		})
	}

	if err := s.db.Create(&recipe).Error; err != nil {
		return nil, err
	}
	return s.Get(recipe.ID)
}

type ListRecipesFilter struct {
	Category   string
	Difficulty string
	Page       int
	Limit      int
}

func (s *RecipeService) List(f ListRecipesFilter) ([]models.Recipe, int64, error) {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 10
	}

	q := s.db.Model(&models.Recipe{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Difficulty != "" {
		q = q.Where("difficulty = ?", f.Difficulty)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []models.Recipe
	err := q.
		Preload("Author").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Ingredients.Ingredient").
		Order("created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&recipes).Error
	return recipes, total, err
}

func (s *RecipeService) Get(id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.
		Preload("Author").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Ingredients.Ingredient").
		First(&recipe, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: recipe %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (s *RecipeService) ListByAuthor(authorID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Ingredients.Ingredient").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&recipes).Error
	return recipes, err
}

func (s *RecipeService) Update(callerID uint, role string, id uint, in UpdateRecipeInput) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", ErrNotFound, id)
		}
		return nil, err
	}

	if recipe.AuthorID != callerID && role != models.RoleAdmin {
		return nil, fmt.Errorf("%w: only the author can edit this recipe", ErrForbidden)
	}

	if in.Name != nil {
		recipe.Name = *in.Name
	}
	if in.ShortDescription != nil {
		if len(*in.ShortDescription) > 200 {
			return nil, fmt.Errorf("%w: short description cannot exceed 200 characters", ErrValidation)
		}
		recipe.ShortDescription = *in.ShortDescription
	}
	if in.LongDescription != nil {
		recipe.LongDescription = *in.LongDescription
	}
	if in.Difficulty != nil {
		if !validDifficulty(*in.Difficulty) {
			return nil, fmt.Errorf("%w: unknown difficulty %q", ErrValidation, *in.Difficulty)
		}
		recipe.Difficulty = *in.Difficulty
	}
	if in.Category != nil {
		if !validCategory(*in.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, *in.Category)
		}
		recipe.Category = *in.Category
	}
	if in.PrepMinutes != nil {
		recipe.PrepMinutes = *in.PrepMinutes
	}
	if in.Image != nil {
		recipe.Image = *in.Image
	}

	// A replaced ingredient list is the only change that touches the
	// stored totals.
	if in.Ingredients != nil {
		if err := validateRecipeItems(in.Ingredients); err != nil {
			return nil, err
		}
		if err := s.db.Where("recipe_id = ?", recipe.ID).
			Delete(&models.RecipeIngredient{}).Error; err != nil {
			return nil, err
		}
		for i, it := range in.Ingredients {
			ri := models.RecipeIngredient{
				RecipeID:     recipe.ID,
				IngredientID: it.IngredientID,
				Quantity:     it.Quantity,
				Position:     i,
			}
			if err := s.db.Create(&ri).Error; err != nil {
				return nil, err
			}
		}
		s.applyTotals(&recipe, s.computeTotals(in.Ingredients))
	}

	recipe.Ingredients = nil
	if err := s.db.Save(&recipe).Error; err != nil {
		return nil, err
	}
	return s.Get(recipe.ID)
}

func (s *RecipeService) Delete(callerID uint, role string, id uint) error {
	var recipe models.Recipe
	if err := s.db.First(&recipe, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: recipe %d", ErrNotFound, id)
		}
		return err
	}

	if recipe.AuthorID != callerID && role != models.RoleAdmin {
		return fmt.Errorf("%w: only the author can delete this recipe", ErrForbidden)
	}

	if err := s.db.Where("recipe_id = ?", recipe.ID).
		Delete(&models.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return s.db.Delete(&recipe).Error
}
