package services

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"

	"gorm.io/gorm"
)

type RatingService struct {
	db *gorm.DB
}

func NewRatingService(db *gorm.DB) *RatingService {
	return &RatingService{db: db}
}

type CreateRatingInput struct {
	RecipeID uint   `json:"recipe_id"`
	Score    int    `json:"score"`
	Comment  string `json:"comment"`
}

type UpdateRatingInput struct {
	Score   *int    `json:"score"`
	Comment *string `json:"comment"`
}

func validateScore(score int) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("%w: score must be between 1 and 5", ErrValidation)
	}
	return nil
}

func (s *RatingService) Create(userID uint, in CreateRatingInput) (*models.Rating, error) {
	if in.RecipeID == 0 || in.Score == 0 {
		return nil, fmt.Errorf("%w: recipe id and score are required", ErrValidation)
	}
	if err := validateScore(in.Score); err != nil {
		return nil, err
	}
	if len(in.Comment) > 500 {
		return nil, fmt.Errorf("%w: comment cannot exceed 500 characters", ErrValidation)
	}

	if err := s.db.First(&models.Recipe{}, in.RecipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", ErrNotFound, in.RecipeID)
		}
		return nil, err
	}

	var existing models.Rating
	err := s.db.Where("user_id = ? AND recipe_id = ?", userID, in.RecipeID).
		First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: recipe already rated by this user", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating := models.Rating{
		UserID:   userID,
		RecipeID: in.RecipeID,
		Score:    in.Score,
		Comment:  in.Comment,
	}
	if err := s.db.Create(&rating).Error; err != nil {
		return nil, err
	}

	s.refreshRecipeRating(in.RecipeID)
	return &rating, nil
}

func (s *RatingService) ListByRecipe(recipeID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	err := s.db.
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// GetOwn returns the caller's rating for a recipe, if any.
func (s *RatingService) GetOwn(userID, recipeID uint) (*models.Rating, error) {
	var rating models.Rating
	err := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: recipe not rated by this user", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (s *RatingService) Update(callerID uint, id uint, in UpdateRatingInput) (*models.Rating, error) {
	var rating models.Rating
	if err := s.db.First(&rating, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: rating %d", ErrNotFound, id)
		}
		return nil, err
	}

	// updates are owner-only, no admin override
	if rating.UserID != callerID {
		return nil, fmt.Errorf("%w: only the author can edit this rating", ErrForbidden)
	}

	if in.Score != nil {
		if err := validateScore(*in.Score); err != nil {
			return nil, err
		}
		rating.Score = *in.Score
	}
	if in.Comment != nil {
		if len(*in.Comment) > 500 {
			return nil, fmt.Errorf("%w: comment cannot exceed 500 characters", ErrValidation)
		}
		rating.Comment = *in.Comment
	}

	if err := s.db.Save(&rating).Error; err != nil {
		return nil, err
	}

	s.refreshRecipeRating(rating.RecipeID)
	return &rating, nil
}

func (s *RatingService) Delete(callerID uint, role string, id uint) error {
	var rating models.Rating
	if err := s.db.First(&rating, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: rating %d", ErrNotFound, id)
		}
		return err
	}

	if rating.UserID != callerID && role != models.RoleAdmin {
		return fmt.Errorf("%w: only the author can delete this rating", ErrForbidden)
	}

	recipeID := rating.RecipeID
	if err := s.db.Delete(&rating).Error; err != nil {
		return err
	}

	s.refreshRecipeRating(recipeID)
	return nil
}

// refreshRecipeRating recomputes the recipe's rating summary from all
// surviving ratings. It runs after the triggering mutation has already
// committed, so failures are logged rather than surfaced to the caller.
func (s *RatingService) refreshRecipeRating(recipeID uint) {
	var ratings []models.Rating
	if err := s.db.Where("recipe_id = ?", recipeID).Find(&ratings).Error; err != nil {
		log.Printf("rating refresh: load ratings for recipe %d: %v", recipeID, err)
		return
	}

	var average float64
	count := len(ratings)
	if count > 0 {
		sum := 0
		for _, r := range ratings {
			sum += r.Score
		}
		// one decimal place
		average = math.Round(float64(sum)/float64(count)*10) / 10
	}

	err := s.db.Model(&models.Recipe{}).
		Where("id = ?", recipeID).
		Updates(map[string]interface{}{
			"rating_average": average,
			"rating_count":   count,
		}).Error
	if err != nil {
		log.Printf("rating refresh: update recipe %d: %v", recipeID, err)
	}
}
