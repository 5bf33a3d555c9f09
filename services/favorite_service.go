package services

import (
	"errors"
	"fmt"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"

	"gorm.io/gorm"
)

type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

func (s *FavoriteService) Add(userID, recipeID uint) (*models.Favorite, error) {
	if recipeID == 0 {
		return nil, fmt.Errorf("%w: recipe id is required", ErrValidation)
	}

	if err := s.db.First(&models.Recipe{}, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: recipe %d", ErrNotFound, recipeID)
		}
		return nil, err
	}

	var existing models.Favorite
	err := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: recipe already in favorites", ErrConflict)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	favorite := models.Favorite{UserID: userID, RecipeID: recipeID}
	if err := s.db.Create(&favorite).Error; err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (s *FavoriteService) List(userID uint) ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := s.db.
		Preload("Recipe").
		Preload("Recipe.Author").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error
	return favorites, err
}

func (s *FavoriteService) Remove(userID, recipeID uint) error {
	var favorite models.Favorite
	err := s.db.Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&favorite).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: favorite", ErrNotFound)
	}
	if err != nil {
		return err
	}
	return s.db.Delete(&favorite).Error
}
