package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"

	"gorm.io/gorm"
)

type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// HistoryItemInput carries the macro contribution computed by the
// caller. Absent macro fields simply sum as zero.
type HistoryItemInput struct {
	RecipeID     *uint   `json:"recipe_id"`
	IngredientID *uint   `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbs        float64 `json:"carbs"`
	TimeOfDay    string  `json:"time_of_day"`
}

// dayOf truncates a timestamp to the start of its UTC calendar day,
// which is the identity the (user, day) uniqueness hangs on.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sumItems(items []HistoryItemInput) (calories, protein, fat, carbs int) {
	var c, p, f, cb float64
	for _, it := range items {
		c += it.Calories
		p += it.Protein
		f += it.Fat
		cb += it.Carbs
	}
	return int(math.Round(c)), int(math.Round(p)), int(math.Round(f)), int(math.Round(cb))
}

// UpsertDay stores the supplied items as the full log for the given
// day. An existing record for that (user, day) has its item list
// replaced wholesale, never merged.
func (s *HistoryService) UpsertDay(userID uint, date time.Time, items []HistoryItemInput) (*models.History, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: at least one item is required", ErrValidation)
	}

	day := dayOf(date)

	var history models.History
	err := s.db.Where("user_id = ? AND date >= ? AND date < ?",
		userID, day, day.Add(24*time.Hour)).
		First(&history).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		history = models.History{UserID: userID, Date: day}
		if err := s.db.Create(&history).Error; err != nil {
			return nil, err
		}
	} else {
		// drop the old items before writing the replacement list
		if err := s.db.Where("history_id = ?", history.ID).
			Delete(&models.HistoryItem{}).Error; err != nil {
			return nil, err
		}
	}

	for i, it := range items {
		item := models.HistoryItem{
			HistoryID:    history.ID,
			RecipeID:     it.RecipeID,
			IngredientID: it.IngredientID,
			Quantity:     it.Quantity,
			Calories:     it.Calories,
			Protein:      it.Protein,
			Fat:          it.Fat,
			Carbs:        it.Carbs,
			TimeOfDay:    it.TimeOfDay,
			Position:     i,
		}
		if err := s.db.Create(&item).Error; err != nil {
			return nil, err
		}
	}

	history.TotalCalories, history.TotalProtein, history.TotalFat, history.TotalCarbs = sumItems(items)
	if err := s.db.Save(&history).Error; err != nil {
		return nil, err
	}

	return s.get(history.ID)
}

func (s *HistoryService) get(id uint) (*models.History, error) {
	var history models.History
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&history, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: history %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}

func (s *HistoryService) GetByDate(userID uint, date time.Time) (*models.History, error) {
	day := dayOf(date)
	var history models.History
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ? AND date >= ? AND date < ?",
			userID, day, day.Add(24*time.Hour)).
		First(&history).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: no history for this date", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &history, nil
}

// GetRange returns the user's records within [start, end+1day),
// oldest first.
func (s *HistoryService) GetRange(userID uint, start, end time.Time) ([]models.History, error) {
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("%w: start and end dates are required", ErrValidation)
	}

	var histories []models.History
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("user_id = ? AND date >= ? AND date < ?",
			userID, dayOf(start), dayOf(end).Add(24*time.Hour)).
		Order("date ASC").
		Find(&histories).Error
	return histories, err
}

// RemoveItem deletes the item at the given position and recomputes the
// daily totals from what remains. Only the history's owner may do this.
func (s *HistoryService) RemoveItem(callerID uint, historyID uint, index int) (*models.History, error) {
	var history models.History
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&history, historyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: history %d", ErrNotFound, historyID)
	}
	if err != nil {
		return nil, err
	}

	if history.UserID != callerID {
		return nil, fmt.Errorf("%w: only the owner can modify this history", ErrForbidden)
	}

	if index < 0 || index >= len(history.Items) {
		return nil, fmt.Errorf("%w: item index out of range", ErrValidation)
	}

	if err := s.db.Delete(&history.Items[index]).Error; err != nil {
		return nil, err
	}

	remaining := append(history.Items[:index:index], history.Items[index+1:]...)
	var c, p, f, cb float64
	for i := range remaining {
		remaining[i].Position = i
		if err := s.db.Model(&remaining[i]).Update("position", i).Error; err != nil {
			return nil, err
		}
		c += remaining[i].Calories
		p += remaining[i].Protein
		f += remaining[i].Fat
		cb += remaining[i].Carbs
	}

	history.Items = nil
	history.TotalCalories = int(math.Round(c))
	history.TotalProtein = int(math.Round(p))
	history.TotalFat = int(math.Round(f))
	history.TotalCarbs = int(math.Round(cb))
	if err := s.db.Save(&history).Error; err != nil {
		return nil, err
	}

	return s.get(history.ID)
}
