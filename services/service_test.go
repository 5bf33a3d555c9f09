package services

import (
	"testing"

	"github.com/victormanuel-98/VMRC-PI-BACK/config"
	"github.com/victormanuel-98/VMRC-PI-BACK/models"
	"github.com/victormanuel-98/VMRC-PI-BACK/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory store scoped to one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	// a single connection keeps every query on the same in-memory db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("test db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()

	hashed, err := utils.HashPassword("Passw0rd!")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Name:     username,
		Password: hashed,
		Role:     role,
		Active:   true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", username, err)
	}
	return &user
}

func createIngredient(t *testing.T, db *gorm.DB, name string, calories, protein, fat, carbs float64) *models.Ingredient {
	t.Helper()

	ing := models.Ingredient{
		Name:     name,
		Calories: calories,
		Unit:     models.UnitGram,
		Protein:  protein,
		Fat:      fat,
		Carbs:    carbs,
	}
	if err := db.Create(&ing).Error; err != nil {
		t.Fatalf("create ingredient %s: %v", name, err)
	}
	return &ing
}

func createTestRecipe(t *testing.T, svc *RecipeService, author *models.User, items []RecipeItemInput) *models.Recipe {
	t.Helper()

	recipe, err := svc.Create(author.ID, author.Role, CreateRecipeInput{
		Name:             "Grilled chicken bowl",
		ShortDescription: "High protein lunch",
		Difficulty:       models.DifficultyEasy,
		Category:         models.CategoryLunch,
		Ingredients:      items,
	})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	return recipe
}
