package services

import (
	"errors"
	"testing"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"
)

func TestComputeTotalsEmptyList(t *testing.T) {
	svc := NewRecipeService(newTestDB(t))

	totals := svc.computeTotals(nil)
	if totals.Calories != 0 || totals.Protein != 0 || totals.Fat != 0 || totals.Carbs != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}
}

func TestCreateRecipeDerivesTotals(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	author := createUser(t, db, "victor", models.RoleUser)

	// 165 kcal per 100g at quantity 100 must come out as exactly 165
	chicken := createIngredient(t, db, "Chicken breast", 165, 31, 3.6, 0)

	recipe := createTestRecipe(t, svc, author, []RecipeItemInput{
		{IngredientID: chicken.ID, Quantity: 100},
	})

	if recipe.Calories != 165 {
		t.Errorf("calories = %d, want 165", recipe.Calories)
	}
	if recipe.Protein != 31 {
		t.Errorf("protein = %d, want 31", recipe.Protein)
	}
	if recipe.Fat != 4 {
		t.Errorf("fat = %d, want 4 (3.6 rounded)", recipe.Fat)
	}
	if recipe.Carbs != 0 {
		t.Errorf("carbs = %d, want 0", recipe.Carbs)
	}
	if recipe.Official {
		t.Error("recipe by a plain user must not be official")
	}
}

func TestCreateRecipeTotalsAreLinear(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	author := createUser(t, db, "victor", models.RoleUser)

	oats := createIngredient(t, db, "Oats", 380, 17, 7, 66)
	milk := createIngredient(t, db, "Skimmed milk", 35, 3.5, 0.1, 5)

	base := createTestRecipe(t, svc, author, []RecipeItemInput{
		{IngredientID: oats.ID, Quantity: 50},
		{IngredientID: milk.ID, Quantity: 200},
	})

	doubled, err := svc.Create(author.ID, author.Role, CreateRecipeInput{
		Name:             "Double oatmeal",
		ShortDescription: "Twice the oats",
		Difficulty:       models.DifficultyEasy,
		Category:         models.CategoryBreakfast,
		Ingredients: []RecipeItemInput{
			{IngredientID: oats.ID, Quantity: 100},
			{IngredientID: milk.ID, Quantity: 400},
		},
	})
	if err != nil {
		t.Fatalf("create doubled recipe: %v", err)
	}

	if doubled.Calories != 2*base.Calories {
		t.Errorf("doubled calories = %d, want %d", doubled.Calories, 2*base.Calories)
	}
	if doubled.Carbs != 2*base.Carbs {
		t.Errorf("doubled carbs = %d, want %d", doubled.Carbs, 2*base.Carbs)
	}
}

func TestCreateRecipeMissingIngredientContributesZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	author := createUser(t, db, "victor", models.RoleUser)

	rice := createIngredient(t, db, "Brown rice", 111, 2.6, 0.9, 23)

	recipe := createTestRecipe(t, svc, author, []RecipeItemInput{
		{IngredientID: rice.ID, Quantity: 100},
		{IngredientID: 9999, Quantity: 500},
	})

	if recipe.Calories != 111 {
		t.Errorf("calories = %d, want 111 (dangling reference must add nothing)", recipe.Calories)
	}
}

func TestCreateRecipeValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	author := createUser(t, db, "victor", models.RoleUser)
	chicken := createIngredient(t, db, "Chicken breast", 165, 31, 3.6, 0)

	cases := []struct {
		name string
		in   CreateRecipeInput
	}{
		{"missing name", CreateRecipeInput{
			ShortDescription: "x", Difficulty: models.DifficultyEasy,
			Category: models.CategoryLunch,
			Ingredients: []RecipeItemInput{{IngredientID: chicken.ID, Quantity: 100}},
		}},
		{"bad difficulty", CreateRecipeInput{
			Name: "r", ShortDescription: "x", Difficulty: "impossible",
			Category: models.CategoryLunch,
			Ingredients: []RecipeItemInput{{IngredientID: chicken.ID, Quantity: 100}},
		}},
		{"bad category", CreateRecipeInput{
			Name: "r", ShortDescription: "x", Difficulty: models.DifficultyEasy,
			Category: "brunch",
			Ingredients: []RecipeItemInput{{IngredientID: chicken.ID, Quantity: 100}},
		}},
		{"no ingredients", CreateRecipeInput{
			Name: "r", ShortDescription: "x", Difficulty: models.DifficultyEasy,
			Category: models.CategoryLunch,
		}},
		{"zero quantity", CreateRecipeInput{
			Name: "r", ShortDescription: "x", Difficulty: models.DifficultyEasy,
			Category: models.CategoryLunch,
			Ingredients: []RecipeItemInput{{IngredientID: chicken.ID, Quantity: 0}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(author.ID, author.Role, tc.in); !errors.Is(err, ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestOfficialFlagFollowsAuthorRole(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	chicken := createIngredient(t, db, "Chicken breast", 165, 31, 3.6, 0)
	items := []RecipeItemInput{{IngredientID: chicken.ID, Quantity: 100}}

	nutritionist := createUser(t, db, "nutri", models.RoleNutritionist)
	recipe := createTestRecipe(t, svc, nutritionist, items)
	if !recipe.Official {
		t.Error("nutritionist recipe must be official")
	}

	admin := createUser(t, db, "admin", models.RoleAdmin)
	recipe, err := svc.Create(admin.ID, admin.Role, CreateRecipeInput{
		Name:             "Admin special",
		ShortDescription: "Official dish",
		Difficulty:       models.DifficultyHard,
		Category:         models.CategoryDinner,
		Ingredients:      items,
	})
	if err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	if !recipe.Official {
		t.Error("admin recipe must be official")
	}
}

func TestUpdateRecipeRecomputesOnlyWhenIngredientsReplaced(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)
	author := createUser(t, db, "victor", models.RoleUser)

	chicken := createIngredient(t, db, "Chicken breast", 165, 31, 3.6, 0)
	recipe := createTestRecipe(t, svc, author, []RecipeItemInput{
		{IngredientID: chicken.ID, Quantity: 100},
	})

	// drift the catalog so a spurious recomputation would show up
	if err := db.Model(chicken).Update("calories", 500).Error; err != nil {
		t.Fatal(err)
	}

	newName := "Renamed bowl"
	updated, err := svc.Update(author.ID, author.Role, recipe.ID, UpdateRecipeInput{Name: &newName})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("name = %q, want %q", updated.Name, newName)
	}
	if updated.Calories != 165 {
		t.Errorf("a name-only update changed calories to %d", updated.Calories)
	}

	updated, err = svc.Update(author.ID, author.Role, recipe.ID, UpdateRecipeInput{
		Ingredients: []RecipeItemInput{{IngredientID: chicken.ID, Quantity: 100}},
	})
	if err != nil {
		t.Fatalf("update ingredients: %v", err)
	}
	if updated.Calories != 500 {
		t.Errorf("replacing the list must recompute, calories = %d, want 500", updated.Calories)
	}
	if len(updated.Ingredients) != 1 {
		t.Fatalf("ingredient list length = %d, want 1", len(updated.Ingredients))
	}
}

func TestRecipeAuthorization(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecipeService(db)

	author := createUser(t, db, "victor", models.RoleUser)
	stranger := createUser(t, db, "mallory", models.RoleUser)
	admin := createUser(t, db, "admin", models.RoleAdmin)

	chicken := createIngredient(t, db, "Chicken breast", 165, 31, 3.6, 0)
	recipe := createTestRecipe(t, svc, author, []RecipeItemInput{
		{IngredientID: chicken.ID, Quantity: 100},
	})

	name := "hijacked"
	if _, err := svc.Update(stranger.ID, stranger.Role, recipe.ID, UpdateRecipeInput{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger update: expected forbidden, got %v", err)
	}
	if err := svc.Delete(stranger.ID, stranger.Role, recipe.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete: expected forbidden, got %v", err)
	}

	if _, err := svc.Update(admin.ID, admin.Role, recipe.ID, UpdateRecipeInput{Name: &name}); err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if err := svc.Delete(admin.ID, admin.Role, recipe.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
}

func TestGetRecipeNotFound(t *testing.T) {
	svc := NewRecipeService(newTestDB(t))

	_, err := svc.Get(42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if errors.Is(err, ErrValidation) {
		t.Fatal("not-found must be distinct from a validation failure")
	}
}
