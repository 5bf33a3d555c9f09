package services

import (
	"errors"
	"testing"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"
)

func TestFavoriteLifecycle(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFavoriteService(db)
	recipes := NewRecipeService(db)

	author := createUser(t, db, "author", models.RoleUser)
	alice := createUser(t, db, "alice", models.RoleUser)
	chicken := createIngredient(t, db, "Chicken breast", 165, 31, 3.6, 0)
	recipe := createTestRecipe(t, recipes, author, []RecipeItemInput{
		{IngredientID: chicken.ID, Quantity: 100},
	})

	if _, err := favorites.Add(alice.ID, recipe.ID); err != nil {
		t.Fatalf("add: %v", err)
	}

	_, err := favorites.Add(alice.ID, recipe.ID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate favorite: expected conflict, got %v", err)
	}

	list, err := favorites.List(alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].RecipeID != recipe.ID {
		t.Fatalf("unexpected favorites list: %+v", list)
	}

	if err := favorites.Remove(alice.ID, recipe.ID); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := favorites.Remove(alice.ID, recipe.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("remove again: expected not found, got %v", err)
	}
}

func TestFavoriteMissingRecipe(t *testing.T) {
	db := newTestDB(t)
	favorites := NewFavoriteService(db)
	alice := createUser(t, db, "alice", models.RoleUser)

	if _, err := favorites.Add(alice.ID, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := favorites.Add(alice.ID, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
