package services

import (
	"errors"
	"testing"

	"github.com/victormanuel-98/VMRC-PI-BACK/models"
)

func ratingFixture(t *testing.T) (*RatingService, *RecipeService, *models.Recipe, func(username string) *models.User) {
	t.Helper()
	db := newTestDB(t)
	ratings := NewRatingService(db)
	recipes := NewRecipeService(db)

	author := createUser(t, db, "author", models.RoleUser)
	chicken := createIngredient(t, db, "Chicken breast", 165, 31, 3.6, 0)
	recipe := createTestRecipe(t, recipes, author, []RecipeItemInput{
		{IngredientID: chicken.ID, Quantity: 100},
	})

	return ratings, recipes, recipe, func(username string) *models.User {
		return createUser(t, db, username, models.RoleUser)
	}
}

func assertSummary(t *testing.T, recipes *RecipeService, recipeID uint, average float64, count int) {
	t.Helper()
	recipe, err := recipes.Get(recipeID)
	if err != nil {
		t.Fatalf("reload recipe: %v", err)
	}
	if recipe.RatingAverage != average || recipe.RatingCount != count {
		t.Fatalf("summary = (%.1f, %d), want (%.1f, %d)",
			recipe.RatingAverage, recipe.RatingCount, average, count)
	}
}

func TestRatingSummaryLifecycle(t *testing.T) {
	ratings, recipes, recipe, newUser := ratingFixture(t)

	alice := newUser("alice")
	bob := newUser("bob")

	if _, err := ratings.Create(alice.ID, CreateRatingInput{RecipeID: recipe.ID, Score: 3}); err != nil {
		t.Fatalf("alice rating: %v", err)
	}
	five, err := ratings.Create(bob.ID, CreateRatingInput{RecipeID: recipe.ID, Score: 5})
	if err != nil {
		t.Fatalf("bob rating: %v", err)
	}
	assertSummary(t, recipes, recipe.ID, 4.0, 2)

	if err := ratings.Delete(bob.ID, bob.Role, five.ID); err != nil {
		t.Fatalf("delete five: %v", err)
	}
	assertSummary(t, recipes, recipe.ID, 3.0, 1)

	own, err := ratings.GetOwn(alice.ID, recipe.ID)
	if err != nil {
		t.Fatalf("get own: %v", err)
	}
	if err := ratings.Delete(alice.ID, alice.Role, own.ID); err != nil {
		t.Fatalf("delete remaining: %v", err)
	}
	assertSummary(t, recipes, recipe.ID, 0, 0)
}

func TestRatingAverageRoundsToOneDecimal(t *testing.T) {
	ratings, recipes, recipe, newUser := ratingFixture(t)

	for _, tc := range []struct {
		user  string
		score int
	}{
		{"u1", 5}, {"u2", 5}, {"u3", 4},
	} {
		u := newUser(tc.user)
		if _, err := ratings.Create(u.ID, CreateRatingInput{RecipeID: recipe.ID, Score: tc.score}); err != nil {
			t.Fatalf("rating by %s: %v", tc.user, err)
		}
	}

	// 14/3 = 4.666..., stored as 4.7
	assertSummary(t, recipes, recipe.ID, 4.7, 3)
}

func TestDuplicateRatingRejected(t *testing.T) {
	ratings, _, recipe, newUser := ratingFixture(t)
	alice := newUser("alice")

	if _, err := ratings.Create(alice.ID, CreateRatingInput{RecipeID: recipe.ID, Score: 4}); err != nil {
		t.Fatalf("first rating: %v", err)
	}
	_, err := ratings.Create(alice.ID, CreateRatingInput{RecipeID: recipe.ID, Score: 2})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestRatingScoreBounds(t *testing.T) {
	ratings, _, recipe, newUser := ratingFixture(t)
	alice := newUser("alice")

	for _, score := range []int{-1, 6} {
		if _, err := ratings.Create(alice.ID, CreateRatingInput{RecipeID: recipe.ID, Score: score}); !errors.Is(err, ErrValidation) {
			t.Fatalf("score %d: expected validation error, got %v", score, err)
		}
	}
}

func TestRatingForMissingRecipe(t *testing.T) {
	ratings, _, _, newUser := ratingFixture(t)
	alice := newUser("alice")

	_, err := ratings.Create(alice.ID, CreateRatingInput{RecipeID: 9999, Score: 4})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestRatingAuthorization(t *testing.T) {
	ratings, recipes, recipe, newUser := ratingFixture(t)

	alice := newUser("alice")
	mallory := newUser("mallory")

	created, err := ratings.Create(alice.ID, CreateRatingInput{RecipeID: recipe.ID, Score: 4, Comment: "solid"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newScore := 1
	if _, err := ratings.Update(mallory.ID, created.ID, UpdateRatingInput{Score: &newScore}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger update: expected forbidden, got %v", err)
	}
	if err := ratings.Delete(mallory.ID, mallory.Role, created.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger delete: expected forbidden, got %v", err)
	}

	// the author can move their own score, which refreshes the summary
	if _, err := ratings.Update(alice.ID, created.ID, UpdateRatingInput{Score: &newScore}); err != nil {
		t.Fatalf("author update: %v", err)
	}
	assertSummary(t, recipes, recipe.ID, 1.0, 1)

	// admins may delete but not edit someone else's rating
	db := recipes.db
	admin := createUser(t, db, "admin", models.RoleAdmin)
	if _, err := ratings.Update(admin.ID, created.ID, UpdateRatingInput{Score: &newScore}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("admin update: expected forbidden, got %v", err)
	}
	if err := ratings.Delete(admin.ID, admin.Role, created.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	assertSummary(t, recipes, recipe.ID, 0, 0)
}
