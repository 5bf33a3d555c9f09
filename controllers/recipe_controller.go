package controllers

import (
	"net/http"

	"github.com/victormanuel-98/VMRC-PI-BACK/middlewares"
	"github.com/victormanuel-98/VMRC-PI-BACK/services"

	"github.com/gin-gonic/gin"
)

type RecipeController struct {
	recipes *services.RecipeService
}

func NewRecipeController(recipes *services.RecipeService) *RecipeController {
	return &RecipeController{recipes: recipes}
}

func (ctl *RecipeController) Create(c *gin.Context) {
	var in services.CreateRecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := ctl.recipes.Create(middlewares.CallerID(c), c.GetString("role"), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "recipe created",
		"recipe":  recipe,
	})
}

func (ctl *RecipeController) List(c *gin.Context) {
	filter := services.ListRecipesFilter{
		Category:   c.Query("category"),
		Difficulty: c.Query("difficulty"),
		Page:       intQuery(c, "page", 1),
		Limit:      intQuery(c, "limit", 10),
	}

	recipes, total, err := ctl.recipes.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	pages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		pages++
	}
	c.JSON(http.StatusOK, gin.H{
		"recipes":     recipes,
		"page":        filter.Page,
		"total_pages": pages,
		"total":       total,
	})
}

func (ctl *RecipeController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	recipe, err := ctl.recipes.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipe)
}

func (ctl *RecipeController) ListByAuthor(c *gin.Context) {
	userID, ok := idParam(c, "id")
	if !ok {
		return
	}

	recipes, err := ctl.recipes.ListByAuthor(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

func (ctl *RecipeController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in services.UpdateRecipeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := ctl.recipes.Update(middlewares.CallerID(c), c.GetString("role"), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "recipe updated",
		"recipe":  recipe,
	})
}

func (ctl *RecipeController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.recipes.Delete(middlewares.CallerID(c), c.GetString("role"), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe deleted"})
}
