package controllers

import (
	"net/http"

	"github.com/victormanuel-98/VMRC-PI-BACK/services"

	"github.com/gin-gonic/gin"
)

type IngredientController struct {
	ingredients *services.IngredientService
}

func NewIngredientController(ingredients *services.IngredientService) *IngredientController {
	return &IngredientController{ingredients: ingredients}
}

func (ctl *IngredientController) Create(c *gin.Context) {
	var in services.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ing, err := ctl.ingredients.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "ingredient created",
		"ingredient": ing,
	})
}

func (ctl *IngredientController) List(c *gin.Context) {
	filter := services.ListIngredientsFilter{
		Query: c.Query("q"),
		Page:  intQuery(c, "page", 1),
		Limit: intQuery(c, "limit", 20),
	}

	ingredients, total, err := ctl.ingredients.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}

	pages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		pages++
	}
	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
		"page":        filter.Page,
		"total_pages": pages,
		"total":       total,
	})
}

func (ctl *IngredientController) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	ing, err := ctl.ingredients.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ing)
}

func (ctl *IngredientController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in services.IngredientInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ing, err := ctl.ingredients.Update(id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "ingredient updated",
		"ingredient": ing,
	})
}

func (ctl *IngredientController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.ingredients.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ingredient deleted"})
}
