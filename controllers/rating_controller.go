package controllers

import (
	"net/http"

	"github.com/victormanuel-98/VMRC-PI-BACK/middlewares"
	"github.com/victormanuel-98/VMRC-PI-BACK/services"

	"github.com/gin-gonic/gin"
)

type RatingController struct {
	ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{ratings: ratings}
}

func (ctl *RatingController) Create(c *gin.Context) {
	var in services.CreateRatingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rating, err := ctl.ratings.Create(middlewares.CallerID(c), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "rating created",
		"rating":  rating,
	})
}

func (ctl *RatingController) ListByRecipe(c *gin.Context) {
	recipeID, ok := idParam(c, "recipeId")
	if !ok {
		return
	}

	ratings, err := ctl.ratings.ListByRecipe(recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ratings)
}

func (ctl *RatingController) GetOwn(c *gin.Context) {
	recipeID, ok := idParam(c, "recipeId")
	if !ok {
		return
	}

	rating, err := ctl.ratings.GetOwn(middlewares.CallerID(c), recipeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rating)
}

func (ctl *RatingController) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var in services.UpdateRatingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rating, err := ctl.ratings.Update(middlewares.CallerID(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "rating updated",
		"rating":  rating,
	})
}

func (ctl *RatingController) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := ctl.ratings.Delete(middlewares.CallerID(c), c.GetString("role"), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "rating deleted"})
}
