package controllers

import (
	"net/http"

	"github.com/victormanuel-98/VMRC-PI-BACK/middlewares"
	"github.com/victormanuel-98/VMRC-PI-BACK/services"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct {
	favorites *services.FavoriteService
}

func NewFavoriteController(favorites *services.FavoriteService) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

type addFavoriteInput struct {
	RecipeID uint `json:"recipe_id"`
}

func (ctl *FavoriteController) Add(c *gin.Context) {
	var in addFavoriteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	favorite, err := ctl.favorites.Add(middlewares.CallerID(c), in.RecipeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "recipe added to favorites",
		"favorite": favorite,
	})
}

func (ctl *FavoriteController) List(c *gin.Context) {
	favorites, err := ctl.favorites.List(middlewares.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (ctl *FavoriteController) Remove(c *gin.Context) {
	recipeID, ok := idParam(c, "recipeId")
	if !ok {
		return
	}

	if err := ctl.favorites.Remove(middlewares.CallerID(c), recipeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "recipe removed from favorites"})
}
