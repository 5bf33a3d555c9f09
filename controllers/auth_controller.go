package controllers

import (
	"errors"
	"net/http"

	"github.com/victormanuel-98/VMRC-PI-BACK/middlewares"
	"github.com/victormanuel-98/VMRC-PI-BACK/models"
	"github.com/victormanuel-98/VMRC-PI-BACK/services"
	"github.com/victormanuel-98/VMRC-PI-BACK/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users  *services.UserService
	tokens *utils.TokenIssuer
}

func NewAuthController(users *services.UserService, tokens *utils.TokenIssuer) *AuthController {
	return &AuthController{users: users, tokens: tokens}
}

func userSummary(u *models.User) gin.H {
	return gin.H{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"name":     u.Name,
		"role":     u.Role,
	}
}

func (ctl *AuthController) issueToken(u *models.User) (string, error) {
	return ctl.tokens.Generate(utils.Identity{
		UserID:   u.ID,
		Username: u.Username,
		Role:     u.Role,
	})
}

func (ctl *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := ctl.users.Register(in)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := ctl.issueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "registration successful",
		"token":   token,
		"user":    userSummary(user),
	})
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (ctl *AuthController) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := ctl.users.Authenticate(in.Username, in.Password)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondError(c, err)
			return
		}
		// a failed login is always a 401, never a 403
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect username or password"})
		return
	}

	token, err := ctl.issueToken(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   token,
		"user":    userSummary(user),
	})
}

// Verify confirms the bearer token still maps to an existing user.
func (ctl *AuthController) Verify(c *gin.Context) {
	user, err := ctl.users.Get(middlewares.CallerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  userSummary(user),
	})
}
