package routes

import (
	"net/http"
	"time"

	"github.com/victormanuel-98/VMRC-PI-BACK/config"
	"github.com/victormanuel-98/VMRC-PI-BACK/controllers"
	"github.com/victormanuel-98/VMRC-PI-BACK/middlewares"
	"github.com/victormanuel-98/VMRC-PI-BACK/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles the controllers the router wires up.
type Handlers struct {
	Auth        *controllers.AuthController
	Users       *controllers.UserController
	Recipes     *controllers.RecipeController
	Ingredients *controllers.IngredientController
	Ratings     *controllers.RatingController
	Favorites   *controllers.FavoriteController
	Histories   *controllers.HistoryController
	Contacts    *controllers.ContactController
	Uploads     *controllers.UploadController
}

func SetupRouter(cfg *config.Config, tokens *utils.TokenIssuer, h Handlers) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authRequired := middlewares.AuthMiddleware(tokens)
	adminOnly := middlewares.AdminOnly()

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.GET("/verify", authRequired, h.Auth.Verify)
	}

	users := api.Group("/users")
	{
		users.GET("/:id", h.Users.GetProfile)
		users.GET("/:id/recipes", h.Recipes.ListByAuthor)
		users.PUT("/:id", authRequired, h.Users.UpdateProfile)
	}

	recipes := api.Group("/recipes")
	{
		recipes.GET("", h.Recipes.List)
		recipes.GET("/:id", h.Recipes.Get)
		recipes.POST("", authRequired, h.Recipes.Create)
		recipes.PUT("/:id", authRequired, h.Recipes.Update)
		recipes.DELETE("/:id", authRequired, h.Recipes.Delete)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", h.Ingredients.List)
		ingredients.GET("/:id", h.Ingredients.Get)
		ingredients.POST("", authRequired, adminOnly, h.Ingredients.Create)
		ingredients.PUT("/:id", authRequired, adminOnly, h.Ingredients.Update)
		ingredients.DELETE("/:id", authRequired, adminOnly, h.Ingredients.Delete)
	}

	ratings := api.Group("/ratings")
	{
		ratings.GET("/:recipeId", h.Ratings.ListByRecipe)
		ratings.GET("/:recipeId/own", authRequired, h.Ratings.GetOwn)
		ratings.POST("", authRequired, h.Ratings.Create)
		ratings.PUT("/:id", authRequired, h.Ratings.Update)
		ratings.DELETE("/:id", authRequired, h.Ratings.Delete)
	}

	favorites := api.Group("/favorites")
	favorites.Use(authRequired)
	{
		favorites.POST("", h.Favorites.Add)
		favorites.GET("", h.Favorites.List)
		favorites.DELETE("/:recipeId", h.Favorites.Remove)
	}

	history := api.Group("/history")
	history.Use(authRequired)
	{
		history.POST("", h.Histories.Upsert)
		history.GET("", h.Histories.GetByDate)
		history.GET("/range", h.Histories.GetRange)
		history.DELETE("/:historyId/items/:index", h.Histories.RemoveItem)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", h.Contacts.Submit)
		contact.GET("", authRequired, adminOnly, h.Contacts.List)
		contact.PUT("/:id/read", authRequired, adminOnly, h.Contacts.MarkRead)
		contact.DELETE("/:id", authRequired, adminOnly, h.Contacts.Delete)
	}

	upload := api.Group("/upload")
	upload.Use(authRequired)
	{
		upload.POST("/recipe", h.Uploads.RecipeImage)
		upload.POST("/profile", h.Uploads.ProfileImage)
	}

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}
