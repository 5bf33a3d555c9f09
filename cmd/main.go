package main

import (
	"context"
	"log"

	"github.com/victormanuel-98/VMRC-PI-BACK/config"
	"github.com/victormanuel-98/VMRC-PI-BACK/controllers"
	"github.com/victormanuel-98/VMRC-PI-BACK/routes"
	"github.com/victormanuel-98/VMRC-PI-BACK/services"
	"github.com/victormanuel-98/VMRC-PI-BACK/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer sqlDB.Close()

	ctx := context.Background()

	uploader, err := utils.NewUploader(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.CloudFrontURL)
	if err != nil {
		log.Fatalf("s3: %v", err)
	}

	// the contact inbox works without a mailer, it just stops
	// forwarding messages to the admin
	var notifier services.ContactNotifier
	if cfg.SESEmail != "" && cfg.ContactEmail != "" {
		mailer, err := utils.NewMailer(ctx, cfg.AWSRegion, cfg.SESEmail, cfg.ContactEmail)
		if err != nil {
			log.Fatalf("ses: %v", err)
		}
		notifier = mailer
	}

	tokens := utils.NewTokenIssuer(cfg.JWTSecret, cfg.JWTExpiry)

	userSvc := services.NewUserService(db)
	recipeSvc := services.NewRecipeService(db)
	ingredientSvc := services.NewIngredientService(db)
	ratingSvc := services.NewRatingService(db)
	favoriteSvc := services.NewFavoriteService(db)
	historySvc := services.NewHistoryService(db)
	contactSvc := services.NewContactService(db, notifier)

	r := routes.SetupRouter(cfg, tokens, routes.Handlers{
		Auth:        controllers.NewAuthController(userSvc, tokens),
		Users:       controllers.NewUserController(userSvc),
		Recipes:     controllers.NewRecipeController(recipeSvc),
		Ingredients: controllers.NewIngredientController(ingredientSvc),
		Ratings:     controllers.NewRatingController(ratingSvc),
		Favorites:   controllers.NewFavoriteController(favoriteSvc),
		Histories:   controllers.NewHistoryController(historySvc),
		Contacts:    controllers.NewContactController(contactSvc),
		Uploads:     controllers.NewUploadController(uploader),
	})

	log.Printf("FitFood backend listening on port %s (%s)", cfg.Port, cfg.Env)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
