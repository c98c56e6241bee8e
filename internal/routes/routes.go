package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shreyasharma003/fitplanhub/internal/config"
	"github.com/shreyasharma003/fitplanhub/internal/handlers"
	"github.com/shreyasharma003/fitplanhub/internal/middleware"
	"github.com/shreyasharma003/fitplanhub/internal/models"
	"github.com/shreyasharma003/fitplanhub/internal/repository"
	"github.com/shreyasharma003/fitplanhub/internal/services"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	userRepo := repository.NewUserRepository(db)
	trainerRepo := repository.NewTrainerRepository(db)
	planRepo := repository.NewFitnessPlanRepository(db)
	followRepo := repository.NewFollowRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)

	followService := services.NewFollowService(followRepo, userRepo, trainerRepo)
	subscriptionService := services.NewSubscriptionService(subscriptionRepo, userRepo, planRepo)
	trainerPlanService := services.NewTrainerPlanService(planRepo, trainerRepo)
	planDetailsService := services.NewPlanDetailsService(planRepo, subscriptionRepo)
	feedService := services.NewFeedService(followRepo, subscriptionRepo, planRepo)
	directoryService := services.NewTrainerDirectoryService(trainerRepo, followRepo)

	authHandler := handlers.NewAuthHandler(userRepo, trainerRepo, cfg.JWTSecret, cfg.JWTExpiry)
	planHandler := handlers.NewPlanHandler(planDetailsService)
	userHandler := handlers.NewUserHandler(followService, subscriptionService, feedService, directoryService)
	trainerHandler := handlers.NewTrainerHandler(trainerPlanService)
	publicHandler := handlers.NewPublicHandler(feedService)

	api := app.Group("/api")

	// Identity is attached when a valid bearer token is present; nothing is
	// rejected here. Role gates sit on the user and trainer groups.
	api.Use(middleware.Authenticate(cfg.JWTSecret))

	auth := api.Group("/auth")
	auth.Post("/signup/user", authHandler.SignupUser)
	auth.Post("/signup/trainer", authHandler.SignupTrainer)
	auth.Post("/login/user", authHandler.LoginUser)
	auth.Post("/login/trainer", authHandler.LoginTrainer)
	auth.Get("/me", authHandler.Me)

	api.Get("/plans/:id", planHandler.GetPlanDetails)
	api.Get("/public/plans", publicHandler.FeaturedPlans)

	user := api.Group("/user", middleware.RequireRole(models.RoleUser))
	user.Post("/subscribe/:planId", userHandler.Subscribe)
	user.Post("/follow/:trainerId", userHandler.Follow)
	user.Delete("/unfollow/:trainerId", userHandler.Unfollow)
	user.Get("/following", userHandler.Following)
	user.Get("/subscriptions", userHandler.Subscriptions)
	user.Get("/feed", userHandler.Feed)
	user.Get("/plans", userHandler.BrowsePlans)
	user.Get("/trainers", userHandler.ListTrainers)
	user.Get("/trainers/search", userHandler.SearchTrainers)

	trainer := api.Group("/trainer", middleware.RequireRole(models.RoleTrainer))
	trainer.Post("/plans", trainerHandler.CreatePlan)
	trainer.Get("/plans", trainerHandler.ListPlans)
	trainer.Put("/plans/:id", trainerHandler.UpdatePlan)
	trainer.Delete("/plans/:id", trainerHandler.DeletePlan)
}
