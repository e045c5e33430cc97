package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"tripwise/cmd/fx/activitiesfx"
	"tripwise/cmd/fx/authfx"
	"tripwise/cmd/fx/controllersfx"
	"tripwise/cmd/fx/dashboardfx"
	"tripwise/cmd/fx/dbfx"
	"tripwise/cmd/fx/draftfx"
	"tripwise/cmd/fx/tripsfx"
	"tripwise/cmd/fx/wizardfx"
	"tripwise/internal/api/controllers"
	"tripwise/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment")
	}

	app := fx.New(
		dbfx.Module,
		draftfx.Module,
		wizardfx.Module,
		tripsfx.Module,
		activitiesfx.Module,
		dashboardfx.Module,
		authfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	wizardController *controllers.WizardController,
	tripRequestController *controllers.TripRequestController,
	destinationController *controllers.DestinationController,
	dashboardController *controllers.DashboardController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, wizardController, tripRequestController, destinationController, dashboardController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	wizardController *controllers.WizardController,
	tripRequestController *controllers.TripRequestController,
	destinationController *controllers.DestinationController,
	dashboardController *controllers.DashboardController,
	authController *controllers.AuthController) {

	wizardGroup := r.Group("/wizard")
	wizardGroup.POST("", wizardController.StartWizard)
	wizardGroup.GET("/:sessionId", wizardController.GetWizard)
	wizardGroup.POST("/:sessionId/answer", wizardController.AnswerStep)
	wizardGroup.POST("/:sessionId/back", wizardController.StepBack)
	wizardGroup.POST("/:sessionId/reset", wizardController.ResetWizard)
	wizardGroup.POST("/:sessionId/seed", wizardController.SeedWizard)

	tripGroup := r.Group("/trip-requests")
	tripGroup.POST("", tripRequestController.SubmitTripRequest)
	tripGroup.GET("/:id", tripRequestController.GetTripRequest)
	tripGroup.POST("/:id/activities", tripRequestController.AttachActivity)
	tripGroup.PATCH("/:id/status", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), tripRequestController.UpdateStatus)

	destGroup := r.Group("/destinations")
	destGroup.GET("", destinationController.ListDestinations)
	destGroup.GET("/options", destinationController.ListOptions)
	destGroup.GET("/route", destinationController.GetRoute)
	destGroup.GET("/nearest", destinationController.NearestDestination)
	destGroup.GET("/:id/activities", destinationController.ListActivities)

	r.POST("/auth/login", authController.Login)
	r.GET("/dashboard", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"), dashboardController.GetDashboard)
}
