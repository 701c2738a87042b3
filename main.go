// api/main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"showfolio/api/database"
	"showfolio/api/handlers"
	"showfolio/api/middleware"
	"showfolio/api/store"
)

func main() {
	// Load .env file at the very start
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found or error loading .env: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// --- Initialize PostgreSQL Database (users, profiles, projects) ---
	dbClient, err := database.NewPostgresDB()
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL database: %v", err)
	}
	defer dbClient.Close()

	// --- Initialize ClickHouse Database (analytics events) ---
	chClient, err := database.NewClickHouseDB()
	if err != nil {
		log.Fatalf("Failed to initialize ClickHouse database: %v", err)
	}
	defer chClient.Close()

	// --- Initialize Stores ---
	userStore := store.NewUserStore(dbClient.DB)
	profileStore := store.NewProfileStore(dbClient.DB)
	projectStore := store.NewProjectStore(dbClient.DB)
	analyticsStore := store.NewAnalyticsStore(chClient)

	// --- Initialize Handlers ---
	authHandlers := handlers.NewAuthHandlers(userStore, profileStore)
	profileHandlers := handlers.NewProfileHandlers(profileStore)
	projectHandlers := handlers.NewProjectHandlers(projectStore)
	portfolioHandlers := handlers.NewPortfolioHandlers(profileStore, projectStore)
	analyticsHandlers := handlers.NewAnalyticsHandlers(analyticsStore, profileStore, projectStore)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")
	{
		// Authentication endpoints (no authentication required)
		api.POST("/signup", authHandlers.Signup)
		api.POST("/login", authHandlers.Login)
		api.POST("/logout", authHandlers.Logout)

		// Public portfolio page and its visit/click tracking. Tracking is
		// fire-and-forget and must never break the portfolio view.
		api.GET("/portfolio/:username", portfolioHandlers.GetPortfolio)
		api.POST("/track", analyticsHandlers.TrackEvent)

		// Protected routes (require a valid JWT token)
		protected := api.Group("/")
		protected.Use(middleware.AuthRequired())
		{
			protected.GET("/profile", profileHandlers.GetProfile)
			protected.PUT("/profile", profileHandlers.UpdateProfile)

			protected.GET("/projects", projectHandlers.ListProjects)
			protected.POST("/projects", projectHandlers.CreateProject)
			protected.PUT("/projects/:id", projectHandlers.UpdateProject)
			protected.DELETE("/projects/:id", projectHandlers.DeleteProject)

			analyticsGroup := protected.Group("/analytics")
			{
				analyticsGroup.GET("/summary", analyticsHandlers.GetSummary)
				analyticsGroup.GET("/events", analyticsHandlers.GetEvents)
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Printf("Go API server starting on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Go API server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
