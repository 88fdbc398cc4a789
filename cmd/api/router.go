package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"recipeshare-backend/internal/shared/middleware"
	"recipeshare-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupRecipeRoutes(v1, c)
		setupReviewRoutes(v1, c)
		setupUserRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// RECIPE ROUTES
// ========================================
func setupRecipeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	jwtSecret := c.Config.Auth.JWTSecret

	// Read routes accept anonymous callers: the listing is empty for
	// them and GetRecipe only serves public rows.
	recipes := v1.Group("/recipes")
	recipes.Use(middleware.OptionalAuthMiddleware(jwtSecret))
	{
		recipes.GET("", c.RecipeHandler.ListRecipes)
		recipes.GET("/:id", c.RecipeHandler.GetRecipe)
	}

	// Write routes require a verified identity
	recipeWrites := v1.Group("/recipes")
	recipeWrites.Use(middleware.AuthMiddleware(jwtSecret))
	{
		recipeWrites.POST("", c.RecipeHandler.CreateRecipe)
		recipeWrites.PUT("/:id", c.RecipeHandler.UpdateRecipe)
		recipeWrites.DELETE("/:id", c.RecipeHandler.DeleteRecipe)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(v1 *gin.RouterGroup, c *container.Container) {
	reviews := v1.Group("/reviews")
	{
		reviews.GET("", c.ReviewHandler.ListReviews)
		reviews.POST("", middleware.AuthMiddleware(c.Config.Auth.JWTSecret), c.ReviewHandler.CreateReview)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	user := v1.Group("/user")
	user.Use(middleware.AuthMiddleware(c.Config.Auth.JWTSecret))
	{
		user.GET("", c.UserHandler.GetProfile)
		user.PUT("", c.UserHandler.UpdateProfile)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.OptionalAuthMiddleware(c.Config.Auth.JWTSecret))
	{
		admin.GET("/check", c.UserHandler.AdminCheck)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check object storage
		storageStatus := "ok"
		if appCtx.Storage == nil {
			storageStatus = "disconnected"
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"storage":  storageStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
