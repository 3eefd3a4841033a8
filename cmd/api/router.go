package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipes-backend/internal/shared/middleware"
	"recipes-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupRecipeRoutes(v1, c)
		setupCategoryRoutes(v1, c)
		setupTagRoutes(v1, c)
		setupIngredientRoutes(v1, c)
		setupImageRoutes(v1, c)
	}

	return router
}

// ========================================
// RECIPE ROUTES
// ========================================
func setupRecipeRoutes(v1 *gin.RouterGroup, c *container.Container) {
	recipes := v1.Group("/recipes")
	{
		recipes.POST("", c.RecipeHandler.Create)
		recipes.GET("", c.RecipeHandler.GetAll)
		recipes.GET("/category/:categoryId", c.RecipeHandler.GetByCategory)
		recipes.GET("/:id", c.RecipeHandler.GetByID)
		recipes.PUT("/:id", c.RecipeHandler.Update)
		recipes.DELETE("/:id", c.RecipeHandler.Delete)
	}
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(v1 *gin.RouterGroup, c *container.Container) {
	categories := v1.Group("/categories")
	{
		categories.POST("", c.CategoryHandler.Create)
		categories.GET("", c.CategoryHandler.GetAll)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.PUT("/:id", c.CategoryHandler.Update)
		categories.DELETE("/:id", c.CategoryHandler.Delete)
	}
}

// ========================================
// TAG ROUTES
// ========================================
func setupTagRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tags := v1.Group("/tags")
	{
		tags.POST("", c.TagHandler.Create)
		tags.GET("", c.TagHandler.GetAll)
		tags.GET("/:id", c.TagHandler.GetByID)
		tags.PUT("/:id", c.TagHandler.Update)
		tags.DELETE("/:id", c.TagHandler.Delete)
	}
}

// ========================================
// INGREDIENT ROUTES
// ========================================
func setupIngredientRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/ingredients", c.IngredientHandler.GetAll)
}

// ========================================
// IMAGE ROUTES
// ========================================
func setupImageRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.POST("/images", c.ImageHandler.Upload)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"environment": c.Config.App.Environment,
			"version":     c.Config.App.Version,
		})
	}
}
