// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pranaara/pranaara-backend/internal/config"
	"github.com/pranaara/pranaara-backend/internal/handlers"
	"github.com/pranaara/pranaara-backend/internal/middleware"
	"github.com/pranaara/pranaara-backend/internal/services"
	"github.com/pranaara/pranaara-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	productService := services.NewProductService(db)
	reviewService := services.NewReviewService(db)
	authService := services.NewAuthService(db, cfg)
	engagementService := services.NewEngagementService(db)

	var completionClient services.CompletionClient
	if cfg.OpenAI.APIKey != "" {
		completionClient = services.NewOpenAICompletionClient(cfg.OpenAI)
	}
	consultantService := services.NewConsultantService(productService, completionClient, cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, reviewService)
	consultantHandler := handlers.NewConsultantHandler(consultantService)
	engagementHandler := handlers.NewEngagementHandler(engagementService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/google", authHandler.GoogleLogin)
			auth.POST("/logout", middleware.AuthRequired(), authHandler.Logout)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/:slug", productHandler.GetProduct)
			products.GET("/:slug/related", productHandler.GetRelatedProducts)
			products.GET("/:slug/reviews", productHandler.GetProductReviews)
			products.POST("/:slug/reviews", middleware.AuthRequired(), productHandler.CreateProductReview)
		}

		reviews := v1.Group("/reviews")
		reviews.Use(middleware.AuthRequired())
		{
			reviews.DELETE("/:id", productHandler.DeleteReview)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", productHandler.GetCategories)
		}

		// AI consultant routes
		consultant := v1.Group("/ai-consultant")
		consultant.Use(middleware.ConsultantRateLimit())
		{
			consultant.POST("", consultantHandler.Consult)
			consultant.GET("", consultantHandler.Health)
		}

		// Engagement routes
		v1.POST("/contact", engagementHandler.SubmitContact)
		v1.POST("/newsletter/subscribe", engagementHandler.SubscribeNewsletter)

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/contact-messages", engagementHandler.ListContactMessages)
			admin.POST("/uploads", middleware.UploadRateLimit(), uploadHandler.UploadFiles)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
