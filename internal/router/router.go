// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/artvista/artmarket-backend/internal/config"
	"github.com/artvista/artmarket-backend/internal/handlers"
	"github.com/artvista/artmarket-backend/internal/middleware"
	"github.com/artvista/artmarket-backend/internal/models"
	"github.com/artvista/artmarket-backend/internal/services"
	"github.com/artvista/artmarket-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	userService := services.NewUserService(db)
	artistService := services.NewArtistService(db)
	categoryService := services.NewCategoryService(db)
	artworkService := services.NewArtworkService(db)
	orderService := services.NewOrderService(db)
	reviewService := services.NewReviewService(db)
	favoriteService := services.NewFavoriteService(db)
	dashboardService := services.NewDashboardService(db)
	paymentService := services.NewPaymentService(db, cfg)
	adminService := services.NewAdminService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	artistHandler := handlers.NewArtistHandler(artistService, artworkService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, artworkService)
	artworkHandler := handlers.NewArtworkHandler(artworkService, artistService)
	orderHandler := handlers.NewOrderHandler(orderService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	uploadHandler := handlers.NewUploadHandler(storageService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, artistService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	adminHandler := handlers.NewAdminHandler(adminService, artistService, artworkService, orderService, paymentService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.SanitizeInput())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Uploaded files are served from local disk when S3 is not configured
	if cfg.AWS.AccessKeyID == "" {
		r.Static(cfg.Upload.BaseURL, cfg.Upload.Dir)
	}

	v1 := r.Group("/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.Use(middleware.AuthRateLimit())
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
		auth.POST("/forgot-password", authHandler.ForgotPassword)
		auth.POST("/reset-password", authHandler.ResetPassword)
		auth.POST("/verify-email", authHandler.VerifyEmail)
	}

	artists := v1.Group("/artists")
	{
		artists.GET("", artistHandler.SearchArtists)
		artists.GET("/:id", artistHandler.GetArtist)
		artists.GET("/:id/artworks", artistHandler.GetArtistArtworks)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", categoryHandler.ListCategories)
		categories.GET("/:slug", categoryHandler.GetCategory)
		categories.GET("/:slug/artworks", categoryHandler.GetCategoryArtworks)
	}

	artworks := v1.Group("/artworks")
	artworks.Use(middleware.OptionalAuth())
	{
		artworks.GET("", artworkHandler.SearchArtworks)
		artworks.GET("/popular", artworkHandler.GetPopularArtworks)
		artworks.GET("/featured", artworkHandler.GetFeaturedArtworks)
		artworks.GET("/:id", artworkHandler.GetArtwork)
		artworks.GET("/:id/reviews", reviewHandler.ListReviews)
	}

	// Authenticated routes
	protected := v1.Group("")
	protected.Use(middleware.AuthRequired(db))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)

		users := protected.Group("/users")
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.DELETE("/profile", userHandler.DeleteAccount)
			users.GET("/:id", userHandler.GetPublicProfile)
		}

		artistsAuth := protected.Group("/artists")
		artistsAuth.Use(middleware.RoleRequired(models.UserRoleArtist, models.UserRoleGallery, models.UserRoleAdmin))
		{
			artistsAuth.POST("", artistHandler.CreateArtist)
			artistsAuth.PUT("/:id", artistHandler.UpdateArtist)
		}

		artworksAuth := protected.Group("/artworks")
		{
			artworksAuth.POST("", artworkHandler.CreateArtwork)
			artworksAuth.PUT("/:id", artworkHandler.UpdateArtwork)
			artworksAuth.DELETE("/:id", artworkHandler.DeleteArtwork)
			artworksAuth.POST("/:id/reviews", reviewHandler.CreateReview)
		}

		protected.DELETE("/reviews/:id", reviewHandler.DeleteReview)

		orders := protected.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("/intent", paymentHandler.CreatePaymentIntent)
			payments.POST("/confirm", paymentHandler.ConfirmPayment)
		}

		favorites := protected.Group("/favorites")
		{
			favorites.GET("", favoriteHandler.ListFavorites)
			favorites.POST("/:artworkId", favoriteHandler.AddFavorite)
			favorites.DELETE("/:artworkId", favoriteHandler.RemoveFavorite)
		}

		uploads := protected.Group("/uploads")
		uploads.Use(middleware.UploadRateLimit())
		{
			uploads.POST("", uploadHandler.UploadFile)
			uploads.DELETE("/:key", uploadHandler.DeleteFile)
		}

		protected.GET("/dashboard/artist", dashboardHandler.GetArtistStats)
	}

	// Admin routes
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthRequired(db))
	admin.Use(middleware.AdminRequired())
	{
		admin.GET("/dashboard", dashboardHandler.GetAdminStats)

		admin.GET("/users", adminHandler.ListUsers)
		admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)

		admin.GET("/artists", adminHandler.ListArtists)
		admin.PUT("/artists/:id/status", adminHandler.UpdateArtistStatus)

		admin.PUT("/artworks/:id/status", adminHandler.UpdateArtworkStatus)

		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		admin.GET("/orders", adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
		admin.POST("/orders/:id/refund", adminHandler.RefundOrder)
	}

	return r
}
