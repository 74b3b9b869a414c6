package server

import (
	"fmt"
	"os"

	"clubtix/config"
	"clubtix/internal/handlers"
	"clubtix/internal/logger"
	"clubtix/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-ID"},
		AllowCredentials: true,
	}))

	SetupRoutes(r, db, cfg)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.L.Info("listening on :" + port)
	return r.Run(":" + port)
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.ConfigMiddleware(cfg))

	api := r.Group("/api/v1")
	api.Use(middleware.OptionalAuth())
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handlers.Register)
			authRoutes.POST("/login", handlers.Login)
			authRoutes.POST("/refresh", handlers.Refresh)
			authRoutes.GET("/me", middleware.RequireAuth(), handlers.Me)
		}

		api.GET("/events", handlers.ListEvents)
		api.GET("/events/:slug", handlers.GetEvent)
		api.GET("/events/:slug/tickets", handlers.ListEventTickets)

		api.POST("/cart", handlers.AddToCart)
		api.GET("/cart", handlers.GetCart)
		api.DELETE("/cart/:item_id", handlers.RemoveFromCart)

		api.POST("/orders/preview", handlers.PreviewOrder)
		api.POST("/orders/checkout", handlers.Checkout)
		api.GET("/orders", middleware.RequireAuth(), handlers.ListOrders)
		api.GET("/orders/:id", middleware.RequireAuth(), handlers.GetOrder)

		api.GET("/news", handlers.ListNews)
		api.GET("/news/:slug", handlers.GetNews)

		api.GET("/club", handlers.GetClub)
		api.GET("/social/instagram", handlers.GetInstagram)
		api.GET("/social/tiktok", handlers.GetTiktok)
		api.GET("/media/gallery", handlers.GetGallery)
		api.POST("/contact", handlers.SubmitContact)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/events", handlers.CreateEvent)
			admin.PUT("/events/:id", handlers.UpdateEvent)
			admin.DELETE("/events/:id", handlers.DeleteEvent)

			admin.POST("/events/:id/tickets", handlers.CreateTicketType)
			admin.PUT("/tickets/:id", handlers.UpdateTicketType)
			admin.DELETE("/tickets/:id", handlers.DeleteTicketType)

			admin.POST("/news", handlers.CreateNews)
			admin.PUT("/news/:id", handlers.UpdateNews)
			admin.DELETE("/news/:id", handlers.DeleteNews)

			admin.PUT("/club", handlers.UpdateClub)

			admin.POST("/media/upload", handlers.UploadMedia)
			admin.DELETE("/media/:id", handlers.DeleteMedia)

			admin.GET("/contact", handlers.ListContactMessages)
			admin.PUT("/contact/:id", handlers.UpdateContactMessage)

			admin.GET("/admin/stats", handlers.GetStats)
		}
	}
}
