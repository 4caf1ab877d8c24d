package routes

import (
	"restaurant-menu-api/handlers"
	"restaurant-menu-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Auth ───────────────────────────────────────────────────────
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
		auth.GET("/me", middleware.AuthRequired(), handlers.GetMe)
	}

	// ── Menu items: public reads, admin writes ─────────────────────
	menu := r.Group("/menu-items")
	{
		menu.GET("", handlers.ListMenuItems)
		menu.GET("/:id", handlers.GetMenuItem)
		menu.POST("", middleware.AuthRequired(), middleware.AdminRequired(), handlers.CreateMenuItem)
		menu.PUT("/:id", middleware.AuthRequired(), middleware.AdminRequired(), handlers.UpdateMenuItem)
		menu.DELETE("/:id", middleware.AuthRequired(), middleware.AdminRequired(), handlers.DeleteMenuItem)
	}

	// ── Reviews: public reads, authenticated writes ────────────────
	// Ownership checks happen inside the handlers after fetch.
	reviews := r.Group("/reviews")
	{
		reviews.GET("", handlers.ListReviews)
		reviews.GET("/menu-item/:id", handlers.GetReviewsByMenuItem)
		reviews.GET("/:id", handlers.GetReview)
		reviews.POST("", middleware.AuthRequired(), handlers.CreateReview)
		reviews.PUT("/:id", middleware.AuthRequired(), handlers.UpdateReview)
		reviews.DELETE("/:id", middleware.AuthRequired(), handlers.DeleteReview)
	}

	// ── Orders: everything requires authentication ─────────────────
	orders := r.Group("/orders")
	orders.Use(middleware.AuthRequired())
	{
		orders.GET("", handlers.ListOrders)
		orders.GET("/:id", handlers.GetOrder)
		orders.POST("", handlers.CreateOrder)
		orders.PUT("/:id", middleware.AdminRequired(), handlers.UpdateOrderStatus)
		orders.DELETE("/:id", middleware.AdminRequired(), handlers.DeleteOrder)
	}

	// ── Admin ──────────────────────────────────────────────────────
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("/users", handlers.GetAllUsers)
		admin.POST("/promote", handlers.PromoteToAdmin)
		admin.POST("/demote", handlers.DemoteToUser)
	}
}
