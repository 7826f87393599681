package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"fudys.backend/internal/domain/entities"
	"fudys.backend/internal/interfaces/http/handlers"
	"fudys.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	userHandler         *handlers.UserHandler
	restaurantHandler   *handlers.RestaurantHandler
	productHandler      *handlers.ProductHandler
	openingHourHandler  *handlers.OpeningHourHandler
	paymentHandler      *handlers.PaymentMethodHandler
	deliveryHandler     *handlers.DeliveryOptionHandler
	saleHandler         *handlers.SaleHandler
	subscriptionHandler *handlers.SubscriptionHandler
	authRequired        gin.HandlerFunc
	authOptional        gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerAPIRoutes(r *gin.Engine, d routeDeps) {
	superAdmin := middleware.RequireRole(entities.RoleSuperAdmin)

	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/recover-password", d.authHandler.RecoverPassword)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
		}

		// Account routes (protected)
		users := api.Group("/users")
		users.Use(d.authRequired)
		{
			users.GET("/me", d.userHandler.GetProfile)
			users.PUT("/me", d.userHandler.UpdateProfile)
			users.DELETE("/me", d.userHandler.DeleteAccount)
			users.GET("/me/restaurant", d.userHandler.GetMyRestaurant)

			users.GET("", superAdmin, d.userHandler.ListUsers)
			users.PUT("/:id/role", superAdmin, d.userHandler.ChangeRole)
			users.DELETE("/:id", superAdmin, d.userHandler.AdminDeleteUser)
		}

		// Restaurant routes (public storefront, protected management)
		restaurants := api.Group("/restaurants")
		{
			restaurants.GET("", d.restaurantHandler.List)
			restaurants.GET("/url/:customUrl", d.restaurantHandler.GetStorefront)

			restaurants.POST("", d.authRequired, d.restaurantHandler.Create)
			restaurants.GET("/:id/config", d.authRequired, d.restaurantHandler.GetConfig)
			restaurants.PUT("/:id/config", d.authRequired, d.restaurantHandler.UpdateConfig)
		}

		// Catalog routes
		products := api.Group("/products")
		{
			products.GET("/restaurant/:restaurantId", d.productHandler.ListByRestaurant)

			products.POST("", d.authRequired, d.productHandler.Create)
			products.PUT("/:id", d.authRequired, d.productHandler.Update)
			products.DELETE("/:id", d.authRequired, d.productHandler.Delete)
			products.PUT("/restaurant/:restaurantId/reorder", d.authRequired, d.productHandler.Reorder)
		}

		// Storefront configuration routes
		hours := api.Group("/opening-hours")
		{
			hours.GET("/:restaurantId", d.openingHourHandler.List)
			hours.PUT("/:restaurantId", d.authRequired, d.openingHourHandler.Replace)
		}
		methods := api.Group("/payment-methods")
		{
			methods.GET("/:restaurantId", d.paymentHandler.List)
			methods.PUT("/:restaurantId", d.authRequired, d.paymentHandler.Replace)
		}
		options := api.Group("/delivery-options")
		{
			options.GET("/:restaurantId", d.deliveryHandler.List)
			options.PUT("/:restaurantId", d.authRequired, d.deliveryHandler.Reconcile)
		}

		// Sales: anyone can place an order; a valid token attaches the buyer
		sales := api.Group("/sales")
		{
			sales.POST("", d.authOptional, d.saleHandler.Record)
			sales.GET("/restaurant/:restaurantId", d.authRequired, d.saleHandler.ListByRestaurant)
			sales.GET("/restaurant/:restaurantId/stats", d.authRequired, d.saleHandler.Stats)
			sales.GET("/stats", d.authRequired, superAdmin, d.saleHandler.GlobalStats)
		}

		// Subscriptions
		subscriptions := api.Group("/subscriptions")
		subscriptions.Use(d.authRequired)
		{
			subscriptions.POST("", superAdmin, d.subscriptionHandler.Activate)
			subscriptions.GET("/restaurant/:restaurantId", d.subscriptionHandler.Status)
		}
	}
}
