package routes

import (
	adminapi "donation-app/internal/api/admin"
	donationsapi "donation-app/internal/api/donations"
	stripewebhooks "donation-app/internal/api/stripewebhook"
	"donation-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Webhook stays outside the sanitize group: the raw body must reach the
	// signature check byte for byte.
	r.POST("/webhook", stripewebhooks.StripeWebhook)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/create-checkout-session", donationsapi.CreateCheckoutSession)
	public.GET("/donations", donationsapi.ListDonations)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/donations", adminapi.ListAllDonations)
}
