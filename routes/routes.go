package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"marusalon-backend/config"
	"marusalon-backend/controllers"
)

// Controllers bundles everything the router needs.
type Controllers struct {
	Availability *controllers.AvailabilityController
	Bookings     *controllers.BookingController
	Catalog      *controllers.CatalogController
	Webhook      *controllers.WebhookController
	Analytics    *controllers.AnalyticsController
}

func SetupRouter(ctrl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// WhatsApp webhook
	r.GET("/webhook", ctrl.Webhook.VerifyWebhook)
	r.POST("/webhook", ctrl.Webhook.ReceiveMessage)

	api := r.Group("/api")
	{
		api.GET("/availability", ctrl.Availability.GetAvailability)

		bookings := api.Group("/bookings")
		{
			bookings.POST("", ctrl.Bookings.CreateBooking)
			bookings.GET("/:id", ctrl.Bookings.GetBooking)
			bookings.PUT("/:id/reschedule", ctrl.Bookings.RescheduleBooking)
			bookings.DELETE("/:id", ctrl.Bookings.CancelBooking)
		}

		api.GET("/customers/:phone/bookings", ctrl.Bookings.GetCustomerBookings)

		api.GET("/services", ctrl.Catalog.GetServices)
		api.GET("/stylists", ctrl.Catalog.GetStylists)

		api.GET("/analytics/:period", ctrl.Analytics.GetAnalytics)
	}

	return r
}
