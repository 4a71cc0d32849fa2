package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"marusalon-backend/config"
	"marusalon-backend/controllers"
	"marusalon-backend/models"
	"marusalon-backend/routes"
	"marusalon-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	appCfg := config.LoadAppConfig()

	catalog, err := config.LoadCatalog()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	var store services.BookingStore
	if config.ConnectDB() {
		config.DB.AutoMigrate(
			&models.Booking{},
			&models.ReminderLog{},
		)
		store = services.NewGormBookingStore(config.DB)
		log.Println("Booking store: postgres")
	} else {
		store = services.NewMemoryBookingStore()
		log.Println("Booking store: in-memory (no DB_URL set)")
	}

	var sender services.MessageSender
	if os.Getenv("TWILIO_ACCOUNT_SID") != "" {
		sender = services.NewTwilioSender()
	} else {
		sender = services.LogSender{}
		log.Println("Twilio credentials missing, outbound messages will be logged only")
	}

	locks := services.NewSlotLockManager()
	availability := services.NewAvailabilityEngine(catalog, store, appCfg)
	analytics := services.NewAnalyticsTracker()
	bookings := services.NewBookingService(catalog, store, locks, availability, services.LogCRMSync{}, analytics)
	conversations := services.NewConversationStore(appCfg.HistoryLimit)
	dispatcher := services.NewDispatcher(catalog, bookings, availability, conversations, nil, analytics)

	// Background jobs: daily reminders, the conversation sweep and the
	// analytics retention cleanup.
	scheduler := cron.New()
	services.NewReminderService(store, sender, config.DB).StartScheduler(scheduler)
	scheduler.AddFunc("*/5 * * * *", func() {
		conversations.Sweep(appCfg.RetentionWindow)
	})
	scheduler.AddFunc("0 3 * * *", func() {
		analytics.Cleanup(30)
	})
	scheduler.Start()

	r := routes.SetupRouter(routes.Controllers{
		Availability: controllers.NewAvailabilityController(availability),
		Bookings:     controllers.NewBookingController(bookings),
		Catalog:      controllers.NewCatalogController(catalog),
		Webhook:      controllers.NewWebhookController(dispatcher, sender),
		Analytics:    controllers.NewAnalyticsController(analytics),
	})
	printRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
