package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serenispa/config"
	"serenispa/database"
	bookingRepoPkg "serenispa/database/repository/booking"
	certificateRepoPkg "serenispa/database/repository/certificate"
	eventRepoPkg "serenispa/database/repository/event"
	reviewRepoPkg "serenispa/database/repository/review"
	userRepoPkg "serenispa/database/repository/user"
	"serenispa/handlers"
	"serenispa/middleware"
	"serenispa/routes"
	"serenispa/services/booking"
	"serenispa/services/certificate"
	"serenispa/services/event"
	"serenispa/services/mailer"
	"serenispa/services/reminder"
	"serenispa/services/review"
	"serenispa/services/stats"
	"serenispa/services/user"
	"serenispa/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitStatsCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	certificateRepo := certificateRepoPkg.NewMongoCertificateRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()
	reviewRepo := reviewRepoPkg.NewMongoReviewRepo()
	eventRepo := eventRepoPkg.NewMongoEventRepo()

	// services.
	smtpMailer := mailer.NewSMTPMailer()

	bookingService := &booking.DefaultBookingService{
		Repo:   bookingRepo,
		Users:  userRepo,
		Mailer: smtpMailer,
		Prices: config.AppConfig.ServicePrices,
		Logger: logger,
	}
	certificateService := &certificate.DefaultCertificateService{
		Repo:   certificateRepo,
		Mailer: smtpMailer,
		Logger: logger,
	}
	userService := &user.DefaultUserService{
		Repo:       userRepo,
		AdminEmail: config.AppConfig.AdminEmail,
	}
	eventService := &event.DefaultEventService{Repo: eventRepo}
	reviewService := &review.DefaultReviewService{Repo: reviewRepo}
	statsService := &stats.DefaultStatsService{
		Bookings:     bookingRepo,
		Certificates: certificateRepo,
		Users:        userRepo,
		Masters:      config.AppConfig.Masters,
		Prices:       config.AppConfig.ServicePrices,
		Cache: &utils.StatsCache{
			Client: utils.GetStatsCacheClient(),
			TTL:    time.Duration(config.AppConfig.StatsCacheTTL) * time.Second,
		},
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Booking:     handlers.NewBookingHandler(bookingService, logger),
		Certificate: handlers.NewCertificateHandler(certificateService, logger),
		User:        handlers.NewUserHandler(userService, logger),
		Event:       handlers.NewEventHandler(eventService, logger),
		Review:      handlers.NewReviewHandler(reviewService, logger),
		Stats:       handlers.NewStatsHandler(statsService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the daily reminder job.
	reminderService := &reminder.Service{
		Bookings: bookingRepo,
		Mailer:   smtpMailer,
		Schedule: config.AppConfig.ReminderSchedule,
		Logger:   logger,
	}
	if err := reminderService.Start(); err != nil {
		logger.Sugar().Fatalf("main: failed to start reminder job: %v", err)
	}

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	reminderService.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
