// File: quicklegal/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quicklegal/config"
	"quicklegal/cron"
	"quicklegal/database"
	advocateRepo "quicklegal/database/repository/advocate"
	bookingRepo "quicklegal/database/repository/booking"
	paymentRepo "quicklegal/database/repository/payment"
	userRepoPkg "quicklegal/database/repository/user"
	"quicklegal/events"
	"quicklegal/handlers"
	"quicklegal/middleware"
	"quicklegal/routes"
	"quicklegal/services/advocate"
	"quicklegal/services/booking"
	"quicklegal/services/notification"
	"quicklegal/services/tasks"
	"quicklegal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	if err := bookingRepo.EnsureBookingIndexes(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to ensure booking indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	advocates := advocateRepo.NewMongoAdvocateRepo()
	payments := paymentRepo.NewMongoPaymentRepo()
	users := userRepoPkg.NewMongoUserRepo()

	// services.
	notificationService, err := notification.NewDefaultNotificationService(utils.GetCacheClient())
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	bus := events.NewBus(logger)
	reminderScheduler := tasks.NewReminderScheduler()
	events.RegisterSubscribers(bus, events.SubscriberDeps{
		Bookings:  bookings,
		Advocates: advocates,
		Users:     users,
		Notifier:  notificationService,
		Cache:     utils.GetCacheClient(),
		Reminders: reminderScheduler,
	})

	bookingService := &booking.DefaultBookingService{
		Repo:         bookings,
		AdvocateRepo: advocates,
		PaymentRepo:  payments,
		Lock:         utils.NewSlotLock(utils.GetLockClient()),
		Bus:          bus,
	}
	advocateService := &advocate.DefaultAdvocateService{
		Repo: advocates,
	}

	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Booking:  handlers.NewBookingHandler(bookingService, logger),
		Advocate: handlers.NewAdvocateHandler(advocateService, logger),
		User:     handlers.NewUserHandler(users, bus, logger),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "4000"
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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	// Let in-flight event handlers drain before exiting.
	bus.Wait()
	_ = reminderScheduler.Close()

	logger.Sugar().Info("main: server stopped gracefully")
}
