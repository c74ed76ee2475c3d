package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adeeb-debug/baitussalambookingapp/config"
	"github.com/adeeb-debug/baitussalambookingapp/database"
	bookingRepo "github.com/adeeb-debug/baitussalambookingapp/database/repository/booking"
	userRepoPkg "github.com/adeeb-debug/baitussalambookingapp/database/repository/user"
	"github.com/adeeb-debug/baitussalambookingapp/handlers"
	"github.com/adeeb-debug/baitussalambookingapp/middleware"
	"github.com/adeeb-debug/baitussalambookingapp/routes"
	"github.com/adeeb-debug/baitussalambookingapp/services/booking"
	"github.com/adeeb-debug/baitussalambookingapp/services/notification"
	"github.com/adeeb-debug/baitussalambookingapp/services/user"
	"github.com/adeeb-debug/baitussalambookingapp/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookings := bookingRepo.NewMongoBookingRepo()
	users := userRepoPkg.NewMongoUserRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: users,
	}

	notifier := notification.NewAsynqNotifier()
	defer notifier.Close()
	notification.InitEmailWorker(notification.NewSMTPMailer())

	bookingService := &booking.DefaultBookingService{
		Repo:       bookings,
		Notifier:   notifier,
		Cache:      utils.GetCacheClient(),
		Admins:     userService,
		AdminEmail: config.AppConfig.AdminEmail,
		PortalURL:  config.AppConfig.PortalURL,
	}
	if err := bookingService.StartSnapshotRefresher(context.Background()); err != nil {
		logger.Sugar().Warnf("main: snapshot refresher unavailable: %v", err)
	}

	handlers.InitHandlers(bookingService, userService)
	routes.RegisterRoutes(router, userService)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
