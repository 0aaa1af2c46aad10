// File: prolink/main.go
package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"prolink/config"
	"prolink/database"
	bookingRepo "prolink/database/repository/booking"
	messageRepo "prolink/database/repository/message"
	providerRepo "prolink/database/repository/provider"
	userRepoPkg "prolink/database/repository/user"
	"prolink/handlers"
	"prolink/middleware"
	"prolink/routes"
	"prolink/services/booking"
	"prolink/services/i18n"
	"prolink/services/messaging"
	"prolink/services/provider"
	"prolink/services/tracking"
	"prolink/services/user"
	"prolink/utils"
)

func main() {
	logger := utils.GetLogger()

	// The configuration gate must succeed before anything else runs.
	paramsPath := os.Getenv("PARAMETERS_PATH")
	if paramsPath == "" {
		paramsPath = "parameters.yaml"
	}
	if err := config.Load(paramsPath); err != nil {
		logger.Sugar().Fatalf("main: configuration gate failed: %v", err)
	}

	store, err := database.NewStore()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize entity store: %v", err)
	}
	if err := store.Seed(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed entity store: %v", err)
	}

	// repositories.
	userRepo, err := userRepoPkg.NewMemoryUserRepo(store)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	provRepo, err := providerRepo.NewMemoryProviderRepo(store)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	bookRepo, err := bookingRepo.NewMemoryBookingRepo(store)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	msgRepo, err := messageRepo.NewMemoryMessageRepo(store)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}
	providerService := &provider.DefaultProviderService{Repo: provRepo}
	bookingService := &booking.DefaultBookingService{Repo: bookRepo}
	trackingService := &tracking.DefaultTrackingService{
		Providers: provRepo,
		Opts: tracking.Options{
			Tick:       config.AppConfig.StreamTick(),
			StepMax:    config.AppConfig.StreamStepMax,
			ETATick:    config.AppConfig.ETATick(),
			ETAInitial: config.AppConfig.ETAInitial,
		},
	}
	messagingService := &messaging.DefaultMessagingService{
		Repo:       msgRepo,
		Providers:  provRepo,
		ReplyDelay: config.AppConfig.AssistantReplyDelay(),
	}
	i18nService, err := i18n.NewDefaultTranslationService(store)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.Register(router, &routes.Handlers{
		Users:    userRepo,
		Auth:     handlers.NewAuthHandler(userService),
		Provider: handlers.NewProviderHandler(providerService),
		Booking:  handlers.NewBookingHandler(bookingService),
		Message:  handlers.NewMessagingHandler(messagingService),
		Tracking: handlers.NewTrackingHandler(trackingService),
		I18n:     handlers.NewTranslationHandler(i18nService),
	})

	addr := ":" + config.AppConfig.AppPort
	logger.Sugar().Infof("ProLink core listening on %s", addr)
	if err := router.Run(addr); err != nil {
		logger.Sugar().Fatalf("main: server exited: %v", err)
	}
}
