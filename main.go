package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	bookingRepo "doctorsportal/database/repository/booking"
	doctorRepo "doctorsportal/database/repository/doctor"
	serviceRepo "doctorsportal/database/repository/service"
	userRepoPkg "doctorsportal/database/repository/user"
	"doctorsportal/handlers"
	"doctorsportal/middleware"
	"doctorsportal/routes"
	"doctorsportal/services/availability"
	"doctorsportal/services/booking"
	"doctorsportal/services/doctor"
	"doctorsportal/services/notification"
	"doctorsportal/services/user"
	"doctorsportal/utils"
	"doctorsportal/worker"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	mongoClient, err := database.Connect(rootCtx, cfg.MongoURI())
	if err != nil {
		logger.Fatal("main: failed to connect to MongoDB", zap.Error(err))
	}
	db := mongoClient.Database(cfg.DatabaseName)
	logger.Info("Connected to MongoDB", zap.String("database", cfg.DatabaseName))

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo(db)
	bkRepo := bookingRepo.NewMongoBookingRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	docRepo := doctorRepo.NewMongoDoctorRepo(db)

	indexCtx, cancelIndexes := context.WithTimeout(rootCtx, 30*time.Second)
	for name, ensure := range map[string]func(context.Context) error{
		"services": svcRepo.EnsureIndexes,
		"bookings": bkRepo.EnsureIndexes,
		"users":    userRepo.EnsureIndexes,
		"doctors":  docRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Fatal("main: failed to ensure indexes", zap.String("collection", name), zap.Error(err))
		}
	}
	cancelIndexes()

	// notifications.
	var mailer notification.Mailer
	if cfg.EmailSenderKey != "" {
		mailer = notification.NewSendGridMailer(cfg.EmailSenderKey, cfg.EmailSender, cfg.EmailSenderName, logger)
	} else {
		logger.Warn("EMAIL_SENDER_KEY not set, booking confirmations will only be logged")
		mailer = &notification.LogMailer{Logger: logger}
	}

	var (
		notifier           booking.Notifier
		redisClient        *redis.Client
		queueClient        *asynq.Client
		notificationWorker *worker.NotificationWorker
		redisPinger        utils.Pinger
	)
	if cfg.NotificationQueueEnabled {
		redisClient, err = utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisQueueDB)
		if err != nil {
			logger.Fatal("main: failed to connect to Redis", zap.Error(err))
		}
		redisPinger = utils.PingerFunc(func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		})

		redisOpts := asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisQueueDB,
		}
		queueClient = asynq.NewClient(redisOpts)
		notifier = notification.NewQueueDispatcher(queueClient, logger)

		notificationWorker = worker.NewNotificationWorker(redisOpts, cfg.WorkerConcurrency, mailer, logger)
		if err := notificationWorker.Start(); err != nil {
			logger.Fatal("main: failed to start notification worker", zap.Error(err))
		}
	} else {
		notifier = notification.NewInlineDispatcher(mailer, logger)
	}

	// services.
	availabilityService := &availability.DefaultAvailabilityService{
		Services: svcRepo,
		Bookings: bkRepo,
	}
	bookingService := &booking.DefaultBookingService{
		Repo:     bkRepo,
		Notifier: notifier,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: docRepo,
	}
	tokens := utils.NewTokenManager(cfg.AccessTokenSecret, cfg.TokenTTL)

	healthMonitor := utils.NewHealthMonitor(utils.PingerFunc(func(ctx context.Context) error {
		return mongoClient.Ping(ctx, readpref.Primary())
	}), redisPinger)
	healthMonitor.Start(rootCtx, 30*time.Second)

	serviceHandler := handlers.NewServiceHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	userHandler := handlers.NewUserHandler(userService, tokens)
	adminHandler := handlers.NewAdminHandler(userService, doctorService)
	healthHandler := handlers.NewHealthHandler(healthMonitor)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Tokens: tokens,
		Admins: userService,

		ListServicesHandler: serviceHandler.ListServicesHandler,
		AvailabilityHandler: serviceHandler.AvailabilityHandler,

		CreateBookingHandler:   bookingHandler.CreateBookingHandler,
		PatientBookingsHandler: bookingHandler.PatientBookingsHandler,

		UpsertUserHandler: userHandler.UpsertUserHandler,
		CheckAdminHandler: userHandler.CheckAdminHandler,
		ListUsersHandler:  userHandler.ListUsersHandler,

		MakeAdminHandler:    adminHandler.MakeAdminHandler,
		AddDoctorHandler:    adminHandler.AddDoctorHandler,
		ListDoctorsHandler:  adminHandler.ListDoctorsHandler,
		RemoveDoctorHandler: adminHandler.RemoveDoctorHandler,

		RootHandler:   healthHandler.RootHandler,
		HealthHandler: healthHandler.HealthHandler,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:    "0.0.0.0:" + cfg.AppPort,
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
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}

	if notificationWorker != nil {
		notificationWorker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Warn("main: failed to close Redis client", zap.Error(err))
		}
	}
	if err := database.Disconnect(mongoClient); err != nil {
		logger.Warn("main: failed to disconnect MongoDB", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
