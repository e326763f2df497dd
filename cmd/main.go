package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	categoryapp "github.com/muhammadheryan/heart2help/application/category"
	fulfillmentapp "github.com/muhammadheryan/heart2help/application/fulfillment"
	moderationapp "github.com/muhammadheryan/heart2help/application/moderation"
	postapp "github.com/muhammadheryan/heart2help/application/post"
	profileapp "github.com/muhammadheryan/heart2help/application/profile"
	userapp "github.com/muhammadheryan/heart2help/application/user"
	"github.com/muhammadheryan/heart2help/cmd/config"
	"github.com/muhammadheryan/heart2help/cmd/migration"
	redisclient "github.com/muhammadheryan/heart2help/cmd/redis"
	_ "github.com/muhammadheryan/heart2help/docs"
	blockRepo "github.com/muhammadheryan/heart2help/repository/block"
	categoryRepo "github.com/muhammadheryan/heart2help/repository/category"
	deviceRepo "github.com/muhammadheryan/heart2help/repository/device"
	feedbackRepo "github.com/muhammadheryan/heart2help/repository/feedback"
	helperRepo "github.com/muhammadheryan/heart2help/repository/helper"
	postRepo "github.com/muhammadheryan/heart2help/repository/post"
	redisRepo "github.com/muhammadheryan/heart2help/repository/redis"
	reportRepo "github.com/muhammadheryan/heart2help/repository/report"
	tagRepo "github.com/muhammadheryan/heart2help/repository/tag"
	txRepo "github.com/muhammadheryan/heart2help/repository/tx"
	userRepo "github.com/muhammadheryan/heart2help/repository/user"
	"github.com/muhammadheryan/heart2help/thirdparty/cloudinary"
	"github.com/muhammadheryan/heart2help/thirdparty/fcm"
	"github.com/muhammadheryan/heart2help/thirdparty/persona"
	"github.com/muhammadheryan/heart2help/thirdparty/rabbitmq"
	"github.com/muhammadheryan/heart2help/thirdparty/twilio"
	"github.com/muhammadheryan/heart2help/transport"
	"github.com/muhammadheryan/heart2help/utils/logger"
	"github.com/muhammadheryan/heart2help/utils/retry"
	"go.uber.org/zap"
)

// @title HEART2HELP API
// @version 1.0
// @description HEART2HELP API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	migrateDirection := flag.String("migrate", "", "run database migrations (up|down) and exit")
	flag.Parse()

	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	if *migrateDirection != "" {
		if err := migration.Run(db, cfg.Database.MigrationsPath, *migrateDirection); err != nil {
			logger.Fatal("err migration", zap.Error(err))
		}
		return
	}
	if cfg.Database.AutoMigrate {
		if err := migration.Run(db, cfg.Database.MigrationsPath, migration.DirectionUp); err != nil {
			logger.Fatal("err migration", zap.Error(err))
		}
	}

	// Initialize Redis client
	redisClient, err := redisclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	DeviceRepo := deviceRepo.NewDeviceRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)
	PostRepo := postRepo.NewPostRepository(db)
	TagRepo := tagRepo.NewTagRepository(db)
	CategoryRepo := categoryRepo.NewCategoryRepository(db)
	HelperRepo := helperRepo.NewHelperRepository(db)
	BlockRepo := blockRepo.NewBlockRepository(db)
	ReportRepo := reportRepo.NewReportRepository(db)
	FeedbackRepo := feedbackRepo.NewFeedbackRepository(db)

	// Initialize third party clients
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer publisher.Close()

	if cfg.Notification.ConsumerEnabled {
		push, err := fcm.New(ctx, cfg.Notification.FCMProjectID, cfg.Notification.FCMCredentialsFile)
		if err != nil {
			logger.Fatal("err init fcm", zap.Error(err))
		}
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password,
			rabbitmq.ConsumerConfig{
				AdminWebhookURL: cfg.Notification.AdminWebhookURL,
				AdminAPIKey:     cfg.Notification.AdminAPIKey,
				Retry:           retry.DefaultConfig(),
			}, DeviceRepo, push)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()
		if err := consumer.Start(ctx); err != nil {
			logger.Fatal("err start consumer", zap.Error(err))
		}
	}

	files, err := cloudinary.New(cfg.Cloudinary.CloudName, cfg.Cloudinary.APIKey, cfg.Cloudinary.APISecret,
		cfg.Cloudinary.Folder, cfg.Server.MaxUploadMB<<20, retry.DefaultConfig())
	if err != nil {
		logger.Fatal("err init cloudinary", zap.Error(err))
	}
	sms := twilio.NewClient(cfg.Twilio.AccountSID, cfg.Twilio.AuthToken, cfg.Twilio.FromNumber, retry.DefaultConfig())
	identity := persona.NewClient(cfg.Persona.BaseURL, cfg.Persona.APIKey, retry.DefaultConfig())

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, DeviceRepo, RedisRepo, sms, identity, files, publisher)
	PostApp := postapp.NewPostApp(cfg, TxRepo, PostRepo, TagRepo, CategoryRepo, HelperRepo, BlockRepo, UserRepo, files, publisher)
	FulfillmentApp := fulfillmentapp.NewFulfillmentApp(cfg, TxRepo, PostRepo, HelperRepo, FeedbackRepo, publisher)
	ModerationApp := moderationapp.NewModerationApp(UserRepo, PostRepo, BlockRepo, ReportRepo, files, publisher)
	CategoryApp := categoryapp.NewCategoryApp(TxRepo, CategoryRepo, files)
	ProfileApp := profileapp.NewProfileApp(cfg, UserRepo, PostRepo, CategoryRepo, BlockRepo, files)

	httpTransport := transport.NewTransport(cfg, &transport.RestHandler{
		UserApp:        UserApp,
		PostApp:        PostApp,
		FulfillmentApp: FulfillmentApp,
		ModerationApp:  ModerationApp,
		CategoryApp:    CategoryApp,
		ProfileApp:     ProfileApp,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
