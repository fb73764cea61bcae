package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	adminapp "github.com/muhammadheryan/lead-crm/application/admin"
	leadapp "github.com/muhammadheryan/lead-crm/application/lead"
	passwordapp "github.com/muhammadheryan/lead-crm/application/password"
	planapp "github.com/muhammadheryan/lead-crm/application/plan"
	uploadapp "github.com/muhammadheryan/lead-crm/application/upload"
	userapp "github.com/muhammadheryan/lead-crm/application/user"
	"github.com/muhammadheryan/lead-crm/cmd/config"
	redisclient "github.com/muhammadheryan/lead-crm/cmd/redis"
	_ "github.com/muhammadheryan/lead-crm/docs"
	leadRepo "github.com/muhammadheryan/lead-crm/repository/lead"
	otpRepo "github.com/muhammadheryan/lead-crm/repository/otp"
	planRepo "github.com/muhammadheryan/lead-crm/repository/plan"
	redisRepo "github.com/muhammadheryan/lead-crm/repository/redis"
	txRepo "github.com/muhammadheryan/lead-crm/repository/tx"
	userRepo "github.com/muhammadheryan/lead-crm/repository/user"
	"github.com/muhammadheryan/lead-crm/thirdparty/rabbitmq"
	"github.com/muhammadheryan/lead-crm/transport"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"go.uber.org/zap"
)

// @title LEAD CRM API
// @version 1.0
// @description LEAD CRM API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, "lead-crm-api"); err != nil {
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

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Events are best effort: without a broker the API keeps serving
	var publisher rabbitmq.Publisher = rabbitmq.NopPublisher{}
	amqpPublisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, events disabled", zap.Error(err))
	} else {
		publisher = amqpPublisher
		defer amqpPublisher.Close()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	LeadRepo := leadRepo.NewLeadRepository(db)
	PlanRepo := planRepo.NewPlanRepository(db)
	OTPRepo := otpRepo.NewOTPRepository(db)
	TxRepo := txRepo.NewTxRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UploadApp := uploadapp.NewUploadApp(cfg, uploadapp.NewDiskStorage(cfg.Upload.Dir, cfg.Upload.BaseURL))
	handler := &transport.RestHandler{
		UserApp:     userapp.NewUserApp(cfg, UserRepo, RedisRepo),
		PasswordApp: passwordapp.NewPasswordApp(cfg, UserRepo, OTPRepo, TxRepo, RedisRepo, publisher),
		LeadApp:     leadapp.NewLeadApp(LeadRepo, UserRepo, PlanRepo, UploadApp, publisher),
		AdminApp:    adminapp.NewAdminApp(cfg, UserRepo, RedisRepo),
		PlanApp:     planapp.NewPlanApp(PlanRepo),
		UploadApp:   UploadApp,

		MaxFileBytes: cfg.Upload.MaxFileSizeKB * 1024,
	}

	httpTransport := transport.NewTransport(handler, cfg.Upload.Dir)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
