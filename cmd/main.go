package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	accountapp "github.com/muhammadheryan/tuba-user/application/account"
	userapp "github.com/muhammadheryan/tuba-user/application/user"
	"github.com/muhammadheryan/tuba-user/cmd/config"
	redisclient "github.com/muhammadheryan/tuba-user/cmd/redis"
	_ "github.com/muhammadheryan/tuba-user/docs"
	memoryRepo "github.com/muhammadheryan/tuba-user/repository/memory"
	redisRepo "github.com/muhammadheryan/tuba-user/repository/redis"
	txRepo "github.com/muhammadheryan/tuba-user/repository/tx"
	userRepo "github.com/muhammadheryan/tuba-user/repository/user"
	"github.com/muhammadheryan/tuba-user/thirdparty/rabbitmq"
	"github.com/muhammadheryan/tuba-user/transport"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"go.uber.org/zap"
)

// @title TUBA USER API
// @version 1.0
// @description User identity and sub-account reconciliation API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("store", cfg.Store.Driver))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories
	var UserRepo userRepo.UserRepository
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		UserRepo = memoryRepo.NewUserRepository()
	default:
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			logger.Fatal("err connect db", zap.Error(err))
		}
		defer db.Close()

		// Set database connection pool settings
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		UserRepo = userRepo.NewUserRepository(db, txRepo.NewTxRepository(db))
	}

	var RedisRepo redisRepo.Repository
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		RedisRepo = redisRepo.NewRepository(cfg.Redis.UserCacheTTL)
	}

	var Publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewPublisher(cfg.GetAMQPURL(), cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
		Publisher = publisher
	}

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo, Publisher)
	AccountApp := accountapp.NewAccountApp(UserApp, UserRepo, RedisRepo, Publisher)

	status, err := UserApp.GetStatus(ctx, cfg.Health.ExitOnError)
	if err != nil {
		logger.Fatal("service unhealthy", zap.Any("status", status), zap.Error(err))
	}
	logger.Info("service status", zap.Any("status", status))

	httpTransport := transport.NewTransport(UserApp, AccountApp, cfg.Server)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed shutdown", zap.Error(err))
		}
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("failed server", zap.Error(err))
	}
	logger.Info("HTTP server stopped")
}
