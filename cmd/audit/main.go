package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/tuba-user/cmd/config"
	redisclient "github.com/muhammadheryan/tuba-user/cmd/redis"
	"github.com/muhammadheryan/tuba-user/model"
	redisRepo "github.com/muhammadheryan/tuba-user/repository/redis"
	"github.com/muhammadheryan/tuba-user/thirdparty/rabbitmq"
	"github.com/muhammadheryan/tuba-user/utils/logger"
	"go.uber.org/zap"
)

// audit consumes the user events: every event is logged and the user's cached
// snapshot is dropped so that other instances never serve it stale.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cache redisRepo.Repository
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
		cache = redisRepo.NewRepository(cfg.Redis.UserCacheTTL)
	}

	consumer, err := rabbitmq.NewConsumer(cfg.GetAMQPURL(), cfg.RabbitMQ.Exchange, cfg.RabbitMQ.Queue)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	if err := consumer.Start(ctx, newHandler(cache)); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	logger.Info("audit consumer running", zap.String("queue", cfg.RabbitMQ.Queue))
	<-ctx.Done()
	logger.Info("audit consumer stopped")
}

func newHandler(cache redisRepo.Repository) rabbitmq.EventHandler {
	return func(ctx context.Context, event model.UserEvent) error {
		logger.Info("user event",
			zap.String("event", string(event.Name)),
			zap.Uint64("user_id", event.UserID),
			zap.Uint64("account_id", event.AccountID),
			zap.Uint64("requester_id", event.RequesterID),
			zap.String("request_id", event.RequestID),
			zap.Time("occurred_at", event.OccurredAt),
		)
		if cache == nil {
			return nil
		}
		return cache.DeleteUser(ctx, event.UserID)
	}
}
