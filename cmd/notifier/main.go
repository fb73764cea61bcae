package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/lead-crm/cmd/config"
	"github.com/muhammadheryan/lead-crm/thirdparty/rabbitmq"
	"github.com/muhammadheryan/lead-crm/utils/logger"
	"go.uber.org/zap"
)

// notifier consumes the API's events and delivers them. Delivery is currently
// a structured log line per event.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "lead-crm-notifier"); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, rabbitmq.NewLogNotifier())
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Notifier running")
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("failed consumer", zap.Error(err))
	}

	<-ctx.Done()
	logger.Info("Notifier stopped")
}
