package app

import (
	"context"
	"fmt"

	"go-workforce/internal/bootstrap"
	"go-workforce/internal/config"
	"go-workforce/internal/dashboard"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka/consumer"
	"go-workforce/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const dashboardConsumerGroup = "go-workforce-dashboard"

// RunConsumer clears the cached dashboard stats whenever a relevant event
// arrives, until SIGINT or SIGTERM.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// Only the cache side of the dashboard is used here.
	stats := dashboard.NewService(nil, nil, nil, redisClient, cfg.StatsCacheTTL, logger)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		GroupID:        dashboardConsumerGroup,
		GroupTopics:    events.DashboardTopics,
		CommitInterval: 0,
		StartOffset:    kafkago.LastOffset,
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeDashboardEvents(ctx, reader, stats, logger)

	sig := bootstrap.WaitForSignal()
	logger.Info("consumer shutting down", zap.String("signal", sig.String()))
	cancel()

	return nil
}
