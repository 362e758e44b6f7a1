package app

import (
	"context"
	"fmt"

	"go-workforce/internal/bootstrap"
	"go-workforce/internal/config"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/messaging/kafka/producer"
	"go-workforce/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays committed outbox events to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DSN(), cfg.ConnectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.OutboxPollInterval,
	)

	sig := bootstrap.WaitForSignal()
	logger.Info("worker shutting down", zap.String("signal", sig.String()))
	cancel()

	return nil
}
