package consumer

import (
	"context"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer uses.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// RetryBackoff is the pause after a failed fetch or invalidation.
var RetryBackoff = time.Second

type StatsInvalidator interface {
	InvalidateStats(ctx context.Context) error
}

// ConsumeDashboardEvents drops the cached dashboard stats whenever an event
// that changes them arrives. A message is committed only after the cache
// was cleared, so a failed invalidation is retried on redelivery.
func ConsumeDashboardEvents(
	ctx context.Context,
	reader MessageReader,
	invalidator StatsInvalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.dashboard")
	log.Info("dashboard consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("dashboard consumer stopped")
				return
			}
			log.Error("fetch dashboard message failed", zap.Error(err))
			if !sleep(ctx, RetryBackoff) {
				log.Info("dashboard consumer stopped")
				return
			}
			continue
		}

		eventType := headerValue(msg, "event_type")
		if err := invalidator.InvalidateStats(ctx); err != nil {
			log.Error("invalidate dashboard stats failed",
				zap.String("topic", msg.Topic),
				zap.String("event_type", eventType),
				zap.Error(err),
			)
			if !sleep(ctx, RetryBackoff) {
				log.Info("dashboard consumer stopped")
				return
			}
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit dashboard message failed", zap.Error(err))
			continue
		}

		log.Debug("dashboard stats invalidated",
			zap.String("topic", msg.Topic),
			zap.String("event_type", eventType),
			zap.String("request_id", headerValue(msg, "request_id")),
		)
	}
}

// sleep waits d, returning false if ctx ends first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func headerValue(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
