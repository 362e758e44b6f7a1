package producer_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeOutboxRepository struct {
	pending []kafka.OutboxEvent
	sent    []string
	failed  map[string]string
}

func (f *fakeOutboxRepository) WithTx(*sql.Tx) kafka.OutboxRepository { return f }

func (f *fakeOutboxRepository) Create(context.Context, kafka.OutboxEvent) error { return nil }

func (f *fakeOutboxRepository) ListPending(_ context.Context, limit int) ([]kafka.OutboxEvent, error) {
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutboxRepository) MarkSent(_ context.Context, id string) error {
	f.sent = append(f.sent, id)
	return nil
}

func (f *fakeOutboxRepository) MarkFailed(_ context.Context, id string, reason string) error {
	if f.failed == nil {
		f.failed = map[string]string{}
	}
	f.failed[id] = reason
	return nil
}

type fakeWriter struct {
	messages []kafkago.Message
	failKey  string
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if string(m.Key) == w.failKey {
			return errors.New("broker unavailable")
		}
		w.messages = append(w.messages, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ok, _ := kafka.NewOutboxEvent("req-1", "payroll", "payroll-1", events.EventPayrollProcessed, events.PayrollProcessedTopic, map[string]string{})
	bad, _ := kafka.NewOutboxEvent("req-2", "time_entry", "entry-1", events.EventTimesheetDecided, events.ApprovalDecidedTopic, map[string]string{})

	repo := &fakeOutboxRepository{pending: []kafka.OutboxEvent{ok, bad}}
	writer := &fakeWriter{failKey: "entry-1"}

	sent, err := producer.ProcessPendingEvents(context.Background(), repo, writer, zap.NewNop())

	assert.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, []string{ok.ID}, repo.sent)
	assert.Contains(t, repo.failed[bad.ID], "broker unavailable")
	assert.Len(t, writer.messages, 1)
	assert.Equal(t, events.PayrollProcessedTopic, writer.messages[0].Topic)
	assert.Equal(t, "payroll-1", string(writer.messages[0].Key))
}

func TestProcessPendingEvents_Empty(t *testing.T) {
	sent, err := producer.ProcessPendingEvents(context.Background(), &fakeOutboxRepository{}, &fakeWriter{}, zap.NewNop())

	assert.NoError(t, err)
	assert.Zero(t, sent)
}
