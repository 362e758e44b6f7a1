package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestNewOutboxEvent(t *testing.T) {
	ev, err := kafka.NewOutboxEvent("req-1", "payroll", "agg-1",
		events.EventPayrollProcessed, events.PayrollProcessedTopic,
		events.PayrollProcessedEvent{PayrollID: "agg-1", Period: "2024-03"})

	assert.NoError(t, err)
	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
	assert.Equal(t, events.PayrollProcessedTopic, ev.Topic)
	assert.Contains(t, string(ev.Payload), `"period":"2024-03"`)
	assert.NoError(t, kafka.ValidateOutboxEvent(ev))
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.Error(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{}))
	assert.Error(t, kafka.ValidateOutboxEvent(kafka.OutboxEvent{ID: "1", Topic: "t", Payload: []byte("{}"), Status: "weird"}))
}

func TestOutboxRepository_CreateUsesTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	ev, _ := kafka.NewOutboxEvent("", "employee", "agg-1", events.EventEmployeeCreated, events.EmployeeChangedTopic, map[string]string{"a": "b"})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(ev.ID, ev.RequestID, ev.AggregateType, ev.AggregateID, ev.EventType, ev.Topic, ev.Payload, ev.Status).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	assert.NoError(t, err)

	repo := kafka.NewOutboxRepository(db).WithTx(tx)
	assert.NoError(t, repo.Create(context.Background(), ev))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow("ev-1", "req-1", "payroll", "agg-1", events.EventPayrollProcessed, events.PayrollProcessedTopic, []byte(`{}`), kafka.OutboxStatusPending, 0, now)

	mock.ExpectQuery("FROM outbox_events").
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
		WillReturnRows(rows)

	got, err := kafka.NewOutboxRepository(db).ListPending(context.Background(), 50)

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "ev-1", got[0].ID)
	assert.Equal(t, "req-1", got[0].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
