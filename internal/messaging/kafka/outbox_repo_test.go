package kafka_test

import (
	"context"
	"testing"
	"time"

	"go-sales-report/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupOutboxTest(t *testing.T) (kafka.OutboxRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	assert.NoError(t, err)

	return kafka.NewOutboxRepository(gormDB), mock, func() { db.Close() }
}

func pendingEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     uuid.New().String(),
		AggregateType: "daily_report",
		AggregateID:   "42",
		EventType:     "report.submitted",
		Topic:         "sales.report.lifecycle.v1",
		Payload:       []byte(`{"report_id":42}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestOutboxRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := setupOutboxTest(t)
		defer cleanup()

		event := pendingEvent()
		mock.ExpectExec("INSERT INTO outbox_events").
			WithArgs(
				event.ID, event.RequestID, event.AggregateType,
				event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(ctx, event)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_ListPending(t *testing.T) {
	ctx := context.Background()

	t.Run("returns pending and retryable failed rows", func(t *testing.T) {
		repo, mock, cleanup := setupOutboxTest(t)
		defer cleanup()

		id := uuid.New().String()
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "aggregate_type", "aggregate_id", "event_type",
			"topic", "payload", "status", "retry_count", "next_retry_at",
		}).AddRow(
			id, "daily_report", "42", "report.submitted",
			"sales.report.lifecycle.v1", []byte(`{}`), kafka.OutboxStatusPending, 0, now,
		)

		mock.ExpectQuery("FROM outbox_events").
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
			WillReturnRows(rows)

		events, err := repo.ListPending(ctx, 50)

		assert.NoError(t, err)
		assert.Len(t, events, 1)
		assert.Equal(t, id, events[0].ID)
		assert.Equal(t, "sales.report.lifecycle.v1", events[0].Topic)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty outbox", func(t *testing.T) {
		repo, mock, cleanup := setupOutboxTest(t)
		defer cleanup()

		mock.ExpectQuery("FROM outbox_events").
			WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		events, err := repo.ListPending(ctx, 50)

		assert.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestOutboxRepository_MarkSent(t *testing.T) {
	ctx := context.Background()
	repo, mock, cleanup := setupOutboxTest(t)
	defer cleanup()

	id := uuid.New().String()
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(kafka.OutboxStatusSent, id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkSent(ctx, id)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	repo, mock, cleanup := setupOutboxTest(t)
	defer cleanup()

	id := uuid.New().String()
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(kafka.OutboxStatusFailed, "broker unreachable", id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkFailed(ctx, id, "broker unreachable")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateOutboxEvent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, kafka.ValidateOutboxEvent(pendingEvent()))
	})

	t.Run("negative missing id", func(t *testing.T) {
		event := pendingEvent()
		event.ID = ""
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("negative missing topic", func(t *testing.T) {
		event := pendingEvent()
		event.Topic = ""
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("negative empty payload", func(t *testing.T) {
		event := pendingEvent()
		event.Payload = nil
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})

	t.Run("negative unknown status", func(t *testing.T) {
		event := pendingEvent()
		event.Status = "queued"
		assert.Error(t, kafka.ValidateOutboxEvent(event))
	})
}
