package consumer

import (
	"context"
	"encoding/json"
	"strconv"

	"go-sales-report/internal/bootstrap"
	"go-sales-report/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeCommentEvents turns comment-added events into owner notifications
// on the audit log. Malformed messages are committed and skipped so one bad
// payload cannot wedge the partition.
func ConsumeCommentEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.comment_notification")
	log.Info("comment notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("comment notification consumer stopped")
				return
			}
			log.Error("fetch comment message failed", zap.Error(err))
			continue
		}

		var event events.CommentAddedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode comment_added event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "COMMENT_NOTIFICATION",
			Message: "Manager commented on daily report " + strconv.FormatUint(uint64(event.ReportID), 10),
			Meta: map[string]any{
				"comment_id":      event.CommentID,
				"report_id":       event.ReportID,
				"manager_id":      event.ManagerID,
				"report_owner_id": event.ReportOwnerID,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit comment message failed", zap.Error(err))
			continue
		}

		log.Info("comment notification emitted",
			zap.Uint("comment_id", event.CommentID),
			zap.Uint("report_id", event.ReportID),
			zap.Uint("report_owner_id", event.ReportOwnerID),
		)
	}
}
