package events

import "time"

const CommentTopic = "sales.report.comment.v1"

type CommentAddedEvent struct {
	EventType     string    `json:"event_type"`
	CommentID     uint      `json:"comment_id"`
	ReportID      uint      `json:"report_id"`
	ManagerID     uint      `json:"manager_id"`
	ReportOwnerID uint      `json:"report_owner_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
