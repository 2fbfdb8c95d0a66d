package events

import "time"

const ReportLifecycleTopic = "sales.report.lifecycle.v1"

type ReportSubmittedEvent struct {
	EventType     string    `json:"event_type"`
	ReportID      uint      `json:"report_id"`
	SalesPersonID uint      `json:"sales_person_id"`
	ReportDate    string    `json:"report_date"`
	VisitCount    int       `json:"visit_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}
