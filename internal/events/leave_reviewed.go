package events

import "time"

const LeaveReviewedTopic = "backoffice.leave.review.v1"

type LeaveReviewedEvent struct {
	EventType  string    `json:"event_type"`
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	Decision   string    `json:"decision"`
	OccurredAt time.Time `json:"occurred_at"`
}
