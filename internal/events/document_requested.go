package events

import "time"

const DocumentRequestedTopic = "backoffice.document.requested.v1"

type DocumentRequestedEvent struct {
	EventType   string    `json:"event_type"`
	TemplateID  string    `json:"template_id"`
	EmployeeID  string    `json:"employee_id"`
	RequestedBy string    `json:"requested_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
