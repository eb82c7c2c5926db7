package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationEvent string

const (
	EventViolationCreated NotificationEvent = "violation.created"
	EventStatusChanged    NotificationEvent = "violation.status_changed"
)

// NotificationPayload is what gets queued and posted to the configured
// webhook after a report is created or its status changes.
type NotificationPayload struct {
	Event       NotificationEvent `json:"event"`
	ViolationID uuid.UUID         `json:"violation_id"`
	OwnerID     uuid.UUID         `json:"owner_id"`
	Status      ViolationStatus   `json:"status"`
	ChangedBy   uuid.UUID         `json:"changed_by"`
	OccurredAt  time.Time         `json:"occurred_at"`
}
