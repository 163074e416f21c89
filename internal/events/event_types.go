package events

import (
	"time"

	"github.com/spec-kit/rental-complaint-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTenantApproved         EventType = "tenant_approved"
	EventTenantRejected         EventType = "tenant_rejected"
	EventComplaintCreated       EventType = "complaint_created"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TenantApprovedPayload payload.
type TenantApprovedPayload struct {
	TenantName  string `json:"tenant_name"`
	TenantEmail string `json:"tenant_email"`
}

// TenantRejectedPayload payload.
type TenantRejectedPayload struct {
	TenantEmail string `json:"tenant_email"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	TenantID     string `json:"tenant_id"`
	PropertyName string `json:"property_name"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}
