package events

import (
	"time"

	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketCommentAdded  EventType = "ticket_comment_added"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketDeleted       EventType = "ticket_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  int64       `json:"ticket_id"`
	ActorID   int64       `json:"actor_id"`
	ActorRole domain.Role `json:"actor_role"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	CustomerID   int64                 `json:"customer_id"`
	CategoryID   int64                 `json:"category_id"`
	Priority     domain.TicketPriority `json:"priority"`
	Subject      string                `json:"subject"`
	AssignedToID *int64                `json:"assigned_to_id,omitempty"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus `json:"old_status"`
	NewStatus domain.TicketStatus `json:"new_status"`
	Notes     string              `json:"notes,omitempty"`
}

// TicketCommentAddedPayload payload.
type TicketCommentAddedPayload struct {
	CommentID    int64  `json:"comment_id"`
	AuthorID     int64  `json:"author_id"`
	IsInternal   bool   `json:"is_internal"`
	IsResolution bool   `json:"is_resolution"`
	BodyPreview  string `json:"body_preview"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssignedToID int64 `json:"assigned_to_id"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	CustomerID int64 `json:"customer_id"`
}
