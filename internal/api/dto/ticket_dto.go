package dto

import (
	"time"

	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
)

// CreateTicketRequest payload for POST /api/tickets/create. CategoryID is a
// string because the original form posts it as one; unparseable values fall
// back to the configured default category.
type CreateTicketRequest struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryID"`
	Priority    string `json:"priority"`
	CustomerID  int64  `json:"customerID"`
}

// UpdateStatusRequest payload for PUT /api/tickets/:id/status.
type UpdateStatusRequest struct {
	NewStatus       string `json:"newStatus"`
	ResolutionNotes string `json:"resolutionNotes"`
}

// AddCommentRequest payload for POST /api/tickets/:id/comments.
type AddCommentRequest struct {
	Comment      string `json:"comment"`
	IsInternal   bool   `json:"isInternal"`
	IsResolution bool   `json:"isResolution"`
}

// TicketResponse is the wire shape of a ticket.
type TicketResponse struct {
	TicketID        int64                 `json:"ticketID"`
	TicketNumber    string                `json:"ticketNumber"`
	Subject         string                `json:"subject"`
	Description     string                `json:"description"`
	CategoryID      int64                 `json:"categoryID"`
	Priority        domain.TicketPriority `json:"priority"`
	Status          domain.TicketStatus   `json:"status"`
	CustomerID      int64                 `json:"customerID"`
	AssignedToID    *int64                `json:"assignedToID,omitempty"`
	ResolutionNotes *string               `json:"resolutionNotes,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

// NewTicketResponse maps a domain ticket.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		TicketID:        ticket.ID,
		TicketNumber:    ticket.Number(),
		Subject:         ticket.Subject,
		Description:     ticket.Description,
		CategoryID:      ticket.CategoryID,
		Priority:        ticket.Priority,
		Status:          ticket.Status,
		CustomerID:      ticket.CustomerID,
		AssignedToID:    ticket.AssignedToID,
		ResolutionNotes: ticket.ResolutionNotes,
		CreatedAt:       ticket.CreatedAt,
		UpdatedAt:       ticket.UpdatedAt,
	}
}

// NewTicketResponses maps a slice of tickets.
func NewTicketResponses(tickets []domain.Ticket) []TicketResponse {
	result := make([]TicketResponse, 0, len(tickets))
	for i := range tickets {
		result = append(result, NewTicketResponse(&tickets[i]))
	}
	return result
}

// CommentResponse is the wire shape of a comment.
type CommentResponse struct {
	CommentID    int64     `json:"commentID"`
	TicketID     int64     `json:"ticketID"`
	AuthorID     int64     `json:"authorID"`
	Comment      string    `json:"comment"`
	IsInternal   bool      `json:"isInternal"`
	IsResolution bool      `json:"isResolution"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewCommentResponse maps a domain comment.
func NewCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID:    comment.ID,
		TicketID:     comment.TicketID,
		AuthorID:     comment.AuthorID,
		Comment:      comment.Body,
		IsInternal:   comment.IsInternal,
		IsResolution: comment.IsResolution,
		CreatedAt:    comment.CreatedAt,
	}
}
