package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/helpdesk-pro/helpdesk-service/internal/cache"
	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
	"github.com/helpdesk-pro/helpdesk-service/internal/events"
	"github.com/helpdesk-pro/helpdesk-service/internal/repository"
	apperrors "github.com/helpdesk-pro/helpdesk-service/pkg/util"
)

// CommentService manages the append-only comment log of a ticket.
type CommentService struct {
	comments   repository.CommentRepository
	tickets    repository.TicketRepository
	views      *cache.ViewCache
	dispatcher events.Dispatcher
}

// NewCommentService constructs the service.
func NewCommentService(comments repository.CommentRepository, tickets repository.TicketRepository, views *cache.ViewCache, dispatcher events.Dispatcher) *CommentService {
	return &CommentService{comments: comments, tickets: tickets, views: views, dispatcher: dispatcher}
}

// Add appends a comment and advances the parent ticket's updated timestamp.
// Customers cannot mark comments internal; the flag is dropped for them.
func (s *CommentService) Add(ctx context.Context, actor *domain.User, ticketID int64, body string, isInternal, isResolution bool) (*domain.Comment, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.NewBackendUnavailable(err)
	}
	if !domain.CanComment(actor.Role, actor.ID, ticket) {
		return nil, apperrors.NewForbidden("you do not have access to this ticket")
	}

	if strings.TrimSpace(body) == "" {
		return nil, apperrors.NewEmptyBody()
	}

	if !actor.Role.IsStaffLevel() {
		isInternal = false
		isResolution = false
	}

	comment := &domain.Comment{
		TicketID:     ticket.ID,
		AuthorID:     actor.ID,
		Body:         strings.TrimSpace(body),
		IsInternal:   isInternal,
		IsResolution: isResolution,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, apperrors.NewBackendUnavailable(err)
	}
	if err := s.tickets.TouchUpdated(ctx, ticket.ID); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NewBackendUnavailable(err)
	}

	if s.views != nil {
		_ = s.views.Invalidate(ctx)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventTicketCommentAdded,
			TicketID:  ticket.ID,
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Timestamp: time.Now(),
			Payload: events.TicketCommentAddedPayload{
				CommentID:    comment.ID,
				AuthorID:     comment.AuthorID,
				IsInternal:   comment.IsInternal,
				IsResolution: comment.IsResolution,
				BodyPreview:  bodyPreview(comment.Body, 120),
			},
		})
	}
	return comment, nil
}

// ListForActor returns the ticket's comments in insertion order. Internal
// comments are filtered out of customer views.
func (s *CommentService) ListForActor(ctx context.Context, actor *domain.User, ticketID int64) ([]domain.Comment, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.NewBackendUnavailable(err)
	}
	if !domain.CanView(actor.Role, actor.ID, ticket) {
		return nil, apperrors.NewForbidden("you do not have access to this ticket")
	}

	comments, err := s.comments.ListByTicket(ctx, ticket.ID)
	if err != nil {
		return nil, apperrors.NewBackendUnavailable(err)
	}
	if actor.Role.IsStaffLevel() {
		return comments, nil
	}

	visible := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		if comment.IsInternal {
			continue
		}
		visible = append(visible, comment)
	}
	return visible, nil
}

func bodyPreview(body string, max int) string {
	body = strings.TrimSpace(body)
	if len(body) <= max {
		return body
	}
	if max <= 3 {
		return body[:max]
	}
	return body[:max-3] + "..."
}
