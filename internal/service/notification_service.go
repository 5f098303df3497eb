package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/helpdesk-pro/helpdesk-service/internal/events"
	"github.com/helpdesk-pro/helpdesk-service/internal/repository"
)

// NotificationService reacts to domain events by notifying ticket owners.
// Delivery is a log-backed stub; the opt-out in the owner's notification
// preferences is honored either way.
type NotificationService struct {
	dispatcher events.Dispatcher
	tickets    repository.TicketRepository
	users      repository.UserRepository
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, tickets repository.TicketRepository, users repository.UserRepository, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, tickets: tickets, users: users, logger: logger}
}

// RegisterHandlers subscribes to the events that reach customers.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketCreated, n.handleTicketCreated)
	n.dispatcher.Subscribe(events.EventTicketStatusChanged, n.handleTicketStatusChanged)
	n.dispatcher.Subscribe(events.EventTicketCommentAdded, n.handleCommentAdded)
}

func (n *NotificationService) handleTicketCreated(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCreatedPayload)
	if !ok {
		return nil
	}
	n.notifyOwner(ctx, payload.CustomerID, "ticket created", event)
	return nil
}

func (n *NotificationService) handleTicketStatusChanged(ctx context.Context, event events.Event) error {
	ticket, err := n.tickets.GetByID(ctx, event.TicketID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			n.logger.Warn("notification lookup failed", zap.Int64("ticket_id", event.TicketID), zap.Error(err))
		}
		return nil
	}
	n.notifyOwner(ctx, ticket.CustomerID, "ticket status changed", event)
	return nil
}

func (n *NotificationService) handleCommentAdded(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketCommentAddedPayload)
	if !ok || payload.IsInternal {
		return nil
	}
	ticket, err := n.tickets.GetByID(ctx, event.TicketID)
	if err != nil {
		return nil
	}
	if ticket.CustomerID == payload.AuthorID {
		// The owner does not need to hear about their own reply.
		return nil
	}
	n.notifyOwner(ctx, ticket.CustomerID, "new reply on ticket", event)
	return nil
}

func (n *NotificationService) notifyOwner(ctx context.Context, customerID int64, subject string, event events.Event) {
	owner, err := n.users.GetByID(ctx, customerID)
	if err != nil {
		return
	}
	if !owner.Prefs.EmailNotifications {
		return
	}
	n.logger.Info("email notification queued",
		zap.String("subject", subject),
		zap.String("to", owner.Email),
		zap.Int64("ticket_id", event.TicketID),
		zap.String("event", string(event.Type)),
	)
}
