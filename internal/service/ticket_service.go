package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/helpdesk-pro/helpdesk-service/internal/cache"
	"github.com/helpdesk-pro/helpdesk-service/internal/config"
	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
	"github.com/helpdesk-pro/helpdesk-service/internal/events"
	"github.com/helpdesk-pro/helpdesk-service/internal/repository"
	apperrors "github.com/helpdesk-pro/helpdesk-service/pkg/util"
)

const defaultPageSize = 20

// TicketService coordinates ticket workflows: creation with configured
// defaults, the status lifecycle, listing, and cascade deletion.
type TicketService struct {
	tickets    repository.TicketRepository
	assigner   *AssignmentService
	views      *cache.ViewCache
	dispatcher events.Dispatcher
	defaults   config.TicketDefaults
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Assigner   *AssignmentService
	Views      *cache.ViewCache
	Dispatcher events.Dispatcher
	Defaults   config.TicketDefaults
}

// TicketCreateInput describes ticket creation payload. CategoryID zero or
// negative falls back to the configured default; CustomerID is only honored
// for staff-level actors creating on a customer's behalf.
type TicketCreateInput struct {
	Subject     string
	Description string
	CategoryID  int64
	Priority    domain.TicketPriority
	CustomerID  int64
}

// TicketListInput describes listing filters.
type TicketListInput struct {
	CustomerID *int64
	Statuses   []domain.TicketStatus
	PageSize   int
	PageNumber int
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		assigner:   deps.Assigner,
		views:      deps.Views,
		dispatcher: deps.Dispatcher,
		defaults:   deps.Defaults,
	}
}

// Create opens a new ticket owned by a customer. Staff and admins may open
// one on a customer's behalf; customers always own what they create.
func (s *TicketService) Create(ctx context.Context, actor *domain.User, input TicketCreateInput) (*domain.Ticket, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	subject := strings.TrimSpace(input.Subject)
	description := strings.TrimSpace(input.Description)
	if subject == "" || description == "" {
		return nil, apperrors.NewValidationError("subject and description required", nil)
	}

	customerID := actor.ID
	if input.CustomerID > 0 && actor.Role.IsStaffLevel() {
		customerID = input.CustomerID
	}

	categoryID := input.CategoryID
	if categoryID <= 0 {
		categoryID = s.defaults.DefaultCategoryID
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.TicketPriorityMedium
	}
	if !priority.Valid() {
		return nil, apperrors.NewValidationError("unknown priority", map[string]any{"priority": priority})
	}

	assignee, err := s.assigner.Pick(ctx)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Subject:      subject,
		Description:  description,
		CategoryID:   categoryID,
		Priority:     priority,
		Status:       domain.TicketStatusOpen,
		CustomerID:   customerID,
		AssignedToID: assignee,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewBackendUnavailable(err)
	}

	s.invalidateViews(ctx)
	s.publishEvent(ctx, actor, events.Event{
		Type:     events.EventTicketCreated,
		TicketID: ticket.ID,
		Payload: events.TicketCreatedPayload{
			CustomerID:   ticket.CustomerID,
			CategoryID:   ticket.CategoryID,
			Priority:     ticket.Priority,
			Subject:      ticket.Subject,
			AssignedToID: ticket.AssignedToID,
		},
	})
	if ticket.AssignedToID != nil {
		s.publishEvent(ctx, actor, events.Event{
			Type:     events.EventTicketAssigned,
			TicketID: ticket.ID,
			Payload:  events.TicketAssignedPayload{AssignedToID: *ticket.AssignedToID},
		})
	}
	return ticket, nil
}

// List returns the tickets visible to the actor. Customers only ever see
// their own tickets no matter what filter they send; staff and admins see
// everything and may narrow to a single customer.
func (s *TicketService) List(ctx context.Context, actor *domain.User, input TicketListInput) ([]domain.Ticket, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}

	filter := repository.TicketFilter{Statuses: input.Statuses}
	if actor.Role.IsStaffLevel() {
		filter.CustomerID = input.CustomerID
	} else {
		id := actor.ID
		filter.CustomerID = &id
	}

	pageSize := input.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	pageNumber := input.PageNumber
	if pageNumber <= 0 {
		pageNumber = 1
	}
	filter.Limit = pageSize
	filter.Offset = (pageNumber - 1) * pageSize

	// The default unfiltered first page is the view both the dashboard and
	// the polling refresh render, so it is the one worth caching.
	cacheable := s.views != nil && len(input.Statuses) == 0 && input.CustomerID == nil &&
		pageNumber == 1 && pageSize == defaultPageSize
	viewKey := cache.UserViewKey(actor.Role, actor.ID)

	if cacheable {
		if tickets, ok, err := s.views.GetTickets(ctx, viewKey); err == nil && ok {
			return tickets, nil
		}
	}

	var generation int64
	if cacheable {
		gen, err := s.views.Begin(ctx)
		if err == nil {
			generation = gen
		} else {
			cacheable = false
		}
	}

	tickets, err := s.tickets.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.NewBackendUnavailable(err)
	}

	if cacheable {
		// Dropped silently when a newer fetch or a mutation got there first.
		_, _ = s.views.PutTickets(ctx, viewKey, generation, tickets)
	}
	return tickets, nil
}

// ListVisible returns every ticket the actor may see, unpaginated. Used by
// the dashboard aggregation, which must project over the full visible set.
func (s *TicketService) ListVisible(ctx context.Context, actor *domain.User) ([]domain.Ticket, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	filter := repository.TicketFilter{Limit: 100000}
	if !actor.Role.IsStaffLevel() {
		id := actor.ID
		filter.CustomerID = &id
	}
	tickets, err := s.tickets.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.NewBackendUnavailable(err)
	}
	return tickets, nil
}

// Get loads a ticket and enforces the view policy.
func (s *TicketService) Get(ctx context.Context, actor *domain.User, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.fetch(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !domain.CanView(actor.Role, actor.ID, ticket) {
		return nil, apperrors.NewForbidden("you do not have access to this ticket")
	}
	return ticket, nil
}

// UpdateStatus transitions a ticket along the lifecycle graph. Only staff
// and admins may transition; illegal targets leave the ticket unchanged.
func (s *TicketService) UpdateStatus(ctx context.Context, actor *domain.User, ticketID int64, newStatus domain.TicketStatus, resolutionNotes string) (*domain.Ticket, error) {
	if actor == nil {
		return nil, apperrors.NewUnauthorized("authentication required")
	}
	ticket, err := s.fetch(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if !domain.CanEdit(actor.Role, actor.ID, ticket) {
		return nil, apperrors.NewForbidden("only staff can change ticket status")
	}
	if !domain.CanTransition(ticket.Status, newStatus) {
		return nil, apperrors.NewInvalidStatus("cannot transition from " + string(ticket.Status) + " to " + string(newStatus))
	}

	// Notes ride along on a resolve; their absence never blocks it.
	var notes *string
	if newStatus == domain.TicketStatusResolved && strings.TrimSpace(resolutionNotes) != "" {
		trimmed := strings.TrimSpace(resolutionNotes)
		notes = &trimmed
	}

	oldStatus := ticket.Status
	if err := s.tickets.UpdateStatus(ctx, ticket.ID, newStatus, notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.NewBackendUnavailable(err)
	}
	ticket.Status = newStatus
	if notes != nil {
		ticket.ResolutionNotes = notes
	}
	ticket.UpdatedAt = time.Now()

	s.invalidateViews(ctx)
	s.publishEvent(ctx, actor, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
			Notes:     resolutionNotes,
		},
	})
	return ticket, nil
}

// Delete removes a ticket and all of its comments atomically, subject to
// the deletion policy.
func (s *TicketService) Delete(ctx context.Context, actor *domain.User, ticketID int64) error {
	if actor == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticket, err := s.fetch(ctx, ticketID)
	if err != nil {
		return err
	}
	if !domain.CanDelete(actor.Role, actor.ID, ticket) {
		return apperrors.NewForbidden("you do not have permission to delete this ticket")
	}

	if err := s.tickets.DeleteCascade(ctx, ticket.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return apperrors.NewBackendUnavailable(err)
	}

	s.invalidateViews(ctx)
	s.publishEvent(ctx, actor, events.Event{
		Type:     events.EventTicketDeleted,
		TicketID: ticket.ID,
		Payload:  events.TicketDeletedPayload{CustomerID: ticket.CustomerID},
	})
	return nil
}

func (s *TicketService) fetch(ctx context.Context, ticketID int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": ticketID})
		}
		return nil, apperrors.NewBackendUnavailable(err)
	}
	return ticket, nil
}

func (s *TicketService) invalidateViews(ctx context.Context) {
	if s.views == nil {
		return
	}
	_ = s.views.Invalidate(ctx)
}

func (s *TicketService) publishEvent(ctx context.Context, actor *domain.User, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	if actor != nil {
		event.ActorID = actor.ID
		event.ActorRole = actor.Role
	}
	_ = s.dispatcher.Publish(ctx, event)
}
