package service

import (
	"context"

	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
)

// DashboardStats are per-status counts over a ticket set.
type DashboardStats struct {
	Total    int `json:"total"`
	Open     int `json:"open"`
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
	Closed   int `json:"closed"`
}

// ComputeStats projects counts from a ticket set. Pure: no stored state,
// identical input yields identical output.
func ComputeStats(tickets []domain.Ticket) DashboardStats {
	stats := DashboardStats{Total: len(tickets)}
	for _, ticket := range tickets {
		switch ticket.Status {
		case domain.TicketStatusOpen:
			stats.Open++
		case domain.TicketStatusPending:
			stats.Pending++
		case domain.TicketStatusResolved:
			stats.Resolved++
		case domain.TicketStatusClosed:
			stats.Closed++
		}
	}
	return stats
}

// StatsService derives dashboard counts from the ticket set visible to the
// actor. Nothing is cached or persisted; every call recomputes.
type StatsService struct {
	tickets *TicketService
}

// NewStatsService constructs the service.
func NewStatsService(tickets *TicketService) *StatsService {
	return &StatsService{tickets: tickets}
}

// ForActor computes stats over the actor's visible tickets: customers over
// their own, staff and admins over all.
func (s *StatsService) ForActor(ctx context.Context, actor *domain.User) (DashboardStats, error) {
	tickets, err := s.tickets.ListVisible(ctx, actor)
	if err != nil {
		return DashboardStats{}, err
	}
	return ComputeStats(tickets), nil
}
