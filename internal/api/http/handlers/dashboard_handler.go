package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-pro/helpdesk-service/internal/auth"
	"github.com/helpdesk-pro/helpdesk-service/internal/service"
	apperrors "github.com/helpdesk-pro/helpdesk-service/pkg/util"
)

// DashboardHandler serves aggregate counts.
type DashboardHandler struct {
	stats *service.StatsService
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(stats *service.StatsService) *DashboardHandler {
	return &DashboardHandler{stats: stats}
}

// Stats handles GET /api/dashboard/stats. Customers get their own totals
// with resolved and closed folded together; staff and admins get the full
// per-status breakdown over all tickets.
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	stats, err := h.stats.ForActor(c.Context(), principal.User)
	if err != nil {
		return err
	}

	var payload fiber.Map
	if principal.Role().IsStaffLevel() {
		payload = fiber.Map{
			"OpenTickets":     stats.Open,
			"PendingTickets":  stats.Pending,
			"ResolvedTickets": stats.Resolved,
			"ClosedTickets":   stats.Closed,
		}
	} else {
		payload = fiber.Map{
			"TotalTickets":    stats.Total,
			"OpenTickets":     stats.Open,
			"ResolvedTickets": stats.Resolved + stats.Closed,
		}
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   payload,
	})
}
