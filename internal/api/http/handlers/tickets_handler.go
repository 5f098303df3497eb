package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-pro/helpdesk-service/internal/api/dto"
	"github.com/helpdesk-pro/helpdesk-service/internal/auth"
	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
	"github.com/helpdesk-pro/helpdesk-service/internal/service"
	apperrors "github.com/helpdesk-pro/helpdesk-service/pkg/util"
)

// TicketsHandler manages ticket endpoints for all roles.
type TicketsHandler struct {
	tickets  *service.TicketService
	comments *service.CommentService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService, comments *service.CommentService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets, comments: comments}
}

// Create handles POST /api/tickets/create.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	// Unparseable category falls back to the configured default.
	var categoryID int64
	if parsed, err := strconv.ParseInt(strings.TrimSpace(req.CategoryID), 10, 64); err == nil {
		categoryID = parsed
	}

	ticket, err := h.tickets.Create(c.Context(), principal.User, service.TicketCreateInput{
		Subject:     req.Subject,
		Description: req.Description,
		CategoryID:  categoryID,
		Priority:    domain.TicketPriority(req.Priority),
		CustomerID:  req.CustomerID,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Ticket created successfully",
		"ticket":  dto.NewTicketResponse(ticket),
	})
}

// List handles GET /api/tickets/user. Customers always get their own
// tickets; the userID filter only applies to staff-level callers.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	input := service.TicketListInput{
		PageSize:   parseIntDefault(c.Query("pageSize"), 20),
		PageNumber: parseIntDefault(c.Query("pageNumber"), 1),
	}
	if statusStr := c.Query("status"); statusStr != "" {
		for _, part := range strings.Split(statusStr, ",") {
			input.Statuses = append(input.Statuses, domain.TicketStatus(strings.TrimSpace(part)))
		}
	}
	if userIDStr := c.Query("userID"); userIDStr != "" {
		if parsed, err := strconv.ParseInt(userIDStr, 10, 64); err == nil {
			input.CustomerID = &parsed
		}
	}

	tickets, err := h.tickets.List(c.Context(), principal.User, input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"tickets": dto.NewTicketResponses(tickets),
	})
}

// UpdateStatus handles PUT /api/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.NewStatus == "" {
		return apperrors.NewValidationError("newStatus required", nil)
	}

	if _, err := h.tickets.UpdateStatus(c.Context(), principal.User, ticketID, domain.TicketStatus(req.NewStatus), req.ResolutionNotes); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Ticket updated successfully",
	})
}

// AddComment handles POST /api/tickets/:id/comments.
func (h *TicketsHandler) AddComment(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}
	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	comment, err := h.comments.Add(c.Context(), principal.User, ticketID, req.Comment, req.IsInternal, req.IsResolution)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Comment added successfully",
		"comment": dto.NewCommentResponse(comment),
	})
}

// ListComments handles GET /api/tickets/:id/comments.
func (h *TicketsHandler) ListComments(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}

	comments, err := h.comments.ListForActor(c.Context(), principal.User, ticketID)
	if err != nil {
		return err
	}
	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, dto.NewCommentResponse(&comments[i]))
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"comments": result,
	})
}

// Delete handles DELETE /api/tickets/:id.
func (h *TicketsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	ticketID, err := parseTicketID(c)
	if err != nil {
		return err
	}

	if err := h.tickets.Delete(c.Context(), principal.User, ticketID); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Ticket deleted successfully",
	})
}

func parseTicketID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewValidationError("invalid ticket id", nil)
	}
	return id, nil
}

func parseIntDefault(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
