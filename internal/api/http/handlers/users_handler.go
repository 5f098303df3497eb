package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-pro/helpdesk-service/internal/api/dto"
	"github.com/helpdesk-pro/helpdesk-service/internal/auth"
	"github.com/helpdesk-pro/helpdesk-service/internal/service"
	apperrors "github.com/helpdesk-pro/helpdesk-service/pkg/util"
)

// UsersHandler exposes authentication and profile endpoints.
type UsersHandler struct {
	auth *service.AuthService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(authService *service.AuthService) *UsersHandler {
	return &UsersHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *UsersHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" {
		return apperrors.NewValidationError("username and password required", nil)
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"token":   token,
		"user":    dto.NewUserResponse(user),
	})
}

// Register handles POST /api/users/register. New accounts are always
// customers.
func (h *UsersHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Username == "" || req.Password == "" || req.Email == "" || req.FirstName == "" || req.LastName == "" {
		return apperrors.NewValidationError("username, password, email, firstName, lastName required", nil)
	}

	user, err := h.auth.Register(c.Context(), service.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Phone:     req.Phone,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Account created successfully",
		"user":    dto.NewUserResponse(user),
	})
}

// UpdateProfile handles PUT /api/users/profile. Always operates on the
// authenticated user; a userID in the body is ignored.
func (h *UsersHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.FirstName == "" || req.LastName == "" || req.Email == "" {
		return apperrors.NewValidationError("firstName, lastName, email required", nil)
	}

	user, err := h.auth.UpdateProfile(c.Context(), principal.User.ID, service.ProfileInput{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		Phone:              req.Phone,
		Company:            req.Company,
		EmailNotifications: req.EmailNotifications,
		MarketingEmails:    req.MarketingEmails,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Profile updated successfully",
		"user":    dto.NewUserResponse(user),
	})
}
