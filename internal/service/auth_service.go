package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/helpdesk-pro/helpdesk-service/internal/auth"
	"github.com/helpdesk-pro/helpdesk-service/internal/config"
	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
	"github.com/helpdesk-pro/helpdesk-service/internal/repository"
	apperrors "github.com/helpdesk-pro/helpdesk-service/pkg/util"
)

// AuthService coordinates registration, login and profile flows.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// RegisterInput describes a new customer account.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	Company   string
	Phone     string
}

// ProfileInput describes the mutable profile fields. Role and username are
// not among them.
type ProfileInput struct {
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	Company            string
	EmailNotifications bool
	MarketingEmails    bool
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, users repository.UserRepository) *AuthService {
	return &AuthService{
		users:      users,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// TokenManager exposes the token manager for the auth middleware.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

// Register creates a new account. The role is always Customer regardless of
// anything the caller sends. Fails with DUPLICATE_IDENTITY when the username
// or email is taken; no row is created in that case.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	exists, err := s.users.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, apperrors.NewBackendUnavailable(err)
	}
	if exists {
		return nil, apperrors.NewDuplicateIdentity("username or email already exists")
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	user := &domain.User{
		Username:     strings.TrimSpace(input.Username),
		PasswordHash: hash,
		Email:        strings.TrimSpace(input.Email),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Company:      input.Company,
		Phone:        input.Phone,
		Role:         domain.RoleCustomer,
		Prefs:        domain.NotificationPrefs{EmailNotifications: true},
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.NewBackendUnavailable(err)
	}
	return user, nil
}

// Login authenticates by username and password, returning the user and a
// signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return nil, "", time.Time{}, apperrors.NewBackendUnavailable(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewInvalidCredentials()
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, "", time.Time{}, apperrors.MapError(err)
	}
	return user, token, exp, nil
}

// UpdateProfile mutates name, contact and notification preference fields
// for the acting user.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, input ProfileInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, apperrors.NewBackendUnavailable(err)
	}

	user.FirstName = strings.TrimSpace(input.FirstName)
	user.LastName = strings.TrimSpace(input.LastName)
	user.Email = strings.TrimSpace(input.Email)
	user.Phone = input.Phone
	user.Company = input.Company
	user.Prefs.EmailNotifications = input.EmailNotifications
	user.Prefs.MarketingEmails = input.MarketingEmails

	if err := s.users.UpdateProfile(ctx, user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"user_id": userID})
		}
		return nil, apperrors.NewBackendUnavailable(err)
	}
	return user, nil
}
