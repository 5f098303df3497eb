package service

import (
	"context"
	"testing"
	"time"

	"github.com/helpdesk-pro/helpdesk-service/internal/config"
	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
)

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	users := newFakeUserRepo()
	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret",
			AccessTokenTTLMinutes: 15,
			BcryptCost:            4, // min cost keeps the test fast
		},
	}
	return NewAuthService(cfg, users), users
}

func TestRegisterForcesCustomerRole(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	user, err := service.Register(ctx, RegisterInput{
		Username:  "alice",
		Password:  "s3cret",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Errorf("role = %s, want Customer", user.Role)
	}
	if !user.Prefs.EmailNotifications {
		t.Error("email notifications must default on")
	}
	if user.PasswordHash == "" || user.PasswordHash == "s3cret" {
		t.Error("password must be stored hashed")
	}
	if user.ID == 0 {
		t.Error("registered user must get an id")
	}
}

func TestRegisterDuplicateIdentity(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, RegisterInput{Username: "alice", Password: "x", Email: "alice@example.com"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := service.Register(ctx, RegisterInput{Username: "alice", Password: "x", Email: "other@example.com"})
	wantDomainCode(t, err, "DUPLICATE_IDENTITY")

	_, err = service.Register(ctx, RegisterInput{Username: "bob", Password: "x", Email: "alice@example.com"})
	wantDomainCode(t, err, "DUPLICATE_IDENTITY")
}

func TestLogin(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, RegisterInput{Username: "alice", Password: "s3cret", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, expiresAt, err := service.Login(ctx, "alice", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != registered.ID {
		t.Errorf("login returned user %d, want %d", user.ID, registered.ID)
	}
	if token == "" {
		t.Fatal("login must return a token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("token expiry must be in the future")
	}

	claims, err := service.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	subject, err := claims.UserID()
	if err != nil {
		t.Fatalf("claims subject: %v", err)
	}
	if subject != registered.ID {
		t.Errorf("token subject = %d, want %d", subject, registered.ID)
	}
	if claims.Role != domain.RoleCustomer {
		t.Errorf("token role = %s, want Customer", claims.Role)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	if _, err := service.Register(ctx, RegisterInput{Username: "alice", Password: "s3cret", Email: "alice@example.com"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Wrong password and unknown username produce the same opaque error.
	_, _, _, err := service.Login(ctx, "alice", "wrong")
	wantDomainCode(t, err, "INVALID_CREDENTIALS")

	_, _, _, err = service.Login(ctx, "mallory", "s3cret")
	wantDomainCode(t, err, "INVALID_CREDENTIALS")
}

func TestUpdateProfile(t *testing.T) {
	service, users := newAuthFixture(t)
	ctx := context.Background()

	registered, err := service.Register(ctx, RegisterInput{Username: "alice", Password: "x", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	updated, err := service.UpdateProfile(ctx, registered.ID, ProfileInput{
		FirstName:          "Alice",
		LastName:           "Jones",
		Email:              "alice.jones@example.com",
		Company:            "Acme",
		EmailNotifications: false,
		MarketingEmails:    true,
	})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.LastName != "Jones" || updated.Email != "alice.jones@example.com" {
		t.Errorf("profile fields not applied: %+v", updated)
	}
	if updated.Prefs.EmailNotifications || !updated.Prefs.MarketingEmails {
		t.Errorf("notification prefs not applied: %+v", updated.Prefs)
	}

	// Role and username are not profile fields.
	stored, _ := users.GetByID(ctx, registered.ID)
	if stored.Role != domain.RoleCustomer || stored.Username != "alice" {
		t.Errorf("update must not touch role or username: %+v", stored)
	}

	_, err = service.UpdateProfile(ctx, 404, ProfileInput{})
	wantDomainCode(t, err, "NOT_FOUND")
}
