package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
)

func TestToDomainErrorPassesThrough(t *testing.T) {
	original := NewForbidden("no")
	mapped := ToDomainError(fmt.Errorf("wrapped: %w", original))
	if mapped.Code != "FORBIDDEN" || mapped.HTTPStatus != http.StatusForbidden {
		t.Errorf("got %s/%d", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainErrorMapsNoRows(t *testing.T) {
	mapped := ToDomainError(fmt.Errorf("query: %w", pgx.ErrNoRows))
	if mapped.Code != "NOT_FOUND" || mapped.HTTPStatus != http.StatusNotFound {
		t.Errorf("got %s/%d", mapped.Code, mapped.HTTPStatus)
	}
}

func TestToDomainErrorDefaultsToBackendUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	mapped := ToDomainError(cause)
	if mapped.Code != "BACKEND_UNAVAILABLE" || mapped.HTTPStatus != http.StatusInternalServerError {
		t.Errorf("got %s/%d", mapped.Code, mapped.HTTPStatus)
	}
	if !errors.Is(mapped, cause) {
		t.Error("cause must stay reachable through Unwrap")
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if ToDomainError(nil) != nil {
		t.Error("nil must map to nil")
	}
}

func TestTaxonomyStatuses(t *testing.T) {
	tests := []struct {
		err    error
		code   string
		status int
	}{
		{NewInvalidCredentials(), "INVALID_CREDENTIALS", http.StatusUnauthorized},
		{NewDuplicateIdentity("taken"), "DUPLICATE_IDENTITY", http.StatusBadRequest},
		{NewNotFound("ticket", nil), "NOT_FOUND", http.StatusNotFound},
		{NewInvalidStatus("bad edge"), "INVALID_STATUS", http.StatusBadRequest},
		{NewEmptyBody(), "EMPTY_BODY", http.StatusBadRequest},
		{NewForbidden("no"), "FORBIDDEN", http.StatusForbidden},
		{NewValidationError("bad", nil), "VALIDATION_FAILED", http.StatusBadRequest},
	}
	for _, tt := range tests {
		var domainErr *DomainError
		if !errors.As(tt.err, &domainErr) {
			t.Fatalf("%v is not a DomainError", tt.err)
		}
		if domainErr.Code != tt.code || domainErr.HTTPStatus != tt.status {
			t.Errorf("%s: got %s/%d, want %s/%d", tt.code, domainErr.Code, domainErr.HTTPStatus, tt.code, tt.status)
		}
	}
}
