package service

import (
	"context"
	"sync/atomic"

	"github.com/helpdesk-pro/helpdesk-service/internal/config"
	"github.com/helpdesk-pro/helpdesk-service/internal/repository"
	apperrors "github.com/helpdesk-pro/helpdesk-service/pkg/util"
)

// AssignmentService picks an assignee for newly created tickets according
// to the configured policy. The original application drew a random staff id
// from a fixed pool; the policy here is deterministic and overridable.
type AssignmentService struct {
	users  repository.UserRepository
	policy config.AssignmentPolicy
	cursor atomic.Int64
}

// NewAssignmentService creates the service.
func NewAssignmentService(users repository.UserRepository, policy config.AssignmentPolicy) *AssignmentService {
	return &AssignmentService{users: users, policy: policy}
}

// Pick returns the staff id to assign, or nil when the policy leaves the
// ticket unassigned (including when no active staff exist).
func (s *AssignmentService) Pick(ctx context.Context) (*int64, error) {
	if s.policy == config.AssignNone {
		return nil, nil
	}

	staff, err := s.users.ListActiveStaff(ctx)
	if err != nil {
		return nil, apperrors.NewBackendUnavailable(err)
	}
	if len(staff) == 0 {
		return nil, nil
	}

	// Round-robin over active staff ordered by id.
	index := int((s.cursor.Add(1) - 1) % int64(len(staff)))
	id := staff[index].ID
	return &id, nil
}
