package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
)

// ViewCache holds the most recently rendered ticket and category lists.
// It is a best-effort, possibly-stale copy of the store: never consulted
// for access-control decisions, always fully replaced rather than patched.
//
// Every mutating operation bumps the generation counter. A fetch records
// the generation it started from; when it completes, the snapshot is only
// accepted if no newer snapshot landed in the meantime, and it is served
// only while no mutation has happened since. Concurrent refreshes thus
// cannot clobber newer data with older data.
type ViewCache struct {
	store Store
}

// NewViewCache wraps a snapshot store.
func NewViewCache(store Store) *ViewCache {
	return &ViewCache{store: store}
}

// Begin returns the generation a refetch is about to read against.
func (c *ViewCache) Begin(ctx context.Context) (int64, error) {
	return c.store.Generation(ctx)
}

// Invalidate marks all cached views stale. Called after every mutation.
func (c *ViewCache) Invalidate(ctx context.Context) error {
	_, err := c.store.BumpGeneration(ctx)
	return err
}

// PutTickets stores a ticket-list snapshot fetched at the given generation.
// Returns false when the snapshot was dropped as superseded.
func (c *ViewCache) PutTickets(ctx context.Context, viewKey string, generation int64, tickets []domain.Ticket) (bool, error) {
	data, err := json.Marshal(tickets)
	if err != nil {
		return false, err
	}
	return c.store.PutSnapshot(ctx, "tickets:"+viewKey, generation, data)
}

// GetTickets returns the cached ticket list for the view, reporting a miss
// when nothing is cached or a mutation has invalidated the snapshot.
func (c *ViewCache) GetTickets(ctx context.Context, viewKey string) ([]domain.Ticket, bool, error) {
	data, generation, err := c.store.GetSnapshot(ctx, "tickets:"+viewKey)
	if err != nil || data == nil {
		return nil, false, err
	}
	current, err := c.store.Generation(ctx)
	if err != nil {
		return nil, false, err
	}
	if generation < current {
		return nil, false, nil
	}
	var tickets []domain.Ticket
	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, false, err
	}
	return tickets, true, nil
}

// PutCategories stores the active category list.
func (c *ViewCache) PutCategories(ctx context.Context, generation int64, categories []domain.Category) (bool, error) {
	data, err := json.Marshal(categories)
	if err != nil {
		return false, err
	}
	return c.store.PutSnapshot(ctx, "categories", generation, data)
}

// GetCategories returns the cached category list.
func (c *ViewCache) GetCategories(ctx context.Context) ([]domain.Category, bool, error) {
	data, _, err := c.store.GetSnapshot(ctx, "categories")
	if err != nil || data == nil {
		return nil, false, err
	}
	var categories []domain.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, false, err
	}
	return categories, true, nil
}

// UserViewKey names the per-actor ticket view: customers get their own
// slice, staff and admins share the all-tickets view.
func UserViewKey(role domain.Role, userID int64) string {
	if role.IsStaffLevel() {
		return "all"
	}
	return fmt.Sprintf("user:%d", userID)
}
