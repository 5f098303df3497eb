package cache

import (
	"context"
	"testing"

	"github.com/helpdesk-pro/helpdesk-service/internal/domain"
)

func TestViewCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	views := NewViewCache(NewMemoryStore())

	if _, ok, err := views.GetTickets(ctx, "all"); err != nil || ok {
		t.Fatalf("empty cache must miss, got ok=%v err=%v", ok, err)
	}

	generation, err := views.Begin(ctx)
	if err != nil {
		t.Fatal(err)
	}
	tickets := []domain.Ticket{{ID: 1, Subject: "a"}, {ID: 2, Subject: "b"}}
	accepted, err := views.PutTickets(ctx, "all", generation, tickets)
	if err != nil || !accepted {
		t.Fatalf("put: accepted=%v err=%v", accepted, err)
	}

	cached, ok, err := views.GetTickets(ctx, "all")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(cached) != 2 || cached[0].ID != 1 || cached[1].Subject != "b" {
		t.Errorf("cached snapshot mangled: %+v", cached)
	}
}

func TestInvalidateMakesSnapshotStale(t *testing.T) {
	ctx := context.Background()
	views := NewViewCache(NewMemoryStore())

	generation, _ := views.Begin(ctx)
	if _, err := views.PutTickets(ctx, "all", generation, []domain.Ticket{{ID: 1}}); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := views.GetTickets(ctx, "all"); !ok {
		t.Fatal("snapshot should be served before invalidation")
	}

	if err := views.Invalidate(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := views.GetTickets(ctx, "all"); ok {
		t.Error("snapshot must not be served after a mutation")
	}
}

// Two overlapping refreshes: the one that started later completes first.
// The slower, older snapshot must be dropped rather than clobbering it.
func TestLastCompletedFetchWins(t *testing.T) {
	ctx := context.Background()
	views := NewViewCache(NewMemoryStore())

	oldGen, _ := views.Begin(ctx)
	_ = views.Invalidate(ctx)
	newGen, _ := views.Begin(ctx)

	accepted, err := views.PutTickets(ctx, "all", newGen, []domain.Ticket{{ID: 2, Subject: "fresh"}})
	if err != nil || !accepted {
		t.Fatalf("newer put: accepted=%v err=%v", accepted, err)
	}
	accepted, err = views.PutTickets(ctx, "all", oldGen, []domain.Ticket{{ID: 1, Subject: "stale"}})
	if err != nil {
		t.Fatal(err)
	}
	if accepted {
		t.Error("older snapshot must be dropped")
	}

	cached, ok, err := views.GetTickets(ctx, "all")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(cached) != 1 || cached[0].Subject != "fresh" {
		t.Errorf("served snapshot = %+v, want the fresh one", cached)
	}
}

func TestCategorySnapshots(t *testing.T) {
	ctx := context.Background()
	views := NewViewCache(NewMemoryStore())

	if _, ok, _ := views.GetCategories(ctx); ok {
		t.Fatal("empty cache must miss")
	}

	generation, _ := views.Begin(ctx)
	categories := []domain.Category{{ID: 1, Name: "Hardware"}, {ID: 2, Name: "Software"}}
	if _, err := views.PutCategories(ctx, generation, categories); err != nil {
		t.Fatal(err)
	}

	cached, ok, err := views.GetCategories(ctx)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(cached) != 2 || cached[1].Name != "Software" {
		t.Errorf("cached categories = %+v", cached)
	}
}

func TestUserViewKey(t *testing.T) {
	tests := []struct {
		role domain.Role
		id   int64
		want string
	}{
		{domain.RoleCustomer, 10, "user:10"},
		{domain.RoleStaff, 2, "all"},
		{domain.RoleAdmin, 1, "all"},
		{domain.Role("Unknown"), 5, "user:5"},
	}
	for _, tt := range tests {
		if got := UserViewKey(tt.role, tt.id); got != tt.want {
			t.Errorf("UserViewKey(%s, %d) = %q, want %q", tt.role, tt.id, got, tt.want)
		}
	}
}

func TestMemoryStorePutSameGeneration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if ok, _ := store.PutSnapshot(ctx, "k", 3, []byte("first")); !ok {
		t.Fatal("initial put must be accepted")
	}
	// Same generation overwrites: a re-fetch at the same generation is newer
	// in wall-clock terms even if the counter did not move.
	if ok, _ := store.PutSnapshot(ctx, "k", 3, []byte("second")); !ok {
		t.Fatal("same-generation put must be accepted")
	}
	data, generation, _ := store.GetSnapshot(ctx, "k")
	if string(data) != "second" || generation != 3 {
		t.Errorf("got %q gen %d", data, generation)
	}
}
