package domain

import "testing"

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to TicketStatus }{
		{TicketStatusOpen, TicketStatusPending},
		{TicketStatusOpen, TicketStatusResolved},
		{TicketStatusPending, TicketStatusOpen},
		{TicketStatusPending, TicketStatusResolved},
		{TicketStatusResolved, TicketStatusClosed},
		{TicketStatusResolved, TicketStatusOpen},
		{TicketStatusClosed, TicketStatusOpen},
	}
	for _, tr := range allowed {
		if !CanTransition(tr.from, tr.to) {
			t.Errorf("%s -> %s should be allowed", tr.from, tr.to)
		}
	}

	denied := []struct{ from, to TicketStatus }{
		{TicketStatusOpen, TicketStatusClosed},
		{TicketStatusPending, TicketStatusClosed},
		{TicketStatusClosed, TicketStatusResolved},
		{TicketStatusClosed, TicketStatusPending},
		{TicketStatusResolved, TicketStatusPending},
		{TicketStatusOpen, TicketStatusOpen},
		{TicketStatusOpen, TicketStatus("Cancelled")},
		{TicketStatusOpen, TicketStatus("")},
	}
	for _, tr := range denied {
		if CanTransition(tr.from, tr.to) {
			t.Errorf("%s -> %q should be rejected", tr.from, tr.to)
		}
	}
}

func TestTicketNumber(t *testing.T) {
	tests := []struct {
		id   int64
		want string
	}{
		{1, "TKT-000001"},
		{42, "TKT-000042"},
		{999999, "TKT-999999"},
		{1234567, "TKT-1234567"},
	}
	for _, tt := range tests {
		ticket := &Ticket{ID: tt.id}
		if got := ticket.Number(); got != tt.want {
			t.Errorf("Number(%d) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestStatusAndPriorityValidity(t *testing.T) {
	for _, status := range []TicketStatus{TicketStatusOpen, TicketStatusPending, TicketStatusResolved, TicketStatusClosed} {
		if !status.Valid() {
			t.Errorf("%s should be valid", status)
		}
	}
	if TicketStatus("Deleted").Valid() || TicketStatus("open").Valid() {
		t.Error("unknown statuses must be invalid")
	}

	for _, priority := range []TicketPriority{TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical} {
		if !priority.Valid() {
			t.Errorf("%s should be valid", priority)
		}
	}
	if TicketPriority("Urgent").Valid() {
		t.Error("Urgent is not a known priority")
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		first, last, want string
	}{
		{"Alice", "Smith", "Alice Smith"},
		{"Alice", "", "Alice"},
		{"", "Smith", "Smith"},
	}
	for _, tt := range tests {
		user := &User{FirstName: tt.first, LastName: tt.last}
		if got := user.DisplayName(); got != tt.want {
			t.Errorf("DisplayName(%q, %q) = %q, want %q", tt.first, tt.last, got, tt.want)
		}
	}
}
