package domain

import "testing"

func ticketWith(owner int64, status TicketStatus) *Ticket {
	return &Ticket{ID: 1, CustomerID: owner, Status: status}
}

func TestCanDeleteMatrix(t *testing.T) {
	const owner, stranger = int64(10), int64(99)

	statuses := []TicketStatus{TicketStatusOpen, TicketStatusPending, TicketStatusResolved, TicketStatusClosed}

	for _, status := range statuses {
		ticket := ticketWith(owner, status)

		// Staff and admin may delete regardless of status or ownership.
		for _, role := range []Role{RoleStaff, RoleAdmin} {
			if !CanDelete(role, stranger, ticket) {
				t.Errorf("%s should delete ticket in %s", role, status)
			}
		}

		// Owning customer may delete only before resolution.
		wantOwner := status != TicketStatusResolved && status != TicketStatusClosed
		if got := CanDelete(RoleCustomer, owner, ticket); got != wantOwner {
			t.Errorf("owner delete in %s: got %v, want %v", status, got, wantOwner)
		}

		// Non-owning customer never deletes.
		if CanDelete(RoleCustomer, stranger, ticket) {
			t.Errorf("non-owner customer deleted ticket in %s", status)
		}

		// Unknown role fails closed.
		if CanDelete(Role("Manager"), owner, ticket) || CanDelete(Role(""), owner, ticket) {
			t.Errorf("unknown role deleted ticket in %s", status)
		}
	}
}

func TestCanViewAndComment(t *testing.T) {
	ticket := ticketWith(10, TicketStatusOpen)

	tests := []struct {
		name    string
		role    Role
		actorID int64
		want    bool
	}{
		{"admin any ticket", RoleAdmin, 1, true},
		{"staff any ticket", RoleStaff, 2, true},
		{"customer own ticket", RoleCustomer, 10, true},
		{"customer foreign ticket", RoleCustomer, 11, false},
		{"unknown role", Role("Guest"), 10, false},
		{"empty role", Role(""), 10, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanView(tt.role, tt.actorID, ticket); got != tt.want {
				t.Errorf("CanView = %v, want %v", got, tt.want)
			}
			if got := CanComment(tt.role, tt.actorID, ticket); got != tt.want {
				t.Errorf("CanComment = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanEditCustomerAlwaysFalse(t *testing.T) {
	own := ticketWith(10, TicketStatusOpen)
	if CanEdit(RoleCustomer, 10, own) {
		t.Error("customer must not edit their own ticket status")
	}
	if !CanEdit(RoleStaff, 2, own) || !CanEdit(RoleAdmin, 1, own) {
		t.Error("staff and admin must be able to edit")
	}
	if CanEdit(Role("Unknown"), 1, own) {
		t.Error("unknown role must fail closed")
	}
}

func TestPolicyNilTicket(t *testing.T) {
	if CanView(RoleAdmin, 1, nil) || CanEdit(RoleAdmin, 1, nil) ||
		CanDelete(RoleAdmin, 1, nil) || CanComment(RoleAdmin, 1, nil) {
		t.Error("nil ticket must deny everything")
	}
}
