package domain

// Access policy: pure decisions over (actor role, actor id, ticket
// snapshot). Unknown or missing roles fail closed. Callers must pass a
// ticket loaded from the store, never client-supplied fields.

// CanView reports whether the actor may read the ticket.
func CanView(role Role, actorID int64, ticket *Ticket) bool {
	if ticket == nil {
		return false
	}
	switch role {
	case RoleAdmin, RoleStaff:
		return true
	case RoleCustomer:
		return ticket.CustomerID == actorID
	}
	return false
}

// CanEdit reports whether the actor may change ticket status. Customers
// never can, regardless of ownership.
func CanEdit(role Role, actorID int64, ticket *Ticket) bool {
	if ticket == nil {
		return false
	}
	return role == RoleAdmin || role == RoleStaff
}

// CanComment reports whether the actor may append a comment.
func CanComment(role Role, actorID int64, ticket *Ticket) bool {
	return CanView(role, actorID, ticket)
}

// CanDelete reports whether the actor may delete the ticket. Staff and
// admins may delete anything; a customer may delete their own ticket only
// while it is still Open or Pending.
func CanDelete(role Role, actorID int64, ticket *Ticket) bool {
	if ticket == nil {
		return false
	}
	switch role {
	case RoleAdmin, RoleStaff:
		return true
	case RoleCustomer:
		if ticket.CustomerID != actorID {
			return false
		}
		return ticket.Status != TicketStatusResolved && ticket.Status != TicketStatusClosed
	}
	return false
}
