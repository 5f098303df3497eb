package domain

import (
	"fmt"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "Open"
	TicketStatusPending  TicketStatus = "Pending"
	TicketStatusResolved TicketStatus = "Resolved"
	TicketStatusClosed   TicketStatus = "Closed"
)

// Valid reports whether the status is a known lifecycle state.
func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusPending, TicketStatusResolved, TicketStatusClosed:
		return true
	}
	return false
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "Low"
	TicketPriorityMedium   TicketPriority = "Medium"
	TicketPriorityHigh     TicketPriority = "High"
	TicketPriorityCritical TicketPriority = "Critical"
)

// Valid reports whether the priority is known.
func (p TicketPriority) Valid() bool {
	switch p {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh, TicketPriorityCritical:
		return true
	}
	return false
}

// Ticket is the aggregate for support requests. CustomerID is the owning
// customer, set at creation and never changed afterwards.
type Ticket struct {
	ID              int64
	Subject         string
	Description     string
	CategoryID      int64
	Priority        TicketPriority
	Status          TicketStatus
	CustomerID      int64
	AssignedToID    *int64
	ResolutionNotes *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Number returns the zero-padded display number derived from the id.
func (t *Ticket) Number() string {
	return fmt.Sprintf("TKT-%06d", t.ID)
}

// allowedTransitions encodes the lifecycle graph: Open and Pending flow
// forward to Resolved, Resolved flows to Closed, and every state can be
// reopened.
var allowedTransitions = map[TicketStatus][]TicketStatus{
	TicketStatusOpen:     {TicketStatusPending, TicketStatusResolved},
	TicketStatusPending:  {TicketStatusOpen, TicketStatusResolved},
	TicketStatusResolved: {TicketStatusClosed, TicketStatusOpen},
	TicketStatusClosed:   {TicketStatusOpen},
}

// CanTransition reports whether moving from current to next is a legal
// lifecycle edge. Targets outside the known status set are never legal.
func CanTransition(current, next TicketStatus) bool {
	if !next.Valid() {
		return false
	}
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}
