package domain

import "time"

// Comment is an append-only remark on a ticket. Comments are never edited
// or deleted individually; they go away only when their ticket is deleted.
type Comment struct {
	ID           int64
	TicketID     int64
	AuthorID     int64
	Body         string
	IsInternal   bool
	IsResolution bool
	CreatedAt    time.Time
}
