package domain

import "time"

// Article is a knowledge-base entry searchable by customers.
type Article struct {
	ID         int64
	Title      string
	Body       string
	CategoryID int64
	ViewCount  int64
	CreatedAt  time.Time
}
