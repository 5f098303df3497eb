package domain

// Category groups tickets and knowledge-base articles. Categories are seed
// data managed outside this service; only active ones are served.
type Category struct {
	ID          int64
	Name        string
	Description string
	IsActive    bool
}
