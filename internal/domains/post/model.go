package post

import (
	"fmt"
	"time"
)

// Post is a blog post. It has no relationship to Author.
type Post struct {
	ID int64 `json:"id" db:"id"`

	Title   string `json:"title" db:"title"`     // must contain a TitleMarkers phrase
	Content string `json:"content" db:"content"` // at least MinContentLength characters

	Summary  *string `json:"summary" db:"summary"`   // optional, at most MaxSummaryLength characters
	Category *string `json:"category" db:"category"` // optional, Fiction or Non-Fiction

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Post) String() string {
	return fmt.Sprintf("<Post %s>", p.Title)
}
