package notes

import (
	"strings"
	"time"
)

// Note is one persisted record in the log. A note is immutable once
// appended; the surrounding application models edits as fresh records in an
// external system, never as mutations of the log.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"titulo,omitempty"`
	Body      string   `json:"texto"`
	Tags      []string `json:"etiquetas"`
	CreatedAt string   `json:"createdAt"`
}

// SearchText returns the text indexed for this note: title, body and tags
// joined by spaces.
func (n Note) SearchText() string {
	parts := make([]string, 0, 2+len(n.Tags))
	if n.Title != "" {
		parts = append(parts, n.Title)
	}
	parts = append(parts, n.Body)
	parts = append(parts, n.Tags...)
	return strings.Join(parts, " ")
}

// Timestamp formats t as the ISO-8601 UTC string stored in createdAt.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
