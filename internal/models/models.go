// Package models holds the persisted record types and the closed event
// category enumeration.
package models

// User is a registered chat user. Created on first /start, never deleted.
type User struct {
	ChatID   int64  `db:"chat_id"`
	Username string `db:"username"`
}

// Event is a dated record owned by a single user. Events are created only
// through the completed four-step conversation and are never updated in place.
type Event struct {
	ID     int64    `db:"event_id"`
	ChatID int64    `db:"chat_id"`
	Title  string   `db:"title"`
	Date   string   `db:"date"` // DD-MM-YYYY, stored verbatim
	Type   Category `db:"type"`
	Tags   string   `db:"tags"`
}

// Note is a free-text record owned by a single user. Both timestamps are set
// at creation; update-in-place is not exposed.
type Note struct {
	ID        int64  `db:"note_id"`
	ChatID    int64  `db:"chat_id"`
	Content   string `db:"content"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}
