// Package storage defines the durable store contract for users, events and
// notes, plus its sqlx-backed and in-memory implementations.
package storage

import (
	"context"
	"errors"

	"github.com/avdeev/daybook/internal/models"
)

// ErrNotFound is returned when a record does not exist or is owned by a
// different user. Deletion treats both cases identically.
var ErrNotFound = errors.New("storage: record not found")

// Counts aggregates table totals for the admin stats command.
type Counts struct {
	Users  int64 `db:"users"`
	Events int64 `db:"events"`
	Notes  int64 `db:"notes"`
}

// Storage is the durable mapping from users to their events and notes.
// All write operations are atomic per call. List operations return records
// in insertion order (ascending id).
type Storage interface {
	// RegisterUser creates the user on first contact. A repeat registration
	// reports created=false and is not an error.
	RegisterUser(ctx context.Context, chatID int64, username string) (created bool, err error)

	AddEvent(ctx context.Context, event models.Event) (int64, error)
	ListEvents(ctx context.Context, chatID int64) ([]models.Event, error)
	// DeleteEvent removes the event if it exists and belongs to chatID;
	// otherwise ErrNotFound.
	DeleteEvent(ctx context.Context, chatID, eventID int64) error
	// ListEventsOn returns every user's events dated exactly date (DD-MM-YYYY).
	ListEventsOn(ctx context.Context, date string) ([]models.Event, error)

	AddNote(ctx context.Context, note models.Note) (int64, error)
	ListNotes(ctx context.Context, chatID int64) ([]models.Note, error)
	DeleteNote(ctx context.Context, chatID, noteID int64) error

	Counts(ctx context.Context) (Counts, error)
}
