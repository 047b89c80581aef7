package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/avdeev/daybook/core/logger"
	"github.com/avdeev/daybook/internal/models"
)

// SQLStorage implements Storage on top of sqlx. Queries are written with "?"
// placeholders and rebound to the driver's dialect.
type SQLStorage struct {
	db *sqlx.DB
}

// NewSQL wraps an already connected database handle.
func NewSQL(db *sqlx.DB) *SQLStorage {
	return &SQLStorage{db: db}
}

func (s *SQLStorage) RegisterUser(ctx context.Context, chatID int64, username string) (bool, error) {
	// A conflicting insert is the expected signal for a repeat registration.
	query := s.db.Rebind(
		`INSERT INTO users (chat_id, username) VALUES (?, ?) ON CONFLICT (chat_id) DO NOTHING`)
	res, err := s.db.ExecContext(ctx, query, chatID, username)
	if err != nil {
		return false, fmt.Errorf("register user %d: %w", chatID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("register user %d: %w", chatID, err)
	}
	created := affected > 0
	logger.DB.DebugContext(ctx, "user.register",
		slog.Int64("chat_id", chatID),
		slog.Bool("created", created),
	)
	return created, nil
}

func (s *SQLStorage) AddEvent(ctx context.Context, event models.Event) (int64, error) {
	id, err := s.insertReturningID(ctx,
		`INSERT INTO events (chat_id, title, date, type, tags) VALUES (?, ?, ?, ?, ?)`,
		"event_id",
		event.ChatID, event.Title, event.Date, string(event.Type), event.Tags)
	if err != nil {
		return 0, fmt.Errorf("add event for %d: %w", event.ChatID, err)
	}
	return id, nil
}

func (s *SQLStorage) ListEvents(ctx context.Context, chatID int64) ([]models.Event, error) {
	var out []models.Event
	query := s.db.Rebind(
		`SELECT event_id, chat_id, title, date, type, tags FROM events WHERE chat_id = ? ORDER BY event_id`)
	if err := s.db.SelectContext(ctx, &out, query, chatID); err != nil {
		return nil, fmt.Errorf("list events for %d: %w", chatID, err)
	}
	return out, nil
}

func (s *SQLStorage) DeleteEvent(ctx context.Context, chatID, eventID int64) error {
	return s.deleteOwned(ctx,
		`DELETE FROM events WHERE event_id = ? AND chat_id = ?`,
		eventID, chatID)
}

func (s *SQLStorage) ListEventsOn(ctx context.Context, date string) ([]models.Event, error) {
	var out []models.Event
	query := s.db.Rebind(
		`SELECT event_id, chat_id, title, date, type, tags FROM events WHERE date = ? ORDER BY event_id`)
	if err := s.db.SelectContext(ctx, &out, query, date); err != nil {
		return nil, fmt.Errorf("list events on %s: %w", date, err)
	}
	return out, nil
}

func (s *SQLStorage) AddNote(ctx context.Context, note models.Note) (int64, error) {
	now := models.Timestamp(time.Now())
	if note.CreatedAt == "" {
		note.CreatedAt = now
	}
	if note.UpdatedAt == "" {
		note.UpdatedAt = now
	}
	id, err := s.insertReturningID(ctx,
		`INSERT INTO notes (chat_id, content, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		"note_id",
		note.ChatID, note.Content, note.CreatedAt, note.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("add note for %d: %w", note.ChatID, err)
	}
	return id, nil
}

func (s *SQLStorage) ListNotes(ctx context.Context, chatID int64) ([]models.Note, error) {
	var out []models.Note
	query := s.db.Rebind(
		`SELECT note_id, chat_id, content, created_at, updated_at FROM notes WHERE chat_id = ? ORDER BY note_id`)
	if err := s.db.SelectContext(ctx, &out, query, chatID); err != nil {
		return nil, fmt.Errorf("list notes for %d: %w", chatID, err)
	}
	return out, nil
}

func (s *SQLStorage) DeleteNote(ctx context.Context, chatID, noteID int64) error {
	return s.deleteOwned(ctx,
		`DELETE FROM notes WHERE note_id = ? AND chat_id = ?`,
		noteID, chatID)
}

func (s *SQLStorage) Counts(ctx context.Context) (Counts, error) {
	var c Counts
	query := `SELECT
		(SELECT COUNT(*) FROM users)  AS users,
		(SELECT COUNT(*) FROM events) AS events,
		(SELECT COUNT(*) FROM notes)  AS notes`
	if err := s.db.GetContext(ctx, &c, query); err != nil {
		return Counts{}, fmt.Errorf("counts: %w", err)
	}
	return c, nil
}

// insertReturningID handles the dialect split on id retrieval: postgres
// needs RETURNING, sqlite reports LastInsertId.
func (s *SQLStorage) insertReturningID(ctx context.Context, query, idColumn string, args ...any) (int64, error) {
	if s.db.DriverName() == "postgres" {
		var id int64
		q := s.db.Rebind(query + " RETURNING " + idColumn)
		if err := s.db.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *SQLStorage) deleteOwned(ctx context.Context, query string, id, chatID int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), id, chatID)
	if err != nil {
		return fmt.Errorf("delete record %d for %d: %w", id, chatID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete record %d for %d: %w", id, chatID, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// IsNotFound reports whether err denotes a missing record from either the
// sentinel or a bare sql.ErrNoRows.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}
