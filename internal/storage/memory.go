package storage

import (
	"context"
	"sync"
	"time"

	"github.com/avdeev/daybook/internal/models"
)

// MemoryStorage is an in-memory Storage used by tests and local runs without
// a database. Behaviour mirrors the SQL implementation, including insertion
// order and ownership checks.
type MemoryStorage struct {
	mu          sync.Mutex
	users       map[int64]models.User
	events      []models.Event
	notes       []models.Note
	nextEventID int64
	nextNoteID  int64
}

// NewMemory returns an empty in-memory store.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{
		users:       make(map[int64]models.User),
		nextEventID: 1,
		nextNoteID:  1,
	}
}

func (m *MemoryStorage) RegisterUser(_ context.Context, chatID int64, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[chatID]; ok {
		return false, nil
	}
	m.users[chatID] = models.User{ChatID: chatID, Username: username}
	return true, nil
}

func (m *MemoryStorage) AddEvent(_ context.Context, event models.Event) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = m.nextEventID
	m.nextEventID++
	m.events = append(m.events, event)
	return event.ID, nil
}

func (m *MemoryStorage) ListEvents(_ context.Context, chatID int64) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Event
	for _, e := range m.events {
		if e.ChatID == chatID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryStorage) DeleteEvent(_ context.Context, chatID, eventID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.events {
		if e.ID == eventID && e.ChatID == chatID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStorage) ListEventsOn(_ context.Context, date string) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Event
	for _, e := range m.events {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *MemoryStorage) AddNote(_ context.Context, note models.Note) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := models.Timestamp(time.Now())
	if note.CreatedAt == "" {
		note.CreatedAt = now
	}
	if note.UpdatedAt == "" {
		note.UpdatedAt = now
	}
	note.ID = m.nextNoteID
	m.nextNoteID++
	m.notes = append(m.notes, note)
	return note.ID, nil
}

func (m *MemoryStorage) ListNotes(_ context.Context, chatID int64) ([]models.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Note
	for _, n := range m.notes {
		if n.ChatID == chatID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *MemoryStorage) DeleteNote(_ context.Context, chatID, noteID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, n := range m.notes {
		if n.ID == noteID && n.ChatID == chatID {
			m.notes = append(m.notes[:i], m.notes[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryStorage) Counts(_ context.Context) (Counts, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return Counts{
		Users:  int64(len(m.users)),
		Events: int64(len(m.events)),
		Notes:  int64(len(m.notes)),
	}, nil
}
