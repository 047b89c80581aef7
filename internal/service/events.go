package service

import (
	"context"
	"log/slog"

	"github.com/avdeev/daybook/core/logger"
	"github.com/avdeev/daybook/internal/models"
	"github.com/avdeev/daybook/internal/storage"
)

// Events handles event records. Field validation happens in the conversation
// flow; the service assumes a complete record.
type Events struct {
	store storage.Storage
}

// NewEvents builds the event service.
func NewEvents(store storage.Storage) *Events {
	return &Events{store: store}
}

// Add commits a completed event and returns its id.
func (e *Events) Add(ctx context.Context, event models.Event) (int64, error) {
	id, err := e.store.AddEvent(ctx, event)
	if err != nil {
		logger.SVCEvents.ErrorContext(ctx, "event.add.fail",
			slog.Int64("chat_id", event.ChatID),
			slog.String("err", err.Error()),
		)
		return 0, err
	}
	logger.SVCEvents.InfoContext(ctx, "event.add",
		slog.Int64("chat_id", event.ChatID),
		slog.Int64("event_id", id),
		slog.String("date", event.Date),
		slog.String("type", string(event.Type)),
	)
	return id, nil
}

// List returns the user's events in insertion order.
func (e *Events) List(ctx context.Context, chatID int64) ([]models.Event, error) {
	return e.store.ListEvents(ctx, chatID)
}

// Delete removes the user's event. storage.ErrNotFound covers both a missing
// record and one owned by someone else.
func (e *Events) Delete(ctx context.Context, chatID, eventID int64) error {
	err := e.store.DeleteEvent(ctx, chatID, eventID)
	if err != nil {
		if storage.IsNotFound(err) {
			logger.SVCEvents.InfoContext(ctx, "event.delete.miss",
				slog.Int64("chat_id", chatID),
				slog.Int64("event_id", eventID),
			)
		} else {
			logger.SVCEvents.ErrorContext(ctx, "event.delete.fail",
				slog.Int64("chat_id", chatID),
				slog.Int64("event_id", eventID),
				slog.String("err", err.Error()),
			)
		}
		return err
	}
	logger.SVCEvents.InfoContext(ctx, "event.delete",
		slog.Int64("chat_id", chatID),
		slog.Int64("event_id", eventID),
	)
	return nil
}

// ListOn returns all users' events dated exactly date (DD-MM-YYYY).
func (e *Events) ListOn(ctx context.Context, date string) ([]models.Event, error) {
	return e.store.ListEventsOn(ctx, date)
}
