package service

import (
	"context"
	"log/slog"

	"github.com/avdeev/daybook/core/logger"
	"github.com/avdeev/daybook/internal/models"
	"github.com/avdeev/daybook/internal/storage"
)

// Notes handles note records.
type Notes struct {
	store storage.Storage
}

// NewNotes builds the note service.
func NewNotes(store storage.Storage) *Notes {
	return &Notes{store: store}
}

// Add commits a note and returns its id. Timestamps are set by the store.
func (n *Notes) Add(ctx context.Context, chatID int64, content string) (int64, error) {
	id, err := n.store.AddNote(ctx, models.Note{ChatID: chatID, Content: content})
	if err != nil {
		logger.SVCNotes.ErrorContext(ctx, "note.add.fail",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		return 0, err
	}
	logger.SVCNotes.InfoContext(ctx, "note.add",
		slog.Int64("chat_id", chatID),
		slog.Int64("note_id", id),
	)
	return id, nil
}

// List returns the user's notes in insertion order.
func (n *Notes) List(ctx context.Context, chatID int64) ([]models.Note, error) {
	return n.store.ListNotes(ctx, chatID)
}

// Delete removes the user's note, ErrNotFound when missing or foreign.
func (n *Notes) Delete(ctx context.Context, chatID, noteID int64) error {
	err := n.store.DeleteNote(ctx, chatID, noteID)
	if err != nil {
		if storage.IsNotFound(err) {
			logger.SVCNotes.InfoContext(ctx, "note.delete.miss",
				slog.Int64("chat_id", chatID),
				slog.Int64("note_id", noteID),
			)
		} else {
			logger.SVCNotes.ErrorContext(ctx, "note.delete.fail",
				slog.Int64("chat_id", chatID),
				slog.Int64("note_id", noteID),
				slog.String("err", err.Error()),
			)
		}
		return err
	}
	logger.SVCNotes.InfoContext(ctx, "note.delete",
		slog.Int64("chat_id", chatID),
		slog.Int64("note_id", noteID),
	)
	return nil
}
