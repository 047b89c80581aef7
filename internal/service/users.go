// Package service wraps storage with the application-level operations and
// their logging.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/avdeev/daybook/core/logger"
	"github.com/avdeev/daybook/internal/storage"
)

// Users handles registration.
type Users struct {
	store storage.Storage
}

// NewUsers builds the user service.
func NewUsers(store storage.Storage) *Users {
	return &Users{store: store}
}

// Register creates the user on first contact. created=false means the user
// was already registered.
func (u *Users) Register(ctx context.Context, chatID int64, username string) (bool, error) {
	username = strings.TrimSpace(username)
	created, err := u.store.RegisterUser(ctx, chatID, username)
	if err != nil {
		logger.SVCUsers.ErrorContext(ctx, "user.register.fail",
			slog.Int64("chat_id", chatID),
			slog.String("err", err.Error()),
		)
		return false, err
	}
	logger.SVCUsers.InfoContext(ctx, "user.register",
		slog.Int64("chat_id", chatID),
		slog.String("username", logger.Sanitize(username)),
		slog.Bool("created", created),
	)
	return created, nil
}

// Stats returns table totals for the admin command.
func (u *Users) Stats(ctx context.Context) (storage.Counts, error) {
	return u.store.Counts(ctx)
}
