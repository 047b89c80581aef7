package router

import (
	"log/slog"
	"strings"
	"time"

	"github.com/avdeev/daybook/core/logger"
	tg "github.com/avdeev/daybook/core/telegram"
	"github.com/avdeev/daybook/core/telegram/commands"
	"github.com/avdeev/daybook/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// commandToken extracts the bare "/command" from an inbound text, dropping
// the "@botname" mention and any payload. Returns "" for non-command text.
func commandToken(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	if i := strings.IndexAny(text, " \t\n"); i >= 0 {
		text = text[:i]
	}
	if i := strings.IndexByte(text, '@'); i >= 0 {
		text = text[:i]
	}
	return text
}

// dispatchCommand runs a slash command matched by the text router, applying
// admin gating and summary logging. Commands reach this point only when no
// conversation is in progress for the sender.
func dispatchCommand(c tele.Context, key string, cmd commands.Command, opts TextOptions, start time.Time) error {
	h := cmd.Handler
	if cmd.AdminOnly {
		h = middleware.AdminOnlyMiddleware(middleware.AdminOptions{
			AdminID:  opts.AdminID,
			OnReject: opts.OnAdminReject,
		})(h)
	}
	return handleWithSummary(c, normalizeHandlerName(key), start, "", "", func() error {
		return h(c)
	})
}

func logWiring(reg *tg.Registry) {
	if reg == nil {
		return
	}
	logger.TWire.Info("tg.wire",
		slog.String("event", "complete"),
		slog.Int("commands", len(reg.Commands())),
		slog.Int("callbacks", len(reg.ListCallbacks())),
	)
}
