package router

import (
	"time"

	tg "github.com/avdeev/daybook/core/telegram"

	tele "gopkg.in/telebot.v4"
)

// FlowGate reports whether a user has a conversation step pending. While a
// flow is in progress every inbound text belongs to it, slash commands
// included: a pending step consumes "/start" as field input rather than
// re-running registration.
type FlowGate interface {
	InProgress(userID int64) bool
}

// TextOptions controls routing of plain text updates.
type TextOptions struct {
	// Flows intercepts text while a conversation is in progress.
	Flows FlowGate
	// FlowHandler receives the text update when Flows reports progress.
	FlowHandler tele.HandlerFunc
	// AdminID gates AdminOnly commands; zero disables the check.
	AdminID       int64
	OnAdminReject tele.HandlerFunc
	// UnknownText runs when nothing matched. Nil means silently ignore.
	UnknownText tele.HandlerFunc
}

// conversationID keys the flow gate. The chat id is the session owner for
// private-chat bots; the sender is the fallback for chat-less updates.
func conversationID(c tele.Context) int64 {
	if ch := c.Chat(); ch != nil {
		return ch.ID
	}
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}

// TextRoute builds the handler for tele.OnText. Routing order: active
// conversation flow, slash command, exact menu label, registry fallback.
// Commands are dispatched here, not as dedicated endpoints, so the flow
// gate applies to them too.
func TextRoute(reg *tg.Registry, opts TextOptions) tg.Route {
	logWiring(reg)

	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if opts.Flows != nil && opts.FlowHandler != nil && opts.Flows.InProgress(conversationID(c)) {
			return handleWithSummary(c, "flow", start, "", "", func() error {
				return opts.FlowHandler(c)
			})
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(commandToken(text)); ok && cmd.Handler != nil {
				return dispatchCommand(c, key, cmd, opts, start)
			}
			if h, ok := reg.LookupText(text); ok && h != nil {
				name := "menu." + normalizeHandlerName(text)
				return handleWithSummary(c, name, start, "", "", func() error {
					return h(c)
				})
			}
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	return tg.Route{
		Endpoint: tele.OnText,
		Handler:  handler,
	}
}
