package bot

import (
	tg "github.com/avdeev/daybook/core/telegram"
	"github.com/avdeev/daybook/core/telegram/commands"
	"github.com/avdeev/daybook/core/telegram/router"
)

// Callback uniques. Inline delete buttons carry {kind, id} as
// "\f<unique>|<id>" on the wire.
const (
	cbDeleteEvent = "delete_event"
	cbDeleteNote  = "delete_note"
)

// BuildRegistry registers commands, menu labels and callbacks.
func (b *Bot) BuildRegistry() *tg.Registry {
	reg := tg.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     b.handleStart,
		Description: "Регистрация и главное меню",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     b.handleHelp,
		Description: "Справка",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     b.handleStats,
		Description: "Статистика бота",
		AdminOnly:   true,
		Hidden:      true,
	})

	reg.RegisterText(btnEvents, b.handleEventsMenu)
	reg.RegisterText(btnNotes, b.handleNotesMenu)
	reg.RegisterText(btnBack, b.handleBack)
	reg.RegisterText(btnAddEvent, b.handleAddEvent)
	reg.RegisterText(btnViewEvent, b.handleViewEvents)
	reg.RegisterText(btnAddNote, b.handleAddNote)
	reg.RegisterText(btnViewNote, b.handleViewNotes)

	_ = reg.RegisterCallback(cbDeleteEvent, b.handleDeleteEvent)
	_ = reg.RegisterCallback(cbDeleteNote, b.handleDeleteNote)

	return reg
}

// Routes assembles the text and callback routes. Slash commands go through
// the text route so a pending conversation consumes them as step input;
// unmatched text with no pending conversation is a deliberate no-op.
func (b *Bot) Routes(reg *tg.Registry, adminID int64) []tg.Route {
	return []tg.Route{
		router.TextRoute(reg, router.TextOptions{
			Flows:       b.engine,
			FlowHandler: b.handleFlow,
			AdminID:     adminID,
		}),
		router.CallbackRoute(reg, router.CallbackOptions{}),
	}
}
