// Package bot is the presentation layer: it renders menus and listings,
// wires commands, menu labels and delete callbacks into the registry, and
// feeds inbound text into the conversation engine.
package bot

import (
	"errors"
	"fmt"

	"github.com/avdeev/daybook/core/telegram/callbacks"
	tghelpers "github.com/avdeev/daybook/core/telegram/helpers"
	"github.com/avdeev/daybook/core/telegram/keyboard"
	"github.com/avdeev/daybook/internal/flow"
	"github.com/avdeev/daybook/internal/service"
	"github.com/avdeev/daybook/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// Bot glues services and the conversation engine to Telegram handlers.
// It is built for private chats: the chat id doubles as the user id.
type Bot struct {
	users  *service.Users
	events *service.Events
	notes  *service.Notes
	engine *flow.Engine
}

// New assembles the handler set.
func New(users *service.Users, events *service.Events, notes *service.Notes, engine *flow.Engine) *Bot {
	return &Bot{users: users, events: events, notes: notes, engine: engine}
}

// Engine exposes the conversation engine for router wiring.
func (b *Bot) Engine() *flow.Engine {
	return b.engine
}

func chatID(c tele.Context) int64 {
	if ch := c.Chat(); ch != nil {
		return ch.ID
	}
	return c.Sender().ID
}

func (b *Bot) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	user := c.Sender()
	username := user.Username
	if username == "" {
		username = user.FirstName
	}

	created, err := b.users.Register(ctx, chatID(c), username)
	if err != nil {
		return err
	}
	if created {
		if err := c.Send(fmt.Sprintf(textWelcomeFmt, username)); err != nil {
			return err
		}
	} else if err := c.Send(textAlreadyRegistered); err != nil {
		return err
	}
	return sendMainMenu(c)
}

func (b *Bot) handleHelp(c tele.Context) error {
	return c.Send(textHelp)
}

func (b *Bot) handleStats(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	counts, err := b.users.Stats(ctx)
	if err != nil {
		return err
	}
	return c.Send(fmt.Sprintf(textStatsFmt, counts.Users, counts.Events, counts.Notes))
}

// Menu navigation discards any pending conversation state.

func (b *Bot) handleEventsMenu(c tele.Context) error {
	b.engine.Abandon(chatID(c))
	return sendEventsMenu(c)
}

func (b *Bot) handleNotesMenu(c tele.Context) error {
	b.engine.Abandon(chatID(c))
	return sendNotesMenu(c)
}

func (b *Bot) handleBack(c tele.Context) error {
	b.engine.Abandon(chatID(c))
	return sendMainMenu(c)
}

func (b *Bot) handleAddEvent(c tele.Context) error {
	return render(c, b.engine.StartEvent(chatID(c)))
}

func (b *Bot) handleAddNote(c tele.Context) error {
	return render(c, b.engine.StartNote(chatID(c)))
}

// handleFlow feeds one inbound message into the user's pending flow.
func (b *Bot) handleFlow(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	out, err := b.engine.Handle(ctx, chatID(c), c.Text())
	if err != nil {
		if errors.Is(err, flow.ErrNoSession) {
			return nil
		}
		return err
	}
	return render(c, out)
}

func (b *Bot) handleViewEvents(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	events, err := b.events.List(ctx, chatID(c))
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return c.Send(textNoEvents)
	}
	// One message per record so each carries its own delete button.
	for _, e := range events {
		body := fmt.Sprintf(textEventBodyFmt, e.Title, e.Date, e.Type, e.Tags)
		markup := keyboard.InlineButtons([]keyboard.InlineBtn{{
			Text:   btnDelete,
			Unique: cbDeleteEvent,
			Data:   fmt.Sprint(e.ID),
		}})
		if err := tghelpers.SendMD(c, body, markup); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) handleViewNotes(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	notes, err := b.notes.List(ctx, chatID(c))
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		return c.Send(textNoNotes)
	}
	for _, n := range notes {
		body := fmt.Sprintf(textNoteBodyFmt, n.ID, n.Content)
		markup := keyboard.InlineButtons([]keyboard.InlineBtn{{
			Text:   btnDelete,
			Unique: cbDeleteNote,
			Data:   fmt.Sprint(n.ID),
		}})
		if err := tghelpers.SendMD(c, body, markup); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bot) handleDeleteEvent(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Send(textEventNotFound)
	}
	owner := chatID(c)

	title := b.eventTitle(c, owner, id)
	if err := b.events.Delete(ctx, owner, id); err != nil {
		if storage.IsNotFound(err) {
			return c.Send(textEventNotFound)
		}
		return err
	}
	// Retract the listed record's message, then confirm.
	_ = tghelpers.DeleteMessage(c)
	return c.Send(fmt.Sprintf(textEventDeleted, title))
}

func (b *Bot) handleDeleteNote(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	id, err := callbacks.PayloadInt64(c)
	if err != nil {
		return c.Send(textNoteNotFound)
	}
	owner := chatID(c)

	if err := b.notes.Delete(ctx, owner, id); err != nil {
		if storage.IsNotFound(err) {
			return c.Send(textNoteNotFound)
		}
		return err
	}
	_ = tghelpers.DeleteMessage(c)
	return c.Send(fmt.Sprintf(textNoteDeleted, id))
}

// eventTitle looks up the title for the deletion confirmation. Best effort:
// an unknown id falls through to the not-found branch of Delete anyway.
func (b *Bot) eventTitle(c tele.Context, owner, id int64) string {
	ctx := tghelpers.BuildContext(c)
	events, err := b.events.List(ctx, owner)
	if err != nil {
		return ""
	}
	for _, e := range events {
		if e.ID == id {
			return e.Title
		}
	}
	return ""
}
