package bot

import (
	"github.com/avdeev/daybook/core/telegram/keyboard"
	"github.com/avdeev/daybook/internal/flow"

	tele "gopkg.in/telebot.v4"
)

func sendMainMenu(c tele.Context) error {
	return c.Send(textMainMenu, keyboard.ReplyButtons([]string{btnEvents, btnNotes}))
}

func sendEventsMenu(c tele.Context) error {
	return c.Send(textEventsMenu, keyboard.ReplyButtons([]string{btnAddEvent, btnViewEvent, btnBack}))
}

func sendNotesMenu(c tele.Context) error {
	return c.Send(textNotesMenu, keyboard.ReplyButtons([]string{btnAddNote, btnViewNote, btnBack}))
}

// render materializes a flow outcome: the reply (with one-time quick-reply
// choices when the step offers them) followed by the menu the user lands in.
func render(c tele.Context, out flow.Outcome) error {
	if out.Reply != "" {
		if len(out.Choices) > 0 {
			markup := keyboard.ReplyButtons(out.Choices...)
			markup.OneTimeKeyboard = true
			if err := c.Send(out.Reply, markup); err != nil {
				return err
			}
		} else if err := c.Send(out.Reply); err != nil {
			return err
		}
	}

	switch out.Menu {
	case flow.MenuMain:
		return sendMainMenu(c)
	case flow.MenuEvents:
		return sendEventsMenu(c)
	case flow.MenuNotes:
		return sendNotesMenu(c)
	}
	return nil
}
