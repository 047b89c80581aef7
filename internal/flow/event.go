package flow

import (
	"context"
	"strings"

	"github.com/avdeev/daybook/core/telegram/state"
	"github.com/avdeev/daybook/internal/models"
)

func (e *Engine) handleEvent(ctx context.Context, userID int64, sess *state.Session, input string) (Outcome, error) {
	switch sess.Step {
	case StepTitle:
		return e.eventTitle(userID, input), nil
	case StepDate:
		return e.eventDate(userID, input), nil
	case StepCategory:
		return e.eventCategory(userID, input), nil
	case StepTags:
		return e.eventTags(ctx, userID, sess, input)
	default:
		e.sessions.Clear(userID)
		return Outcome{}, ErrNoSession
	}
}

func (e *Engine) eventTitle(userID int64, input string) Outcome {
	title := strings.TrimSpace(input)
	if title == "" {
		return Outcome{Reply: promptTitleEmpty}
	}
	e.sessions.SetData(userID, dataTitle, title)
	e.sessions.SetStep(userID, StepDate)
	return Outcome{Reply: promptDate}
}

func (e *Engine) eventDate(userID int64, input string) Outcome {
	date, err := models.ParseDate(input)
	if err != nil {
		return Outcome{Reply: promptDateBad}
	}
	e.sessions.SetData(userID, dataDate, date)
	e.sessions.SetStep(userID, StepCategory)
	return Outcome{
		Reply:   promptCategory,
		Choices: [][]string{models.CategoryLabels()},
	}
}

// eventCategory is the one step that aborts instead of re-prompting: an
// unrecognized label discards the whole flow and returns the user to the
// events menu.
func (e *Engine) eventCategory(userID int64, input string) Outcome {
	category, ok := models.CategoryFromLabel(strings.TrimSpace(input))
	if !ok {
		e.sessions.Clear(userID)
		return Outcome{
			Reply:   categoryRejected,
			Menu:    MenuEvents,
			Aborted: true,
		}
	}
	e.sessions.SetData(userID, dataType, string(category))
	e.sessions.SetStep(userID, StepTags)
	return Outcome{Reply: promptTags}
}

func (e *Engine) eventTags(ctx context.Context, userID int64, sess *state.Session, input string) (Outcome, error) {
	// Tags are accepted verbatim, empty included.
	event := models.Event{
		ChatID: userID,
		Title:  sess.Data[dataTitle],
		Date:   sess.Data[dataDate],
		Type:   models.Category(sess.Data[dataType]),
		Tags:   strings.TrimSpace(input),
	}
	if _, err := e.events.Add(ctx, event); err != nil {
		return Outcome{}, err
	}
	e.sessions.Clear(userID)
	return Outcome{
		Reply: eventCreated,
		Menu:  MenuMain,
		Done:  true,
	}, nil
}
