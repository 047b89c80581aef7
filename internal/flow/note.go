package flow

import (
	"context"
	"strings"
)

func (e *Engine) handleNote(ctx context.Context, userID int64, input string) (Outcome, error) {
	content := strings.TrimSpace(input)
	if content == "" {
		return Outcome{Reply: promptContentEmpty}, nil
	}
	if _, err := e.notes.Add(ctx, userID, content); err != nil {
		return Outcome{}, err
	}
	e.sessions.Clear(userID)
	return Outcome{
		Reply: noteCreated,
		Menu:  MenuMain,
		Done:  true,
	}, nil
}
