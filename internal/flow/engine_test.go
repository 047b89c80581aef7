package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/daybook/core/telegram/state"
	"github.com/avdeev/daybook/internal/models"
	"github.com/avdeev/daybook/internal/service"
	"github.com/avdeev/daybook/internal/storage"
)

func newTestEngine() (*Engine, *storage.MemoryStorage) {
	store := storage.NewMemory()
	return NewEngine(
		state.NewMemoryManager(),
		service.NewEvents(store),
		service.NewNotes(store),
	), store
}

func advance(t *testing.T, e *Engine, userID int64, input string) Outcome {
	t.Helper()
	out, err := e.Handle(context.Background(), userID, input)
	require.NoError(t, err)
	return out
}

func TestEventFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine()
	const userID int64 = 10

	out := e.StartEvent(userID)
	assert.NotEmpty(t, out.Reply)
	assert.True(t, e.InProgress(userID))

	out = advance(t, e, userID, "ДР Маши")
	assert.False(t, out.Done)

	out = advance(t, e, userID, "01-03-2024")
	require.Len(t, out.Choices, 1, "category step offers the four labels")
	assert.Equal(t, models.CategoryLabels(), out.Choices[0])

	out = advance(t, e, userID, "🎂 День Рождения")
	assert.False(t, out.Done)

	out = advance(t, e, userID, "#деньрождения, #семья")
	assert.True(t, out.Done)
	assert.Equal(t, MenuMain, out.Menu)
	assert.False(t, e.InProgress(userID))

	events, err := store.ListEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "ДР Маши", events[0].Title)
	assert.Equal(t, "01-03-2024", events[0].Date)
	assert.Equal(t, models.CategoryBirthday, events[0].Type)
	assert.Equal(t, "#деньрождения, #семья", events[0].Tags)
}

func TestEmptyTitleRePrompts(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine()
	const userID int64 = 10

	e.StartEvent(userID)
	out := advance(t, e, userID, "   ")
	assert.False(t, out.Done)
	assert.False(t, out.Aborted)
	assert.True(t, e.InProgress(userID), "stays on the title step")

	// The step accepts valid input after the re-prompt.
	out = advance(t, e, userID, "встреча")
	assert.False(t, out.Aborted)

	events, err := store.ListEvents(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, events, "no event exists before the flow completes")
}

func TestInvalidDateRePrompts(t *testing.T) {
	e, _ := newTestEngine()
	const userID int64 = 10

	e.StartEvent(userID)
	advance(t, e, userID, "встреча")

	// An impossible calendar date re-prompts the same step.
	out := advance(t, e, userID, "31-02-2024")
	assert.False(t, out.Aborted)
	assert.Empty(t, out.Choices)
	assert.True(t, e.InProgress(userID))

	out = advance(t, e, userID, "01-03-2024")
	assert.NotEmpty(t, out.Choices)
}

// Unlike title and date, an unrecognized category label aborts the whole
// flow instead of re-prompting. The asymmetry is intentional.
func TestUnknownCategoryAbortsFlow(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine()
	const userID int64 = 10

	e.StartEvent(userID)
	advance(t, e, userID, "встреча")
	advance(t, e, userID, "01-03-2024")

	out := advance(t, e, userID, "что-то не то")
	assert.True(t, out.Aborted)
	assert.Equal(t, MenuEvents, out.Menu, "user lands back in the events menu")
	assert.False(t, e.InProgress(userID), "session is discarded")

	events, err := store.ListEvents(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, events, "abort before step 4 creates nothing")

	// The next message is not flow input.
	_, err = e.Handle(ctx, userID, "01-03-2024")
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestEmptyTagsAccepted(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine()
	const userID int64 = 10

	e.StartEvent(userID)
	advance(t, e, userID, "дедлайн по проекту")
	advance(t, e, userID, "15-09-2026")
	advance(t, e, userID, "⏰ Дедлайн")
	out := advance(t, e, userID, "")
	assert.True(t, out.Done)

	events, err := store.ListEvents(ctx, userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Empty(t, events[0].Tags)
}

func TestNoteFlow(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine()
	const userID int64 = 10

	e.StartNote(userID)

	out := advance(t, e, userID, "  ")
	assert.False(t, out.Done)
	assert.True(t, e.InProgress(userID), "empty content re-prompts")

	out = advance(t, e, userID, "купить подарок")
	assert.True(t, out.Done)
	assert.Equal(t, MenuMain, out.Menu)
	assert.False(t, e.InProgress(userID))

	notes, err := store.ListNotes(ctx, userID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "купить подарок", notes[0].Content)
}

func TestStartReplacesPendingFlow(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine()
	const userID int64 = 10

	e.StartEvent(userID)
	advance(t, e, userID, "наполовину введённое")

	// Starting a note mid-event discards the event state entirely.
	e.StartNote(userID)
	out := advance(t, e, userID, "текст заметки")
	assert.True(t, out.Done)

	events, err := store.ListEvents(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, events)
	notes, err := store.ListNotes(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestIndependentUsersProgressConcurrently(t *testing.T) {
	ctx := context.Background()
	e, store := newTestEngine()

	e.StartEvent(1)
	e.StartNote(2)

	advance(t, e, 1, "юбилей")
	out := advance(t, e, 2, "заметка второго")
	assert.True(t, out.Done)

	advance(t, e, 1, "20-10-2026")
	advance(t, e, 1, "💍 Годовщина")
	out = advance(t, e, 1, "#юбилей")
	assert.True(t, out.Done)

	events, err := store.ListEvents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, models.CategoryAnniversary, events[0].Type)

	notes, err := store.ListNotes(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, notes, 1)
}

func TestAbandonDiscardsState(t *testing.T) {
	e, _ := newTestEngine()
	const userID int64 = 10

	e.StartEvent(userID)
	e.Abandon(userID)
	assert.False(t, e.InProgress(userID))

	_, err := e.Handle(context.Background(), userID, "название")
	assert.ErrorIs(t, err, ErrNoSession)
}
