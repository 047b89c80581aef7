package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/daybook/internal/models"
)

func TestRegisterUserTwice(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	created, err := st.RegisterUser(ctx, 100, "alice")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = st.RegisterUser(ctx, 100, "alice")
	require.NoError(t, err)
	assert.False(t, created, "repeat registration is already-exists, not an error")

	counts, err := st.Counts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts.Users)
}

func TestListEventsIsPerOwnerAndOrdered(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	_, err := st.AddEvent(ctx, models.Event{ChatID: 1, Title: "first", Date: "01-03-2024", Type: models.CategoryBirthday})
	require.NoError(t, err)
	_, err = st.AddEvent(ctx, models.Event{ChatID: 2, Title: "other user", Date: "01-03-2024", Type: models.CategoryOther})
	require.NoError(t, err)
	_, err = st.AddEvent(ctx, models.Event{ChatID: 1, Title: "second", Date: "02-03-2024", Type: models.CategoryDeadline})
	require.NoError(t, err)

	events, err := st.ListEvents(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "first", events[0].Title)
	assert.Equal(t, "second", events[1].Title)
	for _, e := range events {
		assert.EqualValues(t, 1, e.ChatID)
	}
}

func TestDeleteEventOwnershipAndDoubleDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	id, err := st.AddEvent(ctx, models.Event{ChatID: 1, Title: "mine", Date: "01-03-2024", Type: models.CategoryOther})
	require.NoError(t, err)

	// Another user cannot delete the record.
	err = st.DeleteEvent(ctx, 2, id)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, st.DeleteEvent(ctx, 1, id))

	// Second deletion reports not-found without touching other records.
	err = st.DeleteEvent(ctx, 1, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventAndNoteIDsAreIndependentSequences(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	eventID, err := st.AddEvent(ctx, models.Event{ChatID: 1, Title: "first", Date: "01-03-2024", Type: models.CategoryOther})
	require.NoError(t, err)
	noteID, err := st.AddNote(ctx, models.Note{ChatID: 1, Content: "first"})
	require.NoError(t, err)

	// Each kind has its own sequence, same as the per-table sequences in SQL.
	assert.EqualValues(t, 1, eventID)
	assert.EqualValues(t, 1, noteID)

	eventID, err = st.AddEvent(ctx, models.Event{ChatID: 1, Title: "second", Date: "02-03-2024", Type: models.CategoryOther})
	require.NoError(t, err)
	noteID, err = st.AddNote(ctx, models.Note{ChatID: 1, Content: "second"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, eventID)
	assert.EqualValues(t, 2, noteID)
}

func TestNotesTimestampsSetAtCreation(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	id, err := st.AddNote(ctx, models.Note{ChatID: 1, Content: "привет"})
	require.NoError(t, err)

	notes, err := st.ListNotes(ctx, 1)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, id, notes[0].ID)
	assert.NotEmpty(t, notes[0].CreatedAt)
	assert.Equal(t, notes[0].CreatedAt, notes[0].UpdatedAt)
}

func TestListEventsOnMatchesExactDate(t *testing.T) {
	ctx := context.Background()
	st := NewMemory()

	_, err := st.AddEvent(ctx, models.Event{ChatID: 1, Title: "today", Date: "28-08-2026", Type: models.CategoryDeadline})
	require.NoError(t, err)
	_, err = st.AddEvent(ctx, models.Event{ChatID: 2, Title: "also today", Date: "28-08-2026", Type: models.CategoryOther})
	require.NoError(t, err)
	_, err = st.AddEvent(ctx, models.Event{ChatID: 1, Title: "tomorrow", Date: "29-08-2026", Type: models.CategoryOther})
	require.NoError(t, err)

	events, err := st.ListEventsOn(ctx, "28-08-2026")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "today", events[0].Title)
	assert.Equal(t, "also today", events[1].Title)
}
