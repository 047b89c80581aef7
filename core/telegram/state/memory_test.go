package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginReplacesExistingSession(t *testing.T) {
	m := NewMemoryManager()
	m.Begin(1, "event_create", "title")
	m.SetData(1, "title", "старый")

	// A new prompt replaces the prior pending step for the same user.
	m.Begin(1, "note_create", "content")

	s, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, Flow("note_create"), s.Flow)
	assert.Equal(t, Step("content"), s.Step)
	assert.Empty(t, s.Data)
}

func TestIndependentUsers(t *testing.T) {
	m := NewMemoryManager()
	m.Begin(1, "event_create", "title")
	m.Begin(2, "note_create", "content")

	m.SetData(1, "title", "ДР мамы")
	m.SetStep(1, "date")

	s1, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, Step("date"), s1.Step)
	assert.Equal(t, "ДР мамы", s1.Data["title"])

	s2, ok := m.Get(2)
	require.True(t, ok)
	assert.Equal(t, Flow("note_create"), s2.Flow)
	assert.Empty(t, s2.Data)
}

func TestClearAndIdleNoops(t *testing.T) {
	m := NewMemoryManager()
	assert.False(t, m.InProgress(5))

	// Mutations without an active session are silently ignored.
	m.SetStep(5, "date")
	m.SetData(5, "title", "x")
	_, ok := m.Get(5)
	assert.False(t, ok)

	m.Begin(5, "event_create", "title")
	assert.True(t, m.InProgress(5))
	m.Clear(5)
	assert.False(t, m.InProgress(5))
}

func TestGetReturnsSnapshot(t *testing.T) {
	m := NewMemoryManager()
	m.Begin(9, "event_create", "title")
	m.SetData(9, "title", "встреча")

	s, ok := m.Get(9)
	require.True(t, ok)
	s.Data["title"] = "mutated"
	s.Step = "tags"

	fresh, ok := m.Get(9)
	require.True(t, ok)
	assert.Equal(t, "встреча", fresh.Data["title"])
	assert.Equal(t, Step("title"), fresh.Step)
}
