package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/daybook/core/telegram/state"
	"github.com/avdeev/daybook/internal/flow"
	"github.com/avdeev/daybook/internal/service"
	"github.com/avdeev/daybook/internal/storage"
)

func newTestBot() *Bot {
	store := storage.NewMemory()
	events := service.NewEvents(store)
	notes := service.NewNotes(store)
	engine := flow.NewEngine(state.NewMemoryManager(), events, notes)
	return New(service.NewUsers(store), events, notes, engine)
}

func TestBuildRegistryWiresMenuLabels(t *testing.T) {
	reg := newTestBot().BuildRegistry()

	for _, label := range []string{
		btnEvents, btnNotes, btnBack,
		btnAddEvent, btnViewEvent,
		btnAddNote, btnViewNote,
	} {
		h, ok := reg.LookupText(label)
		require.True(t, ok, "label %q must be routed", label)
		assert.NotNil(t, h)
	}
}

func TestBuildRegistryWiresCommands(t *testing.T) {
	reg := newTestBot().BuildRegistry()

	_, start, ok := reg.LookupCommand("/start")
	require.True(t, ok)
	assert.False(t, start.AdminOnly)

	_, stats, ok := reg.LookupCommand("/stats")
	require.True(t, ok)
	assert.True(t, stats.AdminOnly)
	assert.True(t, stats.Hidden)

	// Menu labels are not commands: lookup requires the slash prefix.
	_, _, ok = reg.LookupCommand(btnEvents)
	assert.False(t, ok)
}

func TestBuildRegistryWiresDeleteCallbacks(t *testing.T) {
	reg := newTestBot().BuildRegistry()
	assert.Equal(t, []string{cbDeleteEvent, cbDeleteNote}, reg.ListCallbacks())
}
