package bot

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/daybook/core/telegram/state"
	"github.com/avdeev/daybook/internal/flow"
	"github.com/avdeev/daybook/internal/models"
	"github.com/avdeev/daybook/internal/service"
	"github.com/avdeev/daybook/internal/storage"

	tele "gopkg.in/telebot.v4"
)

// okTransport answers every Bot API call with an empty successful message so
// handlers can send without a network.
type okTransport struct{}

func (okTransport) RoundTrip(*http.Request) (*http.Response, error) {
	body := `{"ok":true,"result":{"message_id":1,"chat":{"id":1,"type":"private"}}}`
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}, nil
}

type dispatchHarness struct {
	bot    *tele.Bot
	store  *storage.MemoryStorage
	engine *flow.Engine
	nextID int
}

// newDispatchHarness wires the full route set into a synchronous offline bot
// so tests exercise telebot's own endpoint matching.
func newDispatchHarness(t *testing.T) *dispatchHarness {
	t.Helper()

	store := storage.NewMemory()
	events := service.NewEvents(store)
	notes := service.NewNotes(store)
	engine := flow.NewEngine(state.NewMemoryManager(), events, notes)
	b := New(service.NewUsers(store), events, notes, engine)

	tb, err := tele.NewBot(tele.Settings{
		Token:       "dummy",
		Offline:     true,
		Synchronous: true,
		Client:      &http.Client{Transport: okTransport{}},
	})
	require.NoError(t, err)

	reg := b.BuildRegistry()
	for _, r := range b.Routes(reg, 0) {
		tb.Handle(r.Endpoint, r.Handler)
	}
	return &dispatchHarness{bot: tb, store: store, engine: engine}
}

func (h *dispatchHarness) text(chatID int64, text string) {
	h.nextID++
	h.bot.ProcessUpdate(tele.Update{
		ID: h.nextID,
		Message: &tele.Message{
			ID:     h.nextID,
			Text:   text,
			Sender: &tele.User{ID: chatID, Username: "alice"},
			Chat:   &tele.Chat{ID: chatID, Type: tele.ChatPrivate},
		},
	})
}

func TestStartCommandRegistersWhenIdle(t *testing.T) {
	h := newDispatchHarness(t)

	h.text(77, "/start")

	counts, err := h.store.Counts(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, counts.Users)
}

func TestPendingConversationConsumesCommands(t *testing.T) {
	h := newDispatchHarness(t)

	h.text(77, btnAddEvent)
	require.True(t, h.engine.InProgress(77))

	// A command sent mid-conversation is field input, not a command:
	// it becomes the title and must not run registration.
	h.text(77, "/start")
	require.True(t, h.engine.InProgress(77))

	h.text(77, "01-03-2024")
	h.text(77, models.CategoryLabels()[0])
	h.text(77, "#семья")
	assert.False(t, h.engine.InProgress(77))

	ctx := context.Background()
	counts, err := h.store.Counts(ctx)
	require.NoError(t, err)
	assert.Zero(t, counts.Users, "registration must not fire during a conversation")

	events, err := h.store.ListEvents(ctx, 77)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "/start", events[0].Title)
}
