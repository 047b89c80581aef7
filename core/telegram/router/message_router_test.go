package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tg "github.com/avdeev/daybook/core/telegram"
	"github.com/avdeev/daybook/core/telegram/commands"

	tele "gopkg.in/telebot.v4"
)

type stubGate struct {
	inProgress bool
	asked      []int64
}

func (g *stubGate) InProgress(id int64) bool {
	g.asked = append(g.asked, id)
	return g.inProgress
}

func newTestContext(t *testing.T, senderID, chatID int64, text string) tele.Context {
	t.Helper()
	b, err := tele.NewBot(tele.Settings{Token: "dummy", Offline: true, Synchronous: true})
	require.NoError(t, err)
	return b.NewContext(tele.Update{Message: &tele.Message{
		ID:     1,
		Text:   text,
		Sender: &tele.User{ID: senderID},
		Chat:   &tele.Chat{ID: chatID, Type: tele.ChatPrivate},
	}})
}

func TestCommandsRouteThroughFlowGate(t *testing.T) {
	reg := tg.NewRegistry()
	var started int
	reg.RegisterCommand("/start", commands.Command{
		Handler:     func(c tele.Context) error { started++; return nil },
		Description: "start",
	})

	gate := &stubGate{inProgress: true}
	var flowGot []string
	route := TextRoute(reg, TextOptions{
		Flows: gate,
		FlowHandler: func(c tele.Context) error {
			flowGot = append(flowGot, c.Text())
			return nil
		},
	})

	// A pending conversation step consumes the command as field input.
	require.NoError(t, route.Handler(newTestContext(t, 77, 77, "/start")))
	assert.Zero(t, started)
	assert.Equal(t, []string{"/start"}, flowGot)

	// With no conversation pending the command handler runs.
	gate.inProgress = false
	require.NoError(t, route.Handler(newTestContext(t, 77, 77, "/start")))
	assert.Equal(t, 1, started)
	assert.Len(t, flowGot, 1)
}

func TestFlowGateKeyedByChatID(t *testing.T) {
	gate := &stubGate{inProgress: true}
	route := TextRoute(nil, TextOptions{
		Flows:       gate,
		FlowHandler: func(c tele.Context) error { return nil },
	})

	// Sender and chat differ: the session owner is the chat.
	require.NoError(t, route.Handler(newTestContext(t, 42, 77, "hello")))
	assert.Equal(t, []int64{77}, gate.asked)
}

func TestCommandTokenStripsMentionAndPayload(t *testing.T) {
	cases := map[string]string{
		"/start":              "/start",
		"/start@daybook_bot":  "/start",
		"/start some payload": "/start",
		"  /start  ":          "/start",
		"hello":               "",
		"":                    "",
	}
	for text, want := range cases {
		assert.Equal(t, want, commandToken(text), "text %q", text)
	}
}
