package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v4"
)

func TestParseCallbackData(t *testing.T) {
	cases := []struct {
		name    string
		data    string
		unique  string
		payload string
	}{
		{"unique with payload", "\fdelete_event|42", "delete_event", "42"},
		{"unique only", "\fmenu_back", "menu_back", ""},
		{"no form feed prefix", "delete_note|7", "delete_note", "7"},
		{"empty", "", "", ""},
		{"payload with separator", "\fpick|a|b", "pick", "a|b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			unique, payload := ParseCallbackData(&tele.Callback{Data: tc.data})
			assert.Equal(t, tc.unique, unique)
			assert.Equal(t, tc.payload, payload)
		})
	}
}

func TestParseCallbackDataNil(t *testing.T) {
	unique, payload := ParseCallbackData(nil)
	assert.Empty(t, unique)
	assert.Empty(t, payload)
}
