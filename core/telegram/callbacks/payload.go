package callbacks

import (
	"strconv"

	tele "gopkg.in/telebot.v4"
)

// PayloadInt64 parses the callback payload as int64. Record ids travel
// through inline buttons in this form.
func PayloadInt64(c tele.Context) (int64, error) {
	return strconv.ParseInt(CallbackPayload(c), 10, 64)
}

// PayloadInt parses the callback payload as int.
func PayloadInt(c tele.Context) (int, error) {
	return strconv.Atoi(CallbackPayload(c))
}
