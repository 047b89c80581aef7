package digest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeev/daybook/internal/models"
	"github.com/avdeev/daybook/internal/service"
	"github.com/avdeev/daybook/internal/storage"
)

func TestRunSendsOneMessagePerUser(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	events := service.NewEvents(store)

	_, err := events.Add(ctx, models.Event{ChatID: 1, Title: "ДР Маши", Date: "28-08-2026", Type: models.CategoryBirthday, Tags: "#семья"})
	require.NoError(t, err)
	_, err = events.Add(ctx, models.Event{ChatID: 1, Title: "сдать отчёт", Date: "28-08-2026", Type: models.CategoryDeadline})
	require.NoError(t, err)
	_, err = events.Add(ctx, models.Event{ChatID: 2, Title: "годовщина", Date: "28-08-2026", Type: models.CategoryAnniversary})
	require.NoError(t, err)
	_, err = events.Add(ctx, models.Event{ChatID: 3, Title: "не сегодня", Date: "29-08-2026", Type: models.CategoryOther})
	require.NoError(t, err)

	got := make(map[int64]string)
	s := New(Config{Enabled: true}, events, func(chatID int64, text string) error {
		got[chatID] = text
		return nil
	})

	s.Run(ctx, "28-08-2026")

	require.Len(t, got, 2)
	assert.Contains(t, got[1], "ДР Маши")
	assert.Contains(t, got[1], "сдать отчёт")
	assert.Contains(t, got[1], "#семья")
	assert.Contains(t, got[2], "годовщина")
	assert.NotContains(t, got[2], "не сегодня")
}

func TestRunWithNoEventsSendsNothing(t *testing.T) {
	store := storage.NewMemory()
	events := service.NewEvents(store)

	calls := 0
	s := New(Config{Enabled: true}, events, func(int64, string) error {
		calls++
		return nil
	})
	s.Run(context.Background(), "28-08-2026")
	assert.Zero(t, calls)
}

func TestStartDisabledIsNoop(t *testing.T) {
	s := New(Config{Enabled: false}, service.NewEvents(storage.NewMemory()), nil)
	require.NoError(t, s.Start())
	s.Stop()
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := New(Config{Enabled: true, Schedule: "not a cron spec"}, service.NewEvents(storage.NewMemory()), func(int64, string) error { return nil })
	assert.Error(t, s.Start())
}
