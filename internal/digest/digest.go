// Package digest sends each user a morning summary of their events dated
// today. The job is optional and disabled unless configured.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/robfig/cron/v3"

	"github.com/avdeev/daybook/core/logger"
	"github.com/avdeev/daybook/internal/models"
	"github.com/avdeev/daybook/internal/service"
)

// Config controls the digest scheduler.
type Config struct {
	Enabled bool `yaml:"enabled" envconfig:"DIGEST_ENABLED"`
	// Schedule is a standard 5-field cron expression, server-local time.
	Schedule string `yaml:"schedule" envconfig:"DIGEST_SCHEDULE"`
}

// SendFunc delivers one digest message to a chat.
type SendFunc func(chatID int64, text string) error

// Scheduler runs the daily digest on a cron schedule.
type Scheduler struct {
	cfg    Config
	events *service.Events
	send   SendFunc
	cron   *cron.Cron
}

// New builds the scheduler. send is called once per user with events today.
func New(cfg Config, events *service.Events, send SendFunc) *Scheduler {
	if strings.TrimSpace(cfg.Schedule) == "" {
		cfg.Schedule = "0 9 * * *"
	}
	return &Scheduler{
		cfg:    cfg,
		events: events,
		send:   send,
		cron:   cron.New(),
	}
}

// Start registers the cron entry and launches the scheduler. A disabled
// config is a no-op.
func (s *Scheduler) Start() error {
	if !s.cfg.Enabled {
		return nil
	}
	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.Run(context.Background(), models.Today())
	}); err != nil {
		return fmt.Errorf("digest: bad schedule %q: %w", s.cfg.Schedule, err)
	}
	s.cron.Start()
	logger.Digest.Info("digest.start", slog.String("schedule", s.cfg.Schedule))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Run sends the digest for one date to every user with events on it.
// Exposed separately so the job is testable without the cron clock.
func (s *Scheduler) Run(ctx context.Context, date string) {
	events, err := s.events.ListOn(ctx, date)
	if err != nil {
		logger.Digest.ErrorContext(ctx, "digest.list.fail",
			slog.String("date", date),
			slog.String("err", err.Error()),
		)
		return
	}
	if len(events) == 0 {
		logger.Digest.DebugContext(ctx, "digest.empty", slog.String("date", date))
		return
	}

	perUser := make(map[int64][]models.Event)
	var order []int64
	for _, e := range events {
		if _, seen := perUser[e.ChatID]; !seen {
			order = append(order, e.ChatID)
		}
		perUser[e.ChatID] = append(perUser[e.ChatID], e)
	}

	sent := 0
	for _, chatID := range order {
		if err := s.send(chatID, formatDigest(date, perUser[chatID])); err != nil {
			logger.Digest.WarnContext(ctx, "digest.send.fail",
				slog.Int64("chat_id", chatID),
				slog.String("err", err.Error()),
			)
			continue
		}
		sent++
	}
	logger.Digest.InfoContext(ctx, "digest.sent",
		slog.String("date", date),
		slog.Int("users", sent),
	)
}

func formatDigest(date string, events []models.Event) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "📅 Мероприятия на сегодня (%s):\n", date)
	for _, e := range events {
		fmt.Fprintf(&sb, "• %s — %s", e.Title, e.Type)
		if e.Tags != "" {
			fmt.Fprintf(&sb, " (%s)", e.Tags)
		}
		sb.WriteByte('\n')
	}
	return strings.TrimRight(sb.String(), "\n")
}
