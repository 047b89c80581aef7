// Package app assembles the daybook bot: storage, services, conversation
// engine, Telegram wiring and the digest scheduler.
package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/avdeev/daybook/core/bootstrap"
	tg "github.com/avdeev/daybook/core/telegram"
	"github.com/avdeev/daybook/core/telegram/state"
	"github.com/avdeev/daybook/internal/bot"
	"github.com/avdeev/daybook/internal/digest"
	"github.com/avdeev/daybook/internal/flow"
	"github.com/avdeev/daybook/internal/service"
	"github.com/avdeev/daybook/internal/storage"
)

// App holds the composed application.
type App struct {
	cfg    *Config
	db     *sqlx.DB
	events *service.Events
	bot    *bot.Bot

	digest *digest.Scheduler
}

// Bootstrap initializes infrastructure (logger, database, migrations) and
// wires the domain on top of it.
func Bootstrap(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}

	res, err := bootstrap.Run(bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
	})
	if err != nil {
		return nil, err
	}

	store := storage.NewSQL(res.DB)
	users := service.NewUsers(store)
	events := service.NewEvents(store)
	notes := service.NewNotes(store)
	engine := flow.NewEngine(state.NewMemoryManager(), events, notes)

	return &App{
		cfg:    cfg,
		db:     res.DB,
		events: events,
		bot:    bot.New(users, events, notes, engine),
	}, nil
}

// TelegramRunOptions builds the bot runtime options: registry, routes,
// middleware chain and lifecycle hooks.
func (a *App) TelegramRunOptions() (tg.RunOptions, error) {
	reg := a.bot.BuildRegistry()
	routes := a.bot.Routes(reg, a.cfg.Telegram.AdminID)

	return tg.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: tg.DefaultMiddlewares(a.cfg.CoreConfig(), nil),
		Routes:      routes,
		OnStart: func(_ context.Context, rt tg.Runtime) error {
			a.digest = digest.New(a.cfg.Digest, a.events, func(chatID int64, text string) error {
				_, err := rt.Bot.Send(&tele.User{ID: chatID}, text)
				return err
			})
			return a.digest.Start()
		},
		OnStop: func(_ context.Context, _ tg.Runtime) error {
			if a.digest != nil {
				a.digest.Stop()
			}
			return a.db.Close()
		},
	}, nil
}
