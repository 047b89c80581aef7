// Package flow implements the multi-step conversation state machines for
// event and note creation. The engine consumes exactly one inbound message
// per call and emits a transport-neutral Outcome; rendering happens in the
// bot layer.
package flow

import (
	"context"
	"errors"

	"github.com/avdeev/daybook/core/telegram/state"
	"github.com/avdeev/daybook/internal/service"
)

// Flow kinds.
const (
	FlowEvent state.Flow = "event.create"
	FlowNote  state.Flow = "note.create"
)

// Steps. The event flow is strictly ordered with no skipping; the note flow
// has a single step.
const (
	StepTitle    state.Step = "awaiting_title"
	StepDate     state.Step = "awaiting_date"
	StepCategory state.Step = "awaiting_category"
	StepTags     state.Step = "awaiting_tags"
	StepContent  state.Step = "awaiting_content"
)

// Accumulated field keys within a session.
const (
	dataTitle = "title"
	dataDate  = "date"
	dataType  = "type"
)

// ErrNoSession is returned by Handle when the user has no active flow.
var ErrNoSession = errors.New("flow: no active session")

// Menu names the top-level menu the bot should show after a reply.
type Menu int

const (
	MenuNone Menu = iota
	MenuMain
	MenuEvents
	MenuNotes
)

// Outcome is the engine's intent for one conversational turn: what to say,
// which quick-reply choices to offer, and where the user lands afterwards.
type Outcome struct {
	Reply   string
	Choices [][]string
	Menu    Menu
	// Done is set when a record was committed this turn.
	Done bool
	// Aborted is set when the flow was discarded without a commit.
	Aborted bool
}

// Engine drives per-user conversations. Sessions are last-write-wins: a new
// Start replaces whatever flow the user had pending.
type Engine struct {
	sessions state.Manager
	events   *service.Events
	notes    *service.Notes
}

// NewEngine builds the engine on top of a session manager and the services
// that commit completed records.
func NewEngine(sessions state.Manager, events *service.Events, notes *service.Notes) *Engine {
	return &Engine{sessions: sessions, events: events, notes: notes}
}

// InProgress reports whether the user has a pending conversation step.
func (e *Engine) InProgress(userID int64) bool {
	return e.sessions.InProgress(userID)
}

// Abandon discards the user's pending flow, if any. Menu navigation calls
// this so a stale step never swallows the next menu choice.
func (e *Engine) Abandon(userID int64) {
	e.sessions.Clear(userID)
}

// StartEvent begins the four-step event creation flow.
func (e *Engine) StartEvent(userID int64) Outcome {
	e.sessions.Begin(userID, FlowEvent, StepTitle)
	return Outcome{Reply: promptTitle}
}

// StartNote begins the single-step note creation flow.
func (e *Engine) StartNote(userID int64) Outcome {
	e.sessions.Begin(userID, FlowNote, StepContent)
	return Outcome{Reply: promptContent}
}

// Handle advances the user's flow with one inbound message. Validation
// failures re-prompt (except the category step, which aborts); a completed
// flow commits through the services and clears the session. The returned
// error is non-nil only for storage failures.
func (e *Engine) Handle(ctx context.Context, userID int64, input string) (Outcome, error) {
	sess, ok := e.sessions.Get(userID)
	if !ok {
		return Outcome{}, ErrNoSession
	}

	switch sess.Flow {
	case FlowEvent:
		return e.handleEvent(ctx, userID, sess, input)
	case FlowNote:
		return e.handleNote(ctx, userID, input)
	default:
		// Unknown flow kind in a session is a programming error; drop it.
		e.sessions.Clear(userID)
		return Outcome{}, ErrNoSession
	}
}
