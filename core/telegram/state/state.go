package state

// Flow identifies a multi-step conversation kind.
type Flow string

// Step identifies one state within a flow, awaiting one specific field.
type Step string

// Session stores an in-progress conversation for a single user: the flow
// kind, the current step, and the fields accumulated so far.
type Session struct {
	Flow Flow
	Step Step
	Data map[string]string
}

// clone returns a detached copy safe to read outside the manager lock.
func (s *Session) clone() *Session {
	if s == nil {
		return nil
	}
	data := make(map[string]string, len(s.Data))
	for k, v := range s.Data {
		data[k] = v
	}
	return &Session{Flow: s.Flow, Step: s.Step, Data: data}
}

// Manager orchestrates per-user conversation sessions.
//
// A user has at most one active session: Begin replaces any prior session
// for the same user (last-write-wins on the pending continuation). Sessions
// for different users are fully independent.
type Manager interface {
	// Begin starts a new session, discarding any previous one for the user.
	Begin(userID int64, flow Flow, step Step)
	// Get returns a snapshot of the user's session, or false when idle.
	Get(userID int64) (*Session, bool)
	// SetStep advances the session to the given step. No-op when idle.
	SetStep(userID int64, step Step)
	// SetData records an accumulated field value. No-op when idle.
	SetData(userID int64, key, value string)
	// Clear discards the session, returning the user to the idle state.
	Clear(userID int64)
	// InProgress reports whether the user has an active session.
	InProgress(userID int64) bool
}
