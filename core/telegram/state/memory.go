package state

import (
	"sync"
)

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryManager constructs the in-memory Manager implementation.
// Conversation state is not durable: a restart drops pending flows, which is
// acceptable since every flow restarts cleanly from its menu.
func NewMemoryManager() Manager {
	return &memoryManager{
		sessions: make(map[int64]*Session),
	}
}

// Begin starts a new session for the user, replacing any existing one.
func (m *memoryManager) Begin(userID int64, flow Flow, step Step) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[userID] = &Session{
		Flow: flow,
		Step: step,
		Data: make(map[string]string),
	}
}

// Get returns a snapshot of the user's session if one exists.
func (m *memoryManager) Get(userID int64) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[userID]
	if !ok {
		return nil, false
	}
	return session.clone(), true
}

// SetStep advances the current session to the given step.
func (m *memoryManager) SetStep(userID int64, step Step) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[userID]; ok {
		session.Step = step
	}
}

// SetData records an accumulated field value on the current session.
func (m *memoryManager) SetData(userID int64, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[userID]; ok {
		session.Data[key] = value
	}
}

// Clear removes the session for a user.
func (m *memoryManager) Clear(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// InProgress reports whether the user currently has an active session.
func (m *memoryManager) InProgress(userID int64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.sessions[userID]
	return ok
}
