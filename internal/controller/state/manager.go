package state

import (
	"sync"
)

// Manager tracks the dialog state of every chat. Handlers run on the bot's
// update goroutines, so access is mutex-guarded.
type Manager struct {
	mu     sync.RWMutex
	states map[int64]*ChatData
}

func NewManager() *Manager {
	return &Manager{
		states: make(map[int64]*ChatData),
	}
}

// GetState returns the chat's current dialog step, StateNone if idle.
func (m *Manager) GetState(chatID int64) ChatState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if cd, ok := m.states[chatID]; ok {
		return cd.State
	}
	return StateNone
}

// SetState moves the chat to a dialog step. Setting StateNone drops the
// whole entry, scratch data included.
func (m *Manager) SetState(chatID int64, st ChatState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if st == StateNone {
		delete(m.states, chatID)
		return
	}

	if cd, ok := m.states[chatID]; ok {
		cd.State = st
		return
	}
	m.states[chatID] = &ChatData{
		State: st,
		Data:  make(map[string]interface{}),
	}
}

// GetData reads one scratch value of the chat's active dialog.
func (m *Manager) GetData(chatID int64, key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if cd, ok := m.states[chatID]; ok {
		v, ok := cd.Data[key]
		return v, ok
	}
	return nil, false
}

// SetData stores a scratch value for the chat's active dialog.
func (m *Manager) SetData(chatID int64, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cd, ok := m.states[chatID]
	if !ok {
		cd = &ChatData{
			State: StateNone,
			Data:  make(map[string]interface{}),
		}
		m.states[chatID] = cd
	}
	cd.Data[key] = value
}

// GetString reads a scratch value as a string, "" when absent.
func (m *Manager) GetString(chatID int64, key string) string {
	v, ok := m.GetData(chatID, key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// ClearState drops the chat's dialog state and scratch data.
func (m *Manager) ClearState(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.states, chatID)
}
