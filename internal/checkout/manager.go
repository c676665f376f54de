package checkout

import (
	"sync"
	"time"
)

// flowTTL bounds how long an untouched checkout survives. Expired flows are
// swept lazily on access instead of by a background goroutine.
const flowTTL = time.Hour

// Manager holds the transient checkout sessions, keyed by shopping-session
// id. At most one flow exists per session.
type Manager struct {
	mu    sync.Mutex
	flows map[string]*Flow
}

func NewManager() *Manager {
	return &Manager{flows: make(map[string]*Flow)}
}

func (m *Manager) sweepLocked(now time.Time) {
	for id, f := range m.flows {
		if now.Sub(f.touched) > flowTTL {
			delete(m.flows, id)
		}
	}
}

// GetOrCreate returns the session's flow, creating one at the address step
// when none exists.
func (m *Manager) GetOrCreate(sessionID string) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(time.Now())
	if f, ok := m.flows[sessionID]; ok {
		f.touched = time.Now()
		return f
	}
	f := newFlow(sessionID)
	m.flows[sessionID] = f
	return f
}

// Get returns the session's flow or nil.
func (m *Manager) Get(sessionID string) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepLocked(time.Now())
	f, ok := m.flows[sessionID]
	if !ok {
		return nil
	}
	f.touched = time.Now()
	return f
}

// Delete drops the session's flow.
func (m *Manager) Delete(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, sessionID)
}
