package events

import (
	"log"
	"sync"
)

type Listener interface {
	Handle(event Event) error
	Name() string
}

type Publisher interface {
	Notify(event Event)
}

// Manager holds an ordered set of listeners. Notify iterates a snapshot
// of the registration list, so listeners can be added or removed while a
// notification is in flight without the iteration observing a partial
// mutation.
type Manager struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewManager(listeners ...Listener) *Manager {
	m := &Manager{}
	for _, l := range listeners {
		m.Add(l)
	}
	return m
}

func (m *Manager) Add(l Listener) {
	m.mu.Lock()
	m.listeners = append(m.listeners, l)
	m.mu.Unlock()

	log.Printf("registered user event listener: %s", l.Name())
}

func (m *Manager) Remove(l Listener) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, registered := range m.listeners {
		if registered == l {
			m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
			log.Printf("removed user event listener: %s", l.Name())
			return
		}
	}
}

// Notify invokes every listener in registration order. A failing listener
// is logged and does not stop the remaining listeners.
func (m *Manager) Notify(event Event) {
	m.mu.RLock()
	snapshot := make([]Listener, len(m.listeners))
	copy(snapshot, m.listeners)
	m.mu.RUnlock()

	for _, l := range snapshot {
		if err := l.Handle(event); err != nil {
			log.Printf("event listener %s failed for %s: %v", l.Name(), event.Type, err)
		}
	}
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.listeners)
}
