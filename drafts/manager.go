package drafts

import (
	"context"
	"sync"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
)

// Manager tracks the Autosavers of sessions that still hold an unwritten edit
// or an unanswered draft offer. A session is forgotten as soon as neither is
// left, so sessions that only read their draft cost nothing.
type Manager struct {
	store Persistence
	opts  Options

	mu     sync.Mutex
	savers map[string]*Autosaver
}

func NewManager(store Persistence, opts Options) *Manager {
	return &Manager{
		store:  store,
		opts:   opts.withDefaults(),
		savers: make(map[string]*Autosaver),
	}
}

func (m *Manager) newSaver(key string) *Autosaver {
	a := NewAutosaver(key, m.store, m.opts)
	a.onIdle = func() { m.release(key, a) }
	return a
}

// release forgets a when it is still the tracked Autosaver for key and idle.
func (m *Manager) release(key string, a *Autosaver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.savers[key] == a && a.idle() {
		delete(m.savers, key)
	}
}

// Lookup returns the tracked Autosaver for key without creating one.
func (m *Manager) Lookup(key string) (*Autosaver, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.savers[key]
	return a, ok
}

// Len is the number of tracked sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.savers)
}

// Save records an edit for key. The session is tracked only while the edit
// waits for its write. The returned Autosaver reports state and LastSaved.
func (m *Manager) Save(key string, formData map[string]any, files []models.UploadedFile, step int) (*Autosaver, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.savers[key]
	if !ok {
		a = m.newSaver(key)
	}
	if !a.Save(formData, files, step) {
		return a, false
	}
	m.savers[key] = a
	return a, true
}

// Load reads the draft of key. A found draft is offered and tracked until it
// is restored, overwritten, cleared or left unanswered past OfferTTL.
func (m *Manager) Load(ctx context.Context, key string) (*Autosaver, Draft, bool) {
	a, tracked := m.Lookup(key)
	if !tracked {
		a = m.newSaver(key)
	}

	d, found := a.Load(ctx)
	if !found {
		if tracked {
			m.release(key, a)
		}
		return a, Draft{}, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	if _, ok := m.savers[key]; !ok {
		m.savers[key] = a
	}
	return a, d, true
}

// Restore accepts the draft offered to key by an earlier Load.
func (m *Manager) Restore(key string) (Draft, bool) {
	a, ok := m.Lookup(key)
	if !ok {
		return Draft{}, false
	}
	d, ok := a.Restore()
	if ok {
		m.release(key, a)
	}
	return d, ok
}

// Clear deletes the session's draft and forgets its Autosaver. A caller still
// holding that Autosaver can no longer schedule writes through it.
func (m *Manager) Clear(ctx context.Context, key string) {
	m.mu.Lock()
	a, ok := m.savers[key]
	delete(m.savers, key)
	m.mu.Unlock()

	if !ok {
		a = NewAutosaver(key, m.store, m.opts)
	}
	a.close()
	a.Clear(ctx)
}

// FlushAll writes every pending draft, used on shutdown.
func (m *Manager) FlushAll(ctx context.Context) {
	m.mu.Lock()
	savers := make([]*Autosaver, 0, len(m.savers))
	for _, a := range m.savers {
		savers = append(savers, a)
	}
	m.mu.Unlock()

	for _, a := range savers {
		a.Flush(ctx)
	}
}

func (m *Manager) pruneLocked() {
	now := m.opts.Now()
	for key, a := range m.savers {
		if a.staleOffer(now, m.opts.OfferTTL) {
			delete(m.savers, key)
		}
	}
}
