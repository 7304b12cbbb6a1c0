package drafts

import (
	"context"
	"errors"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/davlindh/zeppelin-cloud-flight-sub002/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// State is the lifecycle position of a session's draft.
type State int

const (
	// StateEmpty means no draft is persisted.
	StateEmpty State = iota
	// StateDirty means edits have been recorded since the last load or clear.
	StateDirty
	// StateOffered means a draft was found on mount and the user has not chosen yet.
	StateOffered
	// StateRestored means the user accepted the offered draft.
	StateRestored
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDirty:
		return "dirty"
	case StateOffered:
		return "offered"
	case StateRestored:
		return "restored"
	default:
		return "unknown"
	}
}

// Options tune an Autosaver.
type Options struct {
	// Debounce is the inactivity window before a pending draft is written.
	Debounce time.Duration
	// StartedFields gate persistence: nothing is saved until one is non-empty.
	StartedFields []string
	// WriteTimeout bounds each background write.
	WriteTimeout time.Duration
	// OfferTTL is how long a Manager keeps an offered draft nobody answered.
	OfferTTL time.Duration
	Logger   *zerolog.Logger
	Now      func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Debounce <= 0 {
		o.Debounce = 2 * time.Second
	}
	if len(o.StartedFields) == 0 {
		o.StartedFields = DefaultStartedFields
	}
	if o.WriteTimeout <= 0 {
		o.WriteTimeout = 10 * time.Second
	}
	if o.OfferTTL <= 0 {
		o.OfferTTL = 30 * time.Minute
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Autosaver owns the draft of one form instance.
type Autosaver struct {
	key    string
	store  Persistence
	opts   Options
	logger zerolog.Logger

	mu        sync.Mutex
	state     State
	pending   *Draft
	offered   *Draft
	offeredAt time.Time
	timer     *time.Timer
	lastSaved time.Time
	closed    bool

	// onIdle runs after a write leaves nothing pending or offered.
	onIdle func()

	// writeMu serializes every call into store. Pending data is taken only
	// after it is held, so a later write always carries the newest edit.
	writeMu sync.Mutex
}

func NewAutosaver(key string, store Persistence, opts Options) *Autosaver {
	opts = opts.withDefaults()
	logger := log.Logger
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Autosaver{
		key:    key,
		store:  store,
		opts:   opts,
		logger: logger.With().Str("component", "draftAutosaver").Logger(),
	}
}

// Save records the latest form state and (re)arms the debounce timer. It
// returns false when no started field is filled in, or the Autosaver was
// closed by its Manager, and nothing was scheduled.
func (a *Autosaver) Save(formData map[string]any, files []models.UploadedFile, step int) bool {
	if !hasStarted(formData, a.opts.StartedFields) {
		return false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return false
	}
	a.pending = &Draft{
		FormData:      a.normalize(formData),
		UploadedFiles: slices.Clone(files),
		CurrentStep:   step,
	}
	a.state = StateDirty
	a.offered = nil
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.opts.Debounce, a.fire)
	return true
}

// normalize deep-copies formData into its JSON form, so the values held in
// memory have the same types as the ones read back from persistence.
func (a *Autosaver) normalize(formData map[string]any) map[string]any {
	out, err := NormalizeFormData(formData)
	if err != nil {
		a.logger.Warn().Err(err).Str("session", a.key).Msg("draft form data is not JSON, keeping a shallow copy")
		return maps.Clone(formData)
	}
	return out
}

func (a *Autosaver) fire() {
	ctx, cancel := context.WithTimeout(context.Background(), a.opts.WriteTimeout)
	defer cancel()
	a.write(ctx)
}

func (a *Autosaver) write(ctx context.Context) {
	a.writeMu.Lock()
	a.writePending(ctx)
	a.writeMu.Unlock()

	if a.onIdle != nil && a.idle() {
		a.onIdle()
	}
}

func (a *Autosaver) writePending(ctx context.Context) {
	a.mu.Lock()
	d := a.pending
	a.pending = nil
	a.mu.Unlock()
	if d == nil {
		return
	}

	d.SavedAt = a.opts.Now().UTC()
	if err := a.store.Save(ctx, a.key, *d); err != nil {
		a.logger.Warn().Err(err).Str("session", a.key).Msg("draft save failed, keeping edits in memory")
		return
	}

	a.mu.Lock()
	a.lastSaved = d.SavedAt
	a.mu.Unlock()
}

// idle reports whether the Autosaver holds nothing a later request could need.
func (a *Autosaver) idle() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending == nil && a.offered == nil
}

// staleOffer reports an offered draft left unanswered for longer than ttl.
func (a *Autosaver) staleOffer(now time.Time, ttl time.Duration) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending == nil && a.offered != nil && now.Sub(a.offeredAt) > ttl
}

// close makes every later Save a no-op.
func (a *Autosaver) close() {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()
}

// Flush writes any pending draft immediately.
func (a *Autosaver) Flush(ctx context.Context) {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
	}
	a.mu.Unlock()
	a.write(ctx)
}

// Load reads the persisted draft once on form mount. Any read error is reported
// as "no draft". A found draft moves the session to StateOffered.
func (a *Autosaver) Load(ctx context.Context) (Draft, bool) {
	a.writeMu.Lock()
	d, err := a.store.Load(ctx, a.key)
	a.writeMu.Unlock()
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			a.logger.Warn().Err(err).Str("session", a.key).Msg("draft load failed")
		}
		return Draft{}, false
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = StateOffered
	a.offered = &d
	a.offeredAt = a.opts.Now()
	return d, true
}

// Restore accepts the offered draft. The persisted copy stays until the next
// save or an explicit clear.
func (a *Autosaver) Restore() (Draft, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.state != StateOffered || a.offered == nil {
		return Draft{}, false
	}
	a.state = StateRestored
	d := *a.offered
	a.offered = nil
	return d, true
}

// Clear cancels pending writes and deletes the persisted draft. It is called
// after a confirmed submit.
func (a *Autosaver) Clear(ctx context.Context) {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending = nil
	a.offered = nil
	a.state = StateEmpty
	a.mu.Unlock()

	a.writeMu.Lock()
	defer a.writeMu.Unlock()
	if err := a.store.Delete(ctx, a.key); err != nil && !errors.Is(err, ErrNotFound) {
		a.logger.Warn().Err(err).Str("session", a.key).Msg("draft delete failed")
	}
}

// Discard is the user's explicit "start over" choice.
func (a *Autosaver) Discard(ctx context.Context) {
	a.Clear(ctx)
}

func (a *Autosaver) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// LastSaved is the time of the last successful write, zero if none.
func (a *Autosaver) LastSaved() time.Time {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastSaved
}

// HasPending reports whether an edit is waiting for its debounced write.
func (a *Autosaver) HasPending() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending != nil
}
