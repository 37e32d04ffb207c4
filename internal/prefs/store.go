package prefs

import (
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Store is the single source of truth for the appearance and display
// preferences. It is created once at the application root and handed to
// every view that needs it.
type Store struct {
	kv       KV
	keys     Keys
	defaults Preferences
	ambient  Ambient
	logger   *log.Logger

	mu      sync.RWMutex
	current Preferences

	subMu  sync.Mutex
	subs   map[int]func(Snapshot)
	nextID int
}

// Option configures a Store.
type Option func(*Store)

// WithKeys overrides the storage keys.
func WithKeys(keys Keys) Option {
	return func(s *Store) {
		if keys.Appearance != "" {
			s.keys.Appearance = keys.Appearance
		}
		if keys.Display != "" {
			s.keys.Display = keys.Display
		}
	}
}

// WithDefaults overrides the values used when nothing valid is stored.
// Invalid defaults are ignored.
func WithDefaults(p Preferences) Option {
	return func(s *Store) {
		if p.Appearance.Valid() {
			s.defaults.Appearance = p.Appearance
		}
		if p.Display.Valid() {
			s.defaults.Display = p.Display
		}
	}
}

// WithAmbient sets the signal used to resolve the system appearance.
func WithAmbient(a Ambient) Option {
	return func(s *Store) {
		s.ambient = a
	}
}

// WithLogger sets the logger for storage degradation messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// Open loads both preferences from kv and returns the store. Missing,
// unreadable or invalid values fall back to the defaults; Open never fails.
// A nil kv keeps preferences in memory only.
func Open(kv KV, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		keys:     DefaultKeys(),
		defaults: DefaultPreferences(),
		ambient:  Fixed(false),
		logger:   log.Default(),
		subs:     make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.current = Preferences{
		Appearance: Appearance(s.load(s.keys.Appearance, string(s.defaults.Appearance), func(v string) bool {
			return Appearance(v).Valid()
		})),
		Display: DisplayMode(s.load(s.keys.Display, string(s.defaults.Display), func(v string) bool {
			return DisplayMode(v).Valid()
		})),
	}
	return s
}

func (s *Store) load(key string, fallback string, valid func(string) bool) string {
	if s.kv == nil {
		return fallback
	}
	value, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("could not read preference, using default", "key", key, "default", fallback, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}
	if !valid(value) {
		s.logger.Debug("ignoring unrecognized stored preference", "key", key, "value", value, "default", fallback)
		return fallback
	}
	return value
}

// Keys returns the storage keys in use.
func (s *Store) Keys() Keys {
	return s.keys
}

// Defaults returns the fallback preferences.
func (s *Store) Defaults() Preferences {
	return s.defaults
}

// Preferences returns the current raw preferences.
func (s *Store) Preferences() Preferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Get returns the current preferences and the resolved appearance.
func (s *Store) Get() Snapshot {
	return Resolve(s.Preferences(), s.ambient)
}

// SetAppearanceMode persists a and then makes it current.
func (s *Store) SetAppearanceMode(a Appearance) error {
	if !a.Valid() {
		return fmt.Errorf("%w: appearance %q", ErrInvalidValue, a)
	}
	s.mu.Lock()
	s.persist(s.keys.Appearance, string(a))
	s.current.Appearance = a
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetDisplayMode persists d and then makes it current.
func (s *Store) SetDisplayMode(d DisplayMode) error {
	if !d.Valid() {
		return fmt.Errorf("%w: display mode %q", ErrInvalidValue, d)
	}
	s.mu.Lock()
	s.persist(s.keys.Display, string(d))
	s.current.Display = d
	s.mu.Unlock()

	s.notify()
	return nil
}

// Set applies both preferences. Nothing changes if either value is invalid.
func (s *Store) Set(p Preferences) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.persist(s.keys.Appearance, string(p.Appearance))
	s.persist(s.keys.Display, string(p.Display))
	s.current = p
	s.mu.Unlock()

	s.notify()
	return nil
}

// Update runs fn on the current preferences under the write lock and applies
// what it returns. An error from fn, or an invalid result, leaves the store
// untouched.
func (s *Store) Update(fn func(Preferences) (Preferences, error)) error {
	s.mu.Lock()
	next, err := fn(s.current)
	if err == nil {
		err = next.Validate()
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.persist(s.keys.Appearance, string(next.Appearance))
	s.persist(s.keys.Display, string(next.Display))
	s.current = next
	s.mu.Unlock()

	s.notify()
	return nil
}

// Reset removes both stored values and restores the defaults.
func (s *Store) Reset() {
	s.mu.Lock()
	if s.kv != nil {
		for _, key := range []string{s.keys.Appearance, s.keys.Display} {
			if err := s.kv.Delete(key); err != nil {
				s.logger.Warn("could not clear stored preference", "key", key, "error", err)
			}
		}
	}
	s.current = s.defaults
	s.mu.Unlock()

	s.notify()
}

// persist writes one value. Failures are logged and swallowed: the caller
// still updates memory, so the change lasts for the session.
func (s *Store) persist(key, value string) {
	if s.kv == nil {
		return
	}
	if err := s.kv.Set(key, value); err != nil {
		s.logger.Warn("could not persist preference, keeping it for this session", "key", key, "value", value, "error", err)
	}
}

// Subscribe registers fn to run after every change. The returned function
// removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (cancel func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, id)
			s.subMu.Unlock()
		})
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	fns := make([]func(Snapshot), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	if len(fns) == 0 {
		return
	}
	snap := s.Get()
	for _, fn := range fns {
		fn(snap)
	}
}
