package state

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moodfood/restaurant-floor/internal/catalog"
	"github.com/moodfood/restaurant-floor/internal/model"
	"github.com/moodfood/restaurant-floor/internal/snapshot"
)

const dateLayout = "2006-01-02"

// Store is the session-owned aggregate store. All operations run under one
// mutex, so each runs to completion before the next; mutations clone the
// tree, apply, swap and persist. The clock and id generator are injectable
// so tests are deterministic.
type Store struct {
	mu    sync.RWMutex
	state *model.State

	catalog *catalog.Catalog
	snap    snapshot.Store

	now   func() time.Time
	newID func(prefix string) string
}

// Option customizes a Store at construction.
type Option func(*Store)

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator replaces the id generator. The generator receives a short
// entity prefix ("g", "it", "rsv", "pl") and must return a unique id.
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) { s.newID = gen }
}

// New builds a Store over the given catalog and snapshot backend. The tree
// is not loaded yet; call Load before serving.
func New(cat *catalog.Catalog, snap snapshot.Store, opts ...Option) *Store {
	s := &Store{
		catalog: cat,
		snap:    snap,
		now:     time.Now,
		newID:   func(prefix string) string { return prefix + "-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog returns the read-only reference catalog the store was built with.
func (s *Store) Catalog() *catalog.Catalog { return s.catalog }

// Load reads the persisted snapshot and normalizes it into the live tree.
// Any load or decode failure degrades to the default state; Load itself
// never fails.
func (s *Store) Load(ctx context.Context) {
	blob, err := s.snap.Load(ctx)
	if err != nil && !errors.Is(err, snapshot.ErrNotFound) {
		log.Printf("state: snapshot load failed, starting from defaults: %v", err)
	}
	st := Normalize(blob, s.catalog, s.now(), s.newID)
	s.mu.Lock()
	s.state = st
	s.mu.Unlock()
}

// Snapshot returns a deep copy of the live tree for read-only rendering.
func (s *Store) Snapshot() *model.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// view runs fn against the live tree under the read lock. fn must not
// mutate or retain the tree.
func (s *Store) view(fn func(st *model.State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// mutate clones the live tree, applies fn and, when fn succeeds, swaps the
// clone in and persists it. A persistence failure is logged and swallowed:
// the in-memory tree stays correct for the session.
func (s *Store) mutate(fn func(st *model.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.state = next
	s.persist(next)
	return nil
}

func (s *Store) persist(st *model.State) {
	blob, err := json.Marshal(st)
	if err != nil {
		log.Printf("state: snapshot encode failed: %v", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.snap.Save(ctx, blob); err != nil {
		log.Printf("state: snapshot save failed: %v", err)
	}
}

// today returns the current date the way reservations store it.
func (s *Store) today() string { return s.now().Format(dateLayout) }
