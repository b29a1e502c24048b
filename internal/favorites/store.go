// Package favorites keeps the set of resorts the user has marked as favorite
// and mirrors it to durable key-value storage.
//
// Persistence is best effort. A failed write is logged and counted but never
// reported to the caller, and the in-memory set stays authoritative for the
// rest of the process lifetime.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"github.com/dom/snowseeker/internal/domain"
	"github.com/dom/snowseeker/internal/metrics"
	"github.com/dom/snowseeker/internal/repository"
	log "github.com/sirupsen/logrus"
)

// StorageKey is the preference key the favorite set is stored under.
const StorageKey = "Favorites"

// Change describes one effective mutation of the favorite set.
type Change struct {
	ResortID string
	Favorite bool
	IDs      []string // sorted snapshot after the change
}

// Observer receives changes in the order they were applied. Observers may read
// the store but must not mutate it.
type Observer func(Change)

type Store struct {
	repo repository.PreferenceRepository

	mu  sync.RWMutex
	ids map[string]struct{}

	obsMu     sync.Mutex
	observers map[int]Observer
	nextObsID int

	// pending is appended to under mu, so it holds changes in mutation
	// order. dispatchMu lets one goroutine at a time drain it.
	queueMu    sync.Mutex
	pending    []Change
	dispatchMu sync.Mutex
}

// Load builds a store from whatever is persisted under StorageKey. A missing
// entry, a read error or an undecodable value all produce an empty set.
func Load(ctx context.Context, repo repository.PreferenceRepository) *Store {
	s := &Store{
		repo:      repo,
		ids:       make(map[string]struct{}),
		observers: make(map[int]Observer),
	}

	data, err := repo.Get(ctx, StorageKey)
	switch {
	case errors.Is(err, domain.ErrPreferenceNotFound):
		log.Debug("favorites: nothing persisted yet, starting empty")
	case err != nil:
		log.Warnf("favorites: failed to read stored favorites, starting empty: %v", err)
		metrics.FavoritesLoadFailures.Inc()
	default:
		ids, err := decodeIDs(data)
		if err != nil {
			log.Warnf("favorites: stored favorites are malformed, starting empty: %v", err)
			metrics.FavoritesLoadFailures.Inc()
			break
		}
		for _, id := range ids {
			s.ids[id] = struct{}{}
		}
	}

	metrics.FavoritesCount.Set(float64(len(s.ids)))
	return s
}

var errNotStringList = errors.New("favorites are not a list of strings")

// decodeIDs parses a JSON array of strings. null, either as the whole value
// or as a member, is rejected rather than read as an empty list or id.
func decodeIDs(data []byte) ([]string, error) {
	var decoded []*string
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, err
	}
	if decoded == nil {
		return nil, errNotStringList
	}

	ids := make([]string, len(decoded))
	for i, id := range decoded {
		if id == nil {
			return nil, errNotStringList
		}
		ids[i] = *id
	}
	return ids, nil
}

func (s *Store) IsFavorite(resortID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[resortID]
	return ok
}

// Add marks resortID as favorite and persists the whole set.
func (s *Store) Add(ctx context.Context, resortID string) {
	s.mutate(ctx, resortID, true)
}

// Remove clears resortID and persists the whole set.
func (s *Store) Remove(ctx context.Context, resortID string) {
	s.mutate(ctx, resortID, false)
}

// IDs returns the favorite ids in ascending order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedLocked()
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}

// Subscribe registers fn to be called after every effective change. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.obsMu.Lock()
	id := s.nextObsID
	s.nextObsID++
	s.observers[id] = fn
	s.obsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.obsMu.Lock()
			delete(s.observers, id)
			s.obsMu.Unlock()
		})
	}
}

func (s *Store) mutate(ctx context.Context, resortID string, favorite bool) {
	s.mu.Lock()
	_, present := s.ids[resortID]
	changed := present != favorite
	if favorite {
		s.ids[resortID] = struct{}{}
	} else {
		delete(s.ids, resortID)
	}

	// The caller never sees a persistence failure.
	if err := s.persist(ctx); err != nil {
		log.Errorf("favorites: failed to persist after update of %q: %v", resortID, err)
		metrics.FavoritesPersistFailures.Inc()
	}

	metrics.FavoritesCount.Set(float64(len(s.ids)))
	if changed {
		s.queueMu.Lock()
		s.pending = append(s.pending, Change{ResortID: resortID, Favorite: favorite, IDs: s.sortedLocked()})
		s.queueMu.Unlock()
	}
	s.mu.Unlock()

	if changed {
		s.dispatch()
	}
}

// dispatch delivers queued changes in order. A caller returns only once its
// own change has been delivered, possibly by another goroutine.
func (s *Store) dispatch() {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	for {
		s.queueMu.Lock()
		if len(s.pending) == 0 {
			s.queueMu.Unlock()
			return
		}
		c := s.pending[0]
		s.pending = s.pending[1:]
		s.queueMu.Unlock()

		s.notify(c)
	}
}

// persist overwrites the stored value with the full current set.
// Must be called with s.mu held.
func (s *Store) persist(ctx context.Context) error {
	data, err := json.Marshal(s.sortedLocked())
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, StorageKey, data)
}

func (s *Store) sortedLocked() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s *Store) notify(c Change) {
	s.obsMu.Lock()
	observers := make([]Observer, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.obsMu.Unlock()

	for _, fn := range observers {
		cc := c
		cc.IDs = slices.Clone(c.IDs)
		fn(cc)
	}
}
