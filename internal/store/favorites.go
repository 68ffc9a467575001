package store

import (
	"sync"

	"github.com/electricpro/storefront/internal/models"
)

// FavoritesObserver receives the post-mutation snapshot, under the same
// constraints as CartObserver.
type FavoritesObserver func(models.FavoritesSnapshot)

// FavoritesStore is a set of liked product references keyed by id. No
// quantities, no price aggregation.
type FavoritesStore struct {
	mu        sync.RWMutex
	entries   []models.FavoriteEntry
	index     map[string]int
	observers map[int]FavoritesObserver
	nextSub   int
}

func NewFavoritesStore() *FavoritesStore {
	return &FavoritesStore{
		index:     make(map[string]int),
		observers: make(map[int]FavoritesObserver),
	}
}

func (s *FavoritesStore) Subscribe(observer FavoritesObserver) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.observers[id] = observer

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.observers, id)
	}
}

// Add inserts the entry unless its id is already present. Adding an
// existing id is a no-op, which makes Add idempotent.
func (s *FavoritesStore) Add(entry models.FavoriteEntry) models.FavoritesSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[entry.ID]; ok {
		return s.snapshotLocked()
	}

	s.index[entry.ID] = len(s.entries)
	s.entries = append(s.entries, entry)

	snapshot := s.snapshotLocked()
	s.notifyLocked(snapshot)

	return snapshot
}

// Remove deletes the entry if present; absent ids are a no-op.
func (s *FavoritesStore) Remove(id string) models.FavoritesSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return s.snapshotLocked()
	}

	s.entries = append(s.entries[:pos], s.entries[pos+1:]...)
	delete(s.index, id)

	for i := pos; i < len(s.entries); i++ {
		s.index[s.entries[i].ID] = i
	}

	snapshot := s.snapshotLocked()
	s.notifyLocked(snapshot)

	return snapshot
}

func (s *FavoritesStore) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[id]

	return ok
}

func (s *FavoritesStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

func (s *FavoritesStore) Snapshot() models.FavoritesSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *FavoritesStore) snapshotLocked() models.FavoritesSnapshot {
	entries := make([]models.FavoriteEntry, len(s.entries))
	copy(entries, s.entries)

	return models.FavoritesSnapshot{Entries: entries, Count: len(entries)}
}

func (s *FavoritesStore) notifyLocked(snapshot models.FavoritesSnapshot) {
	for _, observer := range s.observers {
		observer(snapshot)
	}
}
