// Package store owns the session's commerce state: the shopping cart and
// the favorites set. Each store is created once per process, mutated only
// through its operation set, and notifies subscribed observers
// synchronously after every state change.
package store

import (
	"sync"

	"github.com/electricpro/storefront/internal/models"
)

// CartObserver receives the post-mutation snapshot. Observers run
// synchronously on the mutating goroutine, under the store lock, and must
// not call back into the store.
type CartObserver func(models.CartSnapshot)

// CartStore is the single source of truth for in-progress purchase
// selections. Items keep insertion order; ids are unique; quantity is at
// least 1 while an item is present.
type CartStore struct {
	mu        sync.RWMutex
	items     []models.CartItem
	index     map[string]int // id -> position in items
	observers map[int]CartObserver
	nextSub   int
}

func NewCartStore() *CartStore {
	return &CartStore{
		index:     make(map[string]int),
		observers: make(map[int]CartObserver),
	}
}

// Subscribe registers an observer and returns its unsubscribe function.
func (s *CartStore) Subscribe(observer CartObserver) func() {
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

// AddItem merges the candidate into the cart: an existing id has its
// quantity incremented, a new id is appended. Quantities below 1 are
// treated as 1. Any well-formed candidate is accepted.
func (s *CartStore) AddItem(item models.CartItem, quantity int) models.CartSnapshot {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if pos, ok := s.index[item.ID]; ok {
		s.items[pos].Quantity += quantity
	} else {
		item.Quantity = quantity
		s.index[item.ID] = len(s.items)
		s.items = append(s.items, item)
	}

	snapshot := s.snapshotLocked()
	s.notifyLocked(snapshot)

	return snapshot
}

// RemoveItem deletes the entry with the given id. Removing an absent id is
// a no-op, not an error, and observers are not notified.
func (s *CartStore) RemoveItem(id string) models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeLocked(id) {
		return s.snapshotLocked()
	}

	snapshot := s.snapshotLocked()
	s.notifyLocked(snapshot)

	return snapshot
}

// UpdateQuantity sets the item's quantity to max(0, quantity); zero
// removes the item entirely. Updating an absent id is a no-op.
func (s *CartStore) UpdateQuantity(id string, quantity int) models.CartSnapshot {
	if quantity < 0 {
		quantity = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[id]
	if !ok {
		return s.snapshotLocked()
	}

	if quantity == 0 {
		s.removeLocked(id)
	} else {
		s.items[pos].Quantity = quantity
	}

	snapshot := s.snapshotLocked()
	s.notifyLocked(snapshot)

	return snapshot
}

// Clear removes all items and resets the aggregates.
func (s *CartStore) Clear() models.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := len(s.items) > 0
	s.items = nil
	s.index = make(map[string]int)

	snapshot := s.snapshotLocked()
	if changed {
		s.notifyLocked(snapshot)
	}

	return snapshot
}

// Snapshot returns a copy of the current cart state with derived totals.
func (s *CartStore) Snapshot() models.CartSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

func (s *CartStore) removeLocked(id string) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}

	s.items = append(s.items[:pos], s.items[pos+1:]...)
	delete(s.index, id)

	for i := pos; i < len(s.items); i++ {
		s.index[s.items[i].ID] = i
	}

	return true
}

func (s *CartStore) snapshotLocked() models.CartSnapshot {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)

	snapshot := models.CartSnapshot{Items: items}

	for _, item := range s.items {
		snapshot.TotalItems += item.Quantity
		snapshot.TotalPrice += ParsePrice(item.Price) * float64(item.Quantity)
	}

	return snapshot
}

func (s *CartStore) notifyLocked(snapshot models.CartSnapshot) {
	for _, observer := range s.observers {
		observer(snapshot)
	}
}
