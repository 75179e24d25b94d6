// Package memory holds the shared purchase order collection for the lifetime
// of the process. There is no durability: restarting the server starts from
// an empty (or freshly seeded) collection.
package memory

import (
	"sync"

	"github.com/orderdesk/po-backoffice/internal/domain/order"
)

// Store is the in-memory order collection. Callers mutate it by
// whole-collection replacement: Read a snapshot, derive a new collection,
// then ReplaceAll. The mutex serializes the two calls individually, not the
// read-derive-replace sequence as a whole.
type Store struct {
	mu     sync.RWMutex
	orders []order.PurchaseOrder
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Read returns a copy of the order collection in insertion order
func (s *Store) Read() []order.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]order.PurchaseOrder(nil), s.orders...)
}

// ReplaceAll swaps the entire collection for the given one
func (s *Store) ReplaceAll(orders []order.PurchaseOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]order.PurchaseOrder(nil), orders...)
}
