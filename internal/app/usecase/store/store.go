package store

import (
	"iter"
	"slices"
	"strings"
	"sync"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
)

// Store is the in-memory order list of one admin user. It performs no I/O.
type Store struct {
	mutex  sync.RWMutex
	orders entity.Orders
}

func New() *Store {
	return &Store{}
}

// Load replaces the whole collection.
func (s *Store) Load(orders entity.Orders) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.orders = slices.Clone(orders)
}

// View yields the orders whose product name contains query (case-insensitive),
// newest first. Filtering and sorting are redone on every iteration.
func (s *Store) View(query string) iter.Seq[entity.Order] {
	return func(yield func(entity.Order) bool) {
		for _, order := range s.filter(query) {
			if !yield(order) {
				return
			}
		}
	}
}

func (s *Store) Replace(id entity.OrderID, updated entity.Order) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return
	}

	s.orders[idx] = updated
}

func (s *Store) Remove(id entity.OrderID) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return
	}

	s.orders = slices.Delete(s.orders, idx, idx+1)
}

func (s *Store) Get(id entity.OrderID) (entity.Order, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	idx := s.index(id)
	if idx < 0 {
		return entity.Order{}, false
	}

	return s.orders[idx], true
}

func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return len(s.orders)
}

func (s *Store) filter(query string) entity.Orders {
	s.mutex.RLock()
	query = strings.ToLower(query)
	matched := make(entity.Orders, 0, len(s.orders))
	for _, order := range s.orders {
		if strings.Contains(strings.ToLower(order.ProductName), query) {
			matched = append(matched, order)
		}
	}
	s.mutex.RUnlock()

	slices.SortStableFunc(matched, func(a, b entity.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return matched
}

func (s *Store) index(id entity.OrderID) int {
	return slices.IndexFunc(s.orders, func(order entity.Order) bool {
		return order.ID == id
	})
}
