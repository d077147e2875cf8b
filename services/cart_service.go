// Package services holds the storefront business logic that sits between the
// HTTP controllers and the repositories.
package services

import (
	"context"
	"errors"
	"log"

	"storefront/models"
	"storefront/repositories"
)

// CartStore is the cart state container: an insertion-ordered ledger of
// product/quantity entries, one entry per product ID. Every mutation is
// followed by a save to the storage medium under the store's key; persistence
// failures are logged and not surfaced. A store is built per request and used
// from a single goroutine.
type CartStore struct {
	storage repositories.CartStorage
	key     string
	items   []models.CartItem
}

// NewCartStore rehydrates the cart persisted under key. A missing record, or
// a record that cannot be read, yields an empty cart.
func NewCartStore(ctx context.Context, storage repositories.CartStorage, key string) *CartStore {
	store := &CartStore{storage: storage, key: key}

	state, err := storage.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, repositories.ErrCartNotFound) {
			log.Printf("cart %s: failed to load persisted state: %v", key, err)
		}
		return store
	}

	store.items = state.Items
	return store
}

// AddItem increments the quantity of the entry matching the product ID, or
// appends a new entry with quantity 1. A snapshot without an ID is rejected
// as a no-op.
func (s *CartStore) AddItem(ctx context.Context, product models.ProductSnapshot) {
	if product.ID == "" {
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	s.items = append(s.items, models.CartItem{Product: product, Quantity: 1})
	s.persist(ctx)
}

// RemoveItem decrements the entry matching productID, deleting it when the
// quantity reaches zero. An absent ID leaves the cart unchanged.
func (s *CartStore) RemoveItem(ctx context.Context, productID string) {
	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		if s.items[i].Quantity > 1 {
			s.items[i].Quantity--
		} else {
			s.items = append(s.items[:i], s.items[i+1:]...)
		}
		s.persist(ctx)
		return
	}
}

// ClearCart empties the cart.
func (s *CartStore) ClearCart(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// TotalPrice sums price times quantity over all entries. A missing price
// counts as zero.
func (s *CartStore) TotalPrice() float64 {
	var total float64
	for _, item := range s.items {
		if item.Product.Price != nil {
			total += *item.Product.Price * float64(item.Quantity)
		}
	}
	return total
}

// ItemCount returns the quantity of the entry matching productID, or 0.
func (s *CartStore) ItemCount(productID string) int {
	for _, item := range s.items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// Items returns a snapshot of the cart in insertion order.
func (s *CartStore) Items() []models.CartItem {
	snapshot := make([]models.CartItem, len(s.items))
	copy(snapshot, s.items)
	return snapshot
}

func (s *CartStore) persist(ctx context.Context) {
	state := &models.CartState{Items: s.items}
	if err := s.storage.Save(ctx, s.key, state); err != nil {
		log.Printf("cart %s: failed to persist state: %v", s.key, err)
	}
}
