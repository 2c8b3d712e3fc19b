// Package store holds the storefront's cart and wishlist: a single persisted
// state container with derived aggregate queries. One Store is built at
// startup and injected into every consumer; it is the only writer and reader
// of both collections.
package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/catalog"
)

// CartItem is one cart line: a product snapshot and its quantity.
// At most one line exists per product id; repeat adds merge.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// WishlistItem marks a product as wished for. Set semantics over product id.
type WishlistItem struct {
	Product catalog.Product `json:"product"`
}

// Change describes a single successful mutation, delivered to subscribers
// alongside the snapshot it produced.
type Change struct {
	Op        string `json:"op"`
	ProductID string `json:"productId,omitempty"`
}

const (
	OpCartItemAdded       = "cart_item_added"
	OpCartItemRemoved     = "cart_item_removed"
	OpCartQuantityUpdated = "cart_quantity_updated"
	OpCartCleared         = "cart_cleared"
	OpWishlistItemAdded   = "wishlist_item_added"
	OpWishlistItemRemoved = "wishlist_item_removed"
)

// Listener receives the change and the immutable post-mutation snapshot.
// Listeners run synchronously on the mutating goroutine; keep them cheap and
// hand anything slow to a goroutine of their own.
type Listener func(change Change, snap Snapshot)

// Store is the cart/wishlist state container. A single mutex covers every
// read-modify-write; persistence happens off the mutation path on a writer
// goroutine that applies snapshots strictly in mutation order.
type Store struct {
	mu        sync.Mutex
	cart      []CartItem
	wishlist  []WishlistItem
	listeners []Listener

	persister Persister
	logger    *zap.Logger

	pendingMu sync.Mutex
	pending   *Snapshot
	wake      chan struct{}
	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// New builds the Store and rehydrates it from the persister. A missing or
// corrupt snapshot yields the empty default; rehydration never fails the
// constructor.
func New(p Persister, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Store{
		persister: p,
		logger:    logger.Named("store"),
		wake:      make(chan struct{}, 1),
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}

	if p != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		snap, err := p.Load(ctx)
		switch {
		case errors.Is(err, ErrNoSnapshot):
			// first run
		case err != nil:
			s.logger.Warn("rehydrate failed, starting empty", zap.Error(err))
		default:
			s.cart = snap.Cart
			s.wishlist = snap.Wishlist
		}
	}

	go s.persistLoop()

	return s
}

// Close flushes any pending snapshot and stops the persistence writer.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.quit)
		<-s.done
	})
}

// Subscribe registers a listener invoked after each successful mutation.
func (s *Store) Subscribe(l Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, l)
}

// ========================
// mutations
// ========================

// AddToCart merges into an existing line for the same product id, or appends
// a new line at the end. Quantity must be at least 1.
func (s *Store) AddToCart(p catalog.Product, quantity int) error {
	if p.ID == "" {
		return ErrInvalidProduct
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	s.mu.Lock()
	merged := false
	for i := range s.cart {
		if s.cart[i].Product.ID == p.ID {
			s.cart[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart = append(s.cart, CartItem{Product: p, Quantity: quantity})
	}
	s.afterMutation(Change{Op: OpCartItemAdded, ProductID: p.ID})
	return nil
}

// RemoveFromCart drops the line for productID. Absent ids are a no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			s.afterMutation(Change{Op: OpCartItemRemoved, ProductID: productID})
			return
		}
	}
	s.mu.Unlock()
}

// UpdateQuantity sets the line's quantity to exactly quantity. A value of
// zero or less removes the line. Absent ids are a no-op.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}

	s.mu.Lock()
	for i := range s.cart {
		if s.cart[i].Product.ID == productID {
			s.cart[i].Quantity = quantity
			s.afterMutation(Change{Op: OpCartQuantityUpdated, ProductID: productID})
			return
		}
	}
	s.mu.Unlock()
}

// ClearCart empties the cart. The wishlist is untouched.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.afterMutation(Change{Op: OpCartCleared})
}

// AddToWishlist is idempotent: adding a product already present is a no-op.
func (s *Store) AddToWishlist(p catalog.Product) error {
	if p.ID == "" {
		return ErrInvalidProduct
	}

	s.mu.Lock()
	for i := range s.wishlist {
		if s.wishlist[i].Product.ID == p.ID {
			s.mu.Unlock()
			return nil
		}
	}
	s.wishlist = append(s.wishlist, WishlistItem{Product: p})
	s.afterMutation(Change{Op: OpWishlistItemAdded, ProductID: p.ID})
	return nil
}

// RemoveFromWishlist removes if present; absent ids are a no-op.
func (s *Store) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	for i := range s.wishlist {
		if s.wishlist[i].Product.ID == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.afterMutation(Change{Op: OpWishlistItemRemoved, ProductID: productID})
			return
		}
	}
	s.mu.Unlock()
}

// afterMutation snapshots state, enqueues the persist write, and notifies
// listeners. Called with s.mu held; releases it.
func (s *Store) afterMutation(change Change) {
	snap := s.snapshotLocked()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.enqueuePersist(snap)
	for _, l := range listeners {
		l(change, snap)
	}
}

// ========================
// reads
// ========================

// Cart returns the cart lines in insertion order. The slice is a copy.
func (s *Store) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Wishlist returns the wishlist entries in insertion order. The slice is a copy.
func (s *Store) Wishlist() []WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]WishlistItem, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

func (s *Store) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.wishlist {
		if s.wishlist[i].Product.ID == productID {
			return true
		}
	}
	return false
}

// CartTotal is the exact rupee sum of price times quantity over all lines.
func (s *Store) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for i := range s.cart {
		total += s.cart[i].Product.Price * int64(s.cart[i].Quantity)
	}
	return total
}

// CartCount is the total unit count across all lines, not the line count.
func (s *Store) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.cart {
		count += s.cart[i].Quantity
	}
	return count
}

// Snapshot returns the current state as an immutable snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	snap := Snapshot{
		Version:  SnapshotVersion,
		Cart:     make([]CartItem, len(s.cart)),
		Wishlist: make([]WishlistItem, len(s.wishlist)),
	}
	copy(snap.Cart, s.cart)
	copy(snap.Wishlist, s.wishlist)
	return snap
}

// ========================
// persistence writer
// ========================

// enqueuePersist hands the snapshot to the writer goroutine without blocking
// the mutation. Snapshots coalesce: only the newest pending one is written,
// and writes never reorder because a single goroutine performs them.
func (s *Store) enqueuePersist(snap Snapshot) {
	if s.persister == nil {
		return
	}

	s.pendingMu.Lock()
	s.pending = &snap
	s.pendingMu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Store) persistLoop() {
	defer close(s.done)

	for {
		select {
		case <-s.wake:
			s.drainPending()
		case <-s.quit:
			s.drainPending()
			return
		}
	}
}

func (s *Store) drainPending() {
	for {
		s.pendingMu.Lock()
		snap := s.pending
		s.pending = nil
		s.pendingMu.Unlock()

		if snap == nil {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := s.persister.Save(ctx, *snap)
		cancel()
		if err != nil {
			// Best effort: the session keeps working in memory and the next
			// mutation enqueues a fresh snapshot.
			s.logger.Warn("persist failed", zap.Error(err))
		}
	}
}
