package cart

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Fenny-Huy/AWE-Store/internal/cache"
	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

// Gateway is the slice of the backend client the synchronizer needs.
type Gateway interface {
	Cart(ctx context.Context, customerID string) ([]domain.CartLine, error)
	AddCartItem(ctx context.Context, customerID, productID string, quantity int) error
	RemoveCartItem(ctx context.Context, customerID, productID string) error
}

// Synchronizer keeps a read-through snapshot of the authoritative
// per-customer cart. Every mutation is followed by a full re-fetch; the
// snapshot is replaced wholesale and never patched in place, so the displayed
// total always reflects the post-mutation server state.
//
// Fetches are tagged with a generation captured at issue time. A response
// whose generation is no longer current (a newer fetch was issued, or the
// active customer changed) is discarded instead of overwriting newer state.
type Synchronizer struct {
	gw    Gateway
	cache cache.SnapshotCache
	log   *logrus.Logger
	sfg   singleflight.Group // dedupes concurrent fetches per customer

	activateTimeout time.Duration

	m          sync.Mutex
	customerID string
	generation uint64
}

func NewSynchronizer(gw Gateway, snapshots cache.SnapshotCache, log *logrus.Logger) *Synchronizer {
	return &Synchronizer{
		gw:              gw,
		cache:           snapshots,
		log:             log,
		activateTimeout: 10 * time.Second,
	}
}

// Activate switches the synchronizer to a new customer. It is wired as the
// session manager's customer-change subscriber: the previous snapshot is
// invalidated and a fresh fetch is issued immediately. Any in-flight fetch
// for the previous customer becomes stale the moment the generation moves.
func (s *Synchronizer) Activate(customerID string) {
	s.m.Lock()
	s.customerID = customerID
	s.generation++
	s.m.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.activateTimeout)
	defer cancel()

	if err := s.cache.Delete(ctx, customerID); err != nil {
		s.log.WithError(err).Warn("snapshot invalidation failed")
	}
	if _, err := s.refresh(ctx, customerID); err != nil {
		s.log.WithError(err).WithField("customer_id", customerID).
			Warn("initial cart fetch failed, cart shown as unavailable")
	}
}

// Snapshot returns the cart for the active customer, reading through the
// snapshot cache: a cached entry is served as-is, a miss triggers a fetch.
func (s *Synchronizer) Snapshot(ctx context.Context) (*domain.CartSnapshot, error) {
	customerID, err := s.activeCustomer()
	if err != nil {
		return nil, err
	}

	snapshot, err := s.cache.Get(ctx, customerID)
	if err == nil {
		return snapshot, nil
	}
	return s.refresh(ctx, customerID)
}

// Refresh always fetches the authoritative cart, bypassing the cached
// snapshot. Checkout uses this right before building its request.
func (s *Synchronizer) Refresh(ctx context.Context) (*domain.CartSnapshot, error) {
	customerID, err := s.activeCustomer()
	if err != nil {
		return nil, err
	}
	return s.refresh(ctx, customerID)
}

// AddItem issues the mutation and, on success, re-fetches the full cart. No
// optimistic local increment happens: one extra round trip buys a total that
// cannot drift from the server.
func (s *Synchronizer) AddItem(ctx context.Context, productID string, quantity int) (*domain.CartSnapshot, error) {
	customerID, err := s.activeCustomer()
	if err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}

	if err := s.gw.AddCartItem(ctx, customerID, productID, quantity); err != nil {
		return nil, &AddItemError{ProductID: productID, Err: err}
	}
	return s.refresh(ctx, customerID)
}

func (s *Synchronizer) RemoveItem(ctx context.Context, productID string) (*domain.CartSnapshot, error) {
	customerID, err := s.activeCustomer()
	if err != nil {
		return nil, err
	}

	if err := s.gw.RemoveCartItem(ctx, customerID, productID); err != nil {
		return nil, &RemoveItemError{ProductID: productID, Err: err}
	}
	return s.refresh(ctx, customerID)
}

func (s *Synchronizer) activeCustomer() (string, error) {
	s.m.Lock()
	defer s.m.Unlock()
	if s.customerID == "" {
		return "", ErrNoActiveCustomer
	}
	return s.customerID, nil
}

func (s *Synchronizer) refresh(ctx context.Context, customerID string) (*domain.CartSnapshot, error) {
	s.m.Lock()
	s.generation++
	issued := s.generation
	s.m.Unlock()

	v, err, _ := s.sfg.Do(customerID, func() (interface{}, error) {
		lines, err := s.gw.Cart(ctx, customerID)
		if err != nil {
			return nil, &FetchError{CustomerID: customerID, Err: err}
		}
		return &domain.CartSnapshot{
			CustomerID: customerID,
			Lines:      lines,
			FetchedAt:  time.Now(),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	snapshot := v.(*domain.CartSnapshot)

	s.m.Lock()
	stale := s.customerID != customerID || s.generation != issued
	s.m.Unlock()
	if stale {
		s.log.WithField("customer_id", customerID).Debug("discarding stale cart response")
		return nil, ErrStaleResponse
	}

	if err := s.cache.Set(ctx, customerID, snapshot); err != nil {
		s.log.WithError(err).Warn("snapshot cache update failed")
	}
	return snapshot, nil
}
