package cache

import (
	"context"
	"errors"

	"github.com/Fenny-Huy/AWE-Store/internal/domain"
)

// SnapshotCache stores the last successfully fetched cart per customer. The
// synchronizer only ever replaces entries wholesale; there is no partial
// update operation on purpose.
type SnapshotCache interface {
	Get(ctx context.Context, customerID string) (*domain.CartSnapshot, error)
	Set(ctx context.Context, customerID string, snapshot *domain.CartSnapshot) error
	Delete(ctx context.Context, customerID string) error
}

var ErrCacheMiss = errors.New("cache miss")
