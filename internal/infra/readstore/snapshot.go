package readstore

import (
	"context"

	"car-rental-api/internal/infra/pg"
)

// SnapshotReader runs fn inside one read-only transaction. Searches use it so
// the COUNT and the page SELECT agree with each other.
type SnapshotReader interface {
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pg.DBTX) error) error
}
