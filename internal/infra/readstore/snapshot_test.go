//go:build unit

package readstore

import (
	"context"

	"car-rental-api/internal/infra/pg"
)

// snapshotDB stands in for the read-only transaction handle.
type snapshotDB struct {
	pg.DBTX
}

type stubSnapshots struct {
	db    *snapshotDB
	calls int
	err   error
}

func newStubSnapshots() *stubSnapshots {
	return &stubSnapshots{db: &snapshotDB{}}
}

func (s *stubSnapshots) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pg.DBTX) error) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	return fn(ctx, s.db)
}
