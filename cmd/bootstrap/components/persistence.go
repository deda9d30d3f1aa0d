package components

import (
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/infra/readstore"
	"car-rental-api/internal/infra/uow"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Repositories are built per transaction by the unit of work; only the read
// side is bound to the pool here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Car
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CarReadQueries)),
		),
		fx.Annotate(
			readstore.NewCarReadStore,
			fx.As(new(queries.CarReadStore)),
		),
		// Rental
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RentalReadQueries)),
		),
		fx.Annotate(
			readstore.NewRentalReadStore,
			fx.As(new(queries.RentalReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
		NewSnapshotReader,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pg.Queries {
	return pg.New()
}

func NewDBTX(pool *pgxpool.Pool) pg.DBTX {
	return pool
}

// NewSnapshotReader hands the unit of work's read-only transactions to the
// readstores.
func NewSnapshotReader(u shared.UnitOfWork) readstore.SnapshotReader {
	return u
}
