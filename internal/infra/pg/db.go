// Package pg holds the SQL statements of the service and the row types they scan into.
package pg

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Constraint names referenced when translating unique violations.
const (
	ConstraintUsersEmail      = "users_email_key"
	ConstraintOpenRentalUser  = "rentals_open_user_key"
	ConstraintOpenRentalCar   = "rentals_open_car_key"
	ConstraintMerchantsUserID = "merchants_user_id_key"
)

type Queries struct{}

func New() *Queries {
	return &Queries{}
}
