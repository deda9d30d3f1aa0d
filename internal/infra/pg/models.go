package pg

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           int64
	Email        string
	PasswordHash string
	Name         string
	Surname      string
	Role         string
	CreatedAt    pgtype.Timestamptz
}

type Merchants struct {
	ID          int64
	UserID      int64
	CompanyName string
}

type Cars struct {
	ID           int64
	Make         string
	Model        string
	Year         int32
	Status       string
	PricePerHour pgtype.Numeric
	MerchantID   int64
	CreatedAt    pgtype.Timestamptz
}

type Rentals struct {
	ID         int64
	UserID     int64
	CarID      int64
	RentalDate pgtype.Timestamptz
	ReturnDate pgtype.Timestamptz
	TotalFee   pgtype.Numeric
}

// UserWithMerchantRow is a user joined with its optional merchant profile.
type UserWithMerchantRow struct {
	Users
	MerchantID  pgtype.Int8
	CompanyName pgtype.Text
}

type OverdueRentalRow struct {
	RentalID   int64
	RentalDate pgtype.Timestamptz
	UserID     int64
	UserEmail  string
	CarID      int64
	CarMake    string
	CarModel   string
}
