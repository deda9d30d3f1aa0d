package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserView represents a user with its optional merchant profile
type UserView struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Role        string    `json:"role"`
	MerchantID  *int64    `json:"merchant_id,omitempty"`
	CompanyName *string   `json:"company_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CarView struct {
	ID           int64           `json:"id"`
	Make         string          `json:"make"`
	Model        string          `json:"model"`
	Year         int             `json:"year"`
	Status       string          `json:"status"`
	PricePerHour decimal.Decimal `json:"price_per_hour"`
	MerchantID   int64           `json:"merchant_id"`
	CreatedAt    time.Time       `json:"created_at"`
}

type RentalView struct {
	ID         int64            `json:"id"`
	UserID     int64            `json:"user_id"`
	CarID      int64            `json:"car_id"`
	RentalDate time.Time        `json:"rental_date"`
	ReturnDate *time.Time       `json:"return_date"`
	TotalFee   *decimal.Decimal `json:"total_fee"`
}

// OverdueRentalView is an open rental that has run longer than the configured threshold
type OverdueRentalView struct {
	RentalID   int64
	RentalDate time.Time
	UserID     int64
	UserEmail  string
	CarID      int64
	CarMake    string
	CarModel   string
}
