package request

import (
	"github.com/shopspring/decimal"
)

type CreateCarRequest struct {
	Make         string           `json:"make" binding:"required"`
	Model        string           `json:"model" binding:"required"`
	Year         int              `json:"year" binding:"required"`
	PricePerHour *decimal.Decimal `json:"price_per_hour" binding:"required"`
}

// UpdateCarRequest is a partial update. Omitted fields keep their value.
type UpdateCarRequest struct {
	Make         *string          `json:"make"`
	Model        *string          `json:"model"`
	Year         *int             `json:"year"`
	PricePerHour *decimal.Decimal `json:"price_per_hour"`
}

func (r *UpdateCarRequest) IsEmpty() bool {
	return r.Make == nil && r.Model == nil && r.Year == nil && r.PricePerHour == nil
}
