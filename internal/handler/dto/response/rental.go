package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"
)

type RentalResponse struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	CarID      int64      `json:"car_id"`
	RentalDate time.Time  `json:"rental_date"`
	ReturnDate *time.Time `json:"return_date"`
	TotalFee   *string    `json:"total_fee"`
}

type RentResponse struct {
	Message string         `json:"message"`
	Rental  RentalResponse `json:"rental"`
}

type ReturnResponse struct {
	Message  string         `json:"message"`
	Rental   RentalResponse `json:"rental"`
	TotalFee string         `json:"total_fee"`
}

func FromRentalView(v *queries.RentalView) RentalResponse {
	resp := RentalResponse{
		ID:         v.ID,
		UserID:     v.UserID,
		CarID:      v.CarID,
		RentalDate: v.RentalDate,
		ReturnDate: v.ReturnDate,
	}
	if v.TotalFee != nil {
		fee := v.TotalFee.StringFixed(2)
		resp.TotalFee = &fee
	}
	return resp
}

func FromRentalPage(p *queries.Page[queries.RentalView]) PageResponse[RentalResponse] {
	items := make([]RentalResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, FromRentalView(&p.Items[i]))
	}
	return PageResponse[RentalResponse]{Items: items, Pagination: p.Pagination}
}
