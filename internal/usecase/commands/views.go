package commands

import (
	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/usecase/queries"
)

// Commands answer with the same views the read side serves.

func toUserView(u *user.User) *queries.UserView {
	v := &queries.UserView{
		ID:        u.ID(),
		Email:     u.Email().Value(),
		Name:      u.Name(),
		Surname:   u.Surname(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
	if m := u.Merchant(); m != nil {
		merchantID := m.ID()
		company := m.CompanyName()
		v.MerchantID = &merchantID
		v.CompanyName = &company
	}
	return v
}

func toCarView(c *car.Car) *queries.CarView {
	return &queries.CarView{
		ID:           c.ID(),
		Make:         c.Make(),
		Model:        c.Model(),
		Year:         c.Year(),
		Status:       c.Status().String(),
		PricePerHour: c.PricePerHour(),
		MerchantID:   c.MerchantID(),
		CreatedAt:    c.CreatedAt(),
	}
}

func toRentalView(r *rental.Rental) *queries.RentalView {
	return &queries.RentalView{
		ID:         r.ID(),
		UserID:     r.UserID(),
		CarID:      r.CarID(),
		RentalDate: r.RentalDate(),
		ReturnDate: r.ReturnDate(),
		TotalFee:   r.TotalFee(),
	}
}
