package request

type RentCarRequest struct {
	CarID int64 `json:"car_id" binding:"required,gt=0"`
}
