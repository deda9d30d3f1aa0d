package response

import (
	"time"

	"car-rental-api/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Surname     string    `json:"surname"`
	Role        string    `json:"role"`
	CompanyName *string   `json:"company_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func FromUserView(v *queries.UserView) (UserResponse, error) {
	var resp UserResponse
	if err := copier.Copy(&resp, v); err != nil {
		return UserResponse{}, err
	}
	return resp, nil
}
