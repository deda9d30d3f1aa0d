//go:build unit || e2e

package builder

import (
	"time"

	"car-rental-api/internal/domain/user"
	reqdto "car-rental-api/internal/handler/dto/request"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           int64
	Email        string
	Password     string
	PasswordHash string
	Name         string
	Surname      string
	Role         string
	MerchantID   int64
	CompanyName  string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:       1,
		Email:    "test@example.com",
		Password: "password123",
		// bcrypt("password123")
		PasswordHash: "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A.",
		Name:         "Taro",
		Surname:      "Yamada",
		Role:         "user",
		CreatedAt:    time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(email, u.PasswordHash, u.Name, u.Surname, role, u.CompanyName)
}

func (u *UserBuilder) BuildInfra() pg.UserWithMerchantRow {
	row := pg.UserWithMerchantRow{
		Users: pg.Users{
			ID:           u.ID,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Name:         u.Name,
			Surname:      u.Surname,
			Role:         u.Role,
			CreatedAt:    pgtype.Timestamptz{Time: u.CreatedAt, Valid: true},
		},
	}
	if u.isMerchant() {
		row.MerchantID = pgtype.Int8{Int64: u.MerchantID, Valid: true}
		row.CompanyName = pgtype.Text{String: u.CompanyName, Valid: true}
	}
	return row
}

func (u *UserBuilder) BuildReadModel() *queries.UserView {
	v := &queries.UserView{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Surname:   u.Surname,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if u.isMerchant() {
		merchantID := u.MerchantID
		company := u.CompanyName
		v.MerchantID = &merchantID
		v.CompanyName = &company
	}
	return v
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:       u.Email,
		Password:    u.Password,
		Name:        u.Name,
		Surname:     u.Surname,
		Role:        u.Role,
		CompanyName: u.CompanyName,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id int64) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) AsMerchant(merchantID int64, companyName string) *UserBuilder {
	u.Role = "merchant"
	u.MerchantID = merchantID
	u.CompanyName = companyName
	return u
}

func (u *UserBuilder) isMerchant() bool {
	return u.Role == "merchant" && u.MerchantID != 0
}
