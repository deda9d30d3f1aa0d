package user

import (
	"strings"
	"time"
)

// User is a registered account. Merchants additionally own a Merchant profile.
type User struct {
	id           int64
	email        Email
	passwordHash string
	name         string
	surname      string
	role         Role
	merchant     *Merchant
	createdAt    time.Time
}

type Merchant struct {
	id          int64
	userID      int64
	companyName string
}

func NewUser(email Email, passwordHash, name, surname string, role Role, companyName string) (*User, error) {
	name = strings.TrimSpace(name)
	surname = strings.TrimSpace(surname)
	if name == "" {
		return nil, ErrNameRequired
	}
	if surname == "" {
		return nil, ErrSurnameRequired
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	u := &User{
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		surname:      surname,
		role:         role,
	}

	if role == RoleMerchant {
		companyName = strings.TrimSpace(companyName)
		if companyName == "" {
			return nil, ErrCompanyNameRequired
		}
		u.merchant = &Merchant{companyName: companyName}
	}

	return u, nil
}

func ReconstructUser(id int64, email Email, passwordHash, name, surname string, role Role, merchant *Merchant, createdAt time.Time) *User {
	return &User{
		id:           id,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		surname:      surname,
		role:         role,
		merchant:     merchant,
		createdAt:    createdAt,
	}
}

func ReconstructMerchant(id, userID int64, companyName string) *Merchant {
	return &Merchant{id: id, userID: userID, companyName: companyName}
}

func (u *User) ID() int64            { return u.id }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Name() string         { return u.name }
func (u *User) Surname() string      { return u.surname }
func (u *User) Role() Role           { return u.role }
func (u *User) Merchant() *Merchant  { return u.merchant }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) IsMerchant() bool     { return u.role == RoleMerchant }

func (m *Merchant) ID() int64           { return m.id }
func (m *Merchant) UserID() int64       { return m.userID }
func (m *Merchant) CompanyName() string { return m.companyName }
