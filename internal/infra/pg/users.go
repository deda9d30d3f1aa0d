package pg

import (
	"context"
)

const userWithMerchantColumns = `
	u.id, u.email, u.password_hash, u.name, u.surname, u.role, u.created_at,
	m.id, m.company_name`

const createUser = `
INSERT INTO users (email, password_hash, name, surname, role)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, email, password_hash, name, surname, role, created_at`

type CreateUserParams struct {
	Email        string
	PasswordHash string
	Name         string
	Surname      string
	Role         string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (Users, error) {
	row := db.QueryRow(ctx, createUser, arg.Email, arg.PasswordHash, arg.Name, arg.Surname, arg.Role)
	var i Users
	err := row.Scan(&i.ID, &i.Email, &i.PasswordHash, &i.Name, &i.Surname, &i.Role, &i.CreatedAt)
	return i, err
}

const createMerchant = `
INSERT INTO merchants (user_id, company_name)
VALUES ($1, $2)
RETURNING id, user_id, company_name`

type CreateMerchantParams struct {
	UserID      int64
	CompanyName string
}

func (q *Queries) CreateMerchant(ctx context.Context, db DBTX, arg CreateMerchantParams) (Merchants, error) {
	row := db.QueryRow(ctx, createMerchant, arg.UserID, arg.CompanyName)
	var i Merchants
	err := row.Scan(&i.ID, &i.UserID, &i.CompanyName)
	return i, err
}

const findUserByID = `
SELECT` + userWithMerchantColumns + `
FROM users u
LEFT JOIN merchants m ON m.user_id = u.id
WHERE u.id = $1`

func (q *Queries) FindUserByID(ctx context.Context, db DBTX, id int64) (UserWithMerchantRow, error) {
	return scanUserWithMerchant(db.QueryRow(ctx, findUserByID, id))
}

const findUserByEmail = `
SELECT` + userWithMerchantColumns + `
FROM users u
LEFT JOIN merchants m ON m.user_id = u.id
WHERE u.email = $1`

func (q *Queries) FindUserByEmail(ctx context.Context, db DBTX, email string) (UserWithMerchantRow, error) {
	return scanUserWithMerchant(db.QueryRow(ctx, findUserByEmail, email))
}

// Serializes all rental mutations of one user.
const lockUserByID = `SELECT id FROM users WHERE id = $1 FOR UPDATE`

func (q *Queries) LockUserByID(ctx context.Context, db DBTX, id int64) error {
	var locked int64
	return db.QueryRow(ctx, lockUserByID, id).Scan(&locked)
}

const findMerchantByUserID = `SELECT id, user_id, company_name FROM merchants WHERE user_id = $1`

func (q *Queries) FindMerchantByUserID(ctx context.Context, db DBTX, userID int64) (Merchants, error) {
	row := db.QueryRow(ctx, findMerchantByUserID, userID)
	var i Merchants
	err := row.Scan(&i.ID, &i.UserID, &i.CompanyName)
	return i, err
}

func scanUserWithMerchant(row interface{ Scan(dest ...any) error }) (UserWithMerchantRow, error) {
	var i UserWithMerchantRow
	err := row.Scan(
		&i.ID, &i.Email, &i.PasswordHash, &i.Name, &i.Surname, &i.Role, &i.CreatedAt,
		&i.MerchantID, &i.CompanyName,
	)
	return i, err
}
