package pg

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// predicates accumulates AND-ed conditions and their positional arguments.
type predicates struct {
	clauses []string
	args    []any
}

// add appends a condition. Each %s in cond is replaced by the placeholder of arg.
func (p *predicates) add(cond string, arg any) {
	p.args = append(p.args, arg)
	placeholder := fmt.Sprintf("$%d", len(p.args))
	p.clauses = append(p.clauses, strings.ReplaceAll(cond, "%s", placeholder))
}

func (p *predicates) addRaw(cond string) {
	p.clauses = append(p.clauses, cond)
}

func (p *predicates) where() string {
	if len(p.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(p.clauses, " AND ")
}

// page appends LIMIT/OFFSET placeholders and returns the clause with the full argument list.
func (p *predicates) page(limit, offset int64) (string, []any) {
	args := append(append([]any{}, p.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(p.args)+1, len(p.args)+2), args
}

// CarSearchParams holds optional car filters. Nil or invalid fields do not constrain.
type CarSearchParams struct {
	Make       *string
	Model      *string
	Year       *int32
	MinPrice   pgtype.Numeric
	MaxPrice   pgtype.Numeric
	Status     *string
	MerchantID *int64
}

func (arg CarSearchParams) predicates() *predicates {
	p := &predicates{}
	if arg.Make != nil {
		p.add("lower(make) = lower(%s)", *arg.Make)
	}
	if arg.Model != nil {
		p.add("lower(model) = lower(%s)", *arg.Model)
	}
	if arg.Year != nil {
		p.add("year = %s", *arg.Year)
	}
	if arg.MinPrice.Valid {
		p.add("price_per_hour >= %s", arg.MinPrice)
	}
	if arg.MaxPrice.Valid {
		p.add("price_per_hour <= %s", arg.MaxPrice)
	}
	if arg.Status != nil {
		p.add("status = %s", *arg.Status)
	}
	if arg.MerchantID != nil {
		p.add("merchant_id = %s", *arg.MerchantID)
	}
	return p
}

func (q *Queries) CountCars(ctx context.Context, db DBTX, arg CarSearchParams) (int64, error) {
	p := arg.predicates()
	var count int64
	err := db.QueryRow(ctx, "SELECT count(*) FROM cars"+p.where(), p.args...).Scan(&count)
	return count, err
}

func (q *Queries) SearchCars(ctx context.Context, db DBTX, arg CarSearchParams, limit, offset int64) ([]Cars, error) {
	p := arg.predicates()
	pageClause, args := p.page(limit, offset)
	sql := "SELECT " + carColumns + " FROM cars" + p.where() + " ORDER BY id ASC" + pageClause

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Cars
	for rows.Next() {
		i, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// RentalSearchParams holds optional rental filters. MerchantID restricts to
// rentals of cars owned by that merchant.
type RentalSearchParams struct {
	UserID        *int64
	CarID         *int64
	MerchantID    *int64
	MinFee        pgtype.Numeric
	MaxFee        pgtype.Numeric
	Open          *bool
	RentalDateGTE pgtype.Date
	RentalDateLTE pgtype.Date
}

func (arg RentalSearchParams) predicates() *predicates {
	p := &predicates{}
	if arg.UserID != nil {
		p.add("r.user_id = %s", *arg.UserID)
	}
	if arg.CarID != nil {
		p.add("r.car_id = %s", *arg.CarID)
	}
	if arg.MerchantID != nil {
		p.add("c.merchant_id = %s", *arg.MerchantID)
	}
	if arg.MinFee.Valid {
		p.add("r.total_fee >= %s", arg.MinFee)
	}
	if arg.MaxFee.Valid {
		p.add("r.total_fee <= %s", arg.MaxFee)
	}
	if arg.Open != nil {
		if *arg.Open {
			p.addRaw("r.return_date IS NULL")
		} else {
			p.addRaw("r.return_date IS NOT NULL")
		}
	}
	if arg.RentalDateGTE.Valid {
		p.add("r.rental_date::date >= %s", arg.RentalDateGTE)
	}
	if arg.RentalDateLTE.Valid {
		p.add("r.rental_date::date <= %s", arg.RentalDateLTE)
	}
	return p
}

func (arg RentalSearchParams) from() string {
	if arg.MerchantID != nil {
		return " FROM rentals r JOIN cars c ON c.id = r.car_id"
	}
	return " FROM rentals r"
}

func (q *Queries) CountRentals(ctx context.Context, db DBTX, arg RentalSearchParams) (int64, error) {
	p := arg.predicates()
	var count int64
	err := db.QueryRow(ctx, "SELECT count(*)"+arg.from()+p.where(), p.args...).Scan(&count)
	return count, err
}

func (q *Queries) SearchRentals(ctx context.Context, db DBTX, arg RentalSearchParams, limit, offset int64) ([]Rentals, error) {
	p := arg.predicates()
	pageClause, args := p.page(limit, offset)
	sql := "SELECT r.id, r.user_id, r.car_id, r.rental_date, r.return_date, r.total_fee" +
		arg.from() + p.where() +
		" ORDER BY r.rental_date DESC, r.id DESC" + pageClause

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Rentals
	for rows.Next() {
		i, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
