//go:build unit

package commands_test

import (
	"context"
	"maps"
	"sync"
	"time"

	"car-rental-api/internal/domain/car"
	"car-rental-api/internal/domain/rental"
	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/infra"
	"car-rental-api/internal/infra/pg"
	"car-rental-api/internal/pkg/errs"
	"car-rental-api/internal/usecase/queries"
	"car-rental-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

type userRow struct {
	id           int64
	email        string
	passwordHash string
	name         string
	surname      string
	role         user.Role
	createdAt    time.Time
}

type merchantRow struct {
	id          int64
	userID      int64
	companyName string
}

type carRow struct {
	id           int64
	merchantID   int64
	make         string
	model        string
	year         int
	status       car.Status
	pricePerHour decimal.Decimal
}

type rentalRow struct {
	id         int64
	userID     int64
	carID      int64
	rentalDate time.Time
	returnDate *time.Time
	totalFee   *decimal.Decimal
}

type memState struct {
	users     map[int64]userRow
	merchants map[int64]merchantRow // by user id
	cars      map[int64]carRow
	rentals   map[int64]rentalRow
	nextID    int64
}

func (s memState) clone() memState {
	return memState{
		users:     maps.Clone(s.users),
		merchants: maps.Clone(s.merchants),
		cars:      maps.Clone(s.cars),
		rentals:   maps.Clone(s.rentals),
		nextID:    s.nextID,
	}
}

// memStore is a UnitOfWork over maps. Within runs one transaction at a time on
// a copy of the state and publishes the copy only when fn succeeds.
type memStore struct {
	mu    sync.Mutex
	state memState

	// failOn names a repository operation that fails with a database error.
	failOn string
	// skipOpenCheck hides open rentals from FindOpenByUserForUpdate, so only
	// the unique indexes can catch a second open rental.
	skipOpenCheck bool
	// failCommit drops the connection at commit time, after fn succeeded.
	failCommit bool
}

func newMemStore() *memStore {
	return &memStore{state: memState{
		users:     map[int64]userRow{},
		merchants: map[int64]merchantRow{},
		cars:      map[int64]carRow{},
		rentals:   map[int64]rentalRow{},
	}}
}

func (m *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	work := m.state.clone()
	if err := fn(ctx, &memTx{store: m, state: &work}); err != nil {
		return err
	}
	if m.failCommit {
		return errs.Mark(&pgconn.PgError{Code: "08006"}, shared.ErrTransactionCommit)
	}
	m.state = work
	return nil
}

func (m *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pg.DBTX) error) error {
	return fn(ctx, nil)
}

func (m *memStore) addUser(email string, role user.Role) int64 {
	m.state.nextID++
	id := m.state.nextID
	m.state.users[id] = userRow{id: id, email: email, name: "Test", surname: "User", role: role}
	return id
}

func (m *memStore) addMerchant(email, company string) (userID, merchantID int64) {
	userID = m.addUser(email, user.RoleMerchant)
	m.state.nextID++
	merchantID = m.state.nextID
	m.state.merchants[userID] = merchantRow{id: merchantID, userID: userID, companyName: company}
	return userID, merchantID
}

func (m *memStore) addCar(merchantID int64, price string) int64 {
	m.state.nextID++
	id := m.state.nextID
	m.state.cars[id] = carRow{
		id: id, merchantID: merchantID, make: "Toyota", model: "Corolla", year: 2020,
		status: car.StatusAvailable, pricePerHour: decimal.RequireFromString(price),
	}
	return id
}

func (m *memStore) car(id int64) carRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.cars[id]
}

func (m *memStore) openRentals() []rentalRow {
	m.mu.Lock()
	defer m.mu.Unlock()
	var open []rentalRow
	for _, r := range m.state.rentals {
		if r.returnDate == nil {
			open = append(open, r)
		}
	}
	return open
}

func (m *memStore) rentalCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.state.rentals)
}

// queries.UserReadStore

func (m *memStore) FindByID(_ context.Context, id int64) (*queries.UserView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.state.users[id]
	if !ok {
		return nil, notFoundErr()
	}
	return m.viewOf(u), nil
}

func (m *memStore) FindByEmail(_ context.Context, email string) (*queries.UserView, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.state.users {
		if u.email == email {
			return m.viewOf(u), u.passwordHash, nil
		}
	}
	return nil, "", notFoundErr()
}

func (m *memStore) viewOf(u userRow) *queries.UserView {
	v := &queries.UserView{ID: u.id, Email: u.email, Name: u.name, Surname: u.surname, Role: u.role.String(), CreatedAt: u.createdAt}
	if mr, ok := m.state.merchants[u.id]; ok {
		v.MerchantID = &mr.id
		v.CompanyName = &mr.companyName
	}
	return v
}

func notFoundErr() error {
	return infra.WrapRepoErr("not found", nil, infra.KindNotFound)
}

func failureErr(op string) error {
	return infra.WrapRepoErr(op, nil, infra.KindDBFailure)
}

func duplicateErr(constraint string) error {
	return infra.WrapRepoErr("duplicate", &pgconn.PgError{Code: "23505", ConstraintName: constraint})
}

type memTx struct {
	store *memStore
	state *memState
}

func (t *memTx) Users() shared.UserRepository     { return memUsers{t} }
func (t *memTx) Cars() shared.CarRepository       { return memCars{t} }
func (t *memTx) Rentals() shared.RentalRepository { return memRentals{t} }
func (t *memTx) DB() pg.DBTX                      { return nil }

func (t *memTx) fail(op string) error {
	if t.store.failOn == op {
		return failureErr(op)
	}
	return nil
}

func (t *memTx) id() int64 {
	t.state.nextID++
	return t.state.nextID
}

type memUsers struct{ tx *memTx }

func (r memUsers) Create(_ context.Context, u *user.User) (*user.User, error) {
	if err := r.tx.fail("users.create"); err != nil {
		return nil, err
	}
	for _, existing := range r.tx.state.users {
		if existing.email == u.Email().Value() {
			return nil, duplicateErr(pg.ConstraintUsersEmail)
		}
	}
	row := userRow{
		id: r.tx.id(), email: u.Email().Value(), passwordHash: u.PasswordHash(),
		name: u.Name(), surname: u.Surname(), role: u.Role(),
	}
	r.tx.state.users[row.id] = row

	var merchant *user.Merchant
	if u.IsMerchant() {
		mr := merchantRow{id: r.tx.id(), userID: row.id, companyName: u.Merchant().CompanyName()}
		r.tx.state.merchants[row.id] = mr
		merchant = user.ReconstructMerchant(mr.id, mr.userID, mr.companyName)
	}
	return user.ReconstructUser(row.id, u.Email(), row.passwordHash, row.name, row.surname, row.role, merchant, row.createdAt), nil
}

func (r memUsers) LockByID(_ context.Context, userID int64) error {
	if err := r.tx.fail("users.lock"); err != nil {
		return err
	}
	if _, ok := r.tx.state.users[userID]; !ok {
		return notFoundErr()
	}
	return nil
}

func (r memUsers) FindMerchantByUserID(_ context.Context, userID int64) (*user.Merchant, error) {
	mr, ok := r.tx.state.merchants[userID]
	if !ok {
		return nil, notFoundErr()
	}
	return user.ReconstructMerchant(mr.id, mr.userID, mr.companyName), nil
}

type memCars struct{ tx *memTx }

func (r memCars) toDomain(row carRow) *car.Car {
	return car.ReconstructCar(row.id, row.merchantID, row.make, row.model, row.year, row.status, row.pricePerHour, time.Time{})
}

func (r memCars) Create(_ context.Context, c *car.Car) (*car.Car, error) {
	if err := r.tx.fail("cars.create"); err != nil {
		return nil, err
	}
	row := carRow{
		id: r.tx.id(), merchantID: c.MerchantID(), make: c.Make(), model: c.Model(),
		year: c.Year(), status: c.Status(), pricePerHour: c.PricePerHour(),
	}
	r.tx.state.cars[row.id] = row
	return r.toDomain(row), nil
}

func (r memCars) FindByID(ctx context.Context, id int64) (*car.Car, error) {
	return r.FindByIDForUpdate(ctx, id)
}

func (r memCars) FindByIDForUpdate(_ context.Context, id int64) (*car.Car, error) {
	row, ok := r.tx.state.cars[id]
	if !ok {
		return nil, notFoundErr()
	}
	return r.toDomain(row), nil
}

func (r memCars) Update(_ context.Context, c *car.Car) (*car.Car, error) {
	row, ok := r.tx.state.cars[c.ID()]
	if !ok {
		return nil, notFoundErr()
	}
	row.make, row.model, row.year, row.pricePerHour = c.Make(), c.Model(), c.Year(), c.PricePerHour()
	r.tx.state.cars[row.id] = row
	return r.toDomain(row), nil
}

func (r memCars) UpdateStatus(_ context.Context, id int64, status car.Status) error {
	if err := r.tx.fail("cars.status"); err != nil {
		return err
	}
	row, ok := r.tx.state.cars[id]
	if !ok {
		return notFoundErr()
	}
	row.status = status
	r.tx.state.cars[id] = row
	return nil
}

func (r memCars) Delete(_ context.Context, id int64) error {
	if _, ok := r.tx.state.cars[id]; !ok {
		return notFoundErr()
	}
	delete(r.tx.state.cars, id)
	return nil
}

type memRentals struct{ tx *memTx }

func (r memRentals) toDomain(row rentalRow) *rental.Rental {
	return rental.Reconstruct(row.id, row.userID, row.carID, row.rentalDate, row.returnDate, row.totalFee)
}

func (r memRentals) Create(_ context.Context, rent *rental.Rental) (*rental.Rental, error) {
	if err := r.tx.fail("rentals.create"); err != nil {
		return nil, err
	}
	for _, existing := range r.tx.state.rentals {
		if existing.returnDate != nil {
			continue
		}
		if existing.userID == rent.UserID() {
			return nil, duplicateErr(pg.ConstraintOpenRentalUser)
		}
		if existing.carID == rent.CarID() {
			return nil, duplicateErr(pg.ConstraintOpenRentalCar)
		}
	}
	row := rentalRow{id: r.tx.id(), userID: rent.UserID(), carID: rent.CarID(), rentalDate: rent.RentalDate()}
	r.tx.state.rentals[row.id] = row
	return r.toDomain(row), nil
}

func (r memRentals) FindOpenByUserForUpdate(_ context.Context, userID int64) (*rental.Rental, error) {
	if r.tx.store.skipOpenCheck {
		return nil, notFoundErr()
	}
	for _, row := range r.tx.state.rentals {
		if row.userID == userID && row.returnDate == nil {
			return r.toDomain(row), nil
		}
	}
	return nil, notFoundErr()
}

func (r memRentals) Close(_ context.Context, rent *rental.Rental) (*rental.Rental, error) {
	if err := r.tx.fail("rentals.close"); err != nil {
		return nil, err
	}
	row, ok := r.tx.state.rentals[rent.ID()]
	if !ok || row.returnDate != nil {
		return nil, notFoundErr()
	}
	row.returnDate = rent.ReturnDate()
	row.totalFee = rent.TotalFee()
	r.tx.state.rentals[row.id] = row
	return r.toDomain(row), nil
}
