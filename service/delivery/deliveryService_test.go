package delivery

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
)

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) Begin(context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type carsMock struct {
	car    *model.Car
	marked bool
}

func (m *carsMock) CarByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Car, error) {
	if m.car == nil || m.car.ID != id {
		return nil, pgx.ErrNoRows
	}
	cp := *m.car
	return &cp, nil
}

func (m *carsMock) MarkCarUnavailable(ctx context.Context, tx pgx.Tx, carID int64) error {
	m.marked = true
	m.car.IsAvailable = false
	return nil
}

type reservationsMock struct {
	res     *model.Reservation
	deleted bool
}

func (m *reservationsMock) ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Reservation, error) {
	if m.res == nil || m.res.UserID != userID {
		return nil, pgx.ErrNoRows
	}
	return m.res, nil
}

func (m *reservationsMock) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	m.deleted = true
	m.res = nil
	return nil
}

type historyMock struct{ entries []model.PlacedOrder }

func (m *historyMock) Insert(ctx context.Context, tx pgx.Tx, o *model.PlacedOrder) error {
	o.ID = int64(len(m.entries) + 1)
	m.entries = append(m.entries, *o)
	return nil
}

func newSvc(c *carsMock, r *reservationsMock, h *historyMock, at time.Time) *service {
	s := New(fakeDB{}, c, r, h).(*service)
	s.now = func() time.Time { return at }
	return s
}

// --- tests ---

func TestPickUpCar_Success(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	c := &carsMock{car: &model.Car{ID: 2, PackageName: "Economy", Brand: "Fiat", Model: "Uno", IsAvailable: true}}
	r := &reservationsMock{res: &model.Reservation{ID: 5, UserID: 1, PackageName: "Economy", Hours: 24}}
	h := &historyMock{}

	car, err := newSvc(c, r, h, start).PickUpCar(ctx, 1, 2)
	require.NoError(t, err)
	require.False(t, car.IsAvailable)
	require.True(t, c.marked)
	require.True(t, r.deleted)

	require.Len(t, h.entries, 1)
	entry := h.entries[0]
	require.Equal(t, int64(1), entry.UserID)
	require.Equal(t, int64(2), entry.CarID)
	require.Equal(t, "Fiat", entry.Brand)
	require.Equal(t, "Uno", entry.Model)
	require.Equal(t, start, entry.StartTime)
	require.Equal(t, 24*time.Hour, entry.EndTime.Sub(entry.StartTime))
}

func TestPickUpCar_PackageMismatch(t *testing.T) {
	ctx := context.Background()

	c := &carsMock{car: &model.Car{ID: 1, PackageName: "Luxury", IsAvailable: true}}
	r := &reservationsMock{res: &model.Reservation{ID: 5, UserID: 1, PackageName: "Economy", Hours: 5}}
	h := &historyMock{}

	_, err := newSvc(c, r, h, time.Now()).PickUpCar(ctx, 1, 1)
	require.Error(t, err)
	require.Equal(t, ErrPackageMismatch, Code(err))

	// car stays available, reservation stays held
	require.False(t, c.marked)
	require.True(t, c.car.IsAvailable)
	require.False(t, r.deleted)
	require.Empty(t, h.entries)
}

func TestPickUpCar_CarNotFound(t *testing.T) {
	ctx := context.Background()
	r := &reservationsMock{res: &model.Reservation{ID: 5, UserID: 1, PackageName: "Economy", Hours: 5}}

	_, err := newSvc(&carsMock{}, r, &historyMock{}, time.Now()).PickUpCar(ctx, 1, 99)
	require.Error(t, err)
	require.Equal(t, ErrCarNotFound, Code(err))
	require.False(t, r.deleted)
}

func TestPickUpCar_NoReservation(t *testing.T) {
	ctx := context.Background()
	c := &carsMock{car: &model.Car{ID: 2, PackageName: "Economy", IsAvailable: true}}

	_, err := newSvc(c, &reservationsMock{}, &historyMock{}, time.Now()).PickUpCar(ctx, 1, 2)
	require.Error(t, err)
	require.Equal(t, ErrNoReservation, Code(err))
	require.False(t, c.marked)
}

func TestPickUpCar_CarUnavailable(t *testing.T) {
	ctx := context.Background()
	c := &carsMock{car: &model.Car{ID: 2, PackageName: "Economy", IsAvailable: false}}
	r := &reservationsMock{res: &model.Reservation{ID: 5, UserID: 1, PackageName: "Economy", Hours: 5}}

	_, err := newSvc(c, r, &historyMock{}, time.Now()).PickUpCar(ctx, 1, 2)
	require.Error(t, err)
	require.Equal(t, ErrCarUnavailable, Code(err))
	require.False(t, r.deleted)
}

// Two calls in a row never both succeed: the first consumes the
// reservation and flips the car.
func TestPickUpCar_NotIdempotent(t *testing.T) {
	ctx := context.Background()

	c := &carsMock{car: &model.Car{ID: 2, PackageName: "Economy", Brand: "Fiat", Model: "Uno", IsAvailable: true}}
	r := &reservationsMock{res: &model.Reservation{ID: 5, UserID: 1, PackageName: "Economy", Hours: 3}}
	h := &historyMock{}
	svc := newSvc(c, r, h, time.Now())

	_, err := svc.PickUpCar(ctx, 1, 2)
	require.NoError(t, err)

	_, err = svc.PickUpCar(ctx, 1, 2)
	require.Error(t, err)
	require.Equal(t, ErrNoReservation, Code(err))
	require.Len(t, h.entries, 1)
}

// A different user holding a matching reservation still cannot take a
// claimed car.
func TestPickUpCar_ClaimedCarRejectsOtherUsers(t *testing.T) {
	ctx := context.Background()

	c := &carsMock{car: &model.Car{ID: 2, PackageName: "Economy", Brand: "Fiat", Model: "Uno", IsAvailable: true}}
	r := &reservationsMock{res: &model.Reservation{ID: 5, UserID: 1, PackageName: "Economy", Hours: 3}}
	h := &historyMock{}
	svc := newSvc(c, r, h, time.Now())

	_, err := svc.PickUpCar(ctx, 1, 2)
	require.NoError(t, err)

	r.res = &model.Reservation{ID: 6, UserID: 2, PackageName: "Economy", Hours: 1}
	_, err = svc.PickUpCar(ctx, 2, 2)
	require.Error(t, err)
	require.Equal(t, ErrCarUnavailable, Code(err))
	require.Len(t, h.entries, 1)
}
