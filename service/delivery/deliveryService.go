package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrCarNotFound     ErrCode = "CAR_NOT_FOUND"
	ErrNoReservation   ErrCode = "NO_RESERVATION"
	ErrPackageMismatch ErrCode = "PACKAGE_MISMATCH"
	ErrCarUnavailable  ErrCode = "CAR_UNAVAILABLE"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Cars interface {
	CarByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Car, error)
	MarkCarUnavailable(ctx context.Context, tx pgx.Tx, carID int64) error
}

type Reservations interface {
	ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Reservation, error)
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}

type History interface {
	Insert(ctx context.Context, tx pgx.Tx, o *model.PlacedOrder) error
}

type Service interface {
	// PickUpCar redeems the caller's reservation against a specific
	// car: flips availability, deletes the reservation and records the
	// pickup, all inside one transaction. Not idempotent: a repeat
	// call fails with CAR_UNAVAILABLE or NO_RESERVATION.
	PickUpCar(ctx context.Context, userID, carID int64) (*model.Car, error)
}

// ----- Service implementation -----

type service struct {
	db DB
	c  Cars
	r  Reservations
	h  History

	now func() time.Time
}

func New(db DB, c Cars, r Reservations, h History) Service {
	return &service{db: db, c: c, r: r, h: h, now: time.Now}
}

func (s *service) PickUpCar(ctx context.Context, userID, carID int64) (*model.Car, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user id required")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	car, err := s.c.CarByIDForUpdate(ctx, tx, carID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = makeErr(ErrCarNotFound)
		}
		return nil, err
	}

	res, err := s.r.ByUserForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = makeErr(ErrNoReservation)
		}
		return nil, err
	}

	if res.PackageName != car.PackageName {
		err = makeErr(ErrPackageMismatch)
		return nil, err
	}
	if !car.IsAvailable {
		err = makeErr(ErrCarUnavailable)
		return nil, err
	}

	// hours is read off the reservation before the delete so the
	// history entry can carry the rental window.
	start := s.now().UTC()
	entry := &model.PlacedOrder{
		UserID:    userID,
		CarID:     car.ID,
		Brand:     car.Brand,
		Model:     car.Model,
		StartTime: start,
		EndTime:   start.Add(time.Duration(res.Hours) * time.Hour),
	}

	if err = s.c.MarkCarUnavailable(ctx, tx, car.ID); err != nil {
		return nil, err
	}
	if err = s.r.Delete(ctx, tx, res.ID); err != nil {
		return nil, err
	}
	if err = s.h.Insert(ctx, tx, entry); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	car.IsAvailable = false
	return car, nil
}
