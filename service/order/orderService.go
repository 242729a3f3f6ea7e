package order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNoCard              ErrCode = "NO_CARD"
	ErrExistingReservation ErrCode = "EXISTING_RESERVATION"
	ErrPackageNotFound     ErrCode = "PACKAGE_NOT_FOUND"
	ErrInsufficientFunds   ErrCode = "INSUFFICIENT_FUNDS"
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

// dto

type Summary struct {
	ReservationID int64  `json:"reservation_id"`
	PackageName   string `json:"package_name"`
	Hours         int    `json:"hours"`
}

type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Cards interface {
	ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Card, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, cardID int64, newBalance int64) error
}

type Reservations interface {
	ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Reservation, error)
	Insert(ctx context.Context, tx pgx.Tx, res *model.Reservation) error
}

type Packages interface {
	PackageByName(ctx context.Context, name string) (*model.Package, error)
}

type History interface {
	ListByUser(ctx context.Context, userID int64) ([]model.PlacedOrder, error)
}

type Service interface {
	// SubmitOrder debits the card and issues the user's single
	// reservation, all inside one transaction.
	SubmitOrder(ctx context.Context, userID int64, packageName string, hours int) (*Summary, error)

	// MyOrders lists the caller's completed pickups.
	MyOrders(ctx context.Context, userID int64) ([]model.PlacedOrder, error)
}

// ----- Service implementation -----

type service struct {
	db DB
	c  Cards
	r  Reservations
	p  Packages
	h  History
}

func New(db DB, c Cards, r Reservations, p Packages, h History) Service {
	return &service{db: db, c: c, r: r, p: p, h: h}
}

// SubmitOrder validates in a fixed order (first failing check wins):
// card present, no existing reservation, package exists, sufficient
// balance. The card row is locked for the whole transaction so two
// concurrent submits for the same user serialize; the unique index on
// reservations.user_id backstops the check.
func (s *service) SubmitOrder(ctx context.Context, userID int64, packageName string, hours int) (*Summary, error) {
	packageName = strings.TrimSpace(packageName)
	if userID <= 0 {
		return nil, fmt.Errorf("user id required")
	}
	if hours <= 0 {
		return nil, fmt.Errorf("hours must be positive")
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

	card, err := s.c.ByUserForUpdate(ctx, tx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = makeErr(ErrNoCard)
		}
		return nil, err
	}

	_, err = s.r.ByUserForUpdate(ctx, tx, userID)
	if err == nil {
		err = makeErr(ErrExistingReservation)
		return nil, err
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}
	err = nil

	pkg, err := s.p.PackageByName(ctx, packageName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = makeErr(ErrPackageNotFound)
		}
		return nil, err
	}

	cost := pkg.PricePerHour * int64(hours)
	if card.Balance < cost {
		err = makeErr(ErrInsufficientFunds)
		return nil, err
	}

	if err = s.c.UpdateBalance(ctx, tx, card.ID, card.Balance-cost); err != nil {
		return nil, err
	}

	res := &model.Reservation{
		UserID:      userID,
		PackageName: pkg.Name,
		Hours:       hours,
	}
	if err = s.r.Insert(ctx, tx, res); err != nil {
		if isUniqueViolation(err) {
			err = makeErr(ErrExistingReservation)
		}
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &Summary{
		ReservationID: res.ID,
		PackageName:   res.PackageName,
		Hours:         res.Hours,
	}, nil
}

func (s *service) MyOrders(ctx context.Context, userID int64) ([]model.PlacedOrder, error) {
	return s.h.ListByUser(ctx, userID)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
