package paymentsvc

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/theplant/luhn"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
)

// errors used by controllers

type ErrCode string

const (
	ErrNoCard      ErrCode = "NO_CARD"
	ErrCardExists  ErrCode = "CARD_EXISTS"
	ErrInvalidCard ErrCode = "INVALID_CARD"
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

type AttachCardInput struct {
	Number      string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
}

type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Cards interface {
	Insert(ctx context.Context, c *model.Card) error
	ByUser(ctx context.Context, userID int64) (*model.Card, error)
	ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Card, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, cardID int64, newBalance int64) error
}

type Service interface {
	// AttachCard stores the user's single payment card with balance 0.
	AttachCard(ctx context.Context, userID int64, in AttachCardInput) (*model.Card, error)

	// Card returns the caller's card.
	Card(ctx context.Context, userID int64) (*model.Card, error)

	// Credit adds amount to the card balance (moneyTransfer).
	Credit(ctx context.Context, userID int64, amount int64) (*model.Card, error)
}

// ----- Service implementation -----

type service struct {
	db DB
	c  Cards
}

func New(db DB, c Cards) Service { return &service{db: db, c: c} }

func (s *service) AttachCard(ctx context.Context, userID int64, in AttachCardInput) (*model.Card, error) {
	number := strings.ReplaceAll(strings.TrimSpace(in.Number), " ", "")
	if !validCardNumber(number) {
		return nil, makeErr(ErrInvalidCard)
	}
	if in.ExpiryMonth < 1 || in.ExpiryMonth > 12 || in.ExpiryYear < time.Now().Year() {
		return nil, makeErr(ErrInvalidCard)
	}
	if len(in.CVV) != 3 {
		return nil, makeErr(ErrInvalidCard)
	}

	card := &model.Card{
		UserID:      userID,
		Number:      number,
		ExpiryMonth: in.ExpiryMonth,
		ExpiryYear:  in.ExpiryYear,
		CVV:         in.CVV,
		Balance:     0,
	}
	if err := s.c.Insert(ctx, card); err != nil {
		if isUniqueViolation(err) {
			return nil, makeErr(ErrCardExists)
		}
		return nil, err
	}
	return card, nil
}

func (s *service) Card(ctx context.Context, userID int64) (*model.Card, error) {
	card, err := s.c.ByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrNoCard)
		}
		return nil, err
	}
	return card, nil
}

func (s *service) Credit(ctx context.Context, userID int64, amount int64) (*model.Card, error) {
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
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

	card.Balance += amount
	if err = s.c.UpdateBalance(ctx, tx, card.ID, card.Balance); err != nil {
		return nil, err
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return card, nil
}

func validCardNumber(number string) bool {
	if len(number) < 12 || len(number) > 19 {
		return false
	}
	n, err := strconv.Atoi(number)
	if err != nil {
		return false
	}
	return luhn.Valid(n)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
