// repository/card/repo.go
package cardrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/util/database"
)

type Repo interface {
	Insert(ctx context.Context, c *model.Card) error
	ByUser(ctx context.Context, userID int64) (*model.Card, error)

	// ByUserForUpdate locks the card row so concurrent balance
	// mutations for the same user serialize.
	ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Card, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, cardID int64, newBalance int64) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db: db} }

func (r *repo) Insert(ctx context.Context, c *model.Card) error {
	const q = `
INSERT INTO cards (user_id, number, expiry_month, expiry_year, cvv, balance)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id, created_at`
	return r.db.Pool.QueryRow(ctx, q,
		c.UserID, c.Number, c.ExpiryMonth, c.ExpiryYear, c.CVV, c.Balance,
	).Scan(&c.ID, &c.CreatedAt)
}

func (r *repo) ByUser(ctx context.Context, userID int64) (*model.Card, error) {
	const q = `
SELECT id, user_id, number, expiry_month, expiry_year, cvv, balance, created_at
FROM cards
WHERE user_id = $1`
	c := &model.Card{}
	err := r.db.Pool.QueryRow(ctx, q, userID).Scan(
		&c.ID, &c.UserID, &c.Number, &c.ExpiryMonth, &c.ExpiryYear, &c.CVV, &c.Balance, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Card, error) {
	const q = `
SELECT id, user_id, number, expiry_month, expiry_year, cvv, balance, created_at
FROM cards
WHERE user_id = $1
FOR UPDATE`
	c := &model.Card{}
	err := tx.QueryRow(ctx, q, userID).Scan(
		&c.ID, &c.UserID, &c.Number, &c.ExpiryMonth, &c.ExpiryYear, &c.CVV, &c.Balance, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *repo) UpdateBalance(ctx context.Context, tx pgx.Tx, cardID int64, newBalance int64) error {
	const q = `UPDATE cards SET balance = $2 WHERE id = $1`
	_, err := tx.Exec(ctx, q, cardID, newBalance)
	return err
}
