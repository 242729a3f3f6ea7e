// repository/reservation/repo.go
package reservationrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/util/database"
)

type Repo interface {
	// Insert hits the reservations_user_id_key unique index if the
	// user already holds one; callers map that violation.
	Insert(ctx context.Context, tx pgx.Tx, res *model.Reservation) error
	ByUser(ctx context.Context, userID int64) (*model.Reservation, error)
	ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Reservation, error)
	Delete(ctx context.Context, tx pgx.Tx, id int64) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, tx pgx.Tx, res *model.Reservation) error {
	const q = `
INSERT INTO reservations (user_id, package_name, hours)
VALUES ($1,$2,$3)
RETURNING id, created_at`
	return tx.QueryRow(ctx, q, res.UserID, res.PackageName, res.Hours).
		Scan(&res.ID, &res.CreatedAt)
}

func (r *repo) ByUser(ctx context.Context, userID int64) (*model.Reservation, error) {
	const q = `
SELECT id, user_id, package_name, hours, created_at
FROM reservations
WHERE user_id = $1`
	res := &model.Reservation{}
	err := r.db.Pool.QueryRow(ctx, q, userID).Scan(
		&res.ID, &res.UserID, &res.PackageName, &res.Hours, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *repo) ByUserForUpdate(ctx context.Context, tx pgx.Tx, userID int64) (*model.Reservation, error) {
	const q = `
SELECT id, user_id, package_name, hours, created_at
FROM reservations
WHERE user_id = $1
FOR UPDATE`
	res := &model.Reservation{}
	err := tx.QueryRow(ctx, q, userID).Scan(
		&res.ID, &res.UserID, &res.PackageName, &res.Hours, &res.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *repo) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	const q = `DELETE FROM reservations WHERE id = $1`
	_, err := tx.Exec(ctx, q, id)
	return err
}
