// repository/history/repo.go
package historyrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/util/database"
)

type Repo interface {
	Insert(ctx context.Context, tx pgx.Tx, o *model.PlacedOrder) error
	ListByUser(ctx context.Context, userID int64) ([]model.PlacedOrder, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, tx pgx.Tx, o *model.PlacedOrder) error {
	const q = `
INSERT INTO placed_orders (user_id, car_id, brand, model, start_time, end_time)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id`
	return tx.QueryRow(ctx, q,
		o.UserID, o.CarID, o.Brand, o.Model, o.StartTime, o.EndTime,
	).Scan(&o.ID)
}

func (r *repo) ListByUser(ctx context.Context, userID int64) ([]model.PlacedOrder, error) {
	const q = `
SELECT id, user_id, car_id, brand, model, start_time, end_time
FROM placed_orders
WHERE user_id = $1
ORDER BY start_time DESC, id DESC`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PlacedOrder
	for rows.Next() {
		var o model.PlacedOrder
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.CarID, &o.Brand, &o.Model, &o.StartTime, &o.EndTime,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
