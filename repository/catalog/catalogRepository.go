package catalogrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/util/database"
)

type Repo interface {
	CreatePackage(ctx context.Context, name string, pricePerHour int64) (int64, error)
	ListPackages(ctx context.Context) ([]model.Package, error)
	PackageByName(ctx context.Context, name string) (*model.Package, error)

	CreateCar(ctx context.Context, packageID int64, brand, carModel, params string) (int64, error)
	ListCars(ctx context.Context, packageName string) ([]model.Car, error)
	CarByID(ctx context.Context, id int64) (*model.Car, error)

	// CarByIDForUpdate locks the car row so the availability flip in
	// the pickup transaction cannot race another pickup.
	CarByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Car, error)
	MarkCarUnavailable(ctx context.Context, tx pgx.Tx, carID int64) error
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) CreatePackage(ctx context.Context, name string, pricePerHour int64) (int64, error) {
	const q = `
INSERT INTO packages (name, price_per_hour)
VALUES ($1,$2)
RETURNING id`
	var id int64
	if err := r.db.Pool.QueryRow(ctx, q, name, pricePerHour).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) ListPackages(ctx context.Context) ([]model.Package, error) {
	const q = `
SELECT id, name, price_per_hour
FROM packages
ORDER BY id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Package
	for rows.Next() {
		var p model.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.PricePerHour); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repo) PackageByName(ctx context.Context, name string) (*model.Package, error) {
	const q = `
SELECT id, name, price_per_hour
FROM packages
WHERE name = $1`
	var p model.Package
	if err := r.db.Pool.QueryRow(ctx, q, name).Scan(&p.ID, &p.Name, &p.PricePerHour); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repo) CreateCar(ctx context.Context, packageID int64, brand, carModel, params string) (int64, error) {
	const q = `
INSERT INTO cars (package_id, brand, model, parameters, is_available)
VALUES ($1,$2,$3,$4,TRUE)
RETURNING id`
	var id int64
	if err := r.db.Pool.QueryRow(ctx, q, packageID, brand, carModel, params).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repo) ListCars(ctx context.Context, packageName string) ([]model.Car, error) {
	q := `
SELECT c.id, c.package_id, p.name, c.brand, c.model, c.parameters, c.is_available
FROM cars c
JOIN packages p ON p.id = c.package_id`
	args := []any{}
	if packageName != "" {
		q += `
WHERE p.name = $1`
		args = append(args, packageName)
	}
	q += `
ORDER BY c.id`

	rows, err := r.db.Pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Car
	for rows.Next() {
		var c model.Car
		if err := rows.Scan(&c.ID, &c.PackageID, &c.PackageName, &c.Brand, &c.Model, &c.Parameters, &c.IsAvailable); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repo) CarByID(ctx context.Context, id int64) (*model.Car, error) {
	const q = `
SELECT c.id, c.package_id, p.name, c.brand, c.model, c.parameters, c.is_available
FROM cars c
JOIN packages p ON p.id = c.package_id
WHERE c.id = $1`
	var c model.Car
	err := r.db.Pool.QueryRow(ctx, q, id).Scan(
		&c.ID, &c.PackageID, &c.PackageName, &c.Brand, &c.Model, &c.Parameters, &c.IsAvailable,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) CarByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Car, error) {
	const q = `
SELECT c.id, c.package_id, p.name, c.brand, c.model, c.parameters, c.is_available
FROM cars c
JOIN packages p ON p.id = c.package_id
WHERE c.id = $1
FOR UPDATE OF c`
	var c model.Car
	err := tx.QueryRow(ctx, q, id).Scan(
		&c.ID, &c.PackageID, &c.PackageName, &c.Brand, &c.Model, &c.Parameters, &c.IsAvailable,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repo) MarkCarUnavailable(ctx context.Context, tx pgx.Tx, carID int64) error {
	const q = `
UPDATE cars
SET is_available = FALSE
WHERE id = $1`
	_, err := tx.Exec(ctx, q, carID)
	return err
}
