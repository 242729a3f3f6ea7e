package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
	vehicledatarepo "github.com/lucasbrentano/car-rental-project-vev-sub000/repository/vehicledata"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid payload")
)

type Repo interface {
	CreatePackage(ctx context.Context, name string, pricePerHour int64) (int64, error)
	ListPackages(ctx context.Context) ([]model.Package, error)
	PackageByName(ctx context.Context, name string) (*model.Package, error)
	CreateCar(ctx context.Context, packageID int64, brand, carModel, params string) (int64, error)
	ListCars(ctx context.Context, packageName string) ([]model.Car, error)
	CarByID(ctx context.Context, id int64) (*model.Car, error)
}

type Service interface {
	CreatePackage(ctx context.Context, name string, pricePerHour int64) (int64, error)
	ListPackages(ctx context.Context) ([]model.Package, error)
	CreateCar(ctx context.Context, packageName, brand, carModel, params string) (int64, error)
	ListCars(ctx context.Context, packageName string) ([]model.Car, error)
	CarDetail(ctx context.Context, id int64) (*model.Car, error)
}

type service struct {
	r Repo
	v vehicledatarepo.Repo
}

func New(r Repo, v vehicledatarepo.Repo) Service { return &service{r: r, v: v} }

func (s *service) CreatePackage(ctx context.Context, name string, pricePerHour int64) (int64, error) {
	if name == "" || pricePerHour <= 0 {
		return 0, ErrInvalidInput
	}
	return s.r.CreatePackage(ctx, name, pricePerHour)
}

func (s *service) ListPackages(ctx context.Context) ([]model.Package, error) {
	return s.r.ListPackages(ctx)
}

// CreateCar always starts the car available; admin creation cannot
// break the availability invariant.
func (s *service) CreateCar(ctx context.Context, packageName, brand, carModel, params string) (int64, error) {
	if packageName == "" || brand == "" || carModel == "" {
		return 0, ErrInvalidInput
	}
	pkg, err := s.r.PackageByName(ctx, packageName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	if params == "" && s.v != nil {
		if spec, err := s.v.LookupSpec(brand, carModel); err == nil {
			params = fmt.Sprintf("class=%s fuel=%s transmission=%s drive=%s",
				spec.Class, spec.FuelType, spec.Transmission, spec.Drive)
		}
	}

	return s.r.CreateCar(ctx, pkg.ID, brand, carModel, params)
}

func (s *service) ListCars(ctx context.Context, packageName string) ([]model.Car, error) {
	return s.r.ListCars(ctx, packageName)
}

func (s *service) CarDetail(ctx context.Context, id int64) (*model.Car, error) {
	car, err := s.r.CarByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return car, nil
}
