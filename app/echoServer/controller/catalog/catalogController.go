package catalog

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	catalogsvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/catalog"
)

type Controller struct {
	Svc catalogsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /packages
func (h *Controller) ListPackages(c echo.Context) error {
	pkgs, err := h.Svc.ListPackages(c.Request().Context())
	if err != nil {
		h.Log.Error("list packages", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": pkgs})
}

// POST /packages (admin)
func (h *Controller) CreatePackage(c echo.Context) error {
	var req CreatePackageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	id, err := h.Svc.CreatePackage(c.Request().Context(), req.Name, req.PricePerHour)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrInvalidInput) {
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("create package", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"package_id": id})
}

// GET /cars?carPackage={name}
func (h *Controller) ListCars(c echo.Context) error {
	cars, err := h.Svc.ListCars(c.Request().Context(), c.QueryParam("carPackage"))
	if err != nil {
		h.Log.Error("list cars", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": cars})
}

// GET /cars/:id
func (h *Controller) CarDetail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}
	car, err := h.Svc.CarDetail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, catalogsvc.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		}
		h.Log.Error("car detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, car)
}

// POST /cars (admin)
func (h *Controller) CreateCar(c echo.Context) error {
	var req CreateCarReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}

	id, err := h.Svc.CreateCar(c.Request().Context(), req.PackageName, req.Brand, req.Model, req.Parameters)
	if err != nil {
		switch {
		case errors.Is(err, catalogsvc.ErrNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"message": "package not found"})
		case errors.Is(err, catalogsvc.ErrInvalidInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		default:
			h.Log.Error("create car", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}
	return c.JSON(http.StatusCreated, echo.Map{"car_id": id})
}
