package order

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	ordersvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/order"
)

type Controller struct {
	Svc ordersvc.Service
	Log *slog.Logger
}

// POST /orders?carPackage={name}&hours={n}
// @Summary      Submit a rental order
// @Description  Debits the card and issues a single-use reservation for the package
// @Tags         orders
// @Produce      json
// @Param        carPackage  query  string  true  "Package name"
// @Param        hours       query  int     true  "Rental hours"
// @Success      201  {object}  map[string]any
// @Failure      400,404,500
// @Router       /orders [post]
func (h *Controller) Submit(c echo.Context) error {
	pkg := c.QueryParam("carPackage")
	if pkg == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "carPackage is required"})
	}
	hours, err := strconv.Atoi(c.QueryParam("hours"))
	if err != nil || hours <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "hours must be a positive integer"})
	}
	uid, _ := c.Get("user_id").(int64)

	sum, err := h.Svc.SubmitOrder(c.Request().Context(), uid, pkg, hours)
	if err != nil {
		switch ordersvc.Code(err) {
		case ordersvc.ErrPackageNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "package not found"})
		case ordersvc.ErrNoCard:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "no credit card registered"})
		case ordersvc.ErrExistingReservation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "reservation already held"})
		case ordersvc.ErrInsufficientFunds:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "insufficient funds"})
		default:
			h.Log.Error("submit order", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, sum)
}

// GET /orders
// @Summary      List the caller's completed pickups
// @Tags         orders
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      401,500
// @Router       /orders [get]
func (h *Controller) MyOrders(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.MyOrders(c.Request().Context(), uid)
	if err != nil {
		h.Log.Error("order history", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
