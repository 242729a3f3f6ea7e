package delivery

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	deliverysvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/delivery"
)

type Controller struct {
	Svc deliverysvc.Service
	Log *slog.Logger
}

// POST /delivery?carId={id}
// @Summary      Pick up a reserved car
// @Description  Redeems the caller's reservation against an available car of the same package
// @Tags         delivery
// @Produce      json
// @Param        carId  query  int  true  "Car id"
// @Success      200  {object}  model.Car
// @Failure      400,404,500
// @Router       /delivery [post]
func (h *Controller) PickUp(c echo.Context) error {
	carID, err := strconv.ParseInt(c.QueryParam("carId"), 10, 64)
	if err != nil || carID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid carId"})
	}
	uid, _ := c.Get("user_id").(int64)

	car, err := h.Svc.PickUpCar(c.Request().Context(), uid, carID)
	if err != nil {
		switch deliverysvc.Code(err) {
		case deliverysvc.ErrCarNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "car not found"})
		case deliverysvc.ErrNoReservation:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "no reservation held"})
		case deliverysvc.ErrPackageMismatch:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "reservation is for a different package"})
		case deliverysvc.ErrCarUnavailable:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "car is not available"})
		default:
			h.Log.Error("pickup", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, car)
}
