package payment

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	paymentsvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/payment"
)

type Controller struct {
	Svc paymentsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /payment/creditCard
// @Summary      Attach a payment card
// @Description  Stores the user's single card with balance 0
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        payload  body  AttachCardReq  true  "Card payload"
// @Success      201  {object}  map[string]any
// @Failure      400,409,500
// @Router       /payment/creditCard [post]
func (h *Controller) AttachCard(c echo.Context) error {
	var req AttachCardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  err.Error(),
		})
	}
	uid, _ := c.Get("user_id").(int64)

	card, err := h.Svc.AttachCard(c.Request().Context(), uid, paymentsvc.AttachCardInput{
		Number:      req.Number,
		ExpiryMonth: req.ExpiryMonth,
		ExpiryYear:  req.ExpiryYear,
		CVV:         req.CVV,
	})
	if err != nil {
		switch paymentsvc.Code(err) {
		case paymentsvc.ErrInvalidCard:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid card data"})
		case paymentsvc.ErrCardExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "card already attached"})
		default:
			h.Log.Error("attach card", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"card_id": card.ID,
		"number":  maskNumber(card.Number),
		"balance": card.Balance,
	})
}

// GET /payment/creditCard
// @Summary      Get the caller's card
// @Tags         payment
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      400,401,500
// @Router       /payment/creditCard [get]
func (h *Controller) Card(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)

	card, err := h.Svc.Card(c.Request().Context(), uid)
	if err != nil {
		switch paymentsvc.Code(err) {
		case paymentsvc.ErrNoCard:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "no credit card registered"})
		default:
			h.Log.Error("get card", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"card_id":      card.ID,
		"number":       maskNumber(card.Number),
		"expiry_month": card.ExpiryMonth,
		"expiry_year":  card.ExpiryYear,
		"balance":      card.Balance,
	})
}

// PUT /payment/moneyTransfer?moneyAmount={n}
// @Summary      Top up the card balance
// @Tags         payment
// @Produce      json
// @Param        moneyAmount  query  int  true  "Amount to credit"
// @Success      200  {object}  map[string]any
// @Failure      400,401,500
// @Router       /payment/moneyTransfer [put]
func (h *Controller) MoneyTransfer(c echo.Context) error {
	amount, err := strconv.ParseInt(c.QueryParam("moneyAmount"), 10, 64)
	if err != nil || amount < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "moneyAmount must be a non-negative integer"})
	}
	uid, _ := c.Get("user_id").(int64)

	card, err := h.Svc.Credit(c.Request().Context(), uid, amount)
	if err != nil {
		switch paymentsvc.Code(err) {
		case paymentsvc.ErrNoCard:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "no credit card registered"})
		default:
			h.Log.Error("money transfer", "err", err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"card_id": card.ID,
		"balance": card.Balance,
	})
}

func maskNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	return strings.Repeat("*", len(number)-4) + number[len(number)-4:]
}
