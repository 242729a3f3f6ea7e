package order

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/model"
	ordersvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/order"
)

type coded struct{ c ordersvc.ErrCode }

func (e coded) Error() string          { return string(e.c) }
func (e coded) Code() ordersvc.ErrCode { return e.c }

type svcMock struct {
	submitErr error
	summary   *ordersvc.Summary
	orders    []model.PlacedOrder

	gotUserID  int64
	gotPackage string
	gotHours   int
}

func (m *svcMock) SubmitOrder(ctx context.Context, userID int64, pkg string, hours int) (*ordersvc.Summary, error) {
	m.gotUserID = userID
	m.gotPackage = pkg
	m.gotHours = hours
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return m.summary, nil
}

func (m *svcMock) MyOrders(ctx context.Context, userID int64) ([]model.PlacedOrder, error) {
	return m.orders, nil
}

func doSubmit(t *testing.T, svc ordersvc.Service, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/orders?"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(1))

	h := &Controller{Svc: svc, Log: slog.Default()}
	require.NoError(t, h.Submit(c))
	return rec
}

func TestSubmit_Success(t *testing.T) {
	m := &svcMock{summary: &ordersvc.Summary{ReservationID: 7, PackageName: "Economy", Hours: 2}}
	rec := doSubmit(t, m, "carPackage=Economy&hours=2")

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, int64(1), m.gotUserID)
	require.Equal(t, "Economy", m.gotPackage)
	require.Equal(t, 2, m.gotHours)
}

func TestSubmit_StatusMapping(t *testing.T) {
	cases := []struct {
		code ordersvc.ErrCode
		want int
	}{
		{ordersvc.ErrPackageNotFound, http.StatusNotFound},
		{ordersvc.ErrNoCard, http.StatusBadRequest},
		{ordersvc.ErrExistingReservation, http.StatusBadRequest},
		{ordersvc.ErrInsufficientFunds, http.StatusBadRequest},
	}
	for _, tc := range cases {
		m := &svcMock{submitErr: coded{c: tc.code}}
		rec := doSubmit(t, m, "carPackage=Economy&hours=2")
		require.Equal(t, tc.want, rec.Code, string(tc.code))
	}
}

func TestSubmit_MalformedParams(t *testing.T) {
	m := &svcMock{}
	for _, query := range []string{"", "carPackage=Economy", "carPackage=Economy&hours=0", "carPackage=Economy&hours=abc", "carPackage=Economy&hours=-3"} {
		rec := doSubmit(t, m, query)
		require.Equal(t, http.StatusBadRequest, rec.Code, query)
		require.Zero(t, m.gotHours, query)
	}
}

func TestMyOrders(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", int64(1))

	h := &Controller{Svc: &svcMock{orders: []model.PlacedOrder{{ID: 1, CarID: 2}}}, Log: slog.Default()}
	require.NoError(t, h.MyOrders(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"car_id":2`)
}
