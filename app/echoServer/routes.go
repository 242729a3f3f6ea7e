package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/auth"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/catalog"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/delivery"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/order"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/payment"
)

type C struct {
	Auth      *auth.Controller
	Catalog   *catalog.Controller
	Order     *order.Controller
	Delivery  *delivery.Controller
	Payment   *payment.Controller
	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	e.POST("/users/register", c.Auth.Register)
	e.POST("/users/login", c.Auth.Login)

	// Authenticated
	authed := e.Group("")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
	}))
	// user_id extraction
	authed.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tok, ok := ctx.Get("user").(*jwt.Token)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			sub, ok := claims["sub"].(float64)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			ctx.Set("user_id", int64(sub))
			return next(ctx)
		}
	})

	// Catalog
	authed.GET("/packages", c.Catalog.ListPackages)
	authed.GET("/cars", c.Catalog.ListCars)
	authed.GET("/cars/:id", c.Catalog.CarDetail)
	// Admin endpoints
	authed.POST("/packages", c.Catalog.CreatePackage)
	authed.POST("/cars", c.Catalog.CreateCar)

	// Payment
	authed.POST("/payment/creditCard", c.Payment.AttachCard)
	authed.GET("/payment/creditCard", c.Payment.Card)
	authed.PUT("/payment/moneyTransfer", c.Payment.MoneyTransfer)

	// Orders & delivery
	authed.POST("/orders", c.Order.Submit)
	authed.GET("/orders", c.Order.MyOrders)
	authed.POST("/delivery", c.Delivery.PickUp)
}
