// Package main car-rental API.
//
// @title           Car Rental API
// @version         1.0
// @description     car-rental booking service (packages, cars, orders, delivery, payment).
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer"
	authctrl "github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/auth"
	catalogctrl "github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/catalog"
	deliveryctrl "github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/delivery"
	orderctrl "github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/order"
	paymentctrl "github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/controller/payment"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/app/echoServer/validation"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/config"
	authrepo "github.com/lucasbrentano/car-rental-project-vev-sub000/repository/auth"
	cardrepo "github.com/lucasbrentano/car-rental-project-vev-sub000/repository/card"
	catalogrepo "github.com/lucasbrentano/car-rental-project-vev-sub000/repository/catalog"
	historyrepo "github.com/lucasbrentano/car-rental-project-vev-sub000/repository/history"
	reservationrepo "github.com/lucasbrentano/car-rental-project-vev-sub000/repository/reservation"
	vehicledatarepo "github.com/lucasbrentano/car-rental-project-vev-sub000/repository/vehicledata"
	authsvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/auth"
	catalogsvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/catalog"
	deliverysvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/delivery"
	ordersvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/order"
	paymentsvc "github.com/lucasbrentano/car-rental-project-vev-sub000/service/payment"
	"github.com/lucasbrentano/car-rental-project-vev-sub000/util/database"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB: pgx pool
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	ar := authrepo.New(db)
	cr := cardrepo.New(db)
	gr := catalogrepo.New(db)
	rr := reservationrepo.New(db)
	hr := historyrepo.New(db)
	vr := vehicledatarepo.NewHTTP(cfg.ApiNinjasKey)

	// services
	as := authsvc.New(ar, cfg.JWTSecret)
	gs := catalogsvc.New(gr, vr)
	ors := ordersvc.New(db.Pool, cr, rr, gr, hr)
	ds := deliverysvc.New(db.Pool, gr, rr, hr)
	ps := paymentsvc.New(db.Pool, cr)

	// controllers
	v := validator.New()
	authC := &authctrl.Controller{Svc: as, V: v, Log: log}
	catalogC := &catalogctrl.Controller{Svc: gs, V: v, Log: log}
	orderC := &orderctrl.Controller{Svc: ors, Log: log}
	deliveryC := &deliveryctrl.Controller{Svc: ds, Log: log}
	paymentC := &paymentctrl.Controller{Svc: ps, V: v, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:     authC,
		Catalog:  catalogC,
		Order:    orderC,
		Delivery: deliveryC,
		Payment:  paymentC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}
	if port == "" {
		port = "8080"
	}

	slog.Info("starting server", "chosen_port", port)

	e.Logger.Fatal(e.Start(":" + port))
}
