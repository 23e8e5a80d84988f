package infra

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/lunchly/docs"
	"github.com/umalmyha/lunchly/internal/config"
	"github.com/umalmyha/lunchly/internal/handlers"
	"github.com/umalmyha/lunchly/internal/middleware"
	"github.com/umalmyha/lunchly/internal/render"
	"github.com/umalmyha/lunchly/internal/repository"
	"github.com/umalmyha/lunchly/internal/service"
	"github.com/umalmyha/lunchly/internal/validation"
	"github.com/umalmyha/lunchly/pkg/db/gateway"
)

// App wires repositories and services on top of pool and builds router
func App(pgPool *pgxpool.Pool, cfg config.ReservationsCfg, logger *logrus.Logger) (*echo.Echo, error) {
	// Persistence gateway
	gw := gateway.New(pgPool, logger.WithField("component", "gateway"))

	// Repositories
	customerRps := repository.NewPostgresCustomerRepository(gw)
	reservationRps := repository.NewPostgresReservationRepository(gw)

	// Services
	customerSvc := service.NewCustomerService(customerRps, reservationRps, cfg.BestCustomersLimit)
	reservationSvc := service.NewReservationService(reservationRps)

	return Router(customerSvc, reservationSvc, logger)
}

// Router registers middleware, api and site routes on new echo instance
func Router(customerSvc service.CustomerService, reservationSvc service.ReservationService, logger *logrus.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	validator, err := validation.English()
	if err != nil {
		return nil, err
	}
	e.Validator = validator

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	e.HTTPErrorHandler = handlers.HTTPErrorHandler(logger)

	// Middleware
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())

	// Handlers
	siteHandler := handlers.NewSiteHandler(customerSvc, reservationSvc)
	customerAPIHandler := handlers.NewCustomerAPIHandler(customerSvc, reservationSvc)

	e.GET("/health", handlers.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API routes
	api := e.Group("/api/v1")

	customersAPI := api.Group("/customers")
	customersAPI.GET("", customerAPIHandler.GetAll)
	customersAPI.POST("", customerAPIHandler.Post)
	customersAPI.GET("/best", customerAPIHandler.GetBest)
	customersAPI.GET("/:id", customerAPIHandler.Get)
	customersAPI.PUT("/:id", customerAPIHandler.Put)
	customersAPI.GET("/:id/reservations", customerAPIHandler.GetReservations)
	customersAPI.POST("/:id/reservations", customerAPIHandler.PostReservation)

	// Site routes
	e.GET("/", siteHandler.List)
	e.GET("/add/", siteHandler.NewForm)
	e.POST("/add/", siteHandler.Create)
	e.GET("/best-customers/", siteHandler.Best)
	e.GET("/:id/", siteHandler.Detail)
	e.GET("/:id/edit/", siteHandler.EditForm)
	e.POST("/:id/edit/", siteHandler.Edit)
	e.POST("/:id/add-reservation/", siteHandler.AddReservation)

	return e, nil
}
