package handlers

import (
	"encoding/json"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/lunchly/internal/model"
	"github.com/umalmyha/lunchly/internal/service"
	"net/http"
)

type newCustomer struct {
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Phone     string  `json:"phone" validate:"max=30"`
	Notes     *string `json:"notes"`
}

type updateCustomer struct {
	ID        int64   `param:"id" json:"-" validate:"required,gt=0"`
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Phone     string  `json:"phone" validate:"max=30"`
	Notes     *string `json:"notes"`
}

type newReservation struct {
	CustomerID int64       `param:"id" json:"-" validate:"required,gt=0"`
	StartAt    string      `json:"startAt" validate:"required" example:"2024-03-01T19:30:00Z"`
	NumGuests  json.Number `json:"numGuests" validate:"required" swaggertype:"integer" example:"4"`
	Notes      string      `json:"notes"`
}

// CustomerAPIHandler is json api handler for customers endpoint
type CustomerAPIHandler struct {
	customerSvc    service.CustomerService
	reservationSvc service.ReservationService
}

// NewCustomerAPIHandler builds new CustomerAPIHandler
func NewCustomerAPIHandler(customerSvc service.CustomerService, reservationSvc service.ReservationService) *CustomerAPIHandler {
	return &CustomerAPIHandler{
		customerSvc:    customerSvc,
		reservationSvc: reservationSvc,
	}
}

// GetAll gets all customers
// @Summary     Get customers
// @Description Returns all customers ordered by last and first name, or customers matching search term
// @Tags        customers
// @Produce     json
// @Param       search query    string false "Case-insensitive part of customer name"
// @Success     200    {array}  model.Customer
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers [get]
func (h *CustomerAPIHandler) GetAll(c echo.Context) error {
	ctx := c.Request().Context()

	var (
		customers []*model.Customer
		err       error
	)
	if search := c.QueryParam("search"); search != "" {
		customers, err = h.customerSvc.SearchByName(ctx, search)
	} else {
		customers, err = h.customerSvc.FindAll(ctx)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customers)
}

// GetBest gets best customers
// @Summary     Get best customers
// @Description Returns customers with most reservations together with reservation count
// @Tags        customers
// @Produce     json
// @Param       limit  query    int false "Max number of customers"
// @Success     200    {array}  model.Customer
// @Failure     400    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/best [get]
func (h *CustomerAPIHandler) GetBest(c echo.Context) error {
	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	customers, err := h.customerSvc.FindBest(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// Get gets customer
// @Summary     Get single customer by id
// @Description Returns single customer with provided id
// @Tags        customers
// @Produce     json
// @Param       id     path     int true "Customer id"
// @Success     200    {object} model.Customer
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [get]
func (h *CustomerAPIHandler) Get(c echo.Context) error {
	var p customerPath
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&p); err != nil {
		return err
	}

	customer, err := h.customerSvc.FindByID(c.Request().Context(), p.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customer)
}

// Post creates new customer
// @Summary     New customer
// @Description Creates new customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       newCustomer body     newCustomer true "Data for new customer"
// @Success     201         {object} model.Customer
// @Failure     400         {object} echo.HTTPError
// @Failure     500         {object} echo.HTTPError
// @Router      /api/v1/customers [post]
func (h *CustomerAPIHandler) Post(c echo.Context) error {
	var nc newCustomer
	if err := c.Bind(&nc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nc); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), model.NewCustomer(nc.FirstName, nc.LastName, nc.Phone, nc.Notes))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, customer)
}

// Put updates customer
// @Summary     Update customer
// @Description Replaces all mutable fields of existing customer
// @Tags        customers
// @Accept      json
// @Produce     json
// @Param       id             path     int            true "Customer id"
// @Param       updateCustomer body     updateCustomer true "Customer data"
// @Success     200            {object} model.Customer
// @Failure     400            {object} echo.HTTPError
// @Failure     404            {object} echo.HTTPError
// @Failure     500            {object} echo.HTTPError
// @Router      /api/v1/customers/{id} [put]
func (h *CustomerAPIHandler) Put(c echo.Context) error {
	var uc updateCustomer
	if err := c.Bind(&uc); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&uc); err != nil {
		return err
	}

	customer := model.NewCustomer(uc.FirstName, uc.LastName, uc.Phone, uc.Notes)
	customer.ID = uc.ID

	updated, err := h.customerSvc.Update(c.Request().Context(), customer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// GetReservations gets customer reservations
// @Summary     Get customer reservations
// @Description Returns all reservations of customer
// @Tags        reservations
// @Produce     json
// @Param       id     path     int true "Customer id"
// @Success     200    {array}  model.Reservation
// @Failure     400    {object} echo.HTTPError
// @Failure     404    {object} echo.HTTPError
// @Failure     500    {object} echo.HTTPError
// @Router      /api/v1/customers/{id}/reservations [get]
func (h *CustomerAPIHandler) GetReservations(c echo.Context) error {
	var p customerPath
	if err := c.Bind(&p); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&p); err != nil {
		return err
	}

	ctx := c.Request().Context()
	customer, err := h.customerSvc.FindByID(ctx, p.ID)
	if err != nil {
		return err
	}

	reservations, err := h.customerSvc.Reservations(ctx, customer)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reservations)
}

// PostReservation creates reservation
// @Summary     New reservation
// @Description Creates reservation for customer
// @Tags        reservations
// @Accept      json
// @Produce     json
// @Param       id             path     int            true "Customer id"
// @Param       newReservation body     newReservation true "Reservation data"
// @Success     201            {object} model.Reservation
// @Failure     400            {object} echo.HTTPError
// @Failure     500            {object} echo.HTTPError
// @Router      /api/v1/customers/{id}/reservations [post]
func (h *CustomerAPIHandler) PostReservation(c echo.Context) error {
	var nr newReservation
	if err := c.Bind(&nr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&nr); err != nil {
		return err
	}

	reservation, err := buildReservation(nr.CustomerID, nr.StartAt, nr.NumGuests.String(), nr.Notes)
	if err != nil {
		return err
	}

	created, err := h.reservationSvc.Create(c.Request().Context(), reservation)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}
