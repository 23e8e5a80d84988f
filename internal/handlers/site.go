package handlers

import (
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/umalmyha/lunchly/internal/model"
	"github.com/umalmyha/lunchly/internal/service"
	"net/http"
)

type customerPath struct {
	ID int64 `param:"id" validate:"required,gt=0"`
}

type customerForm struct {
	FirstName string `form:"firstName" validate:"required,max=100"`
	LastName  string `form:"lastName" validate:"required,max=100"`
	Phone     string `form:"phone" validate:"max=30"`
	Notes     string `form:"notes"`
}

type editCustomerForm struct {
	ID        int64  `param:"id" validate:"required,gt=0"`
	FirstName string `form:"firstName" validate:"required,max=100"`
	LastName  string `form:"lastName" validate:"required,max=100"`
	Phone     string `form:"phone" validate:"max=30"`
	Notes     string `form:"notes"`
}

type reservationForm struct {
	ID        int64  `param:"id" validate:"required,gt=0"`
	StartAt   string `form:"startAt" validate:"required"`
	NumGuests string `form:"numGuests" validate:"required"`
	Notes     string `form:"notes"`
}

type customerListPage struct {
	Customers []*model.Customer
	Search    string
}

type customerPage struct {
	Customer     *model.Customer
	Reservations []*model.Reservation
}

// SiteHandler serves html pages
type SiteHandler struct {
	customerSvc    service.CustomerService
	reservationSvc service.ReservationService
}

// NewSiteHandler builds new SiteHandler
func NewSiteHandler(customerSvc service.CustomerService, reservationSvc service.ReservationService) *SiteHandler {
	return &SiteHandler{
		customerSvc:    customerSvc,
		reservationSvc: reservationSvc,
	}
}

// List shows all customers or customers matching cusName query
func (h *SiteHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	search := c.QueryParam("cusName")

	var (
		customers []*model.Customer
		err       error
	)
	if search == "" {
		customers, err = h.customerSvc.FindAll(ctx)
	} else {
		customers, err = h.customerSvc.SearchByName(ctx, search)
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "customer_list.html", &customerListPage{Customers: customers, Search: search})
}

// NewForm shows empty customer form
func (h *SiteHandler) NewForm(c echo.Context) error {
	return c.Render(http.StatusOK, "customer_new_form.html", nil)
}

// Create stores new customer and redirects to its page
func (h *SiteHandler) Create(c echo.Context) error {
	var f customerForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&f); err != nil {
		return err
	}

	customer, err := h.customerSvc.Create(c.Request().Context(), model.NewCustomer(f.FirstName, f.LastName, f.Phone, &f.Notes))
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, customerURL(customer.ID))
}

// Best shows customers with most reservations
func (h *SiteHandler) Best(c echo.Context) error {
	customers, err := h.customerSvc.FindBest(c.Request().Context(), 0)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "best_customers.html", &customerListPage{Customers: customers})
}

// Detail shows customer with reservations
func (h *SiteHandler) Detail(c echo.Context) error {
	customer, err := h.customer(c)
	if err != nil {
		return err
	}

	reservations, err := h.customerSvc.Reservations(c.Request().Context(), customer)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "customer_detail.html", &customerPage{Customer: customer, Reservations: reservations})
}

// EditForm shows customer form filled with current values
func (h *SiteHandler) EditForm(c echo.Context) error {
	customer, err := h.customer(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "customer_edit_form.html", &customerPage{Customer: customer})
}

// Edit replaces customer fields and redirects to its page
func (h *SiteHandler) Edit(c echo.Context) error {
	var f editCustomerForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&f); err != nil {
		return err
	}

	ctx := c.Request().Context()
	customer, err := h.customerSvc.FindByID(ctx, f.ID)
	if err != nil {
		return err
	}

	customer.FirstName = f.FirstName
	customer.LastName = f.LastName
	customer.Phone = f.Phone
	customer.SetNotes(&f.Notes)

	if _, err := h.customerSvc.Update(ctx, customer); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, customerURL(customer.ID))
}

// AddReservation stores reservation for customer and redirects to customer page
func (h *SiteHandler) AddReservation(c echo.Context) error {
	var f reservationForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&f); err != nil {
		return err
	}

	reservation, err := buildReservation(f.ID, f.StartAt, f.NumGuests, f.Notes)
	if err != nil {
		return err
	}

	if _, err := h.reservationSvc.Create(c.Request().Context(), reservation); err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, customerURL(f.ID))
}

func (h *SiteHandler) customer(c echo.Context) (*model.Customer, error) {
	var p customerPath
	if err := c.Bind(&p); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&p); err != nil {
		return nil, err
	}

	return h.customerSvc.FindByID(c.Request().Context(), p.ID)
}

func buildReservation(customerID int64, rawStartAt, rawNumGuests, notes string) (*model.Reservation, error) {
	startAt, err := model.ParseStartAt(rawStartAt)
	if err != nil {
		return nil, err
	}

	numGuests, err := model.ParseNumGuests(rawNumGuests)
	if err != nil {
		return nil, err
	}

	return model.NewReservation(customerID, startAt, numGuests, notes)
}

func customerURL(id int64) string {
	return fmt.Sprintf("/%d/", id)
}
