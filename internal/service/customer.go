package service

import (
	"context"
	"fmt"
	apperrors "github.com/umalmyha/lunchly/internal/errors"
	"github.com/umalmyha/lunchly/internal/model"
	"github.com/umalmyha/lunchly/internal/repository"
)

// CustomerService represents customer operations
type CustomerService interface {
	FindAll(context.Context) ([]*model.Customer, error)
	FindByID(context.Context, int64) (*model.Customer, error)
	FindBest(context.Context, int) ([]*model.Customer, error)
	SearchByName(context.Context, string) ([]*model.Customer, error)
	Reservations(context.Context, *model.Customer) ([]*model.Reservation, error)
	Create(context.Context, *model.Customer) (*model.Customer, error)
	Update(context.Context, *model.Customer) (*model.Customer, error)
}

type customerService struct {
	customerRps    repository.CustomerRepository
	reservationRps repository.ReservationRepository
	bestLimit      int
}

// NewCustomerService builds CustomerService, bestLimit is used when report limit is not positive
func NewCustomerService(customerRps repository.CustomerRepository, reservationRps repository.ReservationRepository, bestLimit int) CustomerService {
	return &customerService{
		customerRps:    customerRps,
		reservationRps: reservationRps,
		bestLimit:      bestLimit,
	}
}

func (s *customerService) FindAll(ctx context.Context) ([]*model.Customer, error) {
	return s.customerRps.FindAll(ctx)
}

func (s *customerService) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	c, err := s.customerRps.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c == nil {
		return nil, apperrors.NewNotFoundErr(fmt.Sprintf("No such customer: %d", id))
	}
	return c, nil
}

func (s *customerService) FindBest(ctx context.Context, limit int) ([]*model.Customer, error) {
	if limit <= 0 {
		limit = s.bestLimit
	}
	return s.customerRps.FindBest(ctx, limit)
}

func (s *customerService) SearchByName(ctx context.Context, term string) ([]*model.Customer, error) {
	return s.customerRps.SearchByName(ctx, term)
}

func (s *customerService) Reservations(ctx context.Context, c *model.Customer) ([]*model.Reservation, error) {
	return s.reservationRps.FindByCustomerID(ctx, c.ID)
}

func (s *customerService) Create(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if c.IsPersisted() {
		return nil, apperrors.NewValidationErr("id", fmt.Sprintf("Customer %d is already saved.", c.ID))
	}

	if err := s.customerRps.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) Update(ctx context.Context, c *model.Customer) (*model.Customer, error) {
	if !c.IsPersisted() {
		return nil, apperrors.NewValidationErr("id", "Customer must be saved before update.")
	}

	updated, err := s.customerRps.Update(ctx, c)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, apperrors.NewNotFoundErr(fmt.Sprintf("No such customer: %d", c.ID))
	}
	return c, nil
}
