package service

import (
	"context"
	"fmt"
	apperrors "github.com/umalmyha/lunchly/internal/errors"
	"github.com/umalmyha/lunchly/internal/model"
	"github.com/umalmyha/lunchly/internal/repository"
)

// ReservationService represents reservation operations
type ReservationService interface {
	FindForCustomer(context.Context, int64) ([]*model.Reservation, error)
	Create(context.Context, *model.Reservation) (*model.Reservation, error)
	Update(context.Context, *model.Reservation) (*model.Reservation, error)
}

type reservationService struct {
	reservationRps repository.ReservationRepository
}

// NewReservationService builds ReservationService
func NewReservationService(reservationRps repository.ReservationRepository) ReservationService {
	return &reservationService{reservationRps: reservationRps}
}

func (s *reservationService) FindForCustomer(ctx context.Context, customerID int64) ([]*model.Reservation, error) {
	return s.reservationRps.FindByCustomerID(ctx, customerID)
}

// Create stores new reservation, unknown customer is reported by the store as is
func (s *reservationService) Create(ctx context.Context, r *model.Reservation) (*model.Reservation, error) {
	if r.IsPersisted() {
		return nil, apperrors.NewValidationErr("id", fmt.Sprintf("Reservation %d is already saved.", r.ID))
	}

	if err := s.reservationRps.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *reservationService) Update(ctx context.Context, r *model.Reservation) (*model.Reservation, error) {
	if !r.IsPersisted() {
		return nil, apperrors.NewValidationErr("id", "Reservation must be saved before update.")
	}

	updated, err := s.reservationRps.Update(ctx, r)
	if err != nil {
		return nil, err
	}

	if !updated {
		return nil, apperrors.NewNotFoundErr(fmt.Sprintf("No such reservation: %d", r.ID))
	}
	return r, nil
}
