package repository

import (
	"context"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/lunchly/internal/model"
	"time"
)

// ReservationRepository represents behavior for reservation repository
type ReservationRepository interface {
	FindByCustomerID(context.Context, int64) ([]*model.Reservation, error)
	Create(context.Context, *model.Reservation) error
	Update(context.Context, *model.Reservation) (bool, error)
}

type postgresReservationRepository struct {
	db pgxtype.Querier
}

// NewPostgresReservationRepository builds reservation repository backed by PostgreSQL
func NewPostgresReservationRepository(db pgxtype.Querier) ReservationRepository {
	return &postgresReservationRepository{db: db}
}

// FindByCustomerID returns customer reservations in store order.
// Guest count of every row is validated again, so invalid rows fail the whole read.
func (r *postgresReservationRepository) FindByCustomerID(ctx context.Context, customerID int64) ([]*model.Reservation, error) {
	q := `SELECT id, customer_id, start_at, num_guests, notes
          FROM reservations
          WHERE customer_id = $1`

	rows, err := r.db.Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]*model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}

// Create inserts reservation and assigns generated id to it
func (r *postgresReservationRepository) Create(ctx context.Context, res *model.Reservation) error {
	q := `INSERT INTO reservations(customer_id, start_at, num_guests, notes)
          VALUES($1, $2, $3, $4)
          RETURNING id`
	return r.db.QueryRow(ctx, q, res.CustomerID, res.StartAt, res.NumGuests, res.Notes).Scan(&res.ID)
}

func (r *postgresReservationRepository) Update(ctx context.Context, res *model.Reservation) (bool, error) {
	q := `UPDATE reservations SET customer_id = $1, start_at = $2, num_guests = $3, notes = $4
          WHERE id = $5`
	comm, err := r.db.Exec(ctx, q, res.CustomerID, res.StartAt, res.NumGuests, res.Notes, res.ID)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func scanReservation(row pgx.Row) (*model.Reservation, error) {
	var (
		id         int64
		customerID int64
		startAt    time.Time
		numGuests  int
		notes      pgtype.Text
	)

	if err := row.Scan(&id, &customerID, &startAt, &numGuests, &notes); err != nil {
		return nil, err
	}

	res := &model.Reservation{
		ID:         id,
		CustomerID: customerID,
		StartAt:    startAt,
		Notes:      textValue(notes),
	}

	if err := res.SetNumGuests(numGuests); err != nil {
		return nil, err
	}
	return res, nil
}
