package repository

import (
	"context"
	"errors"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/lunchly/internal/model"
	"strings"
)

const customerColumns = "c.id, c.first_name, c.last_name, c.phone, c.notes"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CustomerRepository represents behavior for customer repository
type CustomerRepository interface {
	FindByID(context.Context, int64) (*model.Customer, error)
	FindAll(context.Context) ([]*model.Customer, error)
	FindBest(context.Context, int) ([]*model.Customer, error)
	SearchByName(context.Context, string) ([]*model.Customer, error)
	Create(context.Context, *model.Customer) error
	Update(context.Context, *model.Customer) (bool, error)
}

type postgresCustomerRepository struct {
	db pgxtype.Querier
}

// NewPostgresCustomerRepository builds customer repository backed by PostgreSQL
func NewPostgresCustomerRepository(db pgxtype.Querier) CustomerRepository {
	return &postgresCustomerRepository{db: db}
}

// FindByID returns nil without error when customer doesn't exist
func (r *postgresCustomerRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers c WHERE c.id = $1"
	c, err := scanCustomer(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) FindAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers c ORDER BY c.last_name, c.first_name"
	return r.queryCustomers(ctx, q)
}

// FindBest returns customers having most reservations, customers without reservations are excluded
func (r *postgresCustomerRepository) FindBest(ctx context.Context, limit int) ([]*model.Customer, error) {
	q := `SELECT ` + customerColumns + `, COUNT(r.id) AS reservation_count
          FROM customers c
          INNER JOIN reservations r ON r.customer_id = c.id
          GROUP BY c.id
          ORDER BY reservation_count DESC, c.last_name, c.first_name
          LIMIT $1`

	rows, err := r.db.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		var count int64
		c, err := scanCustomer(rows, &count)
		if err != nil {
			return nil, err
		}
		c.ReservationCount = &count
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

// SearchByName matches term case-insensitively against first name, last name or full name
func (r *postgresCustomerRepository) SearchByName(ctx context.Context, term string) ([]*model.Customer, error) {
	q := `SELECT ` + customerColumns + `
          FROM customers c
          WHERE c.first_name ILIKE $1
          OR    c.last_name ILIKE $1
          OR    CONCAT(c.first_name, ' ', c.last_name) ILIKE $1
          ORDER BY c.last_name, c.first_name`
	return r.queryCustomers(ctx, q, "%"+likeEscaper.Replace(term)+"%")
}

// Create inserts customer and assigns generated id to it
func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	q := `INSERT INTO customers(first_name, last_name, phone, notes)
          VALUES($1, $2, $3, $4)
          RETURNING id`
	return r.db.QueryRow(ctx, q, c.FirstName, c.LastName, nullableText(c.Phone), c.Notes).Scan(&c.ID)
}

func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) (bool, error) {
	q := `UPDATE customers SET first_name = $1, last_name = $2, phone = $3, notes = $4
          WHERE id = $5`
	comm, err := r.db.Exec(ctx, q, c.FirstName, c.LastName, nullableText(c.Phone), c.Notes, c.ID)
	if err != nil {
		return false, err
	}
	return comm.RowsAffected() > 0, nil
}

func (r *postgresCustomerRepository) queryCustomers(ctx context.Context, q string, args ...any) ([]*model.Customer, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

// scanCustomer decodes customer columns followed by optional extra columns
func scanCustomer(row pgx.Row, extra ...any) (*model.Customer, error) {
	var (
		id        int64
		firstName string
		lastName  string
		phone     pgtype.Text
		notes     pgtype.Text
	)

	dest := append([]any{&id, &firstName, &lastName, &phone, &notes}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	c := &model.Customer{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Phone:     textValue(phone),
	}
	c.SetNotes(textPtr(notes))
	return c, nil
}
