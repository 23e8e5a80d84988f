package gateway

import (
	"context"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype/pgxtype"
	"github.com/jackc/pgx/v4"
	"github.com/sirupsen/logrus"
	"time"
)

// Gateway executes parameterized statements against relational store.
// Errors are returned exactly as reported by the store.
type Gateway struct {
	querier pgxtype.Querier
	logger  logrus.FieldLogger
}

// New wraps querier (pool, connection or transaction) into Gateway
func New(q pgxtype.Querier, logger logrus.FieldLogger) *Gateway {
	return &Gateway{querier: q, logger: logger}
}

// Exec executes statement which returns no rows
func (g *Gateway) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	start := time.Now()
	tag, err := g.querier.Exec(ctx, sql, args...)
	g.trace(sql, start, err)
	return tag, err
}

// Query executes statement returning rows, failures raised while reading rows are not traced
func (g *Gateway) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	start := time.Now()
	rows, err := g.querier.Query(ctx, sql, args...)
	g.trace(sql, start, err)
	return rows, err
}

// QueryRow executes statement returning single row, statement is traced once row is scanned
func (g *Gateway) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return &tracedRow{
		row:   g.querier.QueryRow(ctx, sql, args...),
		sql:   sql,
		start: time.Now(),
		g:     g,
	}
}

func (g *Gateway) trace(sql string, start time.Time, err error) {
	entry := g.logger.WithFields(logrus.Fields{
		"sql":      sql,
		"duration": time.Since(start),
	})

	if err != nil {
		entry.WithError(err).Debug("statement failed")
		return
	}
	entry.Trace("statement executed")
}

// tracedRow defers tracing until Scan, where QueryRow errors surface
type tracedRow struct {
	row   pgx.Row
	sql   string
	start time.Time
	g     *Gateway
}

func (r *tracedRow) Scan(dest ...any) error {
	err := r.row.Scan(dest...)
	r.g.trace(r.sql, r.start, err)
	return err
}
