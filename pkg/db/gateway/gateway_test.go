package gateway

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

type stubQuerier struct {
	tag pgconn.CommandTag
	err error
	sql []string
}

func (q *stubQuerier) Exec(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	q.sql = append(q.sql, sql)
	return q.tag, q.err
}

func (q *stubQuerier) Query(_ context.Context, sql string, _ ...interface{}) (pgx.Rows, error) {
	q.sql = append(q.sql, sql)
	return nil, q.err
}

func (q *stubQuerier) QueryRow(_ context.Context, sql string, _ ...interface{}) pgx.Row {
	q.sql = append(q.sql, sql)
	return &stubRow{err: q.err}
}

type stubRow struct {
	err error
}

func (r *stubRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int64) = 42
	return nil
}

func TestGatewayPassesThrough(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	q := &stubQuerier{tag: pgconn.CommandTag("UPDATE 1")}
	gw := New(q, logger)

	tag, err := gw.Exec(context.Background(), "UPDATE customers SET notes = $1 WHERE id = $2", "", 1)
	require.NoError(t, err, "no error must be raised")
	require.Equal(t, int64(1), tag.RowsAffected(), "command tag must be returned unchanged")
	require.Equal(t, []string{"UPDATE customers SET notes = $1 WHERE id = $2"}, q.sql)

	require.Len(t, hook.AllEntries(), 1, "statement must be traced")
	require.Equal(t, logrus.TraceLevel, hook.LastEntry().Level)
}

func TestGatewayReturnsStoreErrorUnchanged(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	storeErr := errors.New("connection refused")
	gw := New(&stubQuerier{err: storeErr}, logger)

	_, err := gw.Query(context.Background(), "SELECT 1")
	require.Same(t, storeErr, err, "store error must not be wrapped")
	require.Equal(t, logrus.DebugLevel, hook.LastEntry().Level, "failed statement must be logged on debug")
}

func TestGatewayTracesQueryRowOnScan(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.TraceLevel)

	t.Log("successful scan is traced")
	{
		gw := New(&stubQuerier{}, logger)

		row := gw.QueryRow(context.Background(), "INSERT INTO customers(first_name) VALUES($1) RETURNING id", "Ann")
		require.Empty(t, hook.AllEntries(), "statement must not be traced before scan")

		var id int64
		require.NoError(t, row.Scan(&id), "no error must be raised")
		require.Equal(t, int64(42), id)
		require.Len(t, hook.AllEntries(), 1, "statement must be traced on scan")
		require.Equal(t, logrus.TraceLevel, hook.LastEntry().Level)
	}

	hook.Reset()

	t.Log("error surfaced by scan is traced as failure and returned unchanged")
	{
		storeErr := errors.New("insert or update on table violates foreign key constraint")
		gw := New(&stubQuerier{err: storeErr}, logger)

		var id int64
		err := gw.QueryRow(context.Background(), "INSERT INTO reservations(customer_id) VALUES($1) RETURNING id", 999).Scan(&id)
		require.Same(t, storeErr, err, "store error must not be wrapped")
		require.Len(t, hook.AllEntries(), 1, "failed statement must be traced once")
		require.Equal(t, logrus.DebugLevel, hook.LastEntry().Level)
		require.Equal(t, storeErr, hook.LastEntry().Data[logrus.ErrorKey])
	}
}
