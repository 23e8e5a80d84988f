package repository

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgtype"
	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/lunchly/internal/errors"
)

// stubRow assigns fixed column values to scan destinations in order
type stubRow struct {
	values []any
	err    error
}

func (r *stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("unexpected number of destinations")
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

func reservationRow(numGuests int, notes pgtype.Text) *stubRow {
	startAt := time.Date(2024, time.March, 1, 19, 30, 0, 0, time.UTC)
	return &stubRow{values: []any{int64(1), int64(3), startAt, numGuests, notes}}
}

func TestScanReservation(t *testing.T) {
	t.Log("valid row is decoded")
	res, err := scanReservation(reservationRow(3, pgtype.Text{String: "terrace", Status: pgtype.Present}))
	require.NoError(t, err, "no error must be raised")
	require.Equal(t, int64(1), res.ID)
	require.Equal(t, int64(3), res.CustomerID)
	require.Equal(t, 3, res.NumGuests)
	require.Equal(t, "terrace", res.Notes)

	t.Log("null notes are decoded as empty string")
	res, err = scanReservation(reservationRow(2, pgtype.Text{Status: pgtype.Null}))
	require.NoError(t, err, "no error must be raised")
	require.Equal(t, "", res.Notes)
}

func TestScanReservationRevalidatesGuestCount(t *testing.T) {
	for _, numGuests := range []int{0, -1} {
		res, err := scanReservation(reservationRow(numGuests, pgtype.Text{Status: pgtype.Null}))
		require.Nil(t, res, "invalid row must not be returned")

		var vErr *apperrors.ValidationErr
		require.ErrorAs(t, err, &vErr, "guest count %d must fail validation", numGuests)
		require.Equal(t, "numGuests", vErr.Target())
		require.Equal(t, "Number of guests on reservation must be a positive number.", vErr.Error())
	}
}

func TestScanPassesStoreErrorUnchanged(t *testing.T) {
	storeErr := errors.New("conn closed")

	_, err := scanReservation(&stubRow{err: storeErr})
	require.Same(t, storeErr, err, "store error must not be wrapped")

	_, err = scanCustomer(&stubRow{err: storeErr})
	require.Same(t, storeErr, err, "store error must not be wrapped")
}

func TestScanCustomer(t *testing.T) {
	t.Log("null phone and notes are decoded as empty strings")
	row := &stubRow{values: []any{
		int64(5),
		"Ann",
		"Lee",
		pgtype.Text{Status: pgtype.Null},
		pgtype.Text{Status: pgtype.Null},
	}}
	c, err := scanCustomer(row)
	require.NoError(t, err, "no error must be raised")
	require.Equal(t, "Ann Lee", c.FullName())
	require.Equal(t, "", c.Phone)
	require.Equal(t, "", c.Notes)
	require.Nil(t, c.ReservationCount)

	t.Log("extra columns are scanned after customer columns")
	var count int64
	row = &stubRow{values: []any{
		int64(5),
		"Ann",
		"Lee",
		pgtype.Text{String: "555-0101", Status: pgtype.Present},
		pgtype.Text{String: "window", Status: pgtype.Present},
		int64(4),
	}}
	c, err = scanCustomer(row, &count)
	require.NoError(t, err, "no error must be raised")
	require.Equal(t, "555-0101", c.Phone)
	require.Equal(t, "window", c.Notes)
	require.Equal(t, int64(4), count)
}
