package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	apperrors "github.com/umalmyha/lunchly/internal/errors"
)

func TestSetNumGuests(t *testing.T) {
	r := &Reservation{}

	for _, n := range []int{1, 2, 8, 120} {
		err := r.SetNumGuests(n)
		require.NoError(t, err, "positive guest count %d must be accepted", n)
		require.Equal(t, n, r.NumGuests, "guest count must be retrievable unchanged")
	}

	for _, n := range []int{0, -1, -40} {
		err := r.SetNumGuests(n)
		require.Error(t, err, "guest count %d must be rejected", n)

		var vErr *apperrors.ValidationErr
		require.ErrorAs(t, err, &vErr, "error must be validation error")
		require.Equal(t, "numGuests", vErr.Target(), "validation target must be guest count")
		require.Equal(t, 120, r.NumGuests, "previous guest count must be kept")
	}
}

func TestNewReservation(t *testing.T) {
	startAt := time.Date(2024, time.March, 1, 19, 30, 0, 0, time.UTC)

	t.Log("valid reservation must be built")
	{
		r, err := NewReservation(3, startAt, 4, "birthday")
		require.NoError(t, err, "no error must be raised")
		require.False(t, r.IsPersisted(), "new reservation must be transient")
		require.Equal(t, int64(3), r.CustomerID)
		require.Equal(t, 4, r.NumGuests)
		require.Equal(t, "birthday", r.Notes)
	}

	t.Log("reservation without guests must be rejected")
	{
		r, err := NewReservation(3, startAt, 0, "")
		require.Error(t, err, "zero guests must be rejected")
		require.Nil(t, r, "no reservation must be built")
	}
}

func TestParseNumGuests(t *testing.T) {
	n, err := ParseNumGuests(" 6 ")
	require.NoError(t, err, "integer guest count must be parsed")
	require.Equal(t, 6, n)

	for _, raw := range []string{"2.5", "", "two", "1e3"} {
		_, err := ParseNumGuests(raw)
		require.Error(t, err, "%q must be rejected", raw)
		require.IsType(t, &apperrors.ValidationErr{}, err, "error must be validation error")
	}
}

func TestParseStartAt(t *testing.T) {
	t.Log("datetime-local input must be parsed in local time")
	{
		got, err := ParseStartAt("2024-03-01T19:30")
		require.NoError(t, err, "datetime-local value must be accepted")
		require.Equal(t, time.Date(2024, time.March, 1, 19, 30, 0, 0, time.Local), got)
	}

	t.Log("rfc3339 input must be parsed")
	{
		got, err := ParseStartAt("2024-03-01T19:30:00Z")
		require.NoError(t, err, "rfc3339 value must be accepted")
		require.True(t, got.Equal(time.Date(2024, time.March, 1, 19, 30, 0, 0, time.UTC)))
	}

	t.Log("garbage must be rejected")
	{
		_, err := ParseStartAt("next friday")
		require.IsType(t, &apperrors.ValidationErr{}, err, "error must be validation error")
	}
}

func TestFormattedStartAt(t *testing.T) {
	tests := []struct {
		startAt  time.Time
		expected string
	}{
		{time.Date(2024, time.January, 1, 9, 5, 0, 0, time.UTC), "January 1st 2024, 9:05 am"},
		{time.Date(2023, time.June, 22, 12, 0, 0, 0, time.UTC), "June 22nd 2023, 12:00 pm"},
		{time.Date(2023, time.October, 13, 19, 45, 0, 0, time.UTC), "October 13th 2023, 7:45 pm"},
		{time.Date(2025, time.May, 3, 0, 15, 0, 0, time.UTC), "May 3rd 2025, 12:15 am"},
	}

	for _, tc := range tests {
		r := &Reservation{StartAt: tc.startAt}
		require.Equal(t, tc.expected, r.FormattedStartAt())
	}
}
