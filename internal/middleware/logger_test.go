package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/health", func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderXRequestID, "req-1")
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/health?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, hook.AllEntries(), 1, "single entry must be written per request")

	entry := hook.LastEntry()
	require.Equal(t, "request handled", entry.Message)
	require.Equal(t, http.MethodGet, entry.Data["method"])
	require.Equal(t, "/health?x=1", entry.Data["uri"])
	require.Equal(t, http.StatusOK, entry.Data["status"])
	require.Equal(t, "req-1", entry.Data["request_id"])
}
