package infra

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/umalmyha/lunchly/internal/model"
	svcMocks "github.com/umalmyha/lunchly/internal/service/mocks"
)

func TestRouter(t *testing.T) {
	assert := require.New(t)

	customerSvc := svcMocks.NewCustomerService(t)
	reservationSvc := svcMocks.NewReservationService(t)
	logger, hook := test.NewNullLogger()

	e, err := Router(customerSvc, reservationSvc, logger)
	assert.NoError(err, "failed to build router")

	serve := func(method, target string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
		return rec
	}

	t.Log("health check responds with plain text")
	rec := serve(http.MethodGet, "/health")
	assert.Equal(http.StatusOK, rec.Code)
	assert.Equal("ok", rec.Body.String())
	assert.NotEmpty(rec.Header().Get(echo.HeaderXRequestID), "request id must be generated")

	t.Log("request is logged with its id")
	entry := hook.LastEntry()
	assert.NotNil(entry)
	assert.Equal("request handled", entry.Message)
	assert.Equal(rec.Header().Get(echo.HeaderXRequestID), entry.Data["request_id"])

	t.Log("best customers page uses configured default limit")
	count := int64(2)
	customerSvc.On("FindBest", mock.Anything, 0).Return([]*model.Customer{
		{ID: 1, FirstName: "Henry", LastName: "Ford", ReservationCount: &count},
	}, nil).Once()
	rec = serve(http.MethodGet, "/best-customers/")
	assert.Equal(http.StatusOK, rec.Code)
	assert.Contains(rec.Body.String(), "Henry Ford")

	t.Log("unknown site page renders html error")
	rec = serve(http.MethodGet, "/no/such/page")
	assert.Equal(http.StatusNotFound, rec.Code)
	assert.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)

	t.Log("unknown api endpoint responds with json error")
	rec = serve(http.MethodGet, "/api/v1/nothing/here")
	assert.Equal(http.StatusNotFound, rec.Code)
	assert.JSONEq(`{"message":"Not Found"}`, rec.Body.String())

	t.Log("api documentation is served")
	rec = serve(http.MethodGet, "/swagger/doc.json")
	assert.Equal(http.StatusOK, rec.Code)
	assert.Contains(rec.Body.String(), "Lunchly API")
}
