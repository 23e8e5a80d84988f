package handlers

import (
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/umalmyha/lunchly/internal/validation"
	"net/http"
	"strings"
)

const internalErrorMessage = "Internal server error"

// statusError is implemented by errors which know their http status
type statusError interface {
	error
	Status() int
}

type errorPage struct {
	Status   int
	Title    string
	Messages []string
}

// HTTPErrorHandler logs error and renders it as json for api requests and as html page otherwise
func HTTPErrorHandler(logger logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body, messages := classify(err)

		req := c.Request()
		entry := logger.WithError(err).WithFields(logrus.Fields{
			"status":     status,
			"method":     req.Method,
			"uri":        req.RequestURI,
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		})
		if status >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Info("request rejected")
		}

		var respErr error
		switch {
		case req.Method == http.MethodHead:
			respErr = c.NoContent(status)
		case strings.HasPrefix(req.URL.Path, "/api/"):
			respErr = c.JSON(status, body)
		default:
			respErr = c.Render(status, "error.html", &errorPage{
				Status:   status,
				Title:    http.StatusText(status),
				Messages: messages,
			})
		}

		if respErr != nil {
			entry.WithField("response_error", respErr.Error()).Error("failed to send error response")
		}
	}
}

func classify(err error) (int, any, []string) {
	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return pldErr.Status(), pldErr, pldErr.Messages()
	}

	var stErr statusError
	if errors.As(err, &stErr) {
		return stErr.Status(), stErr, []string{stErr.Error()}
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) && echoErr.Code < http.StatusInternalServerError {
		msg := fmt.Sprint(echoErr.Message)
		return echoErr.Code, &echo.HTTPError{Code: echoErr.Code, Message: msg}, []string{msg}
	}

	if echoErr != nil {
		return echoErr.Code, &echo.HTTPError{Code: echoErr.Code, Message: internalErrorMessage}, []string{internalErrorMessage}
	}
	return http.StatusInternalServerError, &echo.HTTPError{Code: http.StatusInternalServerError, Message: internalErrorMessage}, []string{internalErrorMessage}
}
