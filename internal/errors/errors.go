package errors

import (
	"encoding/json"
	"net/http"
)

// ValidationErr is raised when an entity field violates a business rule
type ValidationErr struct {
	target  string
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

// Target returns the name of the field which failed validation
func (e *ValidationErr) Target() string {
	return e.target
}

// Status returns http status matching the error
func (e *ValidationErr) Status() int {
	return http.StatusBadRequest
}

func (e *ValidationErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Target  string `json:"target"`
		Message string `json:"message"`
	}{Target: e.target, Message: e.message})
}

// NewValidationErr builds ValidationErr for target field
func NewValidationErr(target string, msg string) *ValidationErr {
	return &ValidationErr{
		target:  target,
		message: msg,
	}
}

// NotFoundErr is raised when lookup by identity matches no row
type NotFoundErr struct {
	message string
}

func (e *NotFoundErr) Error() string {
	return e.message
}

// Status returns http status matching the error
func (e *NotFoundErr) Status() int {
	return http.StatusNotFound
}

func (e *NotFoundErr) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Message string `json:"message"`
	}{Message: e.message})
}

// NewNotFoundErr builds NotFoundErr
func NewNotFoundErr(msg string) *NotFoundErr {
	return &NotFoundErr{message: msg}
}
