// Package server provides the HTTP REST API for the resume analyzer.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrFetchFailed indicates the job posting URL could not be retrieved
type ErrFetchFailed struct {
	URL string
	Err error
}

func (e *ErrFetchFailed) Error() string {
	return fmt.Sprintf("failed to fetch job posting %s: %v", e.URL, e.Err)
}

func (e *ErrFetchFailed) Unwrap() error {
	return e.Err
}

// ErrAnalysisNotFound indicates the requested analysis does not exist
type ErrAnalysisNotFound struct {
	ID uuid.UUID
}

func (e *ErrAnalysisNotFound) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// ErrHistoryDisabled indicates no database is configured
type ErrHistoryDisabled struct{}

func (e *ErrHistoryDisabled) Error() string {
	return "analysis history is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrFetchFailed:
		return http.StatusBadGateway
	case *ErrAnalysisNotFound:
		return http.StatusNotFound
	case *ErrHistoryDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
