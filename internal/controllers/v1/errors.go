package v1

import (
	"errors"
	"net/http"

	"github.com/chartkeeper/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errOrganizationIDParameter = errors.New("the organizationId parameter must be set")
)

// Import errors
var (
	errNoContent     = errors.New("the content field must be set")
	errFormatInvalid = errors.New("the specified format is invalid")
)
