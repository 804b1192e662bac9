package v1

import (
	"errors"
	"net/http"

	"github.com/hearth-budget/backend/internal/models"
)

// status returns the appropriate HTTP status for a database error
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
	errOwnerRequired = errors.New("the owner query parameter must be set")
	errMonthRequired = errors.New("the month query parameter must be set, use YYYY-MM format")
	errRefInvalid    = errors.New("the ref query parameter could not be parsed, use YYYY-MM-DD format")
	errYearsInvalid  = errors.New("the years query parameter must be a comma separated list of years")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)
