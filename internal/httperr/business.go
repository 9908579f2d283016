package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// statusByCode maps business error codes coming out of the use cases to
// the wire statuses the console's clients expect.
var statusByCode = map[string]int{
	"invalid_data_type":       http.StatusBadRequest,
	"missing_required_fields": http.StatusBadRequest,
	"invalid_request":         http.StatusBadRequest,
	"unauthorized":            http.StatusForbidden,
	"invalid_role":            http.StatusForbidden,
	"not_found":               http.StatusNotFound,
	"conflict":                http.StatusConflict,
	"persistence_failure":     http.StatusInternalServerError,
}

var messageByCode = map[string]string{
	"invalid_data_type":       "Unknown equipment type.",
	"missing_required_fields": "All fields are required and must be non-empty.",
	"invalid_request":         "Invalid request body.",
	"unauthorized":            "Admin access required.",
	"invalid_role":            "Unrecognized role.",
	"not_found":               "Not found.",
	"conflict":                "Request has already been decided.",
	"persistence_failure":     "Failed to persist changes.",
}

// Business writes a mapped response for a BusinessError and reports whether
// it handled err. Non-business errors are left to the caller.
func Business(c *gin.Context, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := statusByCode[be.Code]
	if !ok {
		status = http.StatusInternalServerError
	}

	Write(c, status, be.Code, messageByCode[be.Code])
	return true
}
