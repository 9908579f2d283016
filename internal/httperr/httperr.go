package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is the failure half of the API envelope. Details carries
// internal error text and is only populated when debug is on.
type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error"`
	Message string `json:"message,omitempty"`
	Details string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

// WriteErr is Write plus the underlying error, surfaced to the client only
// when debug is enabled. The internal admin console used to leak these
// unconditionally; here the default is opaque.
func WriteErr(c *gin.Context, status int, code, message string, err error, debug bool) {
	he := HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	}
	if debug && err != nil {
		he.Details = err.Error()
	}
	c.JSON(status, he)
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}
