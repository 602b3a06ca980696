package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Code:    code,
		Message: message,
	})
}

// Abort writes the error and stops the handler chain. Used by middleware.
func Abort(c *gin.Context, err error) {
	status, body := render(err)
	c.AbortWithStatusJSON(status, body)
}

// Respond maps any error returned by a use case to its HTTP form.
// Internal causes are attached to the gin context for the request logger.
func Respond(c *gin.Context, err error) {
	status, body := render(err)
	if status >= http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, body)
}

func render(err error) (int, HTTPError) {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError, HTTPError{
			Code:    "internal_error",
			Message: "Erro interno do servidor",
		}
	}
	return StatusOf(e.Kind), HTTPError{Code: e.Code, Message: e.Message}
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}
