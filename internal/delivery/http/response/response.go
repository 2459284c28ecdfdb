package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	// StatusSuccess marks a successful envelope.
	StatusSuccess = "success"
	// StatusFail marks a failed envelope.
	StatusFail = "fail"
)

// Envelope is the unified API response structure. Successful responses carry
// the payload in result, failures carry the description in error.
type Envelope struct {
	Result  any    `json:"result,omitempty"`
	Error   any    `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Status  string `json:"status"`
}

// Success writes a successful envelope.
func Success(c echo.Context, statusCode int, result any, message string) error {
	return c.JSON(statusCode, Envelope{
		Result:  result,
		Message: message,
		Status:  StatusSuccess,
	})
}

// Fail writes a failed envelope.
func Fail(c echo.Context, statusCode int, errorBody any) error {
	return c.JSON(statusCode, Envelope{
		Error:  errorBody,
		Status: StatusFail,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, errorBody any) error {
	return Fail(c, http.StatusBadRequest, errorBody)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, errorBody any) error {
	return Fail(c, http.StatusUnauthorized, errorBody)
}

// Forbidden 403 error
func Forbidden(c echo.Context, errorBody any) error {
	return Fail(c, http.StatusForbidden, errorBody)
}

// NotFound 404 error
func NotFound(c echo.Context, errorBody any) error {
	return Fail(c, http.StatusNotFound, errorBody)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, errorBody any) error {
	return Fail(c, http.StatusInternalServerError, errorBody)
}
