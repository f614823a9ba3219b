package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "terracore/internal/errors"
)

// Response is the success half of the API envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func dataResponse(data interface{}) Response {
	return Response{Success: true, Data: data}
}

func messageResponse(message string) Response {
	return Response{Success: true, Message: message}
}

func messageDataResponse(message string, data interface{}) Response {
	return Response{Success: true, Message: message, Data: data}
}

// httpError translates a service error into an echo HTTP error carrying the
// envelope body. Unexpected errors keep their cause attached as the internal
// error so the central handler can log it.
func httpError(err error) *echo.HTTPError {
	mapped := apperrors.MapErrorToHTTP(err)
	he := echo.NewHTTPError(mapped.StatusCode, apperrors.NewErrorResponse(mapped.Message))
	if mapped.StatusCode == http.StatusInternalServerError {
		he.SetInternal(err)
	}
	return he
}

func validationError(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, apperrors.NewErrorResponse(message))
}

// parseIDParam reads the :id path parameter as an unsigned integer.
func parseIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, validationError("Invalid id")
	}
	return uint(id), nil
}
