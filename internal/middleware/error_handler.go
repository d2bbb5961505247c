package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"quiverArcade/pkg/logger"
)

type errorBody struct {
	Message string `json:"message"`
}

// ErrorHandler is the echo HTTPErrorHandler: echo errors keep their status,
// everything else becomes an opaque 500.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	} else {
		logger.Error("Unhandled request error", err, "path", c.Request().URL.Path)
	}

	if err := c.JSON(status, errorBody{Message: message}); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
