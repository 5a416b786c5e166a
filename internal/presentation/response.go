package presentation

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"devblog/internal/domain/errs"
)

// Success writes the standard envelope with success set to true and the
// payload fields merged in at the top level.
func Success(c echo.Context, status int, payload echo.Map) error {
	body := echo.Map{"success": true}
	for key, value := range payload {
		body[key] = value
	}

	return c.JSON(status, body)
}

// Fail renders err as {success:false, message, error?}. The wrapped
// internal error text is only exposed when verbose is set, which run
// configuration restricts to non-production environments.
func Fail(c echo.Context, err error, verbose bool) error {
	status := http.StatusInternalServerError
	message := "Internal Server Error"
	body := echo.Map{"success": false}

	var domainErr *errs.Error
	if errors.As(err, &domainErr) {
		status = domainErr.HTTPStatus()
		message = domainErr.Message
		if verbose && domainErr.Err != nil {
			body["error"] = domainErr.Err.Error()
		}
	} else if verbose {
		body["error"] = err.Error()
	}

	body["message"] = message

	return c.JSON(status, body)
}
