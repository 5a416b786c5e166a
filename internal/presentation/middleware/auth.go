package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"devblog/internal/domain/errs"
	"devblog/internal/domain/service"
	"devblog/internal/presentation"
)

// AuthMiddleware verifies the bearer token and stores the subject user id
// on the request context under presentation.KeyUserID.
func AuthMiddleware(tokens service.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(presentation.AuthKey)
			if header == "" {
				return presentation.Fail(c,
					errs.New(errs.Unauthorized, "No token provided. Access denied."), false)
			}

			if !strings.HasPrefix(header, presentation.BearerPrefix) {
				return presentation.Fail(c,
					errs.New(errs.Unauthorized, "Invalid token format. Must be: Bearer <token>"), false)
			}

			token := strings.TrimPrefix(header, presentation.BearerPrefix)
			if token == "" {
				return presentation.Fail(c,
					errs.New(errs.Unauthorized, "No token provided. Access denied."), false)
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				return presentation.Fail(c, err, false)
			}

			c.Set(presentation.KeyUserID, userID)

			return next(c)
		}
	}
}
