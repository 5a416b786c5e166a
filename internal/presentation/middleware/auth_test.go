package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devblog/internal/domain/errs"
	"devblog/internal/presentation"
)

type staticTokens struct {
	userID string
}

func (s staticTokens) Issue(string) (string, error) {
	return "good-token", nil
}

func (s staticTokens) Verify(token string) (string, error) {
	if token != "good-token" {
		return "", errs.New(errs.Unauthorized, "Invalid or expired token.")
	}

	return s.userID, nil
}

func TestAuthMiddleware(t *testing.T) {
	e := echo.New()
	e.GET("/protected", func(c echo.Context) error {
		userID, _ := c.Get(presentation.KeyUserID).(string)

		return c.String(http.StatusOK, userID)
	}, AuthMiddleware(staticTokens{userID: "user-42"}))

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", expectedStatus: http.StatusUnauthorized},
		{name: "bare token without prefix", header: "good-token", expectedStatus: http.StatusUnauthorized},
		{name: "empty token after prefix", header: "Bearer ", expectedStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad-token", expectedStatus: http.StatusUnauthorized},
		{name: "valid token", header: "Bearer good-token", expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set(presentation.AuthKey, tt.header)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "user-42", rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"success":false`)
			}
		})
	}
}

func TestAuthMiddlewareSetsUserID(t *testing.T) {
	e := echo.New()

	var seen string
	e.GET("/protected", func(c echo.Context) error {
		seen, _ = c.Get(presentation.KeyUserID).(string)

		return c.NoContent(http.StatusOK)
	}, AuthMiddleware(staticTokens{userID: "user-42"}))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(presentation.AuthKey, "Bearer good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-42", seen)
}
