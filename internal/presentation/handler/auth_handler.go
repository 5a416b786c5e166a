package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"devblog/internal/application/usecase/abstraction"
	"devblog/internal/domain/errs"
	"devblog/internal/presentation"
)

type AuthHandler struct {
	auth    abstraction.Auth
	verbose bool
}

func NewAuthHandler(auth abstraction.Auth, verbose bool) *AuthHandler {
	return &AuthHandler{
		auth:    auth,
		verbose: verbose,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleRegister handles POST /auth/register.
func (h *AuthHandler) HandleRegister(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return presentation.Fail(c,
			errs.New(errs.Validation, "Please provide email, password, and name."), h.verbose)
	}

	result, err := h.auth.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusCreated, echo.Map{
		"message": "User registered successfully!",
		"token":   result.Token,
		"user":    result.User,
	})
}

// HandleLogin handles POST /auth/login.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return presentation.Fail(c,
			errs.New(errs.Validation, "Please provide email and password."), h.verbose)
	}

	result, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusOK, echo.Map{
		"message": "Login successful!",
		"token":   result.Token,
		"user":    result.User,
	})
}

// HandleMe handles GET /auth/me.
func (h *AuthHandler) HandleMe(c echo.Context) error {
	userID, _ := c.Get(presentation.KeyUserID).(string)

	profile, err := h.auth.GetMe(c.Request().Context(), userID)
	if err != nil {
		return presentation.Fail(c, err, h.verbose)
	}

	return presentation.Success(c, http.StatusOK, echo.Map{
		"user": profile,
	})
}
