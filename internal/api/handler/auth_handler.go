package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cosbuyai/shopping-api/internal/core/domain"
	"github.com/cosbuyai/shopping-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup creates a new user account.
//
// @Summary      Register a new user by phone (and optional email)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Signup details"
// @Success      200   {object}  signupResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.authService.Signup(c.Request().Context(), req.Phone, req.Email, req.Password); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "User already exists"})
		}
		return err
	}

	return c.JSON(http.StatusOK, signupResponse{Success: true})
}

// Login authenticates by phone or email. No token or cookie is issued; the
// caller keeps the returned id for subsequent requests.
//
// @Summary      Login with phone or email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.authService.Login(c.Request().Context(), req.LoginInput, req.Password)
	if err != nil {
		// An unknown identifier and a wrong password are both 401 here;
		// the messages stay distinct.
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "User not found"})
		case errors.Is(err, domain.ErrInvalidPassword):
			return c.JSON(http.StatusUnauthorized, errorResponse{Error: "Invalid password"})
		}
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		User: userResponse{
			ID:    user.ID,
			Phone: user.Phone,
			Email: user.Email,
		},
	})
}
