package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"contactbook/internal/auth"
	"contactbook/internal/errors"
	"contactbook/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// TokenResponse represents a successful token issuance.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Token godoc
// @Summary Issue an access token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	accessToken, err := h.authService.Login(c.Request().Context(), username, password)
	if err != nil {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

// currentClaims extracts the validated token claims set by the JWT middleware.
func currentClaims(c echo.Context) (*auth.Claims, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}
