package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"contactbook/internal/errors"
	"contactbook/internal/service"
)

// UserHandler handles registration, verification and profile endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// VerifyResponse represents a successful email verification.
type VerifyResponse struct {
	Message string `json:"message"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users/ [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Register(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, user)
}

// VerifyEmail godoc
// @Summary Verify an email address with a one-time code
// @Tags users
// @Produce json
// @Param code path string true "Verification code"
// @Success 200 {object} VerifyResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /verify/{code} [get]
func (h *UserHandler) VerifyEmail(c echo.Context) error {
	code := c.Param("code")

	if _, err := h.userService.VerifyEmail(c.Request().Context(), code); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, VerifyResponse{Message: "Email successfully verified"})
}

// Me godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetUser(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user)
}

// UpdateAvatar godoc
// @Summary Upload an avatar image for the authenticated user
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param file formData file true "Avatar image"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/avatar [post]
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	if uint(id) != claims.UserID {
		httpErr := errors.MapErrorToHTTP(errors.ErrNotAuthorized)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer file.Close()

	user, err := h.userService.UpdateAvatar(c.Request().Context(), uint(id), file)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user)
}
