package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/service"
)

const defaultListLimit = 100

// ContactHandler handles contact endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// CreateContactRequest represents a contact creation payload.
type CreateContactRequest struct {
	FirstName      string     `json:"first_name" validate:"required"`
	LastName       string     `json:"last_name" validate:"required"`
	Email          string     `json:"email" validate:"required,email"`
	PhoneNumber    string     `json:"phone_number" validate:"required"`
	Birthday       model.Date `json:"birthday" validate:"required"`
	AdditionalInfo string     `json:"additional_info"`
}

// UpdateContactRequest represents a partial update; omitted fields keep their
// stored values.
type UpdateContactRequest struct {
	FirstName      *string     `json:"first_name"`
	LastName       *string     `json:"last_name"`
	Email          *string     `json:"email" validate:"omitempty,email"`
	PhoneNumber    *string     `json:"phone_number"`
	Birthday       *model.Date `json:"birthday"`
	AdditionalInfo *string     `json:"additional_info"`
}

// Create godoc
// @Summary Create a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateContactRequest true "Contact data"
// @Success 201 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Router /contacts/ [post]
func (h *ContactHandler) Create(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	var req CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact := &model.Contact{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Birthday:       req.Birthday,
		AdditionalInfo: req.AdditionalInfo,
	}

	created, err := h.contactService.Create(c.Request().Context(), claims.UserID, contact)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List contacts of the authenticated user
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {array} model.Contact
// @Router /contacts/ [get]
func (h *ContactHandler) List(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", defaultListLimit)

	contacts, err := h.contactService.List(c.Request().Context(), claims.UserID, skip, limit)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, contacts)
}

// Get godoc
// @Summary Get a contact by id
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} model.Contact
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	contact, err := h.contactService.Get(c.Request().Context(), claims.UserID, uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, contact)
}

// Update godoc
// @Summary Partially update a contact
// @Tags contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body UpdateContactRequest true "Fields to change"
// @Success 200 {object} model.Contact
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [put]
func (h *ContactHandler) Update(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var req UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch := service.ContactPatch{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Birthday:       req.Birthday,
		AdditionalInfo: req.AdditionalInfo,
	}

	updated, err := h.contactService.Update(c.Request().Context(), claims.UserID, uint(id), patch)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a contact
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} model.Contact
// @Failure 404 {object} errors.ErrorResponse
// @Router /contacts/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	deleted, err := h.contactService.Delete(c.Request().Context(), claims.UserID, uint(id))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, deleted)
}

// UpcomingBirthdays godoc
// @Summary List contacts with a birthday in the next seven days
// @Tags contacts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Contact
// @Router /contacts/upcoming_birthdays/ [get]
func (h *ContactHandler) UpcomingBirthdays(c echo.Context) error {
	claims, err := currentClaims(c)
	if err != nil {
		return err
	}

	contacts, err := h.contactService.UpcomingBirthdays(c.Request().Context(), claims.UserID, service.DefaultBirthdayWindowDays)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, contacts)
}

func queryInt(c echo.Context, name string, def int) int {
	if v := c.QueryParam(name); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return def
}
