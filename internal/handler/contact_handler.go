package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"terracore/internal/model"
	"terracore/internal/service"
)

// ContactHandler handles contact-form endpoints.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact-form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactStatusRequest updates the admin-visible status of a submission.
type ContactStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Create godoc
// @Summary Submit a contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Submission"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Create(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return validationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError("Name, email, and message are required")
	}

	contact := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	id, err := h.contactService.Create(c.Request().Context(), contact)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, messageDataResponse("Message sent successfully!", echo.Map{"id": id}))
}

// List godoc
// @Summary List contact submissions
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /contact [get]
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contactService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(contacts))
}

// Get godoc
// @Summary Get a contact submission by id
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id} [get]
func (h *ContactHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	contact, err := h.contactService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(contact))
}

// UpdateStatus godoc
// @Summary Update a contact submission's status
// @Tags contact
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Param request body ContactStatusRequest true "New status"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id} [patch]
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req ContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return validationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError("Status is required")
	}

	if err := h.contactService.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Contact status updated"))
}

// Delete godoc
// @Summary Delete a contact submission
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Param id path int true "Contact ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /contact/{id} [delete]
func (h *ContactHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.contactService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Contact deleted successfully"))
}
