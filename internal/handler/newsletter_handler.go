package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"terracore/internal/service"
)

// NewsletterHandler handles newsletter endpoints.
type NewsletterHandler struct {
	newsletterService service.NewsletterService
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(newsletterService service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: newsletterService}
}

// SubscribeRequest carries the address to subscribe or unsubscribe.
type SubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Address"
// @Success 200 {object} Response
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Router /newsletter/subscribe [post]
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return validationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				if fe.Tag() == "required" {
					return validationError("Email is required")
				}
			}
		}
		return validationError("Invalid email format")
	}

	created, err := h.newsletterService.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return httpError(err)
	}
	if created {
		return c.JSON(http.StatusCreated, messageResponse("Successfully subscribed to newsletter!"))
	}
	return c.JSON(http.StatusOK, messageResponse("Newsletter subscription reactivated!"))
}

// Unsubscribe godoc
// @Summary Unsubscribe from the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body SubscribeRequest true "Address"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /newsletter/unsubscribe [post]
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return validationError("Invalid request body")
	}
	if req.Email == "" {
		return validationError("Email is required")
	}

	if err := h.newsletterService.Unsubscribe(c.Request().Context(), req.Email); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Successfully unsubscribed from newsletter"))
}

// List godoc
// @Summary List newsletter subscribers
// @Tags newsletter
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /newsletter [get]
func (h *NewsletterHandler) List(c echo.Context) error {
	subs, err := h.newsletterService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(subs))
}

// Stats godoc
// @Summary Get the active subscriber count
// @Tags newsletter
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response
// @Router /newsletter/stats [get]
func (h *NewsletterHandler) Stats(c echo.Context) error {
	count, err := h.newsletterService.CountSubscribers(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(echo.Map{"totalSubscribers": count}))
}
