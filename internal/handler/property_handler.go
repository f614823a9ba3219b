package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"terracore/internal/auth"
	apperrors "terracore/internal/errors"
	"terracore/internal/model"
	"terracore/internal/repository"
	"terracore/internal/service"
)

// PropertyHandler handles property endpoints.
type PropertyHandler struct {
	propertyService service.PropertyService
}

// NewPropertyHandler creates a new property handler.
func NewPropertyHandler(propertyService service.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// PropertyCreateRequest represents a new listing.
type PropertyCreateRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Type        string   `json:"type" validate:"required"`
	Price       float64  `json:"price" validate:"required,gte=0"`
	Location    string   `json:"location" validate:"required"`
	AreaSqm     float64  `json:"area_sqm" validate:"gte=0"`
	Bedrooms    int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms   int      `json:"bathrooms" validate:"gte=0"`
	Features    []string `json:"features"`
	ImageURL    string   `json:"image_url"`
	Status      string   `json:"status"`
	Featured    bool     `json:"featured"`
}

// PropertyUpdateRequest represents a partial update; absent fields keep
// their stored value.
type PropertyUpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Type        *string   `json:"type"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Location    *string   `json:"location"`
	AreaSqm     *float64  `json:"area_sqm" validate:"omitempty,gte=0"`
	Bedrooms    *int      `json:"bedrooms" validate:"omitempty,gte=0"`
	Bathrooms   *int      `json:"bathrooms" validate:"omitempty,gte=0"`
	Features    *[]string `json:"features"`
	ImageURL    *string   `json:"image_url"`
	Status      *string   `json:"status"`
	Featured    *bool     `json:"featured"`
}

// List godoc
// @Summary List properties
// @Tags properties
// @Produce json
// @Param type query string false "Property type"
// @Param status query string false "Status (defaults to active)"
// @Param featured query bool false "Featured only"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response
// @Router /properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	filter := repository.PropertyFilter{
		Type:   c.QueryParam("type"),
		Status: c.QueryParam("status"),
	}
	if v := c.QueryParam("featured"); v != "" {
		featured := v == "true"
		filter.Featured = &featured
	}
	if v := c.QueryParam("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			filter.Limit = limit
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil {
			filter.Offset = offset
		}
	}

	properties, err := h.propertyService.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(properties))
}

// Search godoc
// @Summary Search properties
// @Tags properties
// @Produce json
// @Param q query string false "Free-text query over title, description and location"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param location query string false "Location substring"
// @Param type query string false "Property type"
// @Success 200 {object} Response
// @Router /properties/search [get]
func (h *PropertyHandler) Search(c echo.Context) error {
	search := repository.PropertySearch{
		Query:    c.QueryParam("q"),
		Location: c.QueryParam("location"),
		Type:     c.QueryParam("type"),
	}
	if v := c.QueryParam("minPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			search.MinPrice = &price
		}
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			search.MaxPrice = &price
		}
	}

	properties, err := h.propertyService.Search(c.Request().Context(), search)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(properties))
}

// Get godoc
// @Summary Get a property by id
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	property, err := h.propertyService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(property))
}

// Create godoc
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PropertyCreateRequest true "Property data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		return echo.NewHTTPError(http.StatusForbidden, apperrors.NewErrorResponse("Invalid token"))
	}

	var req PropertyCreateRequest
	if err := c.Bind(&req); err != nil {
		return validationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError("Title, type, price, and location are required")
	}

	property := &model.Property{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Price:       req.Price,
		Location:    req.Location,
		AreaSqm:     req.AreaSqm,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Features:    model.StringList(req.Features),
		ImageURL:    req.ImageURL,
		Status:      req.Status,
		Featured:    req.Featured,
	}

	id, err := h.propertyService.Create(c.Request().Context(), property, claims.UserID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, messageDataResponse("Property created successfully", echo.Map{"id": id}))
}

// Update godoc
// @Summary Update a property
// @Tags properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body PropertyUpdateRequest true "Fields to change"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req PropertyUpdateRequest
	if err := c.Bind(&req); err != nil {
		return validationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError("Prices must not be negative")
	}

	update := service.PropertyUpdate{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Price:       req.Price,
		Location:    req.Location,
		AreaSqm:     req.AreaSqm,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		Features:    req.Features,
		ImageURL:    req.ImageURL,
		Status:      req.Status,
		Featured:    req.Featured,
	}

	if _, err := h.propertyService.Update(c.Request().Context(), id, update); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Property updated successfully"))
}

// Delete godoc
// @Summary Delete a property
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.propertyService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Property deleted successfully"))
}
