package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"terracore/internal/model"
	"terracore/internal/repository"
	"terracore/internal/service"
)

// MaterialHandler handles building-material endpoints.
type MaterialHandler struct {
	materialService service.MaterialService
}

// NewMaterialHandler creates a new material handler.
func NewMaterialHandler(materialService service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// MaterialCreateRequest represents a new catalog entry.
type MaterialCreateRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category" validate:"required"`
	PriceMin    float64 `json:"price_min" validate:"gte=0"`
	PriceMax    float64 `json:"price_max" validate:"gte=0"`
	ImageURL    string  `json:"image_url"`
	InStock     *bool   `json:"in_stock"`
	Status      string  `json:"status"`
}

// MaterialUpdateRequest represents a partial update.
type MaterialUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	PriceMin    *float64 `json:"price_min" validate:"omitempty,gte=0"`
	PriceMax    *float64 `json:"price_max" validate:"omitempty,gte=0"`
	ImageURL    *string  `json:"image_url"`
	InStock     *bool    `json:"in_stock"`
	Status      *string  `json:"status"`
}

// List godoc
// @Summary List materials
// @Tags materials
// @Produce json
// @Param category query string false "Category"
// @Param status query string false "Status (defaults to active)"
// @Param inStock query bool false "In stock only"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} Response
// @Router /materials [get]
func (h *MaterialHandler) List(c echo.Context) error {
	filter := repository.MaterialFilter{
		Category: c.QueryParam("category"),
		Status:   c.QueryParam("status"),
	}
	if v := c.QueryParam("inStock"); v != "" {
		inStock := v == "true"
		filter.InStock = &inStock
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

	materials, err := h.materialService.List(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(materials))
}

// Search godoc
// @Summary Search materials
// @Tags materials
// @Produce json
// @Param q query string false "Free-text query over name and description"
// @Param category query string false "Category"
// @Param minPrice query number false "Minimum of the price range"
// @Param maxPrice query number false "Maximum of the price range"
// @Success 200 {object} Response
// @Router /materials/search [get]
func (h *MaterialHandler) Search(c echo.Context) error {
	search := repository.MaterialSearch{
		Query:    c.QueryParam("q"),
		Category: c.QueryParam("category"),
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

	materials, err := h.materialService.Search(c.Request().Context(), search)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(materials))
}

// Categories godoc
// @Summary List distinct material categories
// @Tags materials
// @Produce json
// @Success 200 {object} Response
// @Router /materials/categories/list [get]
func (h *MaterialHandler) Categories(c echo.Context) error {
	categories, err := h.materialService.Categories(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(categories))
}

// Get godoc
// @Summary Get a material by id
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /materials/{id} [get]
func (h *MaterialHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	material, err := h.materialService.Get(c.Request().Context(), id)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, dataResponse(material))
}

// Create godoc
// @Summary Create a material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MaterialCreateRequest true "Material data"
// @Success 201 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /materials [post]
func (h *MaterialHandler) Create(c echo.Context) error {
	var req MaterialCreateRequest
	if err := c.Bind(&req); err != nil {
		return validationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError("Name and category are required")
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}
	material := &model.Material{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		ImageURL:    req.ImageURL,
		InStock:     inStock,
		Status:      req.Status,
	}

	id, err := h.materialService.Create(c.Request().Context(), material)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, messageDataResponse("Material created successfully", echo.Map{"id": id}))
}

// Update godoc
// @Summary Update a material
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Param request body MaterialUpdateRequest true "Fields to change"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /materials/{id} [put]
func (h *MaterialHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req MaterialUpdateRequest
	if err := c.Bind(&req); err != nil {
		return validationError("Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return validationError("Prices must not be negative")
	}

	update := service.MaterialUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PriceMin:    req.PriceMin,
		PriceMax:    req.PriceMax,
		ImageURL:    req.ImageURL,
		InStock:     req.InStock,
		Status:      req.Status,
	}

	if _, err := h.materialService.Update(c.Request().Context(), id, update); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Material updated successfully"))
}

// Delete godoc
// @Summary Delete a material
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {object} Response
// @Failure 404 {object} errors.ErrorResponse
// @Router /materials/{id} [delete]
func (h *MaterialHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}
	if err := h.materialService.Delete(c.Request().Context(), id); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messageResponse("Material deleted successfully"))
}
