package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"terracore/internal/cache"
	apperrors "terracore/internal/errors"
	"terracore/internal/model"
	"terracore/internal/repository"
)

const propertyCacheTTL = 5 * time.Minute

// PropertyUpdate carries a partial update. Nil fields keep their stored
// value; the coalescing happens here, field by field, against the existing
// row.
type PropertyUpdate struct {
	Title       *string
	Description *string
	Type        *string
	Price       *float64
	Location    *string
	AreaSqm     *float64
	Bedrooms    *int
	Bathrooms   *int
	Features    *[]string
	ImageURL    *string
	Status      *string
	Featured    *bool
}

// PropertyService handles the property catalog.
type PropertyService interface {
	List(ctx context.Context, filter repository.PropertyFilter) ([]model.Property, error)
	Get(ctx context.Context, id uint) (*model.Property, error)
	Search(ctx context.Context, search repository.PropertySearch) ([]model.Property, error)
	Create(ctx context.Context, property *model.Property, createdBy uint) (uint, error)
	Update(ctx context.Context, id uint, update PropertyUpdate) (*model.Property, error)
	Delete(ctx context.Context, id uint) error
}

type propertyService struct {
	repo  repository.PropertyRepository
	cache *cache.Client
}

// NewPropertyService creates a new property service.
func NewPropertyService(repo repository.PropertyRepository, cache *cache.Client) PropertyService {
	return &propertyService{repo: repo, cache: cache}
}

func (s *propertyService) cacheKey(id uint) string {
	return fmt.Sprintf("property:%d", id)
}

// List returns properties matching the filter, newest first. When no status
// is supplied only active listings are shown.
func (s *propertyService) List(ctx context.Context, filter repository.PropertyFilter) ([]model.Property, error) {
	if filter.Status == "" {
		filter.Status = "active"
	}
	properties, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return properties, nil
}

// Get retrieves one property by id, trying the cache first.
func (s *propertyService) Get(ctx context.Context, id uint) (*model.Property, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Property
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}

	if payload, err := json.Marshal(property); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, propertyCacheTTL)
	}
	return property, nil
}

// Search runs a free-text search over active listings.
func (s *propertyService) Search(ctx context.Context, search repository.PropertySearch) ([]model.Property, error) {
	properties, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("search properties: %w", err)
	}
	return properties, nil
}

// Create inserts a listing owned by the authenticated user and returns its id.
func (s *propertyService) Create(ctx context.Context, property *model.Property, createdBy uint) (uint, error) {
	if property.Status == "" {
		property.Status = "active"
	}
	if property.Features == nil {
		property.Features = model.StringList{}
	}
	property.CreatedBy = &createdBy

	if err := s.repo.Create(ctx, property); err != nil {
		return 0, fmt.Errorf("create property: %w", err)
	}
	return property.ID, nil
}

// Update merges the supplied fields over the stored row and touches the
// updated timestamp. An update with no fields changes nothing else.
func (s *propertyService) Update(ctx context.Context, id uint, update PropertyUpdate) (*model.Property, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}

	if update.Title != nil {
		existing.Title = *update.Title
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.Type != nil {
		existing.Type = *update.Type
	}
	if update.Price != nil {
		existing.Price = *update.Price
	}
	if update.Location != nil {
		existing.Location = *update.Location
	}
	if update.AreaSqm != nil {
		existing.AreaSqm = *update.AreaSqm
	}
	if update.Bedrooms != nil {
		existing.Bedrooms = *update.Bedrooms
	}
	if update.Bathrooms != nil {
		existing.Bathrooms = *update.Bathrooms
	}
	if update.Features != nil {
		existing.Features = model.StringList(*update.Features)
	}
	if update.ImageURL != nil {
		existing.ImageURL = *update.ImageURL
	}
	if update.Status != nil {
		existing.Status = *update.Status
	}
	if update.Featured != nil {
		existing.Featured = *update.Featured
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update property: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return existing, nil
}

// Delete removes a listing; unknown ids map to the not-found error.
func (s *propertyService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPropertyNotFound
		}
		return fmt.Errorf("delete property: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
