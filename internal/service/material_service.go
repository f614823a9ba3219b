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

const materialCacheTTL = 5 * time.Minute

// MaterialUpdate carries a partial material update; nil fields keep their
// stored value.
type MaterialUpdate struct {
	Name        *string
	Description *string
	Category    *string
	PriceMin    *float64
	PriceMax    *float64
	ImageURL    *string
	InStock     *bool
	Status      *string
}

// MaterialService handles the building-materials catalog.
type MaterialService interface {
	List(ctx context.Context, filter repository.MaterialFilter) ([]model.Material, error)
	Get(ctx context.Context, id uint) (*model.Material, error)
	Search(ctx context.Context, search repository.MaterialSearch) ([]model.Material, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, material *model.Material) (uint, error)
	Update(ctx context.Context, id uint, update MaterialUpdate) (*model.Material, error)
	Delete(ctx context.Context, id uint) error
}

type materialService struct {
	repo  repository.MaterialRepository
	cache *cache.Client
}

// NewMaterialService creates a new material service.
func NewMaterialService(repo repository.MaterialRepository, cache *cache.Client) MaterialService {
	return &materialService{repo: repo, cache: cache}
}

func (s *materialService) cacheKey(id uint) string {
	return fmt.Sprintf("material:%d", id)
}

// List returns materials matching the filter, newest first, defaulting to
// active rows when no status is supplied.
func (s *materialService) List(ctx context.Context, filter repository.MaterialFilter) ([]model.Material, error) {
	if filter.Status == "" {
		filter.Status = "active"
	}
	materials, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// Get retrieves one material by id, trying the cache first.
func (s *materialService) Get(ctx context.Context, id uint) (*model.Material, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Material
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("find material: %w", err)
	}

	if payload, err := json.Marshal(material); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, materialCacheTTL)
	}
	return material, nil
}

// Search runs a free-text search over active materials.
func (s *materialService) Search(ctx context.Context, search repository.MaterialSearch) ([]model.Material, error) {
	materials, err := s.repo.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("search materials: %w", err)
	}
	return materials, nil
}

// Categories returns the distinct categories currently in the catalog.
func (s *materialService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// Create inserts a material and returns its id.
func (s *materialService) Create(ctx context.Context, material *model.Material) (uint, error) {
	if material.Status == "" {
		material.Status = "active"
	}
	if err := s.repo.Create(ctx, material); err != nil {
		return 0, fmt.Errorf("create material: %w", err)
	}
	return material.ID, nil
}

// Update merges the supplied fields over the stored row.
func (s *materialService) Update(ctx context.Context, id uint, update MaterialUpdate) (*model.Material, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMaterialNotFound
		}
		return nil, fmt.Errorf("find material: %w", err)
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.Category != nil {
		existing.Category = *update.Category
	}
	if update.PriceMin != nil {
		existing.PriceMin = *update.PriceMin
	}
	if update.PriceMax != nil {
		existing.PriceMax = *update.PriceMax
	}
	if update.ImageURL != nil {
		existing.ImageURL = *update.ImageURL
	}
	if update.InStock != nil {
		existing.InStock = *update.InStock
	}
	if update.Status != nil {
		existing.Status = *update.Status
	}
	existing.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("update material: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return existing, nil
}

// Delete removes a material; unknown ids map to the not-found error.
func (s *materialService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMaterialNotFound
		}
		return fmt.Errorf("delete material: %w", err)
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
