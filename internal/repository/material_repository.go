package repository

import (
	"context"

	"gorm.io/gorm"

	"terracore/internal/model"
)

// MaterialFilter narrows a material listing.
type MaterialFilter struct {
	Category string
	Status   string
	InStock  *bool
	Limit    int
	Offset   int
}

// MaterialSearch describes a free-text material search. The price range
// applies to the material's own min/max columns.
type MaterialSearch struct {
	Query    string
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// MaterialRepository defines material persistence operations.
type MaterialRepository interface {
	Create(ctx context.Context, material *model.Material) error
	Update(ctx context.Context, material *model.Material) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Material, error)
	List(ctx context.Context, filter MaterialFilter) ([]model.Material, error)
	Search(ctx context.Context, search MaterialSearch) ([]model.Material, error)
	Categories(ctx context.Context) ([]string, error)
}

type materialRepository struct {
	db *gorm.DB
}

// NewMaterialRepository creates a new material repository.
func NewMaterialRepository(db *gorm.DB) MaterialRepository {
	return &materialRepository{db: db}
}

func (r *materialRepository) Create(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *materialRepository) Update(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Save(material).Error
}

func (r *materialRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Material{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *materialRepository) FindByID(ctx context.Context, id uint) (*model.Material, error) {
	var material model.Material
	if err := r.db.WithContext(ctx).First(&material, id).Error; err != nil {
		return nil, err
	}
	return &material, nil
}

func (r *materialRepository) List(ctx context.Context, filter MaterialFilter) ([]model.Material, error) {
	q := r.db.WithContext(ctx).Model(&model.Material{})
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.InStock != nil {
		q = q.Where("in_stock = ?", *filter.InStock)
	}
	q = q.Order("created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var materials []model.Material
	if err := q.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

func (r *materialRepository) Search(ctx context.Context, search MaterialSearch) ([]model.Material, error) {
	q := r.db.WithContext(ctx).Model(&model.Material{}).Where("status = ?", "active")
	if search.Query != "" {
		term := "%" + search.Query + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", term, term)
	}
	if search.Category != "" {
		q = q.Where("category = ?", search.Category)
	}
	if search.MinPrice != nil {
		q = q.Where("price_min >= ?", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		q = q.Where("price_max <= ?", *search.MaxPrice)
	}

	var materials []model.Material
	if err := q.Order("created_at DESC").Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// Categories returns the distinct material categories in alphabetical order.
func (r *materialRepository) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).Model(&model.Material{}).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
