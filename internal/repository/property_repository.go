package repository

import (
	"context"

	"gorm.io/gorm"

	"terracore/internal/model"
)

// PropertyFilter narrows a property listing. Zero values mean "no filter";
// Status is filled in by the service layer before it reaches the repository.
type PropertyFilter struct {
	Type     string
	Status   string
	Featured *bool
	Limit    int
	Offset   int
}

// PropertySearch describes a free-text property search combined with
// price-range and equality filters.
type PropertySearch struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
	Location string
	Type     string
}

// PropertyRepository defines property persistence operations.
type PropertyRepository interface {
	Create(ctx context.Context, property *model.Property) error
	Update(ctx context.Context, property *model.Property) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]model.Property, error)
	Search(ctx context.Context, search PropertySearch) ([]model.Property, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository creates a new property repository.
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *propertyRepository) Update(ctx context.Context, property *model.Property) error {
	return r.db.WithContext(ctx).Save(property).Error
}

// Delete removes a property by id; unknown ids report gorm.ErrRecordNotFound.
func (r *propertyRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Property{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id uint) (*model.Property, error) {
	var property model.Property
	if err := r.db.WithContext(ctx).First(&property, id).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) List(ctx context.Context, filter PropertyFilter) ([]model.Property, error) {
	q := r.db.WithContext(ctx).Model(&model.Property{})
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	q = q.Order("created_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	var properties []model.Property
	if err := q.Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

// Search matches case-insensitive substrings over title, description and
// location; LIKE is already case-insensitive for ASCII under SQLite.
func (r *propertyRepository) Search(ctx context.Context, search PropertySearch) ([]model.Property, error) {
	q := r.db.WithContext(ctx).Model(&model.Property{}).Where("status = ?", "active")
	if search.Query != "" {
		term := "%" + search.Query + "%"
		q = q.Where("title LIKE ? OR description LIKE ? OR location LIKE ?", term, term, term)
	}
	if search.MinPrice != nil {
		q = q.Where("price >= ?", *search.MinPrice)
	}
	if search.MaxPrice != nil {
		q = q.Where("price <= ?", *search.MaxPrice)
	}
	if search.Location != "" {
		q = q.Where("location LIKE ?", "%"+search.Location+"%")
	}
	if search.Type != "" {
		q = q.Where("type = ?", search.Type)
	}

	var properties []model.Property
	if err := q.Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}
