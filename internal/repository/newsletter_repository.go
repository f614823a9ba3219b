package repository

import (
	"context"

	"gorm.io/gorm"

	"terracore/internal/model"
)

// NewsletterRepository defines subscription persistence operations.
// Unsubscribing never deletes rows; the subscribed flag is flipped instead.
type NewsletterRepository interface {
	Create(ctx context.Context, sub *model.Subscription) error
	FindByEmail(ctx context.Context, email string) (*model.Subscription, error)
	SetSubscribed(ctx context.Context, email string, subscribed bool) error
	List(ctx context.Context) ([]model.Subscription, error)
	CountSubscribed(ctx context.Context) (int64, error)
}

type newsletterRepository struct {
	db *gorm.DB
}

// NewNewsletterRepository creates a new newsletter repository.
func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

func (r *newsletterRepository) Create(ctx context.Context, sub *model.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*model.Subscription, error) {
	var sub model.Subscription
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *newsletterRepository) SetSubscribed(ctx context.Context, email string, subscribed bool) error {
	res := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("email = ?", email).
		Update("subscribed", subscribed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *newsletterRepository) List(ctx context.Context) ([]model.Subscription, error) {
	var subs []model.Subscription
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *newsletterRepository) CountSubscribed(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Subscription{}).
		Where("subscribed = ?", true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
