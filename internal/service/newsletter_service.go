package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "terracore/internal/errors"
	"terracore/internal/model"
	"terracore/internal/repository"
)

// NewsletterService handles newsletter signups. Unsubscribed rows are kept
// and reactivated in place so an address never appears twice.
type NewsletterService interface {
	// Subscribe adds or reactivates an address. created reports whether a new
	// row was inserted (as opposed to flipping an unsubscribed one back on).
	Subscribe(ctx context.Context, email string) (created bool, err error)
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context) ([]model.Subscription, error)
	CountSubscribers(ctx context.Context) (int64, error)
}

type newsletterService struct {
	repo repository.NewsletterRepository
}

// NewNewsletterService creates a new newsletter service.
func NewNewsletterService(repo repository.NewsletterRepository) NewsletterService {
	return &newsletterService{repo: repo}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) (bool, error) {
	email = NormalizeEmail(email)

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("check subscription: %w", err)
	}

	if existing != nil {
		if existing.Subscribed {
			return false, apperrors.ErrAlreadySubscribed
		}
		if err := s.repo.SetSubscribed(ctx, email, true); err != nil {
			return false, fmt.Errorf("reactivate subscription: %w", err)
		}
		return false, nil
	}

	sub := &model.Subscription{Email: email, Subscribed: true}
	if err := s.repo.Create(ctx, sub); err != nil {
		return false, fmt.Errorf("create subscription: %w", err)
	}
	return true, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, email string) error {
	if err := s.repo.SetSubscribed(ctx, NormalizeEmail(email), false); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrSubscriberNotFound
		}
		return fmt.Errorf("unsubscribe: %w", err)
	}
	return nil
}

func (s *newsletterService) List(ctx context.Context) ([]model.Subscription, error) {
	subs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return subs, nil
}

func (s *newsletterService) CountSubscribers(ctx context.Context) (int64, error) {
	count, err := s.repo.CountSubscribed(ctx)
	if err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}
