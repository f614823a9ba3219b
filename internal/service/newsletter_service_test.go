package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "terracore/internal/errors"
	"terracore/internal/model"
)

// MockNewsletterRepository is a mock implementation of NewsletterRepository.
type MockNewsletterRepository struct {
	mock.Mock
}

func (m *MockNewsletterRepository) Create(ctx context.Context, sub *model.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *MockNewsletterRepository) FindByEmail(ctx context.Context, email string) (*model.Subscription, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Subscription), args.Error(1)
}

func (m *MockNewsletterRepository) SetSubscribed(ctx context.Context, email string, subscribed bool) error {
	args := m.Called(ctx, email, subscribed)
	return args.Error(0)
}

func (m *MockNewsletterRepository) List(ctx context.Context) ([]model.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Subscription), args.Error(1)
}

func (m *MockNewsletterRepository) CountSubscribed(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestNewsletterService_Subscribe(t *testing.T) {
	tests := []struct {
		name            string
		email           string
		setupMock       func(*MockNewsletterRepository)
		expectedCreated bool
		expectedError   error
	}{
		{
			name:  "new address inserts a row",
			email: "new@example.com",
			setupMock: func(m *MockNewsletterRepository) {
				m.On("FindByEmail", mock.Anything, "new@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)
			},
			expectedCreated: true,
		},
		{
			name:  "unsubscribed address is reactivated in place",
			email: "back@example.com",
			setupMock: func(m *MockNewsletterRepository) {
				m.On("FindByEmail", mock.Anything, "back@example.com").Return(&model.Subscription{
					ID:         3,
					Email:      "back@example.com",
					Subscribed: false,
				}, nil)
				m.On("SetSubscribed", mock.Anything, "back@example.com", true).Return(nil)
			},
			expectedCreated: false,
		},
		{
			name:  "already subscribed address is rejected",
			email: "here@example.com",
			setupMock: func(m *MockNewsletterRepository) {
				m.On("FindByEmail", mock.Anything, "here@example.com").Return(&model.Subscription{
					ID:         4,
					Email:      "here@example.com",
					Subscribed: true,
				}, nil)
			},
			expectedError: apperrors.ErrAlreadySubscribed,
		},
		{
			name:  "address is lower-cased before lookup",
			email: "Shout@Example.COM",
			setupMock: func(m *MockNewsletterRepository) {
				m.On("FindByEmail", mock.Anything, "shout@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Subscription")).Return(nil)
			},
			expectedCreated: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockNewsletterRepository)
			tt.setupMock(mockRepo)

			service := NewNewsletterService(mockRepo)

			created, err := service.Subscribe(context.Background(), tt.email)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCreated, created)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestNewsletterService_Unsubscribe(t *testing.T) {
	t.Run("known address", func(t *testing.T) {
		mockRepo := new(MockNewsletterRepository)
		mockRepo.On("SetSubscribed", mock.Anything, "gone@example.com", false).Return(nil)

		service := NewNewsletterService(mockRepo)

		err := service.Unsubscribe(context.Background(), "gone@example.com")

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown address", func(t *testing.T) {
		mockRepo := new(MockNewsletterRepository)
		mockRepo.On("SetSubscribed", mock.Anything, "nobody@example.com", false).Return(gorm.ErrRecordNotFound)

		service := NewNewsletterService(mockRepo)

		err := service.Unsubscribe(context.Background(), "nobody@example.com")

		assert.Equal(t, apperrors.ErrSubscriberNotFound, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestNewsletterService_CountSubscribers(t *testing.T) {
	mockRepo := new(MockNewsletterRepository)
	mockRepo.On("CountSubscribed", mock.Anything).Return(int64(12), nil)

	service := NewNewsletterService(mockRepo)

	count, err := service.CountSubscribers(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, int64(12), count)
	mockRepo.AssertExpectations(t)
}
