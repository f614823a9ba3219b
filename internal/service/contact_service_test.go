package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "terracore/internal/errors"
	"terracore/internal/model"
)

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindByID(ctx context.Context, id uint) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) List(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) UpdateStatus(ctx context.Context, id uint, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockContactRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSender is a mock implementation of mail.Sender.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(to, subject, htmlBody string) error {
	args := m.Called(to, subject, htmlBody)
	return args.Error(0)
}

func (m *MockSender) Enabled() bool {
	args := m.Called()
	return args.Bool(0)
}

func TestContactService_Create(t *testing.T) {
	submission := func() *model.Contact {
		return &model.Contact{
			Name:    "Ada",
			Email:   "ada@example.com",
			Message: "I want to buy a house",
		}
	}

	t.Run("stores the row and notifies the admin", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Contact).ID = 5
			}).
			Return(nil)

		mockMailer := new(MockSender)
		mockMailer.On("Enabled").Return(true)
		mockMailer.On("Send", "admin@example.com", "New Contact Form Submission: No Subject", mock.AnythingOfType("string")).Return(nil)

		service := NewContactService(mockRepo, mockMailer, "admin@example.com")

		contact := submission()
		id, err := service.Create(context.Background(), contact)

		assert.NoError(t, err)
		assert.Equal(t, uint(5), id)
		assert.Equal(t, model.ContactStatusUnread, contact.Status)
		mockRepo.AssertExpectations(t)
		mockMailer.AssertExpectations(t)
	})

	t.Run("succeeds even when the notification email fails", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*model.Contact).ID = 6
			}).
			Return(nil)

		mockMailer := new(MockSender)
		mockMailer.On("Enabled").Return(true)
		mockMailer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		service := NewContactService(mockRepo, mockMailer, "admin@example.com")

		id, err := service.Create(context.Background(), submission())

		assert.NoError(t, err)
		assert.Equal(t, uint(6), id)
		mockRepo.AssertExpectations(t)
		mockMailer.AssertExpectations(t)
	})

	t.Run("skips the mailer when it is disabled", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

		mockMailer := new(MockSender)
		mockMailer.On("Enabled").Return(false)

		service := NewContactService(mockRepo, mockMailer, "admin@example.com")

		_, err := service.Create(context.Background(), submission())

		assert.NoError(t, err)
		mockMailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertExpectations(t)
	})

	t.Run("uses the submitted subject in the notification", func(t *testing.T) {
		mockRepo := new(MockContactRepository)
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Contact")).Return(nil)

		mockMailer := new(MockSender)
		mockMailer.On("Enabled").Return(true)
		mockMailer.On("Send", "admin@example.com", "New Contact Form Submission: Pricing question", mock.AnythingOfType("string")).Return(nil)

		service := NewContactService(mockRepo, mockMailer, "admin@example.com")

		contact := submission()
		contact.Subject = "Pricing question"
		_, err := service.Create(context.Background(), contact)

		assert.NoError(t, err)
		mockMailer.AssertExpectations(t)
	})
}

func TestContactService_UpdateStatus_NotFound(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("UpdateStatus", mock.Anything, uint(99), "read").Return(gorm.ErrRecordNotFound)

	service := NewContactService(mockRepo, nil, "admin@example.com")

	err := service.UpdateStatus(context.Background(), 99, "read")

	assert.Equal(t, apperrors.ErrContactNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestContactService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockContactRepository)
	mockRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

	service := NewContactService(mockRepo, nil, "admin@example.com")

	err := service.Delete(context.Background(), 99)

	assert.Equal(t, apperrors.ErrContactNotFound, err)
	mockRepo.AssertExpectations(t)
}
