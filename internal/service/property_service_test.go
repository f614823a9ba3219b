package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "terracore/internal/errors"
	"terracore/internal/model"
	"terracore/internal/repository"
)

// MockPropertyRepository is a mock implementation of PropertyRepository.
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(ctx context.Context, property *model.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Update(ctx context.Context, property *model.Property) error {
	args := m.Called(ctx, property)
	return args.Error(0)
}

func (m *MockPropertyRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPropertyRepository) FindByID(ctx context.Context, id uint) (*model.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}

func (m *MockPropertyRepository) List(ctx context.Context, filter repository.PropertyFilter) ([]model.Property, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Property), args.Error(1)
}

func (m *MockPropertyRepository) Search(ctx context.Context, search repository.PropertySearch) ([]model.Property, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Property), args.Error(1)
}

func TestPropertyService_List_DefaultsToActive(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	mockRepo.On("List", mock.Anything, repository.PropertyFilter{Status: "active"}).
		Return([]model.Property{{ID: 1, Title: "Listing"}}, nil)

	service := NewPropertyService(mockRepo, nil)

	properties, err := service.List(context.Background(), repository.PropertyFilter{})

	assert.NoError(t, err)
	assert.Len(t, properties, 1)
	mockRepo.AssertExpectations(t)
}

func TestPropertyService_List_ExplicitStatusKept(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	mockRepo.On("List", mock.Anything, repository.PropertyFilter{Status: "sold"}).
		Return([]model.Property{}, nil)

	service := NewPropertyService(mockRepo, nil)

	_, err := service.List(context.Background(), repository.PropertyFilter{Status: "sold"})

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestPropertyService_Create(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Property")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Property).ID = 42
		}).
		Return(nil)

	service := NewPropertyService(mockRepo, nil)

	property := &model.Property{Title: "New Flat", Type: "apartment", Price: 100000, Location: "Lagos"}
	id, err := service.Create(context.Background(), property, 7)

	assert.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "active", property.Status)
	assert.NotNil(t, property.Features)
	if assert.NotNil(t, property.CreatedBy) {
		assert.Equal(t, uint(7), *property.CreatedBy)
	}
	mockRepo.AssertExpectations(t)
}

func TestPropertyService_Update(t *testing.T) {
	stored := func() *model.Property {
		return &model.Property{
			ID:        1,
			Title:     "Old Title",
			Type:      "apartment",
			Price:     250000,
			Location:  "Enugu",
			Bedrooms:  3,
			Status:    "active",
			UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		}
	}

	tests := []struct {
		name   string
		update PropertyUpdate
		verify func(*testing.T, *model.Property)
	}{
		{
			name:   "empty update changes nothing but the timestamp",
			update: PropertyUpdate{},
			verify: func(t *testing.T, p *model.Property) {
				assert.Equal(t, "Old Title", p.Title)
				assert.Equal(t, 250000.0, p.Price)
				assert.Equal(t, 3, p.Bedrooms)
				assert.True(t, p.UpdatedAt.After(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
			},
		},
		{
			name: "supplied fields overwrite, the rest stay",
			update: PropertyUpdate{
				Title: ptr("New Title"),
				Price: ptr(300000.0),
			},
			verify: func(t *testing.T, p *model.Property) {
				assert.Equal(t, "New Title", p.Title)
				assert.Equal(t, 300000.0, p.Price)
				assert.Equal(t, "Enugu", p.Location)
				assert.Equal(t, 3, p.Bedrooms)
			},
		},
		{
			name: "zero values are applied when explicitly supplied",
			update: PropertyUpdate{
				Bedrooms: ptr(0),
				Featured: ptr(false),
			},
			verify: func(t *testing.T, p *model.Property) {
				assert.Equal(t, 0, p.Bedrooms)
				assert.False(t, p.Featured)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPropertyRepository)
			mockRepo.On("FindByID", mock.Anything, uint(1)).Return(stored(), nil)
			mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Property")).Return(nil)

			service := NewPropertyService(mockRepo, nil)

			updated, err := service.Update(context.Background(), 1, tt.update)

			assert.NoError(t, err)
			assert.NotNil(t, updated)
			tt.verify(t, updated)
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPropertyService_Update_NotFound(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewPropertyService(mockRepo, nil)

	updated, err := service.Update(context.Background(), 99, PropertyUpdate{Title: ptr("x")})

	assert.Equal(t, apperrors.ErrPropertyNotFound, err)
	assert.Nil(t, updated)
	mockRepo.AssertExpectations(t)
}

func TestPropertyService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	mockRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

	service := NewPropertyService(mockRepo, nil)

	err := service.Delete(context.Background(), 99)

	assert.Equal(t, apperrors.ErrPropertyNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestPropertyService_Get_NotFound(t *testing.T) {
	mockRepo := new(MockPropertyRepository)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	service := NewPropertyService(mockRepo, nil)

	property, err := service.Get(context.Background(), 99)

	assert.Equal(t, apperrors.ErrPropertyNotFound, err)
	assert.Nil(t, property)
	mockRepo.AssertExpectations(t)
}

func ptr[T any](v T) *T {
	return &v
}
