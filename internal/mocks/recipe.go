package mocks

import (
	"context"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

// Create mocks the Create method
func (m *MockRecipeService) Create(ctx context.Context, patch *types.RecipePatch, userID string) (*model.Recipe, error) {
	args := m.Called(ctx, patch, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// Get mocks the Get method
func (m *MockRecipeService) Get(ctx context.Context, id int64) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// List mocks the List method
func (m *MockRecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// Update mocks the Update method
func (m *MockRecipeService) Update(ctx context.Context, id int64, patch *types.RecipePatch, userID string) (*model.Recipe, error) {
	args := m.Called(ctx, id, patch, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// Delete mocks the Delete method
func (m *MockRecipeService) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	args := m.Called(ctx, id, userID)
	return args.Get(0).(int64), args.Error(1)
}

// ListByTag mocks the ListByTag method
func (m *MockRecipeService) ListByTag(ctx context.Context, userID, tag string) ([]model.Recipe, error) {
	args := m.Called(ctx, userID, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

// SetImageURL mocks the SetImageURL method
func (m *MockRecipeService) SetImageURL(ctx context.Context, id int64, userID, imageURL string) (*model.Recipe, error) {
	args := m.Called(ctx, id, userID, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}
