package mocks

import (
	"context"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/types"
	"github.com/stretchr/testify/mock"
)

// MockChefService is a mock implementation of the chef service
type MockChefService struct {
	mock.Mock
}

func (m *MockChefService) List(ctx context.Context) ([]model.Chef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Chef), args.Error(1)
}

func (m *MockChefService) Get(ctx context.Context, firebaseID string) (*model.Chef, error) {
	args := m.Called(ctx, firebaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chef), args.Error(1)
}

func (m *MockChefService) Create(ctx context.Context, patch *types.ChefPatch) (*model.Chef, error) {
	args := m.Called(ctx, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chef), args.Error(1)
}

func (m *MockChefService) Update(ctx context.Context, firebaseID string, patch *types.ChefPatch) (*model.Chef, error) {
	args := m.Called(ctx, firebaseID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chef), args.Error(1)
}

func (m *MockChefService) Delete(ctx context.Context, firebaseID string) error {
	args := m.Called(ctx, firebaseID)
	return args.Error(0)
}

func (m *MockChefService) Recipes(ctx context.Context, firebaseID string) ([]model.Recipe, error) {
	args := m.Called(ctx, firebaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}
