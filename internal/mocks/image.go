package mocks

import (
	"context"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockImageService is a mock implementation of the image service
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Resize(ctx context.Context, target string) ([]byte, string, error) {
	args := m.Called(ctx, target)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}

func (m *MockImageService) Mirror(ctx context.Context, recipeID int64, userID string) (*model.Recipe, error) {
	args := m.Called(ctx, recipeID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// MockObjectStore is a mock implementation of the object store
type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}
