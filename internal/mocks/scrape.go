package mocks

import (
	"context"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/scraper"
	"github.com/stretchr/testify/mock"
)

// MockScrapeService is a mock implementation of the scrape service
type MockScrapeService struct {
	mock.Mock
}

func (m *MockScrapeService) Scrape(ctx context.Context, raw string) (*scraper.RecipeDraft, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*scraper.RecipeDraft), args.Error(1)
}

func (m *MockScrapeService) Import(ctx context.Context, target, userID string) (*model.Recipe, error) {
	args := m.Called(ctx, target, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

// MockPageScraper is a mock implementation of the page scraper
type MockPageScraper struct {
	mock.Mock
}

func (m *MockPageScraper) ScrapeURL(ctx context.Context, target string) (scraper.RecipeDraft, error) {
	args := m.Called(ctx, target)
	return args.Get(0).(scraper.RecipeDraft), args.Error(1)
}

// MockFetcher is a mock implementation of the page fetcher
type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
