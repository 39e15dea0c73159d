package service

import (
	"context"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/scraper"
	"github.com/pageza/digital-parsley/backend/internal/types"
)

// IAuthService defines the interface for token operations
type IAuthService interface {
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(userID string) (string, error)
}

// IChefService defines the interface for chef operations
type IChefService interface {
	List(ctx context.Context) ([]model.Chef, error)
	Get(ctx context.Context, firebaseID string) (*model.Chef, error)
	Create(ctx context.Context, patch *types.ChefPatch) (*model.Chef, error)
	Update(ctx context.Context, firebaseID string, patch *types.ChefPatch) (*model.Chef, error)
	Delete(ctx context.Context, firebaseID string) error
	Recipes(ctx context.Context, firebaseID string) ([]model.Recipe, error)
}

// IRecipeService defines the interface for recipe operations
type IRecipeService interface {
	Create(ctx context.Context, patch *types.RecipePatch, userID string) (*model.Recipe, error)
	Get(ctx context.Context, id int64) (*model.Recipe, error)
	List(ctx context.Context) ([]model.Recipe, error)
	Update(ctx context.Context, id int64, patch *types.RecipePatch, userID string) (*model.Recipe, error)
	Delete(ctx context.Context, id int64, userID string) (int64, error)
	ListByTag(ctx context.Context, userID, tag string) ([]model.Recipe, error)
	SetImageURL(ctx context.Context, id int64, userID, imageURL string) (*model.Recipe, error)
}

// IScrapeService defines the interface for scraping operations
type IScrapeService interface {
	Scrape(ctx context.Context, raw string) (*scraper.RecipeDraft, error)
	Import(ctx context.Context, target, userID string) (*model.Recipe, error)
}

// IImageService defines the interface for image operations
type IImageService interface {
	Resize(ctx context.Context, target string) ([]byte, string, error)
	Mirror(ctx context.Context, recipeID int64, userID string) (*model.Recipe, error)
}

var (
	_ IAuthService   = (*AuthService)(nil)
	_ IChefService   = (*ChefService)(nil)
	_ IRecipeService = (*RecipeService)(nil)
	_ IScrapeService = (*ScrapeService)(nil)
	_ IImageService  = (*ImageService)(nil)
)
