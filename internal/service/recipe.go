package service

import (
	"context"
	"strings"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/types"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RecipeService handles recipe operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// Create stores a recipe owned by userID. A title is required; absent lists
// are stored empty.
func (s *RecipeService) Create(ctx context.Context, patch *types.RecipePatch, userID string) (*model.Recipe, error) {
	if patch == nil || !patch.HasTitle() {
		return nil, &ValidationError{Field: "title", Message: "is required"}
	}

	recipe := &model.Recipe{
		Cid:         userID,
		Title:       strings.TrimSpace(*patch.Title),
		Header:      patch.Header,
		Ingredients: listOrEmpty(patch.Ingredients),
		Steps:       listOrEmpty(patch.Steps),
		Tags:        listOrEmpty(patch.Tags),
		ImageURL:    patch.ImageURL,
		CookTime:    patch.CookTime,
		PrepTime:    patch.PrepTime,
		TotalTime:   patch.TotalTime,
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"recipe_id": recipe.ID, "cid": userID}).Info("Recipe created")
	return recipe, nil
}

// Get retrieves a recipe by ID
func (s *RecipeService) Get(ctx context.Context, id int64) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "recipe", id)
	}
	return &recipe, nil
}

// List returns every recipe
func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	if err := s.db.WithContext(ctx).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Update applies the provided fields of patch. Only the owner may update a
// recipe; the caller is recorded as last modifier.
func (s *RecipeService) Update(ctx context.Context, id int64, patch *types.RecipePatch, userID string) (*model.Recipe, error) {
	if patch != nil && patch.Title != nil && !patch.HasTitle() {
		return nil, &ValidationError{Field: "title", Message: "must not be empty"}
	}

	var updated *model.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe, err := ownedRecipe(tx, id, userID)
		if err != nil {
			return err
		}
		applyPatch(recipe, patch)
		recipe.Mid = &userID
		if err := tx.Save(recipe).Error; err != nil {
			return err
		}
		updated = recipe
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a recipe owned by userID and returns its id
func (s *RecipeService) Delete(ctx context.Context, id int64, userID string) (int64, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe, err := ownedRecipe(tx, id, userID)
		if err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
	if err != nil {
		return 0, err
	}

	logrus.WithFields(logrus.Fields{"recipe_id": id, "cid": userID}).Info("Recipe deleted")
	return id, nil
}

// ListByTag returns the recipes of userID that carry tag
func (s *RecipeService) ListByTag(ctx context.Context, userID, tag string) ([]model.Recipe, error) {
	recipes := []model.Recipe{}
	query := s.db.WithContext(ctx).Where("cid = ?", userID).Order("id")

	if s.db.Dialector.Name() == "postgres" {
		if err := query.Where("? = ANY(tags)", tag).Find(&recipes).Error; err != nil {
			return nil, err
		}
		return recipes, nil
	}

	// Fallback for databases without array columns
	var all []model.Recipe
	if err := query.Find(&all).Error; err != nil {
		return nil, err
	}
	for _, r := range all {
		if r.Tags.Contains(tag) {
			recipes = append(recipes, r)
		}
	}
	return recipes, nil
}

// SetImageURL replaces the image of a recipe owned by userID
func (s *RecipeService) SetImageURL(ctx context.Context, id int64, userID, imageURL string) (*model.Recipe, error) {
	return s.Update(ctx, id, &types.RecipePatch{ImageURL: &imageURL}, userID)
}

func ownedRecipe(tx *gorm.DB, id int64, userID string) (*model.Recipe, error) {
	var recipe model.Recipe
	if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "recipe", id)
	}
	if recipe.Cid != userID {
		return nil, ErrForbidden
	}
	return &recipe, nil
}

func applyPatch(recipe *model.Recipe, patch *types.RecipePatch) {
	if patch == nil {
		return
	}
	if patch.Title != nil {
		recipe.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Header != nil {
		recipe.Header = patch.Header
	}
	if patch.Ingredients != nil {
		recipe.Ingredients = model.StringList(patch.Ingredients)
	}
	if patch.Steps != nil {
		recipe.Steps = model.StringList(patch.Steps)
	}
	if patch.Tags != nil {
		recipe.Tags = model.StringList(patch.Tags)
	}
	if patch.ImageURL != nil {
		recipe.ImageURL = patch.ImageURL
	}
	if patch.CookTime != nil {
		recipe.CookTime = patch.CookTime
	}
	if patch.PrepTime != nil {
		recipe.PrepTime = patch.PrepTime
	}
	if patch.TotalTime != nil {
		recipe.TotalTime = patch.TotalTime
	}
}

func listOrEmpty(items []string) model.StringList {
	if items == nil {
		return model.StringList{}
	}
	return model.StringList(items)
}
