package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/scraper"
	"github.com/sirupsen/logrus"
)

const (
	// ImageHeight is the height in pixels of resized recipe images
	ImageHeight = 500
	// MaxImagePixels caps the decoded size of source images
	MaxImagePixels = 40_000_000
)

// ErrStorageDisabled is returned by Mirror when no object store is configured
var ErrStorageDisabled = errors.New("image storage is not configured")

// ObjectStore uploads an object and returns its public URL
type ObjectStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// ImageService resizes remote images and mirrors recipe images into object
// storage
type ImageService struct {
	fetcher scraper.Fetcher
	store   ObjectStore
	recipes IRecipeService
}

// NewImageService creates a new ImageService instance. store may be nil.
func NewImageService(fetcher scraper.Fetcher, store ObjectStore, recipes IRecipeService) *ImageService {
	return &ImageService{
		fetcher: fetcher,
		store:   store,
		recipes: recipes,
	}
}

// Resize fetches the image at target and scales it to ImageHeight, keeping
// the aspect ratio. PNG input stays PNG; everything else is re-encoded as
// JPEG.
func (s *ImageService) Resize(ctx context.Context, target string) ([]byte, string, error) {
	if err := scraper.ValidateURL(target); err != nil {
		return nil, "", err
	}

	data, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, "", err
	}
	return ResizeImage(data)
}

// ResizeImage scales an encoded image to ImageHeight
func ResizeImage(data []byte) ([]byte, string, error) {
	// the header is checked first: decoders allocate the full pixel buffer up front
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, "", &ValidationError{Field: "url", Message: "not a supported image"}
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, "", &ValidationError{
			Field:   "url",
			Message: fmt.Sprintf("image is %dx%d, larger than %d pixels", cfg.Width, cfg.Height, MaxImagePixels),
		}
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", &ValidationError{Field: "url", Message: "not a supported image"}
	}

	resized := resize.Resize(0, ImageHeight, img, resize.Lanczos3)

	var buf bytes.Buffer
	if format == "png" {
		if err := png.Encode(&buf, resized); err != nil {
			return nil, "", fmt.Errorf("failed to encode png: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: 85}); err != nil {
		return nil, "", fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), "image/jpeg", nil
}

// Mirror copies the image of a recipe owned by userID into object storage
// and points the recipe at the stored copy
func (s *ImageService) Mirror(ctx context.Context, recipeID int64, userID string) (*model.Recipe, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}

	recipe, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.Cid != userID {
		return nil, ErrForbidden
	}
	if recipe.ImageURL == nil || *recipe.ImageURL == "" {
		return nil, &ValidationError{Field: "image_url", Message: "recipe has no image"}
	}

	data, contentType, err := s.Resize(ctx, *recipe.ImageURL)
	if err != nil {
		return nil, err
	}

	ext := "jpg"
	if contentType == "image/png" {
		ext = "png"
	}
	key := fmt.Sprintf("recipe-images/%s.%s", uuid.New().String(), ext)
	publicURL, err := s.store.PutObject(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"recipe_id": recipeID, "key": key}).Info("Recipe image mirrored")
	return s.recipes.SetImageURL(ctx, recipeID, userID, publicURL)
}
