package service

import (
	"context"
	"errors"
	"time"

	"github.com/pageza/digital-parsley/backend/internal/cache"
	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/scraper"
	"github.com/pageza/digital-parsley/backend/internal/types"
	"github.com/sirupsen/logrus"
)

const scrapeCachePrefix = "scrape"

// PageScraper turns a decoded page URL into a recipe draft
type PageScraper interface {
	ScrapeURL(ctx context.Context, target string) (scraper.RecipeDraft, error)
}

// ScrapeService scrapes recipe pages, caches the drafts and imports them as
// recipes
type ScrapeService struct {
	scraper PageScraper
	cache   cache.Cache
	ttl     time.Duration
	recipes IRecipeService
}

// NewScrapeService creates a new ScrapeService instance. A nil cache or a
// zero ttl disables caching.
func NewScrapeService(s PageScraper, c cache.Cache, ttl time.Duration, recipes IRecipeService) *ScrapeService {
	return &ScrapeService{
		scraper: s,
		cache:   c,
		ttl:     ttl,
		recipes: recipes,
	}
}

// Scrape percent-decodes raw and returns the draft for the page
func (s *ScrapeService) Scrape(ctx context.Context, raw string) (*scraper.RecipeDraft, error) {
	target, err := scraper.DecodeURL(raw)
	if err != nil {
		return nil, err
	}
	return s.scrape(ctx, target)
}

// Import scrapes target and stores the draft as a recipe owned by userID.
// Pages without a title are stored under their URL.
func (s *ScrapeService) Import(ctx context.Context, target, userID string) (*model.Recipe, error) {
	if err := scraper.ValidateURL(target); err != nil {
		return nil, err
	}
	draft, err := s.scrape(ctx, target)
	if err != nil {
		return nil, err
	}
	return s.recipes.Create(ctx, DraftToPatch(draft, target), userID)
}

func (s *ScrapeService) scrape(ctx context.Context, target string) (*scraper.RecipeDraft, error) {
	log := logrus.WithField("url", target)

	if s.cachingEnabled() {
		var cached scraper.RecipeDraft
		err := s.cache.Get(ctx, scrapeCachePrefix, target, &cached)
		if err == nil {
			log.Debug("Scrape cache hit")
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.WithError(err).Warn("Scrape cache lookup failed")
		}
	}

	start := time.Now()
	draft, err := s.scraper.ScrapeURL(ctx, target)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"ingredients": len(draft.Ingredients),
		"steps":       len(draft.Steps),
		"duration":    time.Since(start),
	}).Info("Page scraped")

	if s.cachingEnabled() {
		if err := s.cache.Set(ctx, scrapeCachePrefix, target, draft, s.ttl); err != nil {
			log.WithError(err).Warn("Failed to cache scrape result")
		}
	}
	return &draft, nil
}

func (s *ScrapeService) cachingEnabled() bool {
	return s.cache != nil && s.ttl > 0
}

// DraftToPatch converts a draft field-for-field into a recipe patch
func DraftToPatch(draft *scraper.RecipeDraft, source string) *types.RecipePatch {
	title := source
	if draft.Title != nil && *draft.Title != "" {
		title = *draft.Title
	}
	return &types.RecipePatch{
		Title:       &title,
		Header:      draft.Header,
		Ingredients: draft.Ingredients,
		Steps:       draft.Steps,
		Tags:        draft.Tags,
		ImageURL:    draft.ImageURL,
		CookTime:    draft.CookTime,
		PrepTime:    draft.PrepTime,
		TotalTime:   draft.TotalTime,
	}
}
