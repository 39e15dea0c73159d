// Package scraper extracts a recipe draft from an arbitrary recipe web page
// using class-name and tag-shape heuristics.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Scraper runs the fetch, parse and extract pipeline.
type Scraper struct {
	fetcher Fetcher
}

// New creates a Scraper that retrieves pages with fetcher.
func New(fetcher Fetcher) *Scraper {
	return &Scraper{fetcher: fetcher}
}

// Scrape decodes raw, fetches the page and extracts a draft. A fetch failure
// fails the whole scrape; missing fields are not errors.
func (s *Scraper) Scrape(ctx context.Context, raw string) (RecipeDraft, error) {
	target, err := DecodeURL(raw)
	if err != nil {
		return RecipeDraft{}, err
	}
	return s.ScrapeURL(ctx, target)
}

// ScrapeURL is Scrape for a URL that is already decoded.
func (s *Scraper) ScrapeURL(ctx context.Context, target string) (RecipeDraft, error) {
	if err := ValidateURL(target); err != nil {
		return RecipeDraft{}, err
	}

	body, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return RecipeDraft{}, err
	}

	return Extract(ctx, NewDocument(body))
}

// Extract runs the metadata, list and timing passes over doc concurrently.
// The passes only read the document, so the result equals a sequential run.
func Extract(ctx context.Context, doc *Document) (RecipeDraft, error) {
	var (
		meta    Metadata
		lists   Lists
		timings Timings
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		meta = ExtractMetadata(doc)
		return nil
	})
	g.Go(func() error {
		lists = ExtractLists(doc)
		return nil
	})
	g.Go(func() error {
		timings = ExtractTimings(doc)
		return nil
	})
	if err := g.Wait(); err != nil {
		return RecipeDraft{}, err
	}

	return Assemble(meta, lists, timings), nil
}

// ExtractHTML is Extract over an in-memory page.
func ExtractHTML(body []byte) RecipeDraft {
	draft, _ := Extract(context.Background(), NewDocument(body))
	return draft
}

// DecodeURL percent-decodes raw and checks that it is an absolute http or
// https URL.
func DecodeURL(raw string) (string, error) {
	decoded, err := url.PathUnescape(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if err := ValidateURL(decoded); err != nil {
		return "", err
	}
	return decoded, nil
}

// ValidateURL checks that target is an absolute http or https URL.
func ValidateURL(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}
