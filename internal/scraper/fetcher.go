package scraper

import (
	"context"
	"errors"
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/sirupsen/logrus"
)

// Fetcher retrieves the raw body of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

const (
	// DefaultTimeout bounds a single page retrieval.
	DefaultTimeout = 10 * time.Second

	defaultUserAgent = "Mozilla/5.0 (compatible; DigitalParsley/1.0; +https://digital-parsley.netlify.app)"
	maxBodySize      = 5 * 1024 * 1024
)

// CollyFetcher fetches pages with a fresh colly collector per request.
type CollyFetcher struct {
	timeout   time.Duration
	userAgent string
}

// NewCollyFetcher creates a fetcher. A non-positive timeout selects
// DefaultTimeout.
func NewCollyFetcher(timeout time.Duration) *CollyFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &CollyFetcher{timeout: timeout, userAgent: defaultUserAgent}
}

// Fetch performs a GET request and returns the body. Any failure is reported
// as a *FetchError.
func (f *CollyFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.MaxBodySize(maxBodySize),
		colly.AllowURLRevisit(),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(f.timeout)

	var (
		body       []byte
		statusCode int
	)
	c.OnResponse(func(r *colly.Response) {
		statusCode = r.StatusCode
		body = r.Body
	})
	c.OnError(func(r *colly.Response, err error) {
		if r != nil {
			statusCode = r.StatusCode
		}
	})

	log := logrus.WithField("url", url)
	if err := c.Visit(url); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = errors.Join(err, ctxErr)
		}
		log.WithError(err).WithField("status", statusCode).Warn("page fetch failed")
		return nil, &FetchError{URL: url, StatusCode: statusCode, Err: err}
	}
	if body == nil {
		return nil, &FetchError{URL: url, StatusCode: statusCode, Err: errors.New("empty response")}
	}

	log.WithFields(logrus.Fields{"status": statusCode, "bytes": len(body)}).Debug("page fetched")
	return body, nil
}
