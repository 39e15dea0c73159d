package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/digital-parsley/backend/internal/api"
	"github.com/pageza/digital-parsley/backend/internal/cache"
	"github.com/pageza/digital-parsley/backend/internal/middleware"
	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/router"
	"github.com/pageza/digital-parsley/backend/internal/scraper"
	"github.com/pageza/digital-parsley/backend/internal/service"
	"github.com/pageza/digital-parsley/backend/internal/testhelpers"
)

func TestScrapeKeepsEncodedURL(t *testing.T) {
	env := newTestEnv(t)
	encoded := url.PathEscape("https://example.com/recipes/stew?id=1")
	draft := &scraper.RecipeDraft{Title: testhelpers.StringPtr("Stew"), Ingredients: []string{}, Steps: []string{}, Tags: []string{}}
	env.scrapes.On("Scrape", mock.Anything, encoded).Return(draft, nil)

	w := env.do(t, http.MethodGet, "/api/scrape/"+encoded, nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	var got scraper.RecipeDraft
	decodeData(t, w, &got)
	assert.Equal(t, "Stew", *got.Title)
}

func TestScrapeErrors(t *testing.T) {
	env := newTestEnv(t)
	env.scrapes.On("Scrape", mock.Anything, "not-a-url").Return(nil, scraper.ErrInvalidURL)
	env.scrapes.On("Scrape", mock.Anything, "https%3A%2F%2Fdown.example").
		Return(nil, &scraper.FetchError{URL: "https://down.example", StatusCode: 503})

	w := env.do(t, http.MethodGet, "/api/scrape/not-a-url", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/scrape/https%3A%2F%2Fdown.example", nil, false)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "could not retrieve page", decodeError(t, w))

	w = env.do(t, http.MethodGet, "/api/scrape/", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestImportRecipe(t *testing.T) {
	env := newTestEnv(t)
	env.scrapes.On("Import", mock.Anything, "https://example.com/stew", testUser).
		Return(&model.Recipe{ID: 11, Cid: testUser, Title: "Stew"}, nil)

	w := env.do(t, http.MethodPost, "/api/recipes/import", map[string]string{"url": " https://example.com/stew "}, true)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/recipes/import", map[string]string{}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/recipes/import", map[string]string{"url": "https://example.com/stew"}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

const stewPage = `<html><head>
<meta property="og:title" content="Hunter's Stew">
<meta property="og:description" content="A hearty stew">
</head><body>
<span>Prep Time:</span> <span>20 mins</span>
<div class="ingredients"><ul><li>1 lb venison</li><li>2 carrots</li></ul></div>
<div class="instructions"><ol><li>Brown the meat.</li><li>Simmer.</li></ol></div>
</body></html>`

// Runs the real scraper, cache, services and sqlite store behind the router.
func TestScrapeAndImportEndToEnd(t *testing.T) {
	page := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, stewPage)
	}))
	defer page.Close()

	db := testhelpers.SetupSQLiteDatabase(t)
	testhelpers.CreateTestChef(t, db, testUser, "Goombah!")

	auth := service.NewAuthService("")
	recipes := service.NewRecipeService(db)
	fetcher := scraper.NewCollyFetcher(scraper.DefaultTimeout)
	scrapes := service.NewScrapeService(scraper.New(fetcher), cache.NewMemoryCache(0, 0), 0, recipes)

	engine := router.SetupRouter(nil, api.Services{
		Auth:          auth,
		Chefs:         service.NewChefService(db),
		Recipes:       recipes,
		Scrapes:       scrapes,
		Images:        service.NewImageService(fetcher, nil, recipes),
		ScrapeLimiter: middleware.NewLocalRateLimiter(middleware.NewScrapeRateLimitConfig(10)),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/scrape/"+url.QueryEscape(page.URL+"/stew"), nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var draft scraper.RecipeDraft
	decodeData(t, w, &draft)
	assert.Equal(t, "Hunter's Stew", *draft.Title)
	assert.Equal(t, []string{"1 lb venison", "2 carrots"}, draft.Ingredients)
	assert.Equal(t, []string{"Brown the meat.", "Simmer."}, draft.Steps)
	assert.Equal(t, "20 mins", *draft.PrepTime)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))

	token, err := auth.GenerateToken(testUser)
	require.NoError(t, err)
	body := fmt.Sprintf(`{"url":%q}`, page.URL+"/stew")
	req = httptest.NewRequest(http.MethodPost, "/api/recipes/import", stringsReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AuthTokenHeader, token)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var recipe model.Recipe
	decodeData(t, w, &recipe)
	assert.Equal(t, testUser, recipe.Cid)
	assert.Equal(t, "Hunter's Stew", recipe.Title)
	assert.Equal(t, model.StringList{"Brown the meat.", "Simmer."}, recipe.Steps)
}
