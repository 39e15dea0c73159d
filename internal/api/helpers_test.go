package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pageza/digital-parsley/backend/internal/api"
	"github.com/pageza/digital-parsley/backend/internal/mocks"
	"github.com/pageza/digital-parsley/backend/internal/router"
	"github.com/pageza/digital-parsley/backend/internal/service"
	"github.com/pageza/digital-parsley/backend/internal/types"
)

const (
	testToken = "good-token"
	testUser  = "firebase_auth_123"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router  *gin.Engine
	auth    *mocks.MockAuthService
	chefs   *mocks.MockChefService
	recipes *mocks.MockRecipeService
	scrapes *mocks.MockScrapeService
	images  *mocks.MockImageService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		auth:    new(mocks.MockAuthService),
		chefs:   new(mocks.MockChefService),
		recipes: new(mocks.MockRecipeService),
		scrapes: new(mocks.MockScrapeService),
		images:  new(mocks.MockImageService),
	}
	env.auth.On("ValidateToken", testToken).Return(&types.TokenClaims{UserID: testUser}, nil).Maybe()
	env.auth.On("ValidateToken", mock.Anything).Return(nil, service.ErrInvalidToken).Maybe()

	env.router = router.SetupRouter([]string{"http://localhost:8080"}, api.Services{
		Auth:    env.auth,
		Chefs:   env.chefs,
		Recipes: env.recipes,
		Scrapes: env.scrapes,
		Images:  env.images,
	})

	t.Cleanup(func() {
		env.chefs.AssertExpectations(t)
		env.recipes.AssertExpectations(t)
		env.scrapes.AssertExpectations(t)
		env.images.AssertExpectations(t)
	})
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("X-Auth-Token", testToken)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decodeData unmarshals the "data" member of a success response into out
func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body api.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error
}
