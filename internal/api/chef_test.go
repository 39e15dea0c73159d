package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/service"
	"github.com/pageza/digital-parsley/backend/internal/testhelpers"
	"github.com/pageza/digital-parsley/backend/internal/types"
)

func TestCreateChef(t *testing.T) {
	env := newTestEnv(t)
	env.chefs.On("Create", mock.Anything, mock.MatchedBy(func(p *types.ChefPatch) bool {
		return p.FirebaseID != nil && *p.FirebaseID == "new_chef"
	})).Return(&model.Chef{ID: 1, FirebaseID: "new_chef"}, nil)
	env.chefs.On("Create", mock.Anything, mock.MatchedBy(func(p *types.ChefPatch) bool {
		return p.FirebaseID != nil && *p.FirebaseID == testUser
	})).Return(nil, service.ErrAlreadyExists)

	w := env.do(t, http.MethodPost, "/api/chefs", map[string]string{"firebase_id": "new_chef"}, true)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodPost, "/api/chefs", map[string]string{"firebase_id": testUser}, true)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestGetChefAndCallerRecipes(t *testing.T) {
	env := newTestEnv(t)
	env.chefs.On("Get", mock.Anything, testUser).
		Return(&model.Chef{ID: 1, FirebaseID: testUser, Username: testhelpers.StringPtr("Goombah!")}, nil)
	env.chefs.On("Recipes", mock.Anything, testUser).Return([]model.Recipe{{ID: 2, Cid: testUser, Title: "Stew"}}, nil)

	w := env.do(t, http.MethodGet, "/api/chefs/"+testUser, nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	var chef model.Chef
	decodeData(t, w, &chef)
	assert.Equal(t, "Goombah!", *chef.Username)

	// the static segment wins over the firebase id parameter
	w = env.do(t, http.MethodGet, "/api/chefs/recipes", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
	var recipes []model.Recipe
	decodeData(t, w, &recipes)
	assert.Len(t, recipes, 1)
}

func TestUpdateAndDeleteActOnCaller(t *testing.T) {
	env := newTestEnv(t)
	env.chefs.On("Update", mock.Anything, testUser, mock.Anything).
		Return(&model.Chef{ID: 1, FirebaseID: testUser, Username: testhelpers.StringPtr("Chef")}, nil)
	env.chefs.On("Delete", mock.Anything, testUser).Return(nil)

	w := env.do(t, http.MethodPatch, "/api/chefs", map[string]string{"username": "Chef"}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/chefs", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListChefs(t *testing.T) {
	env := newTestEnv(t)
	env.chefs.On("List", mock.Anything).Return([]model.Chef{{ID: 1, FirebaseID: testUser}}, nil)

	w := env.do(t, http.MethodGet, "/api/chefs", nil, true)
	assert.Equal(t, http.StatusOK, w.Code)
}
