package testhelpers

import (
	"testing"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"gorm.io/gorm"
)

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// CreateTestChef stores a chef with the given Firebase id
func CreateTestChef(t *testing.T, db *gorm.DB, firebaseID, username string) *model.Chef {
	t.Helper()
	chef := &model.Chef{FirebaseID: firebaseID, Username: StringPtr(username)}
	if err := db.Create(chef).Error; err != nil {
		t.Fatalf("failed to create test chef: %v", err)
	}
	return chef
}

// CreateTestRecipe stores a recipe owned by cid
func CreateTestRecipe(t *testing.T, db *gorm.DB, cid, title string, tags ...string) *model.Recipe {
	t.Helper()
	recipe := &model.Recipe{
		Cid:         cid,
		Title:       title,
		Ingredients: model.StringList{"1 onion"},
		Steps:       model.StringList{"Cook it."},
		Tags:        model.StringList(tags),
	}
	if recipe.Tags == nil {
		recipe.Tags = model.StringList{}
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
