package database

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pageza/digital-parsley/backend/internal/model"
)

// DemoChefID is the Firebase id of the seeded demo chef
const DemoChefID = "firebase_auth_123"

func strPtr(s string) *string { return &s }

var demoRecipes = []model.Recipe{
	{
		Title:       "Hunter`s Stew",
		Header:      strPtr("A slow-cooked venison stew for cold evenings."),
		Ingredients: model.StringList{"2 lb venison shoulder, cubed", "4 carrots", "2 onions", "1 cup red wine", "2 cups beef stock"},
		Steps:       model.StringList{"Brown the venison in batches.", "Soften the onions and carrots.", "Add wine and stock, then simmer for two hours."},
		Tags:        model.StringList{"stew", "game", "winter"},
		PrepTime:    strPtr("20 mins"),
		CookTime:    strPtr("2 hours"),
		TotalTime:   strPtr("2 hours 20 mins"),
	},
	{
		Title:       "Bean Soup",
		Header:      strPtr("Pantry white bean soup."),
		Ingredients: model.StringList{"2 cans white beans", "1 onion", "3 cloves garlic", "4 cups vegetable stock"},
		Steps:       model.StringList{"Sweat the onion and garlic.", "Add beans and stock and simmer for 20 minutes.", "Blend half and stir back in."},
		Tags:        model.StringList{"soup", "vegetarian"},
		PrepTime:    strPtr("10 mins"),
		CookTime:    strPtr("25 mins"),
	},
	{
		Title:       "Parsley Salad",
		Ingredients: model.StringList{"2 bunches flat-leaf parsley", "1 lemon", "olive oil", "flaky salt"},
		Steps:       model.StringList{"Pick the parsley leaves.", "Dress with lemon juice, oil and salt."},
		Tags:        model.StringList{"salad", "vegetarian", "quick"},
	},
}

// SeedDemoData creates the demo chef and their recipes. It is a no-op when
// the demo chef already exists.
func SeedDemoData(db *gorm.DB) (int, error) {
	var existing model.Chef
	err := db.Where("firebase_id = ?", DemoChefID).First(&existing).Error
	if err == nil {
		logrus.WithField("firebase_id", DemoChefID).Info("Demo chef already exists, skipping seed")
		return 0, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, fmt.Errorf("failed to look up demo chef: %w", err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		chef := model.Chef{FirebaseID: DemoChefID, Username: strPtr("Goombah!")}
		if err := tx.Create(&chef).Error; err != nil {
			return fmt.Errorf("failed to create demo chef: %w", err)
		}
		for _, r := range demoRecipes {
			r.Cid = DemoChefID
			if err := tx.Create(&r).Error; err != nil {
				return fmt.Errorf("failed to create recipe %q: %w", r.Title, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(demoRecipes), nil
}
