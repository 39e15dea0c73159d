package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pageza/digital-parsley/backend/internal/model"
	"github.com/pageza/digital-parsley/backend/internal/types"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ChefService handles chef operations
type ChefService struct {
	db *gorm.DB
}

// NewChefService creates a new ChefService instance
func NewChefService(db *gorm.DB) *ChefService {
	return &ChefService{db: db}
}

// List returns every chef
func (s *ChefService) List(ctx context.Context) ([]model.Chef, error) {
	chefs := []model.Chef{}
	if err := s.db.WithContext(ctx).Order("id").Find(&chefs).Error; err != nil {
		return nil, err
	}
	return chefs, nil
}

// Get retrieves a chef by Firebase id
func (s *ChefService) Get(ctx context.Context, firebaseID string) (*model.Chef, error) {
	var chef model.Chef
	if err := s.db.WithContext(ctx).Where("firebase_id = ?", firebaseID).First(&chef).Error; err != nil {
		return nil, notFound(err, "chef", firebaseID)
	}
	return &chef, nil
}

// Create stores a new chef. The Firebase id is required and must be unused.
func (s *ChefService) Create(ctx context.Context, patch *types.ChefPatch) (*model.Chef, error) {
	if patch == nil || patch.FirebaseID == nil || strings.TrimSpace(*patch.FirebaseID) == "" {
		return nil, &ValidationError{Field: "firebase_id", Message: "is required"}
	}
	firebaseID := strings.TrimSpace(*patch.FirebaseID)

	username := ""
	if patch.Username != nil {
		username = *patch.Username
	}
	chef := &model.Chef{FirebaseID: firebaseID, Username: &username}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Chef{}).Where("firebase_id = ?", firebaseID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}
		return tx.Create(chef).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	logrus.WithField("firebase_id", firebaseID).Info("Chef created")
	return chef, nil
}

// Update changes the username of a chef. An absent username keeps the old one.
func (s *ChefService) Update(ctx context.Context, firebaseID string, patch *types.ChefPatch) (*model.Chef, error) {
	chef, err := s.Get(ctx, firebaseID)
	if err != nil {
		return nil, err
	}
	if patch == nil || patch.Username == nil {
		return chef, nil
	}

	chef.Username = patch.Username
	if err := s.db.WithContext(ctx).Model(chef).Update("username", *patch.Username).Error; err != nil {
		return nil, err
	}
	return chef, nil
}

// Delete removes a chef together with the recipes they own
func (s *ChefService) Delete(ctx context.Context, firebaseID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var chef model.Chef
		if err := tx.Where("firebase_id = ?", firebaseID).First(&chef).Error; err != nil {
			return notFound(err, "chef", firebaseID)
		}
		if err := tx.Where("cid = ?", firebaseID).Delete(&model.Recipe{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&chef).Error; err != nil {
			return err
		}
		logrus.WithField("firebase_id", firebaseID).Info("Chef deleted")
		return nil
	})
}

// Recipes lists the recipes owned by a chef
func (s *ChefService) Recipes(ctx context.Context, firebaseID string) ([]model.Recipe, error) {
	if _, err := s.Get(ctx, firebaseID); err != nil {
		return nil, err
	}
	recipes := []model.Recipe{}
	if err := s.db.WithContext(ctx).Where("cid = ?", firebaseID).Order("id").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
