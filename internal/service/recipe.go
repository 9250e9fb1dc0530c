package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plateful/recipebook-backend/internal/models"
	"github.com/plateful/recipebook-backend/internal/types"
)

// RecipeService handles recipe CRUD scoped to the owning user.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns the caller's recipes, newest first.
func (s *RecipeService) List(ctx context.Context, userID uuid.UUID) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Preload("Tags").
		Preload("Ingredients").
		Order("id DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get returns a single recipe owned by the caller.
func (s *RecipeService) Get(ctx context.Context, userID uuid.UUID, id uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Create stores a new recipe owned by userID. Tag and ingredient ids are
// resolved against the caller's own records; foreign ids are dropped.
func (s *RecipeService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if err := validateRecipeFields(req.TimeMinutes, req.Price.IsNegative()); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Title:       req.Title,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price.Round(2),
		Description: req.Description,
		Link:        req.Link,
		UserID:      userID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		if err := s.replaceTags(tx, userID, &recipe, req.TagIDs); err != nil {
			return err
		}
		return s.replaceIngredients(tx, userID, &recipe, req.IngredientIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, recipe.ID)
}

// Update overwrites every updatable field of an owned recipe. The owner is
// not an updatable field and cannot change here.
func (s *RecipeService) Update(ctx context.Context, userID uuid.UUID, id uint, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	if err := validateRecipeFields(req.TimeMinutes, req.Price.IsNegative()); err != nil {
		return nil, err
	}

	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"title":        req.Title,
			"time_minutes": req.TimeMinutes,
			"price":        req.Price.Round(2),
			"description":  req.Description,
			"link":         req.Link,
		}
		if err := tx.Model(recipe).Updates(updates).Error; err != nil {
			return err
		}
		if err := s.replaceTags(tx, userID, recipe, req.TagIDs); err != nil {
			return err
		}
		return s.replaceIngredients(tx, userID, recipe, req.IngredientIDs)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, id)
}

// Patch applies only the submitted fields of an owned recipe; everything
// else, relations included, stays as it was.
func (s *RecipeService) Patch(ctx context.Context, userID uuid.UUID, id uint, req *types.UpdateRecipeRequest) (*models.Recipe, error) {
	if req.TimeMinutes != nil && *req.TimeMinutes < 0 {
		return nil, ErrInvalidTime
	}
	if req.Price != nil && req.Price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.TimeMinutes != nil {
		updates["time_minutes"] = *req.TimeMinutes
	}
	if req.Price != nil {
		updates["price"] = req.Price.Round(2)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Link != nil {
		updates["link"] = *req.Link
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(recipe).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.TagIDs != nil {
			if err := s.replaceTags(tx, userID, recipe, *req.TagIDs); err != nil {
				return err
			}
		}
		if req.IngredientIDs != nil {
			if err := s.replaceIngredients(tx, userID, recipe, *req.IngredientIDs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, userID, id)
}

// Delete removes an owned recipe.
func (s *RecipeService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	res := s.db.WithContext(ctx).Scopes(ownedBy(userID)).Delete(&models.Recipe{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *RecipeService) replaceTags(tx *gorm.DB, userID uuid.UUID, recipe *models.Recipe, ids []uint) error {
	var tags []models.Tag
	if len(ids) > 0 {
		if err := tx.Scopes(ownedBy(userID)).Where("id IN ?", ids).Find(&tags).Error; err != nil {
			return err
		}
	}
	return tx.Model(recipe).Association("Tags").Replace(&tags)
}

func (s *RecipeService) replaceIngredients(tx *gorm.DB, userID uuid.UUID, recipe *models.Recipe, ids []uint) error {
	var ingredients []models.Ingredient
	if len(ids) > 0 {
		if err := tx.Scopes(ownedBy(userID)).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
			return err
		}
	}
	return tx.Model(recipe).Association("Ingredients").Replace(&ingredients)
}

func validateRecipeFields(timeMinutes int, negativePrice bool) error {
	if timeMinutes < 0 {
		return ErrInvalidTime
	}
	if negativePrice {
		return ErrInvalidPrice
	}
	return nil
}
