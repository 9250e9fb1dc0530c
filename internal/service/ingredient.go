package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/plateful/recipebook-backend/internal/models"
)

// IngredientService handles ingredient CRUD scoped to the owning user.
type IngredientService struct {
	db *gorm.DB
}

func NewIngredientService(db *gorm.DB) *IngredientService {
	return &IngredientService{db: db}
}

func (s *IngredientService) List(ctx context.Context, userID uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Scopes(ownedBy(userID)).
		Order("id DESC").
		Find(&ingredients).Error
	if err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (s *IngredientService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.Ingredient, error) {
	ingredient := models.Ingredient{Name: name, UserID: userID}
	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Update(ctx context.Context, userID uuid.UUID, id uint, name string) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).Scopes(ownedBy(userID)).First(&ingredient, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&ingredient).Update("name", name).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (s *IngredientService) Delete(ctx context.Context, userID uuid.UUID, id uint) error {
	res := s.db.WithContext(ctx).Scopes(ownedBy(userID)).Delete(&models.Ingredient{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
