package models

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Recipe is a user-owned recipe. Description, Link and ImagePath default to
// empty strings rather than NULLs so partial responses stay uniform.
type Recipe struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
	Title       string          `gorm:"size:255;not null" json:"title"`
	TimeMinutes int             `gorm:"not null" json:"time_minutes"`
	Price       decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"price"`
	Description string          `gorm:"type:text;not null;default:''" json:"description"`
	Link        string          `gorm:"size:255;not null;default:''" json:"link"`
	ImagePath   string          `gorm:"size:255;not null;default:''" json:"image_path"`
	UserID      uuid.UUID       `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Tags        []Tag           `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
	Ingredients []Ingredient    `gorm:"many2many:recipe_ingredients" json:"ingredients,omitempty"`
}

// Tag is a user-owned label attachable to that user's recipes.
type Tag struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
}

// Ingredient is a user-owned ingredient attachable to that user's recipes.
type Ingredient struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
}

// newImageToken is swapped out in tests to pin the generated name.
var newImageToken = uuid.NewString

// RecipeImagePath derives the storage path for an uploaded recipe image.
// Only the extension of the original filename survives; the rest of the name
// is replaced with a fresh token, so uploads can never collide or traverse
// outside the upload directory. The recipe id is accepted for symmetry with
// the upload call site but does not influence the path.
func RecipeImagePath(_ uint, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("uploads/recipe/%s%s", newImageToken(), ext)
}
