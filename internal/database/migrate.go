package database

import (
	"gorm.io/gorm"

	"github.com/plateful/recipebook-backend/internal/models"
)

// AutoMigrate creates or updates the schema for all domain models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	)
}
