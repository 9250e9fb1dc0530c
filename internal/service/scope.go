package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedBy restricts a query to records owned by the given user. All domain
// reads and mutations go through this scope, so a record owned by someone
// else is indistinguishable from one that does not exist.
func ownedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
