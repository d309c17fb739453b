package specification

import (
	"gorm.io/gorm"
)

// UserOwnedBy filters widgets, layouts and sets by their owner.
type UserOwnedBy struct {
	UserID uint
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
