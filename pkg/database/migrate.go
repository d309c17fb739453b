package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables of models, in order.
func Migrate(db *gorm.DB, models ...interface{}) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Drop removes the tables of models. Dependants are dropped first, so models
// is walked in reverse.
func Drop(db *gorm.DB, models ...interface{}) error {
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
