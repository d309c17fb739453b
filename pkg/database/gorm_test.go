package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

type sample struct {
	Id   uint `gorm:"primaryKey"`
	Name string
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on", withForeignKeys("file::memory:"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "file:x?_fk=1", withForeignKeys("file:x?_fk=1"))
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, parseLogLevel("silent"))
	assert.Equal(t, logger.Info, parseLogLevel("INFO"))
	assert.Equal(t, logger.Warn, parseLogLevel(""))
}

func TestUnsupportedDriver(t *testing.T) {
	_, err := NewGormDB(GormConfig{Driver: "oracle", DSN: "x"})
	assert.Error(t, err)
}

func TestMigrateAndDropSQLite(t *testing.T) {
	db, err := NewMemoryDB(t.Name())
	require.NoError(t, err)

	require.NoError(t, Migrate(db, &sample{}))
	assert.True(t, db.Migrator().HasTable(&sample{}))

	require.NoError(t, Drop(db, &sample{}))
	assert.False(t, db.Migrator().HasTable(&sample{}))
}
