package implementation

import (
	"context"
	"errors"
	"fmt"

	"nautto-be/internal/repository/contract"
	"nautto-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// Translate turns constraint violations into contract.ErrConflict. It relies
// on gorm.Config.TranslateError being enabled.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %v", contract.ErrConflict, err)
	}
	return err
}

// syncSequence moves a postgres serial past client supplied ids so later
// server assigned ids do not collide with them.
func syncSequence(ctx context.Context, db *gorm.DB, table string) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	sql := fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT COALESCE(MAX(id), 1) FROM %s))",
		table, table,
	)
	return db.WithContext(ctx).Exec(sql).Error
}

// nextPosition returns the position after the last membership row of a
// container in the given join table.
func nextPosition(ctx context.Context, db *gorm.DB, table, column string, containerId uint) (int64, error) {
	var last int64
	err := db.WithContext(ctx).
		Table(table).
		Where(column+" = ?", containerId).
		Select("COALESCE(MAX(position), 0)").
		Scan(&last).Error
	return last + 1, err
}

type reference struct {
	table  string
	column string
}

// rewriteReferences moves rows pointing at oldId over to newId. The foreign
// keys cascade on update already; this covers connections where sqlite runs
// without foreign key enforcement.
func rewriteReferences(db *gorm.DB, refs []reference, oldId, newId uint) error {
	for _, ref := range refs {
		err := db.Table(ref.table).Where(ref.column+" = ?", oldId).Update(ref.column, newId).Error
		if err != nil {
			return Translate(err)
		}
	}
	return nil
}
