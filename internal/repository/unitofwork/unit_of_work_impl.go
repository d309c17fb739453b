package unitofwork

import (
	"context"
	"fmt"

	"nautto-be/internal/repository/contract"
	"nautto-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db     *gorm.DB
	tx     *gorm.DB
	policy contract.DeletePolicy
}

func NewUnitOfWork(db *gorm.DB, policy contract.DeletePolicy) UnitOfWork {
	return &UnitOfWorkImpl{
		db:     db,
		policy: policy,
	}
}

// getDB returns the open transaction, or the plain handle outside of one.
func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return implementation.Translate(err)
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB(), u.policy)
}

func (u *UnitOfWorkImpl) WidgetRepository() contract.WidgetRepository {
	return implementation.NewWidgetRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LayoutRepository() contract.LayoutRepository {
	return implementation.NewLayoutRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SetRepository() contract.SetRepository {
	return implementation.NewSetRepository(u.getDB())
}
