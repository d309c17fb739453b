package unitofwork

import (
	"context"

	"nautto-be/internal/repository/contract"

	"gorm.io/gorm"
)

type RepositoryFactoryImpl struct {
	db     *gorm.DB
	policy contract.DeletePolicy
}

func NewRepositoryFactory(db *gorm.DB, policy contract.DeletePolicy) RepositoryFactory {
	return &RepositoryFactoryImpl{
		db:     db,
		policy: policy,
	}
}

// NewUnitOfWork is meant to be short lived, one per request.
func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return NewUnitOfWork(f.db, f.policy)
}
