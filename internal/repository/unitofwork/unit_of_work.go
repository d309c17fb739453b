package unitofwork

import (
	"context"

	"nautto-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	WidgetRepository() contract.WidgetRepository
	LayoutRepository() contract.LayoutRepository
	SetRepository() contract.SetRepository
}
