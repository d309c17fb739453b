package contract

import (
	"context"

	"nautto-be/internal/entity"
	"nautto-be/internal/repository/specification"
)

type SetRepository interface {
	Create(ctx context.Context, set *entity.Set) error
	Update(ctx context.Context, id uint, set *entity.Set) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Set, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Set, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	AppendLayouts(ctx context.Context, setId uint, layoutIds []uint) error
	FindLayouts(ctx context.Context, setId uint) ([]*entity.Layout, error)
	HasLayout(ctx context.Context, setId, layoutId uint) (bool, error)
}
