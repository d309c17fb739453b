package contract

import (
	"context"

	"nautto-be/internal/entity"
	"nautto-be/internal/repository/specification"
)

type WidgetRepository interface {
	Create(ctx context.Context, widget *entity.Widget) error
	Update(ctx context.Context, id uint, widget *entity.Widget) error
	Delete(ctx context.Context, id uint) error // also drops layout memberships
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Widget, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Widget, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
