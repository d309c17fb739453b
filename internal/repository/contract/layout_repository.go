package contract

import (
	"context"

	"nautto-be/internal/entity"
	"nautto-be/internal/repository/specification"
)

type LayoutRepository interface {
	Create(ctx context.Context, layout *entity.Layout) error
	Update(ctx context.Context, id uint, layout *entity.Layout) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Layout, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Layout, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// AppendWidgets adds memberships after the existing ones. Widgets that
	// are already members are skipped.
	AppendWidgets(ctx context.Context, layoutId uint, widgetIds []uint) error
	// FindWidgets lists members in insertion order.
	FindWidgets(ctx context.Context, layoutId uint) ([]*entity.Widget, error)
	HasWidget(ctx context.Context, layoutId, widgetId uint) (bool, error)
}
