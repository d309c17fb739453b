package contract

import (
	"context"

	"nautto-be/internal/entity"
	"nautto-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// Update writes user over the row currently identified by id; user.Id may
	// differ from id to reassign the identifier.
	Update(ctx context.Context, id uint, user *entity.User) error
	// Delete removes the user and applies the repository's DeletePolicy to
	// the rows it owns.
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
