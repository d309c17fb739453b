package mapper

import (
	"nautto-be/internal/entity"
	"nautto-be/internal/model"
)

type LayoutMapper struct{}

func NewLayoutMapper() *LayoutMapper {
	return &LayoutMapper{}
}

func (m *LayoutMapper) ToEntity(l *model.Layout) *entity.Layout {
	if l == nil {
		return nil
	}
	return &entity.Layout{
		Id:          l.Id,
		Name:        l.Name,
		Description: l.Description,
		UserId:      l.UserId,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   optionalTime(l.UpdatedAt),
	}
}

func (m *LayoutMapper) ToModel(l *entity.Layout) *model.Layout {
	if l == nil {
		return nil
	}
	return &model.Layout{
		Id:          l.Id,
		Name:        l.Name,
		Description: l.Description,
		UserId:      l.UserId,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   requiredTime(l.UpdatedAt),
	}
}

func (m *LayoutMapper) ToEntities(layouts []*model.Layout) []*entity.Layout {
	entities := make([]*entity.Layout, len(layouts))
	for i, l := range layouts {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
