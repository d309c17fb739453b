package mapper

import (
	"nautto-be/internal/entity"
	"nautto-be/internal/model"
)

type SetMapper struct{}

func NewSetMapper() *SetMapper {
	return &SetMapper{}
}

func (m *SetMapper) ToEntity(s *model.Set) *entity.Set {
	if s == nil {
		return nil
	}
	return &entity.Set{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
		UserId:      s.UserId,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   optionalTime(s.UpdatedAt),
	}
}

func (m *SetMapper) ToModel(s *entity.Set) *model.Set {
	if s == nil {
		return nil
	}
	return &model.Set{
		Id:          s.Id,
		Name:        s.Name,
		Description: s.Description,
		UserId:      s.UserId,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   requiredTime(s.UpdatedAt),
	}
}

func (m *SetMapper) ToEntities(sets []*model.Set) []*entity.Set {
	entities := make([]*entity.Set, len(sets))
	for i, s := range sets {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
