package mapper

import (
	"nautto-be/internal/entity"
	"nautto-be/internal/model"
)

type WidgetMapper struct{}

func NewWidgetMapper() *WidgetMapper {
	return &WidgetMapper{}
}

func (m *WidgetMapper) ToEntity(w *model.Widget) *entity.Widget {
	if w == nil {
		return nil
	}
	return &entity.Widget{
		Id:          w.Id,
		Name:        w.Name,
		Description: w.Description,
		Type:        w.Type,
		Content:     w.Content,
		UserId:      w.UserId,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   optionalTime(w.UpdatedAt),
	}
}

func (m *WidgetMapper) ToModel(w *entity.Widget) *model.Widget {
	if w == nil {
		return nil
	}
	return &model.Widget{
		Id:          w.Id,
		Name:        w.Name,
		Description: w.Description,
		Type:        w.Type,
		Content:     w.Content,
		UserId:      w.UserId,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   requiredTime(w.UpdatedAt),
	}
}

func (m *WidgetMapper) ToEntities(widgets []*model.Widget) []*entity.Widget {
	entities := make([]*entity.Widget, len(widgets))
	for i, w := range widgets {
		entities[i] = m.ToEntity(w)
	}
	return entities
}
