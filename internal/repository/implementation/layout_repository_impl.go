package implementation

import (
	"context"
	"errors"
	"time"

	"nautto-be/internal/entity"
	"nautto-be/internal/mapper"
	"nautto-be/internal/model"
	"nautto-be/internal/repository/contract"
	"nautto-be/internal/repository/specification"

	"gorm.io/gorm"
)

type LayoutRepositoryImpl struct {
	db           *gorm.DB
	mapper       *mapper.LayoutMapper
	widgetMapper *mapper.WidgetMapper
}

func NewLayoutRepository(db *gorm.DB) contract.LayoutRepository {
	return &LayoutRepositoryImpl{
		db:           db,
		mapper:       mapper.NewLayoutMapper(),
		widgetMapper: mapper.NewWidgetMapper(),
	}
}

func (r *LayoutRepositoryImpl) Create(ctx context.Context, layout *entity.Layout) error {
	m := r.mapper.ToModel(layout)
	if err := r.db.WithContext(ctx).Omit("User").Create(m).Error; err != nil {
		return Translate(err)
	}
	if layout.Id != 0 {
		if err := syncSequence(ctx, r.db, m.TableName()); err != nil {
			return err
		}
	}
	*layout = *r.mapper.ToEntity(m)
	return nil
}

func (r *LayoutRepositoryImpl) Update(ctx context.Context, id uint, layout *entity.Layout) error {
	table := model.Layout{}.TableName()
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(map[string]interface{}{
		"id":          layout.Id,
		"name":        layout.Name,
		"description": layout.Description,
		"user_id":     layout.UserId,
		"updated_at":  time.Now(),
	})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNoRows
	}
	if layout.Id != id {
		if err := rewriteReferences(r.db.WithContext(ctx), []reference{{"layout_widgets", "layout_id"}, {"set_layouts", "layout_id"}}, id, layout.Id); err != nil {
			return err
		}
		return syncSequence(ctx, r.db, table)
	}
	return nil
}

func (r *LayoutRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("layout_id = ?", id).Delete(&model.LayoutWidget{}).Error; err != nil {
		return Translate(err)
	}
	if err := db.Where("layout_id = ?", id).Delete(&model.SetLayout{}).Error; err != nil {
		return Translate(err)
	}
	res := db.Delete(&model.Layout{}, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNoRows
	}
	return nil
}

func (r *LayoutRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Layout, error) {
	var m model.Layout
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *LayoutRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Layout, error) {
	var models []*model.Layout
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LayoutRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Layout{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *LayoutRepositoryImpl) AppendWidgets(ctx context.Context, layoutId uint, widgetIds []uint) error {
	table := model.LayoutWidget{}.TableName()
	position, err := nextPosition(ctx, r.db, table, "layout_id", layoutId)
	if err != nil {
		return err
	}

	for _, widgetId := range widgetIds {
		member, err := r.HasWidget(ctx, layoutId, widgetId)
		if err != nil {
			return err
		}
		if member {
			continue
		}
		row := &model.LayoutWidget{LayoutId: layoutId, WidgetId: widgetId, Position: position}
		if err := r.db.WithContext(ctx).Omit("Layout", "Widget").Create(row).Error; err != nil {
			return Translate(err)
		}
		position++
	}
	return nil
}

func (r *LayoutRepositoryImpl) FindWidgets(ctx context.Context, layoutId uint) ([]*entity.Widget, error) {
	var models []*model.Widget
	err := r.db.WithContext(ctx).
		Select("widgets.*").
		Joins("JOIN layout_widgets ON layout_widgets.widget_id = widgets.id").
		Where("layout_widgets.layout_id = ?", layoutId).
		Order("layout_widgets.position ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.widgetMapper.ToEntities(models), nil
}

func (r *LayoutRepositoryImpl) HasWidget(ctx context.Context, layoutId, widgetId uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.LayoutWidget{}).
		Where("layout_id = ? AND widget_id = ?", layoutId, widgetId).
		Count(&count).Error
	return count > 0, err
}
