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

type WidgetRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.WidgetMapper
}

func NewWidgetRepository(db *gorm.DB) contract.WidgetRepository {
	return &WidgetRepositoryImpl{
		db:     db,
		mapper: mapper.NewWidgetMapper(),
	}
}

func (r *WidgetRepositoryImpl) Create(ctx context.Context, widget *entity.Widget) error {
	m := r.mapper.ToModel(widget)
	if err := r.db.WithContext(ctx).Omit("User").Create(m).Error; err != nil {
		return Translate(err)
	}
	if widget.Id != 0 {
		if err := syncSequence(ctx, r.db, m.TableName()); err != nil {
			return err
		}
	}
	*widget = *r.mapper.ToEntity(m)
	return nil
}

func (r *WidgetRepositoryImpl) Update(ctx context.Context, id uint, widget *entity.Widget) error {
	table := model.Widget{}.TableName()
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(map[string]interface{}{
		"id":          widget.Id,
		"name":        widget.Name,
		"description": widget.Description,
		"type":        widget.Type,
		"content":     widget.Content,
		"user_id":     widget.UserId,
		"updated_at":  time.Now(),
	})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNoRows
	}
	if widget.Id != id {
		if err := rewriteReferences(r.db.WithContext(ctx), []reference{{"layout_widgets", "widget_id"}}, id, widget.Id); err != nil {
			return err
		}
		return syncSequence(ctx, r.db, table)
	}
	return nil
}

func (r *WidgetRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("widget_id = ?", id).Delete(&model.LayoutWidget{}).Error; err != nil {
		return Translate(err)
	}
	res := db.Delete(&model.Widget{}, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNoRows
	}
	return nil
}

func (r *WidgetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Widget, error) {
	var m model.Widget
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *WidgetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Widget, error) {
	var models []*model.Widget
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *WidgetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Widget{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
