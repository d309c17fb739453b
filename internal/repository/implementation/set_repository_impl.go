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

type SetRepositoryImpl struct {
	db           *gorm.DB
	mapper       *mapper.SetMapper
	layoutMapper *mapper.LayoutMapper
}

func NewSetRepository(db *gorm.DB) contract.SetRepository {
	return &SetRepositoryImpl{
		db:           db,
		mapper:       mapper.NewSetMapper(),
		layoutMapper: mapper.NewLayoutMapper(),
	}
}

func (r *SetRepositoryImpl) Create(ctx context.Context, set *entity.Set) error {
	m := r.mapper.ToModel(set)
	if err := r.db.WithContext(ctx).Omit("User").Create(m).Error; err != nil {
		return Translate(err)
	}
	if set.Id != 0 {
		if err := syncSequence(ctx, r.db, m.TableName()); err != nil {
			return err
		}
	}
	*set = *r.mapper.ToEntity(m)
	return nil
}

func (r *SetRepositoryImpl) Update(ctx context.Context, id uint, set *entity.Set) error {
	table := model.Set{}.TableName()
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(map[string]interface{}{
		"id":          set.Id,
		"name":        set.Name,
		"description": set.Description,
		"user_id":     set.UserId,
		"updated_at":  time.Now(),
	})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNoRows
	}
	if set.Id != id {
		if err := rewriteReferences(r.db.WithContext(ctx), []reference{{"set_layouts", "set_id"}}, id, set.Id); err != nil {
			return err
		}
		return syncSequence(ctx, r.db, table)
	}
	return nil
}

func (r *SetRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("set_id = ?", id).Delete(&model.SetLayout{}).Error; err != nil {
		return Translate(err)
	}
	res := db.Delete(&model.Set{}, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNoRows
	}
	return nil
}

func (r *SetRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Set, error) {
	var m model.Set
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SetRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Set, error) {
	var models []*model.Set
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SetRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Set{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *SetRepositoryImpl) AppendLayouts(ctx context.Context, setId uint, layoutIds []uint) error {
	table := model.SetLayout{}.TableName()
	position, err := nextPosition(ctx, r.db, table, "set_id", setId)
	if err != nil {
		return err
	}

	for _, layoutId := range layoutIds {
		member, err := r.HasLayout(ctx, setId, layoutId)
		if err != nil {
			return err
		}
		if member {
			continue
		}
		row := &model.SetLayout{SetId: setId, LayoutId: layoutId, Position: position}
		if err := r.db.WithContext(ctx).Omit("Set", "Layout").Create(row).Error; err != nil {
			return Translate(err)
		}
		position++
	}
	return nil
}

func (r *SetRepositoryImpl) FindLayouts(ctx context.Context, setId uint) ([]*entity.Layout, error) {
	var models []*model.Layout
	err := r.db.WithContext(ctx).
		Select("layouts.*").
		Joins("JOIN set_layouts ON set_layouts.layout_id = layouts.id").
		Where("set_layouts.set_id = ?", setId).
		Order("set_layouts.position ASC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.layoutMapper.ToEntities(models), nil
}

func (r *SetRepositoryImpl) HasLayout(ctx context.Context, setId, layoutId uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.SetLayout{}).
		Where("set_id = ? AND layout_id = ?", setId, layoutId).
		Count(&count).Error
	return count > 0, err
}
