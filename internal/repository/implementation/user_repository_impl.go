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

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
	policy contract.DeletePolicy
}

func NewUserRepository(db *gorm.DB, policy contract.DeletePolicy) contract.UserRepository {
	if policy == "" {
		policy = contract.DeletePolicyCascade
	}
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
		policy: policy,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return Translate(err)
	}
	if user.Id != 0 {
		if err := syncSequence(ctx, r.db, m.TableName()); err != nil {
			return err
		}
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, id uint, user *entity.User) error {
	table := model.User{}.TableName()
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(map[string]interface{}{
		"id":          user.Id,
		"name":        user.Name,
		"description": user.Description,
		"updated_at":  time.Now(),
	})
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNoRows
	}
	if user.Id != id {
		if err := rewriteReferences(r.db.WithContext(ctx), []reference{{"widgets", "user_id"}, {"layouts", "user_id"}, {"sets", "user_id"}}, id, user.Id); err != nil {
			return err
		}
		return syncSequence(ctx, r.db, table)
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)

	var err error
	if r.policy == contract.DeletePolicyNullify {
		err = r.releaseOwned(db, id)
	} else {
		err = r.deleteOwned(db, id)
	}
	if err != nil {
		return Translate(err)
	}

	res := db.Delete(&model.User{}, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return contract.ErrNoRows
	}
	return nil
}

// releaseOwned keeps the user's rows and clears their owner.
func (r *UserRepositoryImpl) releaseOwned(db *gorm.DB, id uint) error {
	for _, m := range []interface{}{&model.Widget{}, &model.Layout{}, &model.Set{}} {
		if err := db.Model(m).Where("user_id = ?", id).Update("user_id", nil).Error; err != nil {
			return err
		}
	}
	return nil
}

// deleteOwned removes the user's rows and every membership pointing at them.
func (r *UserRepositoryImpl) deleteOwned(db *gorm.DB, id uint) error {
	owned := func(m interface{}) *gorm.DB {
		return r.db.Model(m).Select("id").Where("user_id = ?", id)
	}

	steps := []struct {
		model interface{}
		query string
		arg   interface{}
	}{
		{&model.LayoutWidget{}, "widget_id IN (?)", owned(&model.Widget{})},
		{&model.LayoutWidget{}, "layout_id IN (?)", owned(&model.Layout{})},
		{&model.SetLayout{}, "layout_id IN (?)", owned(&model.Layout{})},
		{&model.SetLayout{}, "set_id IN (?)", owned(&model.Set{})},
		{&model.Widget{}, "user_id = ?", id},
		{&model.Layout{}, "user_id = ?", id},
		{&model.Set{}, "user_id = ?", id},
	}
	for _, step := range steps {
		if err := db.Where(step.query, step.arg).Delete(step.model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var m model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var models []*model.User
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
