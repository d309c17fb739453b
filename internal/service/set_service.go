package service

import (
	"context"

	"nautto-be/internal/dto"
	"nautto-be/internal/entity"
	"nautto-be/internal/repository/specification"
	"nautto-be/internal/repository/unitofwork"
	"nautto-be/internal/schema"
)

type ISetService interface {
	GetAll(ctx context.Context, ownerId *uint) ([]*entity.Set, error)
	Create(ctx context.Context, ownerId *uint, body dto.Body) (*entity.Set, error)
	Show(ctx context.Context, id uint) (*dto.SetDetail, error)
	// Update replaces the set's fields and appends the layouts listed in
	// "items" to its membership.
	Update(ctx context.Context, id uint, body dto.Body) error
	Delete(ctx context.Context, id uint) error
}

type setService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewSetService(uowFactory unitofwork.RepositoryFactory) ISetService {
	return &setService{
		uowFactory: uowFactory,
	}
}

func (s *setService) GetAll(ctx context.Context, ownerId *uint) ([]*entity.Set, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if ownerId != nil {
		if err := ensureUser(ctx, uow, *ownerId); err != nil {
			return nil, err
		}
	}
	return uow.SetRepository().FindAll(ctx, ownerSpecs(ownerId)...)
}

func (s *setService) Create(ctx context.Context, ownerId *uint, body dto.Body) (*entity.Set, error) {
	var payload dto.SetPayload
	if err := decodePayload(schema.KindSet, body, &payload); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if ownerId != nil {
		if err := ensureUser(ctx, uow, *ownerId); err != nil {
			return nil, err
		}
	}
	id, err := requestedId(payload.Id)
	if err != nil {
		return nil, err
	}

	repo := uow.SetRepository()
	if id != 0 {
		existing, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, alreadyExists(schema.KindSet, id)
		}
	}
	layoutIds, err := resolveLayouts(ctx, uow, payload.Items)
	if err != nil {
		return nil, err
	}

	set := &entity.Set{
		Id:          id,
		Name:        payload.Name,
		Description: payload.Description,
		UserId:      ownerId,
	}
	if err := repo.Create(ctx, set); err != nil {
		return nil, storeError(schema.KindSet, id, err)
	}
	if err := repo.AppendLayouts(ctx, set.Id, layoutIds); err != nil {
		return nil, storeError(schema.KindSet, set.Id, err)
	}
	if err := uow.Commit(); err != nil {
		return nil, storeError(schema.KindSet, set.Id, err)
	}
	return set, nil
}

func (s *setService) Show(ctx context.Context, id uint) (*dto.SetDetail, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	set, err := uow.SetRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, notFound(schema.KindSet, id)
	}

	layouts, err := uow.SetRepository().FindLayouts(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.SetDetail{Set: set, Layouts: layouts}, nil
}

func (s *setService) Update(ctx context.Context, id uint, body dto.Body) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.SetRepository()
	set, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if set == nil {
		return notFound(schema.KindSet, id)
	}

	var payload dto.SetPayload
	if err := decodePayload(schema.KindSet, body, &payload); err != nil {
		return err
	}
	newId, err := requestedId(payload.Id)
	if err != nil {
		return err
	}
	if newId != 0 && newId != id {
		taken, err := repo.FindOne(ctx, specification.ByID{ID: newId})
		if err != nil {
			return err
		}
		if taken != nil {
			return alreadyExists(schema.KindSet, newId)
		}
		set.Id = newId
	}
	layoutIds, err := resolveLayouts(ctx, uow, payload.Items)
	if err != nil {
		return err
	}

	set.Name = payload.Name
	if payload.Description != nil {
		set.Description = payload.Description
	}
	if err := repo.Update(ctx, id, set); err != nil {
		return storeError(schema.KindSet, set.Id, err)
	}
	if err := repo.AppendLayouts(ctx, set.Id, layoutIds); err != nil {
		return storeError(schema.KindSet, set.Id, err)
	}
	return storeError(schema.KindSet, set.Id, uow.Commit())
}

func (s *setService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.SetRepository().Delete(ctx, id); err != nil {
		return storeError(schema.KindSet, id, err)
	}
	return storeError(schema.KindSet, id, uow.Commit())
}

// resolveLayouts checks that every referenced layout exists.
func resolveLayouts(ctx context.Context, uow unitofwork.UnitOfWork, refs []dto.MemberRef) ([]uint, error) {
	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		id, err := memberId(schema.KindLayout, ref)
		if err != nil {
			return nil, err
		}
		layout, err := uow.LayoutRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if layout == nil {
			return nil, notFound(schema.KindLayout, id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
