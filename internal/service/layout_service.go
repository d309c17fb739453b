package service

import (
	"context"

	"nautto-be/internal/dto"
	"nautto-be/internal/entity"
	"nautto-be/internal/repository/specification"
	"nautto-be/internal/repository/unitofwork"
	"nautto-be/internal/schema"
)

type ILayoutService interface {
	GetAll(ctx context.Context, ownerId *uint) ([]*entity.Layout, error)
	Create(ctx context.Context, ownerId *uint, body dto.Body) (*entity.Layout, error)
	Show(ctx context.Context, id uint) (*dto.LayoutDetail, error)
	ShowInSet(ctx context.Context, setId, layoutId uint) (*dto.LayoutDetail, error)
	// Update replaces the layout's fields and appends the widgets listed in
	// "items" to its membership.
	Update(ctx context.Context, id uint, body dto.Body) error
	Delete(ctx context.Context, id uint) error
}

type layoutService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLayoutService(uowFactory unitofwork.RepositoryFactory) ILayoutService {
	return &layoutService{
		uowFactory: uowFactory,
	}
}

func (s *layoutService) GetAll(ctx context.Context, ownerId *uint) ([]*entity.Layout, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if ownerId != nil {
		if err := ensureUser(ctx, uow, *ownerId); err != nil {
			return nil, err
		}
	}
	return uow.LayoutRepository().FindAll(ctx, ownerSpecs(ownerId)...)
}

func (s *layoutService) Create(ctx context.Context, ownerId *uint, body dto.Body) (*entity.Layout, error) {
	var payload dto.LayoutPayload
	if err := decodePayload(schema.KindLayout, body, &payload); err != nil {
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

	repo := uow.LayoutRepository()
	if id != 0 {
		existing, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, alreadyExists(schema.KindLayout, id)
		}
	}
	widgetIds, err := resolveWidgets(ctx, uow, payload.Items)
	if err != nil {
		return nil, err
	}

	layout := &entity.Layout{
		Id:          id,
		Name:        payload.Name,
		Description: payload.Description,
		UserId:      ownerId,
	}
	if err := repo.Create(ctx, layout); err != nil {
		return nil, storeError(schema.KindLayout, id, err)
	}
	if err := repo.AppendWidgets(ctx, layout.Id, widgetIds); err != nil {
		return nil, storeError(schema.KindLayout, layout.Id, err)
	}
	if err := uow.Commit(); err != nil {
		return nil, storeError(schema.KindLayout, layout.Id, err)
	}
	return layout, nil
}

func (s *layoutService) Show(ctx context.Context, id uint) (*dto.LayoutDetail, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	layout, err := uow.LayoutRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if layout == nil {
		return nil, notFound(schema.KindLayout, id)
	}
	return s.detail(ctx, uow, layout)
}

func (s *layoutService) ShowInSet(ctx context.Context, setId, layoutId uint) (*dto.LayoutDetail, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	set, err := uow.SetRepository().FindOne(ctx, specification.ByID{ID: setId})
	if err != nil {
		return nil, err
	}
	if set == nil {
		return nil, notFound(schema.KindSet, setId)
	}

	layout, err := uow.LayoutRepository().FindOne(ctx, specification.ByID{ID: layoutId})
	if err != nil {
		return nil, err
	}
	if layout == nil {
		return nil, notFound(schema.KindLayout, layoutId)
	}

	member, err := uow.SetRepository().HasLayout(ctx, setId, layoutId)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, notFound(schema.KindLayout, layoutId)
	}
	return s.detail(ctx, uow, layout)
}

func (s *layoutService) detail(ctx context.Context, uow unitofwork.UnitOfWork, layout *entity.Layout) (*dto.LayoutDetail, error) {
	widgets, err := uow.LayoutRepository().FindWidgets(ctx, layout.Id)
	if err != nil {
		return nil, err
	}
	return &dto.LayoutDetail{Layout: layout, Widgets: widgets}, nil
}

func (s *layoutService) Update(ctx context.Context, id uint, body dto.Body) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.LayoutRepository()
	layout, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if layout == nil {
		return notFound(schema.KindLayout, id)
	}

	var payload dto.LayoutPayload
	if err := decodePayload(schema.KindLayout, body, &payload); err != nil {
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
			return alreadyExists(schema.KindLayout, newId)
		}
		layout.Id = newId
	}
	widgetIds, err := resolveWidgets(ctx, uow, payload.Items)
	if err != nil {
		return err
	}

	layout.Name = payload.Name
	if payload.Description != nil {
		layout.Description = payload.Description
	}
	if err := repo.Update(ctx, id, layout); err != nil {
		return storeError(schema.KindLayout, layout.Id, err)
	}
	if err := repo.AppendWidgets(ctx, layout.Id, widgetIds); err != nil {
		return storeError(schema.KindLayout, layout.Id, err)
	}
	return storeError(schema.KindLayout, layout.Id, uow.Commit())
}

func (s *layoutService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.LayoutRepository().Delete(ctx, id); err != nil {
		return storeError(schema.KindLayout, id, err)
	}
	return storeError(schema.KindLayout, id, uow.Commit())
}

// resolveWidgets checks that every referenced widget exists.
func resolveWidgets(ctx context.Context, uow unitofwork.UnitOfWork, refs []dto.MemberRef) ([]uint, error) {
	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		id, err := memberId(schema.KindWidget, ref)
		if err != nil {
			return nil, err
		}
		widget, err := uow.WidgetRepository().FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if widget == nil {
			return nil, notFound(schema.KindWidget, id)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
