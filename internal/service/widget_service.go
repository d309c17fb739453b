package service

import (
	"context"

	"nautto-be/internal/dto"
	"nautto-be/internal/entity"
	"nautto-be/internal/repository/specification"
	"nautto-be/internal/repository/unitofwork"
	"nautto-be/internal/schema"
)

type IWidgetService interface {
	// GetAll lists every widget, or only those of ownerId when it is set.
	GetAll(ctx context.Context, ownerId *uint) ([]*entity.Widget, error)
	Create(ctx context.Context, ownerId *uint, body dto.Body) (*entity.Widget, error)
	Show(ctx context.Context, id uint) (*entity.Widget, error)
	ShowInLayout(ctx context.Context, layoutId, widgetId uint) (*entity.Widget, error)
	Update(ctx context.Context, id uint, body dto.Body) error
	Delete(ctx context.Context, id uint) error
}

type widgetService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewWidgetService(uowFactory unitofwork.RepositoryFactory) IWidgetService {
	return &widgetService{
		uowFactory: uowFactory,
	}
}

func (s *widgetService) GetAll(ctx context.Context, ownerId *uint) ([]*entity.Widget, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if ownerId != nil {
		if err := ensureUser(ctx, uow, *ownerId); err != nil {
			return nil, err
		}
	}
	return uow.WidgetRepository().FindAll(ctx, ownerSpecs(ownerId)...)
}

func (s *widgetService) Create(ctx context.Context, ownerId *uint, body dto.Body) (*entity.Widget, error) {
	var payload dto.WidgetPayload
	if err := decodePayload(schema.KindWidget, body, &payload); err != nil {
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

	repo := uow.WidgetRepository()
	if id != 0 {
		existing, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, alreadyExists(schema.KindWidget, id)
		}
	}

	widget := &entity.Widget{
		Id:          id,
		Name:        payload.Name,
		Description: payload.Description,
		Type:        payload.Type,
		Content:     payload.Content,
		UserId:      ownerId,
	}
	if err := repo.Create(ctx, widget); err != nil {
		return nil, storeError(schema.KindWidget, id, err)
	}
	if err := uow.Commit(); err != nil {
		return nil, storeError(schema.KindWidget, widget.Id, err)
	}
	return widget, nil
}

func (s *widgetService) Show(ctx context.Context, id uint) (*entity.Widget, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	widget, err := uow.WidgetRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, notFound(schema.KindWidget, id)
	}
	return widget, nil
}

func (s *widgetService) ShowInLayout(ctx context.Context, layoutId, widgetId uint) (*entity.Widget, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	layout, err := uow.LayoutRepository().FindOne(ctx, specification.ByID{ID: layoutId})
	if err != nil {
		return nil, err
	}
	if layout == nil {
		return nil, notFound(schema.KindLayout, layoutId)
	}

	widget, err := uow.WidgetRepository().FindOne(ctx, specification.ByID{ID: widgetId})
	if err != nil {
		return nil, err
	}
	if widget == nil {
		return nil, notFound(schema.KindWidget, widgetId)
	}

	member, err := uow.LayoutRepository().HasWidget(ctx, layoutId, widgetId)
	if err != nil {
		return nil, err
	}
	if !member {
		return nil, notFound(schema.KindWidget, widgetId)
	}
	return widget, nil
}

func (s *widgetService) Update(ctx context.Context, id uint, body dto.Body) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.WidgetRepository()
	widget, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if widget == nil {
		return notFound(schema.KindWidget, id)
	}

	var payload dto.WidgetPayload
	if err := decodePayload(schema.KindWidget, body, &payload); err != nil {
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
			return alreadyExists(schema.KindWidget, newId)
		}
		widget.Id = newId
	}

	widget.Name = payload.Name
	widget.Type = payload.Type
	widget.Content = payload.Content
	if payload.Description != nil {
		widget.Description = payload.Description
	}
	if err := repo.Update(ctx, id, widget); err != nil {
		return storeError(schema.KindWidget, widget.Id, err)
	}
	return storeError(schema.KindWidget, widget.Id, uow.Commit())
}

func (s *widgetService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.WidgetRepository().Delete(ctx, id); err != nil {
		return storeError(schema.KindWidget, id, err)
	}
	return storeError(schema.KindWidget, id, uow.Commit())
}
