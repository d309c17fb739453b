package service

import (
	"context"

	"nautto-be/internal/dto"
	"nautto-be/internal/entity"
	"nautto-be/internal/repository/specification"
	"nautto-be/internal/repository/unitofwork"
	"nautto-be/internal/schema"
)

type IUserService interface {
	GetAll(ctx context.Context) ([]*entity.User, error)
	Create(ctx context.Context, body dto.Body) (*entity.User, error)
	Show(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, id uint, body dto.Body) error
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().FindAll(ctx, specification.OrderByID)
}

func (s *userService) Create(ctx context.Context, body dto.Body) (*entity.User, error) {
	var payload dto.UserPayload
	if err := decodePayload(schema.KindUser, body, &payload); err != nil {
		return nil, err
	}
	id, err := requestedId(payload.Id)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.UserRepository()
	if id != 0 {
		existing, err := repo.FindOne(ctx, specification.ByID{ID: id})
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, alreadyExists(schema.KindUser, id)
		}
	}

	user := &entity.User{
		Id:          id,
		Name:        payload.Name,
		Description: payload.Description,
	}
	if err := repo.Create(ctx, user); err != nil {
		return nil, storeError(schema.KindUser, id, err)
	}
	if err := uow.Commit(); err != nil {
		return nil, storeError(schema.KindUser, user.Id, err)
	}
	return user, nil
}

func (s *userService) Show(ctx context.Context, id uint) (*entity.User, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, notFound(schema.KindUser, id)
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, id uint, body dto.Body) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	repo := uow.UserRepository()
	user, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if user == nil {
		return notFound(schema.KindUser, id)
	}

	var payload dto.UserPayload
	if err := decodePayload(schema.KindUser, body, &payload); err != nil {
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
			return alreadyExists(schema.KindUser, newId)
		}
		user.Id = newId
	}

	user.Name = payload.Name
	if payload.Description != nil {
		user.Description = payload.Description
	}
	if err := repo.Update(ctx, id, user); err != nil {
		return storeError(schema.KindUser, user.Id, err)
	}
	return storeError(schema.KindUser, user.Id, uow.Commit())
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Delete(ctx, id); err != nil {
		return storeError(schema.KindUser, id, err)
	}
	return storeError(schema.KindUser, id, uow.Commit())
}
