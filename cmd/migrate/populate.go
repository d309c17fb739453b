package main

import (
	"context"
	"fmt"

	"nautto-be/internal/entity"
	"nautto-be/internal/repository/unitofwork"
)

// populate inserts two of everything, owned alternately by the two users,
// with layouts and sets sharing members.
func populate(ctx context.Context, factory unitofwork.RepositoryFactory) error {
	uow := factory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	users := []*entity.User{
		{Name: "Mikko Mallikas"},
		{Name: "Pasi Anssi"},
	}
	for _, u := range users {
		if err := uow.UserRepository().Create(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", u.Name, err)
		}
	}

	widgets := make([]*entity.Widget, len(users))
	for i, u := range users {
		widgets[i] = &entity.Widget{
			Name:    fmt.Sprintf("widget%d", i+1),
			Type:    "HTML",
			Content: fmt.Sprintf("<h1> Test Header </h1> <p> Testing widget %d </p>", i+1),
			UserId:  &u.Id,
		}
		if err := uow.WidgetRepository().Create(ctx, widgets[i]); err != nil {
			return fmt.Errorf("create widget: %w", err)
		}
	}

	layouts := make([]*entity.Layout, len(users))
	for i, u := range users {
		layouts[i] = &entity.Layout{Name: fmt.Sprintf("layout%d", i+1), UserId: &u.Id}
		if err := uow.LayoutRepository().Create(ctx, layouts[i]); err != nil {
			return fmt.Errorf("create layout: %w", err)
		}
	}
	layoutMembers := [][]uint{
		{widgets[0].Id, widgets[1].Id},
		{widgets[0].Id},
	}
	for i, members := range layoutMembers {
		if err := uow.LayoutRepository().AppendWidgets(ctx, layouts[i].Id, members); err != nil {
			return fmt.Errorf("fill layout: %w", err)
		}
	}

	sets := make([]*entity.Set, len(users))
	for i, u := range users {
		sets[i] = &entity.Set{Name: fmt.Sprintf("set%d", i+1), UserId: &u.Id}
		if err := uow.SetRepository().Create(ctx, sets[i]); err != nil {
			return fmt.Errorf("create set: %w", err)
		}
	}
	setMembers := [][]uint{
		{layouts[0].Id, layouts[1].Id},
		{layouts[1].Id},
	}
	for i, members := range setMembers {
		if err := uow.SetRepository().AppendLayouts(ctx, sets[i].Id, members); err != nil {
			return fmt.Errorf("fill set: %w", err)
		}
	}

	return uow.Commit()
}
