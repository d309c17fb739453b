package main

import (
	"context"
	"testing"

	"nautto-be/internal/model"
	"nautto-be/internal/repository/contract"
	"nautto-be/internal/repository/unitofwork"
	"nautto-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	db, err := database.NewMemoryDB(t.Name())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))

	ctx := context.Background()
	factory := unitofwork.NewRepositoryFactory(db, contract.DeletePolicyCascade)
	require.NoError(t, populate(ctx, factory))

	uow := factory.NewUnitOfWork(ctx)
	users, err := uow.UserRepository().Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, users)

	widgets, err := uow.LayoutRepository().FindWidgets(ctx, 1)
	require.NoError(t, err)
	require.Len(t, widgets, 2)
	assert.Equal(t, "widget1", widgets[0].Name)
	assert.Equal(t, "widget2", widgets[1].Name)

	layouts, err := uow.SetRepository().FindLayouts(ctx, 2)
	require.NoError(t, err)
	require.Len(t, layouts, 1)
	assert.Equal(t, "layout2", layouts[0].Name)

	require.NoError(t, database.Drop(db, model.All()...))
	assert.False(t, db.Migrator().HasTable(&model.User{}))
}
