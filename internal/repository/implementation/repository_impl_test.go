package implementation_test

import (
	"context"
	"testing"

	"nautto-be/internal/entity"
	"nautto-be/internal/model"
	"nautto-be/internal/repository/contract"
	"nautto-be/internal/repository/implementation"
	"nautto-be/internal/repository/specification"
	"nautto-be/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewMemoryDB(t.Name())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, model.All()...))
	t.Cleanup(func() {
		_ = database.Drop(db, model.All()...)
	})
	return db
}

type fixture struct {
	user   *entity.User
	widget *entity.Widget
	layout *entity.Layout
	set    *entity.Set
}

// seedOwned creates a user owning one linked widget, layout and set.
func seedOwned(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	ctx := context.Background()

	f := fixture{user: &entity.User{Name: "Ann"}}
	require.NoError(t, implementation.NewUserRepository(db, contract.DeletePolicyCascade).Create(ctx, f.user))

	f.widget = &entity.Widget{Name: "w", Type: "HTML", Content: "<p>x</p>", UserId: &f.user.Id}
	require.NoError(t, implementation.NewWidgetRepository(db).Create(ctx, f.widget))

	f.layout = &entity.Layout{Name: "l", UserId: &f.user.Id}
	layouts := implementation.NewLayoutRepository(db)
	require.NoError(t, layouts.Create(ctx, f.layout))
	require.NoError(t, layouts.AppendWidgets(ctx, f.layout.Id, []uint{f.widget.Id}))

	f.set = &entity.Set{Name: "s", UserId: &f.user.Id}
	sets := implementation.NewSetRepository(db)
	require.NoError(t, sets.Create(ctx, f.set))
	require.NoError(t, sets.AppendLayouts(ctx, f.set.Id, []uint{f.layout.Id}))

	return f
}

func count(t *testing.T, db *gorm.DB, m interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}

func TestUserCreateAssignsAndAcceptsIds(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := implementation.NewUserRepository(db, contract.DeletePolicyCascade)

	first := &entity.User{Name: "Ann"}
	require.NoError(t, repo.Create(ctx, first))
	assert.EqualValues(t, 1, first.Id)
	assert.False(t, first.CreatedAt.IsZero())

	explicit := &entity.User{Id: 7, Name: "Bob"}
	require.NoError(t, repo.Create(ctx, explicit))
	assert.EqualValues(t, 7, explicit.Id)

	duplicate := &entity.User{Id: 7, Name: "Eve"}
	err := repo.Create(ctx, duplicate)
	assert.ErrorIs(t, err, contract.ErrConflict)

	found, err := repo.FindOne(ctx, specification.ByID{ID: 7})
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Bob", found.Name)

	missing, err := repo.FindOne(ctx, specification.ByID{ID: 99})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestUserDeleteCascade(t *testing.T) {
	db := setupDB(t)
	f := seedOwned(t, db)

	repo := implementation.NewUserRepository(db, contract.DeletePolicyCascade)
	require.NoError(t, repo.Delete(context.Background(), f.user.Id))

	assert.Zero(t, count(t, db, &model.User{}))
	assert.Zero(t, count(t, db, &model.Widget{}))
	assert.Zero(t, count(t, db, &model.Layout{}))
	assert.Zero(t, count(t, db, &model.Set{}))
	assert.Zero(t, count(t, db, &model.LayoutWidget{}))
	assert.Zero(t, count(t, db, &model.SetLayout{}))
}

func TestUserDeleteNullify(t *testing.T) {
	db := setupDB(t)
	f := seedOwned(t, db)
	ctx := context.Background()

	repo := implementation.NewUserRepository(db, contract.DeletePolicyNullify)
	require.NoError(t, repo.Delete(ctx, f.user.Id))

	assert.Zero(t, count(t, db, &model.User{}))
	widget, err := implementation.NewWidgetRepository(db).FindOne(ctx, specification.ByID{ID: f.widget.Id})
	require.NoError(t, err)
	require.NotNil(t, widget)
	assert.Nil(t, widget.UserId)

	member, err := implementation.NewLayoutRepository(db).HasWidget(ctx, f.layout.Id, f.widget.Id)
	require.NoError(t, err)
	assert.True(t, member)
	assert.EqualValues(t, 1, count(t, db, &model.SetLayout{}))
}

func TestDeleteMissingReportsNoRows(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	assert.ErrorIs(t, implementation.NewUserRepository(db, "").Delete(ctx, 1), contract.ErrNoRows)
	assert.ErrorIs(t, implementation.NewWidgetRepository(db).Delete(ctx, 1), contract.ErrNoRows)
	assert.ErrorIs(t, implementation.NewLayoutRepository(db).Delete(ctx, 1), contract.ErrNoRows)
	assert.ErrorIs(t, implementation.NewSetRepository(db).Delete(ctx, 1), contract.ErrNoRows)
}

func TestWidgetDeleteRemovesMembership(t *testing.T) {
	db := setupDB(t)
	f := seedOwned(t, db)

	require.NoError(t, implementation.NewWidgetRepository(db).Delete(context.Background(), f.widget.Id))

	assert.Zero(t, count(t, db, &model.LayoutWidget{}))
	assert.EqualValues(t, 1, count(t, db, &model.Layout{}))
}

func TestAppendWidgetsIsIdempotentAndOrdered(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	widgets := implementation.NewWidgetRepository(db)
	layouts := implementation.NewLayoutRepository(db)

	var ids []uint
	for _, name := range []string{"a", "b", "c"} {
		w := &entity.Widget{Name: name, Type: "HTML", Content: name}
		require.NoError(t, widgets.Create(ctx, w))
		ids = append(ids, w.Id)
	}
	layout := &entity.Layout{Name: "l"}
	require.NoError(t, layouts.Create(ctx, layout))

	require.NoError(t, layouts.AppendWidgets(ctx, layout.Id, []uint{ids[2], ids[0]}))
	require.NoError(t, layouts.AppendWidgets(ctx, layout.Id, []uint{ids[0], ids[1], ids[1]}))

	members, err := layouts.FindWidgets(ctx, layout.Id)
	require.NoError(t, err)
	var names []string
	for _, m := range members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"c", "a", "b"}, names)
}

func TestUpdateReassignsIdAndKeepsMembership(t *testing.T) {
	db := setupDB(t)
	f := seedOwned(t, db)
	ctx := context.Background()
	layouts := implementation.NewLayoutRepository(db)

	f.layout.Id = 42
	f.layout.Name = "renamed"
	require.NoError(t, layouts.Update(ctx, 1, f.layout))

	old, err := layouts.FindOne(ctx, specification.ByID{ID: 1})
	require.NoError(t, err)
	assert.Nil(t, old)

	moved, err := layouts.FindOne(ctx, specification.ByID{ID: 42})
	require.NoError(t, err)
	require.NotNil(t, moved)
	assert.Equal(t, "renamed", moved.Name)
	assert.NotNil(t, moved.UpdatedAt)

	member, err := layouts.HasWidget(ctx, 42, f.widget.Id)
	require.NoError(t, err)
	assert.True(t, member)

	inSet, err := implementation.NewSetRepository(db).HasLayout(ctx, f.set.Id, 42)
	require.NoError(t, err)
	assert.True(t, inSet)
}

func TestUpdateUserIdCarriesOwnedRows(t *testing.T) {
	db := setupDB(t)
	f := seedOwned(t, db)
	ctx := context.Background()

	f.user.Id = 9
	require.NoError(t, implementation.NewUserRepository(db, "").Update(ctx, 1, f.user))

	owned, err := implementation.NewWidgetRepository(db).FindAll(ctx, specification.UserOwnedBy{UserID: 9})
	require.NoError(t, err)
	assert.Len(t, owned, 1)
}

func TestUpdateMissingReportsNoRows(t *testing.T) {
	db := setupDB(t)
	err := implementation.NewSetRepository(db).Update(context.Background(), 5, &entity.Set{Id: 5, Name: "x"})
	assert.ErrorIs(t, err, contract.ErrNoRows)
}

func TestFindAllByOwner(t *testing.T) {
	db := setupDB(t)
	f := seedOwned(t, db)
	ctx := context.Background()
	sets := implementation.NewSetRepository(db)
	require.NoError(t, sets.Create(ctx, &entity.Set{Name: "ownerless"}))

	all, err := sets.FindAll(ctx, specification.OrderByID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	owned, err := sets.FindAll(ctx, specification.UserOwnedBy{UserID: f.user.Id}, specification.OrderByID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "s", owned[0].Name)

	n, err := sets.Count(ctx, specification.UserOwnedBy{UserID: f.user.Id})
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
