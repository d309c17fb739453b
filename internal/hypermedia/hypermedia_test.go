package hypermedia

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nautto-be/internal/schema"
)

func TestAddControl(t *testing.T) {
	b := NewRoot()
	b.AddAddControl(schema.KindWidget, "/api/users/1/widgets/")

	ctrl, ok := b.Control("nautto:add-widget")
	require.True(t, ok)
	assert.Equal(t, "/api/users/1/widgets/", ctrl.Href)
	assert.Equal(t, "POST", ctrl.Method)
	assert.Equal(t, "json", ctrl.Encoding)
	assert.Equal(t, "Add a new widget", ctrl.Title)
	assert.Same(t, schema.For(schema.KindWidget), ctrl.Schema)

	ns, ok := b.Namespace(Namespace)
	require.True(t, ok)
	assert.Equal(t, LinkRelationsURL, ns.Name)
}

func TestEditAndDeleteControls(t *testing.T) {
	b := NewBuilder()
	href := ItemURL(schema.KindLayout, 4)
	b.AddEditControl(schema.KindLayout, href)
	b.AddDeleteControl(schema.KindLayout, href)

	edit, ok := b.Control("edit")
	require.True(t, ok)
	assert.Equal(t, "PUT", edit.Method)
	assert.Equal(t, "Edit this layout", edit.Title)
	assert.Same(t, schema.For(schema.KindLayout), edit.Schema)

	del, ok := b.Control("nautto:delete")
	require.True(t, ok)
	assert.Equal(t, "/api/layouts/4/", del.Href)
	assert.Equal(t, "DELETE", del.Method)
	assert.Equal(t, "Delete this layout", del.Title)
	assert.Nil(t, del.Schema)
	assert.Empty(t, del.Encoding)
}

func TestUnknownKindIsFatal(t *testing.T) {
	b := NewBuilder()
	assert.Panics(t, func() { b.AddAddControl(schema.Kind(99), "/api/things/") })
}

func TestItem(t *testing.T) {
	item := Item(schema.KindUser, 7, "Ann", ItemURL(schema.KindUser, 7))

	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"name": "Ann",
		"@controls": {
			"self": {"href": "/api/users/7/"},
			"profile": {"href": "/profiles/user/"}
		}
	}`, string(b))
}

func TestURLs(t *testing.T) {
	assert.Equal(t, "/api/sets/", CollectionURL(schema.KindSet))
	assert.Equal(t, "/api/users/1/", ItemURL(schema.KindUser, 1))
	assert.Equal(t, "/api/users/2/widgets/", UserCollectionURL(2, schema.KindWidget))
	assert.Equal(t, "/api/layouts/3/widgets/4/", WidgetOfLayoutURL(3, 4))
	assert.Equal(t, "/api/sets/5/layouts/6/", LayoutOfSetURL(5, 6))
	assert.Equal(t, "nautto:widgets-all", Relation("widgets-all"))
}
