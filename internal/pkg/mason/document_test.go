package mason

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentMarshalKeepsFieldOrder(t *testing.T) {
	doc := New().
		Set("id", 1).
		Set("name", "Ann").
		Set("description", nil)
	doc.Set("id", 2)

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"id":2,"name":"Ann","description":null}`, string(b))
}

func TestDocumentExtensions(t *testing.T) {
	doc := New().Set("name", "w")
	doc.AddNamespace("nautto", "/first/")
	doc.AddNamespace("nautto", "/nautto/link-relations/")
	doc.AddControl("self", "/api/widgets/1/")
	doc.AddControl("edit", "/old/")
	doc.AddControl("edit", "/api/widgets/1/",
		WithMethod("PUT"),
		WithEncoding("json"),
		WithTitle("Edit this widget"),
		WithSchema(map[string]any{"type": "object"}),
	)

	b, err := json.Marshal(doc)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))

	ns := out["@namespaces"].(map[string]any)
	assert.Equal(t, map[string]any{"name": "/nautto/link-relations/"}, ns["nautto"])

	controls := out["@controls"].(map[string]any)
	assert.Len(t, controls, 2)
	assert.Equal(t, map[string]any{"href": "/api/widgets/1/"}, controls["self"])
	edit := controls["edit"].(map[string]any)
	assert.Equal(t, "/api/widgets/1/", edit["href"])
	assert.Equal(t, "PUT", edit["method"])
	assert.Equal(t, "json", edit["encoding"])
	assert.Equal(t, "Edit this widget", edit["title"])
	assert.Equal(t, map[string]any{"type": "object"}, edit["schema"])

	assert.NotContains(t, out, "@error")
	assert.Equal(t, []string{"self", "edit"}, doc.ControlNames())
}

func TestDocumentError(t *testing.T) {
	doc := New().Set("resource_url", "/api/users/9/")
	doc.AddError("Not found", "No user was found with the id 9")
	doc.AddControl("profile", "/profiles/error/")

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"resource_url": "/api/users/9/",
		"@error": {"@message": "Not found", "@messages": ["No user was found with the id 9"]},
		"@controls": {"profile": {"href": "/profiles/error/"}}
	}`, string(b))
	assert.Equal(t, "Not found", doc.ErrorBlock().Message)
}

func TestEmptyDocument(t *testing.T) {
	b, err := json.Marshal(New())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(b))
}

func TestNestedDocuments(t *testing.T) {
	item := New().Set("id", 1).AddControl("self", "/api/users/1/")
	doc := New().Set("items", []*Document{item})

	b, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, `{"items":[{"id":1,"@controls":{"self":{"href":"/api/users/1/"}}}]}`, string(b))
}
