package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemberRefShapes(t *testing.T) {
	var payload LayoutPayload
	err := json.Unmarshal([]byte(`{"name":"L","items":["1", 2, {"id":"3"}, {"id":4}]}`), &payload)
	require.NoError(t, err)

	assert.Equal(t, []MemberRef{"1", "2", "3", "4"}, payload.Items)
}

func TestMemberRefRejectsOtherShapes(t *testing.T) {
	for _, doc := range []string{
		`{"name":"L","items":[true]}`,
		`{"name":"L","items":[{"name":"x"}]}`,
		`{"name":"L","items":[[1]]}`,
	} {
		var payload SetPayload
		assert.Error(t, json.Unmarshal([]byte(doc), &payload), doc)
	}
}

func TestOptionalFieldsStayNil(t *testing.T) {
	var payload WidgetPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"W","type":"HTML","content":"c"}`), &payload))

	assert.Nil(t, payload.Id)
	assert.Nil(t, payload.Description)
	assert.Equal(t, "HTML", payload.Type)
}
