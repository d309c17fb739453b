package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"nautto-be/internal/entity"
)

type UserPayload struct {
	Id          *string `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type WidgetPayload struct {
	Id          *string `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Type        string  `json:"type"`
	Content     string  `json:"content"`
}

type LayoutPayload struct {
	Id          *string     `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Items       []MemberRef `json:"items"`
}

type SetPayload struct {
	Id          *string     `json:"id"`
	Name        string      `json:"name"`
	Description *string     `json:"description"`
	Items       []MemberRef `json:"items"`
}

// MemberRef is one element of an "items" array. Clients send either the
// member id, as a string or a number, or an object with an "id" property.
type MemberRef string

func (m *MemberRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Id json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		if obj.Id == nil {
			return fmt.Errorf("item without id")
		}
		data = bytes.TrimSpace(obj.Id)
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = MemberRef(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("item id must be a string or a number")
	}
	*m = MemberRef(n.String())
	return nil
}

type LayoutDetail struct {
	Layout  *entity.Layout
	Widgets []*entity.Widget
}

type SetDetail struct {
	Set     *entity.Set
	Layouts []*entity.Layout
}
