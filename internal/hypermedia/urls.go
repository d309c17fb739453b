package hypermedia

import (
	"fmt"

	"nautto-be/internal/schema"
)

const apiPrefix = "/api"

// CollectionURL is the unfiltered collection of kind, e.g. /api/widgets/.
func CollectionURL(kind schema.Kind) string {
	return fmt.Sprintf("%s/%s/", apiPrefix, kind.Plural())
}

// ItemURL is the canonical URL of a single resource.
func ItemURL(kind schema.Kind, id uint) string {
	return fmt.Sprintf("%s/%s/%d/", apiPrefix, kind.Plural(), id)
}

// UserCollectionURL is the collection of kind owned by a user,
// e.g. /api/users/1/layouts/.
func UserCollectionURL(userID uint, kind schema.Kind) string {
	return fmt.Sprintf("%s/users/%d/%s/", apiPrefix, userID, kind.Plural())
}

// WidgetOfLayoutURL views a widget through the layout containing it.
func WidgetOfLayoutURL(layoutID, widgetID uint) string {
	return fmt.Sprintf("%s/layouts/%d/widgets/%d/", apiPrefix, layoutID, widgetID)
}

// LayoutOfSetURL views a layout through the set containing it.
func LayoutOfSetURL(setID, layoutID uint) string {
	return fmt.Sprintf("%s/sets/%d/layouts/%d/", apiPrefix, setID, layoutID)
}
