package schema

import "fmt"

// Kind identifies one of the API's resource types.
type Kind int

const (
	KindUser Kind = iota + 1
	KindWidget
	KindLayout
	KindSet
)

// Kinds lists every resource kind.
var Kinds = []Kind{KindUser, KindWidget, KindLayout, KindSet}

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user"
	case KindWidget:
		return "widget"
	case KindLayout:
		return "layout"
	case KindSet:
		return "set"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Plural is the collection segment used in URLs.
func (k Kind) Plural() string {
	return k.String() + "s"
}

// Title is the capitalised name used in documentation.
func (k Kind) Title() string {
	s := k.String()
	return string(s[0]-'a'+'A') + s[1:]
}

// ParseKind accepts the lower case name of a kind.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown resource kind %q", name)
}
