package contract

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRows is returned by Update and Delete when the id matched nothing.
	ErrNoRows = errors.New("record not found")
	// ErrConflict wraps unique and foreign key violations raised at commit.
	ErrConflict = errors.New("constraint violation")
)

// DeletePolicy decides what happens to the widgets, layouts and sets of a
// deleted user.
type DeletePolicy string

const (
	// DeletePolicyCascade deletes the owned rows together with the user.
	DeletePolicyCascade DeletePolicy = "cascade"
	// DeletePolicyNullify keeps the owned rows and clears their owner.
	DeletePolicyNullify DeletePolicy = "nullify"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(s) {
	case DeletePolicyCascade, DeletePolicyNullify:
		return DeletePolicy(s), nil
	case "":
		return DeletePolicyCascade, nil
	default:
		return "", fmt.Errorf("unknown delete policy %q", s)
	}
}
