package plan

import (
	"fmt"

	"github.com/google/uuid"
)

type ErrItemNotFound struct {
	error
}

func NewErrItemNotFound(id uuid.UUID) *ErrItemNotFound {
	return &ErrItemNotFound{fmt.Errorf("item %s not found", id)}
}

type ErrDuplicateItem struct {
	error
}

func NewErrDuplicateItem(id uuid.UUID) *ErrDuplicateItem {
	return &ErrDuplicateItem{fmt.Errorf("item %s already exists", id)}
}

type ErrIdentifierChanged struct {
	error
}

func NewErrIdentifierChanged(from, to uuid.UUID) *ErrIdentifierChanged {
	return &ErrIdentifierChanged{fmt.Errorf("item identifier cannot change from %s to %s", from, to)}
}

type ErrMalformedPlan struct {
	error
}

func NewErrMalformedPlan(format string, args ...any) *ErrMalformedPlan {
	return &ErrMalformedPlan{fmt.Errorf(format, args...)}
}
