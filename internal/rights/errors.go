package rights

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownCategory      = errors.New("unknown rights category")
	ErrUnknownField         = errors.New("unknown holder field")
	ErrUnknownOp            = errors.New("unknown edit operation")
	ErrConfirmationRequired = errors.New("rights split must be confirmed before submission")
)

// OutOfRangeError reports an index that does not address a holder.
type OutOfRangeError struct {
	Category Category
	Index    int
	Len      int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (have %d holders)", e.Category, e.Index, e.Len)
}

// InvalidFieldError reports a field that the category does not carry,
// such as a role on an author.
type InvalidFieldError struct {
	Category Category
	Field    Field
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s: field %q is not editable in this category", e.Category, e.Field)
}

// InvalidValueError reports a value of the wrong type or outside [0, 100].
type InvalidValueError struct {
	Field Field
	Value any
}

func (e *InvalidValueError) Error() string {
	if e.Field == FieldPercentage {
		return fmt.Sprintf("percentage must be between 0 and %d, got %v", FullShare, e.Value)
	}
	return fmt.Sprintf("invalid value %v (%T) for field %q", e.Value, e.Value, e.Field)
}

// ReconciliationError is returned at the submission boundary when an
// authorship allocation that must total 100% does not.
type ReconciliationError struct {
	Total int
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("total must equal %d%%, currently %d%%", FullShare, e.Total)
}
