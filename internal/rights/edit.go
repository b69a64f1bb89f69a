package rights

import "fmt"

// Op is the kind of change an Edit makes.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpUpdate Op = "update"
)

// Edit is a single user action against a ledger, as received from a client.
// Percentage doubles as the initial share for OpAdd; nil there means the
// category default.
type Edit struct {
	Op         Op
	Category   string
	Index      int
	Field      string
	Name       string
	Percentage *int
	Role       string
}

// Apply performs e against the ledger.
func (l *Ledger) Apply(e Edit) error {
	cat, err := ParseCategory(e.Category)
	if err != nil {
		return err
	}

	switch e.Op {
	case OpAdd:
		switch c := cat.(type) {
		case AuthorshipCategory:
			_, err = l.AddAuthorshipHolder(c, orDefault(e.Percentage, DefaultAuthorshipPercentage))
		case NeighboringCategory:
			_, err = l.AddNeighboringHolder(c, orDefault(e.Percentage, DefaultNeighboringPercentage))
		}
		return err

	case OpRemove:
		switch c := cat.(type) {
		case AuthorshipCategory:
			_, err = l.RemoveAuthorshipHolder(c, e.Index)
		case NeighboringCategory:
			_, err = l.RemoveNeighboringHolder(c, e.Index)
		}
		return err

	case OpUpdate:
		field, err := ParseField(e.Field)
		if err != nil {
			return err
		}
		value := e.value(field)
		switch c := cat.(type) {
		case AuthorshipCategory:
			return l.UpdateHolder(c, e.Index, field, value)
		case NeighboringCategory:
			return l.UpdateNeighboringHolder(c, e.Index, field, value)
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownOp, e.Op)
}

func (e Edit) value(f Field) any {
	switch f {
	case FieldPercentage:
		if e.Percentage == nil {
			return nil
		}
		return *e.Percentage
	case FieldRole:
		return e.Role
	default:
		return e.Name
	}
}

func orDefault(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}
