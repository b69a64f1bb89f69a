package rights

import (
	"fmt"
	"strings"
)

// Ledger holds the in-progress rights split for one work while it is being
// described. It is owned by a single editing session and is not safe for
// concurrent use.
type Ledger struct {
	authorship  AuthorshipAllocation
	neighboring NeighboringRightsAllocation
}

// NewLedger returns an empty ledger where the main holder keeps 100%.
func NewLedger() *Ledger {
	return &Ledger{
		authorship: AuthorshipAllocation{
			MainHolderPercentage: FullShare,
			Authors:              []Holder{},
			Composers:            []Holder{},
			Publishers:           []Holder{},
		},
		neighboring: NeighboringRightsAllocation{
			Producers: []Holder{},
			Labels:    []Holder{},
			Others:    []Holder{},
		},
	}
}

// Restore rebuilds a ledger from a serialised state. Placeholders present in
// p are kept so that an editing session can be resumed. p is not checked;
// callers holding untrusted input should call p.Validate first.
func Restore(p Payload) *Ledger {
	return &Ledger{
		authorship:  p.Authorship.clone(),
		neighboring: p.NeighboringRights.clone(),
	}
}

// Authorship returns a copy of the current authorship allocation.
func (l *Ledger) Authorship() AuthorshipAllocation {
	return l.authorship.clone()
}

// NeighboringRights returns a copy of the current neighboring-rights allocation.
func (l *Ledger) NeighboringRights() NeighboringRightsAllocation {
	return l.neighboring.clone()
}

// State returns the full allocation including placeholder rows.
func (l *Ledger) State() Payload {
	return Payload{
		Authorship:        l.authorship.clone(),
		NeighboringRights: l.neighboring.clone(),
	}
}

// AddAuthorshipHolder appends an unnamed holder to cat and takes its share
// from the main holder, who never drops below MainHolderFloor. When the floor
// is hit the main holder gives up less than the new holder receives, so the
// total can exceed 100 until the user corrects it.
func (l *Ledger) AddAuthorshipHolder(cat AuthorshipCategory, initialPercentage int) (AuthorshipAllocation, error) {
	list := l.authorship.list(cat)
	if list == nil {
		return AuthorshipAllocation{}, fmt.Errorf("%w: %v", ErrUnknownCategory, cat)
	}
	if !validPercentage(initialPercentage) {
		return AuthorshipAllocation{}, &InvalidValueError{Field: FieldPercentage, Value: initialPercentage}
	}

	*list = append(*list, Holder{Percentage: initialPercentage})
	l.authorship.MainHolderPercentage = max(MainHolderFloor, l.authorship.MainHolderPercentage-initialPercentage)

	return l.authorship.clone(), nil
}

// RemoveAuthorshipHolder drops the holder at index and hands its share back
// to the main holder, capped at FullShare.
func (l *Ledger) RemoveAuthorshipHolder(cat AuthorshipCategory, index int) (AuthorshipAllocation, error) {
	list := l.authorship.list(cat)
	if list == nil {
		return AuthorshipAllocation{}, fmt.Errorf("%w: %v", ErrUnknownCategory, cat)
	}
	if index < 0 || index >= len(*list) {
		return AuthorshipAllocation{}, &OutOfRangeError{Category: cat, Index: index, Len: len(*list)}
	}

	removed := (*list)[index]
	*list = append((*list)[:index], (*list)[index+1:]...)
	l.authorship.MainHolderPercentage = min(FullShare, l.authorship.MainHolderPercentage+removed.Percentage)

	return l.authorship.clone(), nil
}

// UpdateHolder edits one field of an authorship holder. Percentage edits are
// not reconciled against the main holder.
func (l *Ledger) UpdateHolder(cat AuthorshipCategory, index int, field Field, value any) error {
	list := l.authorship.list(cat)
	if list == nil {
		return fmt.Errorf("%w: %v", ErrUnknownCategory, cat)
	}
	return updateHolder(cat, *list, index, field, value)
}

// AddNeighboringHolder appends an unnamed holder to cat. The main holder is
// not affected.
func (l *Ledger) AddNeighboringHolder(cat NeighboringCategory, defaultPercentage int) (NeighboringRightsAllocation, error) {
	list := l.neighboring.list(cat)
	if list == nil {
		return NeighboringRightsAllocation{}, fmt.Errorf("%w: %v", ErrUnknownCategory, cat)
	}
	if !validPercentage(defaultPercentage) {
		return NeighboringRightsAllocation{}, &InvalidValueError{Field: FieldPercentage, Value: defaultPercentage}
	}

	*list = append(*list, Holder{Percentage: defaultPercentage})
	return l.neighboring.clone(), nil
}

// RemoveNeighboringHolder drops the holder at index.
func (l *Ledger) RemoveNeighboringHolder(cat NeighboringCategory, index int) (NeighboringRightsAllocation, error) {
	list := l.neighboring.list(cat)
	if list == nil {
		return NeighboringRightsAllocation{}, fmt.Errorf("%w: %v", ErrUnknownCategory, cat)
	}
	if index < 0 || index >= len(*list) {
		return NeighboringRightsAllocation{}, &OutOfRangeError{Category: cat, Index: index, Len: len(*list)}
	}

	*list = append((*list)[:index], (*list)[index+1:]...)
	return l.neighboring.clone(), nil
}

// UpdateNeighboringHolder edits one field of a neighboring-rights holder.
// Role is only accepted on Others.
func (l *Ledger) UpdateNeighboringHolder(cat NeighboringCategory, index int, field Field, value any) error {
	list := l.neighboring.list(cat)
	if list == nil {
		return fmt.Errorf("%w: %v", ErrUnknownCategory, cat)
	}
	return updateHolder(cat, *list, index, field, value)
}

// TotalAuthorshipPercentage returns the main holder share plus every
// author, composer and publisher share.
func (l *Ledger) TotalAuthorshipPercentage() int {
	return l.authorship.Total()
}

// IsReconciled reports whether the authorship allocation totals exactly 100%.
func (l *Ledger) IsReconciled() bool {
	return l.TotalAuthorshipPercentage() == FullShare
}

// ToSubmissionPayload returns the allocation with placeholder holders removed
// from every category. It does not modify the ledger.
func (l *Ledger) ToSubmissionPayload() Payload {
	return Payload{
		Authorship: AuthorshipAllocation{
			MainHolderPercentage: l.authorship.MainHolderPercentage,
			Authors:              named(l.authorship.Authors),
			Composers:            named(l.authorship.Composers),
			Publishers:           named(l.authorship.Publishers),
		},
		NeighboringRights: NeighboringRightsAllocation{
			Producers: named(l.neighboring.Producers),
			Labels:    named(l.neighboring.Labels),
			Others:    named(l.neighboring.Others),
		},
	}
}

func updateHolder(cat Category, list []Holder, index int, field Field, value any) error {
	switch field {
	case FieldName, FieldPercentage:
	case FieldRole:
		if !cat.allowsRole() {
			return &InvalidFieldError{Category: cat, Field: field}
		}
	default:
		return &InvalidFieldError{Category: cat, Field: field}
	}
	if index < 0 || index >= len(list) {
		return &OutOfRangeError{Category: cat, Index: index, Len: len(list)}
	}

	h := &list[index]
	switch field {
	case FieldName, FieldRole:
		s, ok := value.(string)
		if !ok {
			return &InvalidValueError{Field: field, Value: value}
		}
		if field == FieldName {
			h.Name = s
		} else {
			h.Role = s
		}
	case FieldPercentage:
		p, ok := value.(int)
		if !ok || !validPercentage(p) {
			return &InvalidValueError{Field: field, Value: value}
		}
		h.Percentage = p
	}
	return nil
}

func validPercentage(p int) bool {
	return p >= 0 && p <= FullShare
}

// isPlaceholder reports whether h has no usable name.
func isPlaceholder(h Holder) bool {
	return strings.TrimSpace(h.Name) == ""
}

func named(list []Holder) []Holder {
	out := make([]Holder, 0, len(list))
	for _, h := range list {
		if !isPlaceholder(h) {
			out = append(out, h)
		}
	}
	return out
}

func cloneHolders(list []Holder) []Holder {
	out := make([]Holder, len(list))
	copy(out, list)
	return out
}

func (a AuthorshipAllocation) clone() AuthorshipAllocation {
	return AuthorshipAllocation{
		MainHolderPercentage: a.MainHolderPercentage,
		Authors:              cloneHolders(a.Authors),
		Composers:            cloneHolders(a.Composers),
		Publishers:           cloneHolders(a.Publishers),
	}
}

func (n NeighboringRightsAllocation) clone() NeighboringRightsAllocation {
	return NeighboringRightsAllocation{
		Producers: cloneHolders(n.Producers),
		Labels:    cloneHolders(n.Labels),
		Others:    cloneHolders(n.Others),
	}
}
