// Package rights tracks how the rights to a creative work are split between
// the submitting user and the other parties named on it.
//
// Authorship (authors, composers, publishers) and neighboring rights
// (producers, labels, miscellaneous contributors) are independent
// allocations. Only authorship is required to reconcile to 100%, and only
// when the submission policy asks for it.
package rights

import "fmt"

const (
	// FullShare is the total an authorship allocation must reach to reconcile.
	FullShare = 100

	// MainHolderFloor is the lowest share the submitting user keeps when
	// co-holders are added.
	MainHolderFloor = 10

	// DefaultAuthorshipPercentage is the share given to a newly added author,
	// composer or publisher.
	DefaultAuthorshipPercentage = 15

	// DefaultNeighboringPercentage is the share given to a newly added
	// producer, label or other contributor.
	DefaultNeighboringPercentage = 50
)

// Holder is one named party and its share within a category.
// An empty Name marks a placeholder row that is dropped from submissions.
type Holder struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	// Role is only meaningful in the Others neighboring category.
	Role string `json:"role,omitempty"`
}

// Category is implemented by AuthorshipCategory and NeighboringCategory only.
type Category interface {
	fmt.Stringer
	allowsRole() bool
}

// AuthorshipCategory selects one of the authorship holder lists.
type AuthorshipCategory int

const (
	Authors AuthorshipCategory = iota + 1
	Composers
	Publishers
)

var authorshipNames = map[AuthorshipCategory]string{
	Authors:    "authors",
	Composers:  "composers",
	Publishers: "publishers",
}

func (c AuthorshipCategory) String() string {
	if name, ok := authorshipNames[c]; ok {
		return name
	}
	return fmt.Sprintf("AuthorshipCategory(%d)", int(c))
}

func (c AuthorshipCategory) allowsRole() bool { return false }

// NeighboringCategory selects one of the neighboring-rights holder lists.
type NeighboringCategory int

const (
	Producers NeighboringCategory = iota + 1
	Labels
	Others
)

var neighboringNames = map[NeighboringCategory]string{
	Producers: "producers",
	Labels:    "labels",
	Others:    "others",
}

func (c NeighboringCategory) String() string {
	if name, ok := neighboringNames[c]; ok {
		return name
	}
	return fmt.Sprintf("NeighboringCategory(%d)", int(c))
}

func (c NeighboringCategory) allowsRole() bool { return c == Others }

// ParseCategory resolves a wire name ("authors", "labels", ...) to its category.
func ParseCategory(name string) (Category, error) {
	for c, n := range authorshipNames {
		if n == name {
			return c, nil
		}
	}
	for c, n := range neighboringNames {
		if n == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Field names an editable attribute of a Holder.
type Field int

const (
	FieldName Field = iota + 1
	FieldPercentage
	FieldRole
)

var fieldNames = map[Field]string{
	FieldName:       "name",
	FieldPercentage: "percentage",
	FieldRole:       "role",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField resolves a wire field name.
func ParseField(name string) (Field, error) {
	for f, n := range fieldNames {
		if n == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// AuthorshipAllocation splits authorship, composition and publishing rights
// between the submitting user (main holder) and the listed co-holders.
type AuthorshipAllocation struct {
	MainHolderPercentage int      `json:"mainHolderPercentage"`
	Authors              []Holder `json:"authors"`
	Composers            []Holder `json:"composers"`
	Publishers           []Holder `json:"publishers"`
}

// Total returns the main holder share plus every co-holder share.
func (a AuthorshipAllocation) Total() int {
	total := a.MainHolderPercentage
	for _, list := range [][]Holder{a.Authors, a.Composers, a.Publishers} {
		for _, h := range list {
			total += h.Percentage
		}
	}
	return total
}

func (a *AuthorshipAllocation) list(c AuthorshipCategory) *[]Holder {
	switch c {
	case Authors:
		return &a.Authors
	case Composers:
		return &a.Composers
	case Publishers:
		return &a.Publishers
	}
	return nil
}

// NeighboringRightsAllocation lists royalty splits for producers, labels and
// other contributors. Its percentages are informational and never reconciled.
type NeighboringRightsAllocation struct {
	Producers []Holder `json:"producers"`
	Labels    []Holder `json:"labels"`
	Others    []Holder `json:"others"`
}

func (n *NeighboringRightsAllocation) list(c NeighboringCategory) *[]Holder {
	switch c {
	case Producers:
		return &n.Producers
	case Labels:
		return &n.Labels
	case Others:
		return &n.Others
	}
	return nil
}
