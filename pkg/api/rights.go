package api

// Holder is one party in a rights split.
type Holder struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
	Role       string `json:"role,omitempty"`
}

type AuthorshipAllocation struct {
	MainHolderPercentage int       `json:"mainHolderPercentage"`
	Authors              []*Holder `json:"authors"`
	Composers            []*Holder `json:"composers"`
	Publishers           []*Holder `json:"publishers"`
}

type NeighboringRights struct {
	Producers []*Holder `json:"producers"`
	Labels    []*Holder `json:"labels"`
	Others    []*Holder `json:"others"`
}

// Rights is the complete split of a work, as edited and as submitted.
type Rights struct {
	Authorship        *AuthorshipAllocation `json:"authorship"`
	NeighboringRights *NeighboringRights    `json:"neighboringRights"`
}

// Edit is one change to a rights split.
//
// Op is "add", "remove" or "update". Category is one of authors, composers,
// publishers, producers, labels or others. Index addresses the holder for
// remove and update; Field (name, percentage or role) selects what update
// changes. Percentage on an add is the initial share; leaving it out picks
// the category's default, while an explicit 0 adds a holder at 0%.
type Edit struct {
	Op         string `json:"op"`
	Category   string `json:"category"`
	Index      int    `json:"index,omitempty"`
	Field      string `json:"field,omitempty"`
	Name       string `json:"name,omitempty"`
	Percentage *int   `json:"percentage,omitempty"`
	Role       string `json:"role,omitempty"`
}

type EditAllocationRequest struct {
	// Rights is the state to edit; empty starts a new split.
	Rights *Rights `json:"rights,omitempty"`
	Edits  []*Edit `json:"edits"`
}

type EditAllocationResponse struct {
	// State keeps unnamed placeholder holders so the editor can keep showing them.
	State *Rights `json:"state"`
	// Payload is what SubmitWork will persist. TotalPercentage and Reconciled
	// are computed over it.
	Payload         *Rights `json:"payload"`
	TotalPercentage int     `json:"totalPercentage"`
	Reconciled      bool    `json:"reconciled"`
}
