package rights

// ProjectTypeMusic is the only project type whose authorship split must
// reconcile before submission.
const ProjectTypeMusic = "music"

// Policy decides what a submission of a given project type must satisfy.
type Policy struct {
	RequiresReconciliation bool
	RequiresConfirmation   bool
}

// PolicyFor returns the submission policy for projectType.
func PolicyFor(projectType string) Policy {
	if projectType == ProjectTypeMusic {
		return Policy{RequiresReconciliation: true, RequiresConfirmation: true}
	}
	return Policy{}
}

// ValidateSubmission checks a received payload at the submission boundary.
// Callers must pass the payload that will be persisted, that is with
// placeholders already removed, since the totals are recomputed from it.
// A nil payload is accepted only when the policy does not require
// reconciliation.
func ValidateSubmission(p *Payload, confirmed bool, policy Policy) error {
	if p != nil {
		if err := p.Validate(); err != nil {
			return err
		}
	}

	if policy.RequiresReconciliation {
		if p == nil {
			return &ReconciliationError{Total: 0}
		}
		if total := p.Authorship.Total(); total != FullShare {
			return &ReconciliationError{Total: total}
		}
	}

	if policy.RequiresConfirmation && !confirmed {
		return ErrConfirmationRequired
	}
	return nil
}

// Validate checks that every share, the main holder's included, lies in
// [0, 100] and that only categories carrying a role have one set.
func (p Payload) Validate() error {
	if !validPercentage(p.Authorship.MainHolderPercentage) {
		return &InvalidValueError{Field: FieldPercentage, Value: p.Authorship.MainHolderPercentage}
	}
	lists := []struct {
		cat     Category
		holders []Holder
	}{
		{Authors, p.Authorship.Authors},
		{Composers, p.Authorship.Composers},
		{Publishers, p.Authorship.Publishers},
		{Producers, p.NeighboringRights.Producers},
		{Labels, p.NeighboringRights.Labels},
		{Others, p.NeighboringRights.Others},
	}
	for _, l := range lists {
		for _, h := range l.holders {
			if !validPercentage(h.Percentage) {
				return &InvalidValueError{Field: FieldPercentage, Value: h.Percentage}
			}
			if h.Role != "" && !l.cat.allowsRole() {
				return &InvalidFieldError{Category: l.cat, Field: FieldRole}
			}
		}
	}
	return nil
}
