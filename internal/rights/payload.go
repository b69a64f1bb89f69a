package rights

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Payload is the serialised allocation handed to persistence. Once a work
// is accepted its payload is never edited again.
type Payload struct {
	Authorship        AuthorshipAllocation        `json:"authorship"`
	NeighboringRights NeighboringRightsAllocation `json:"neighboringRights"`
}

// Named returns a copy of p without placeholder holders. It is what the
// ledger's ToSubmissionPayload would return for the same state.
func (p Payload) Named() Payload {
	return Restore(p).ToSubmissionPayload()
}

// Encode returns the JSON form of p. Nil lists are encoded as empty arrays so
// that equal allocations always produce identical bytes.
func (p Payload) Encode() ([]byte, error) {
	return json.Marshal(Payload{
		Authorship:        p.Authorship.clone(),
		NeighboringRights: p.NeighboringRights.clone(),
	})
}

// Digest returns "sha256:<hex>" over Encode.
func (p Payload) Digest() (string, error) {
	b, err := p.Encode()
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return "sha256:" + hex.EncodeToString(sum[:]), nil
}

// DecodePayload parses the JSON produced by Encode.
func DecodePayload(b []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(b, &p); err != nil {
		return Payload{}, err
	}
	return Restore(p).State(), nil
}
