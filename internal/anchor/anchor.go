// Package anchor defines the seam through which registered works are
// timestamped on an external ledger.
package anchor

import (
	"context"
	"errors"
	"time"
)

// ErrUnavailable is returned when no anchoring backend is configured.
var ErrUnavailable = errors.New("anchoring unavailable")

// Receipt is the outcome of a successful anchoring call.
type Receipt struct {
	TxHash     string
	Network    string
	AnchoredAt time.Time
}

// Anchorer records a content hash and the digest of its rights split.
// Failures never undo the registration; the work stays unanchored.
type Anchorer interface {
	Anchor(ctx context.Context, fileHash, rightsDigest string) (*Receipt, error)
}

// Disabled is the Anchorer used when no network is configured.
type Disabled struct{}

func (Disabled) Anchor(ctx context.Context, fileHash, rightsDigest string) (*Receipt, error) {
	return nil, ErrUnavailable
}

// Func adapts a function to the Anchorer interface.
type Func func(ctx context.Context, fileHash, rightsDigest string) (*Receipt, error)

func (f Func) Anchor(ctx context.Context, fileHash, rightsDigest string) (*Receipt, error) {
	return f(ctx, fileHash, rightsDigest)
}
