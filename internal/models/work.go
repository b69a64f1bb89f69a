package models

import (
	"strings"

	"github.com/google/uuid"

	"github.com/ArtysFactory/proofy/internal/rights"
)

// AnchorStatus records whether a work's hash has been anchored on-chain.
type AnchorStatus string

const (
	AnchorUnanchored AnchorStatus = "unanchored"
	AnchorAnchored   AnchorStatus = "anchored"
)

// PublicIDPrefix starts every public proof identifier.
const PublicIDPrefix = "PRF-"

// Work is a registered proof of authorship for one file.
type Work struct {
	// ID is the internal identifier (UUID format).
	ID string

	// PublicID is the shareable identifier used to look up the proof,
	// e.g. "PRF-3F9A61C0B2D4".
	PublicID string

	// OwnerID is the ID of the user who submitted the work.
	OwnerID string

	Title       string
	ProjectType string
	FileName    string
	Description string

	// FileHash is the lower-case hex SHA-256 of the file content (unique).
	FileHash string

	// Rights is the submitted rights split, nil when none was given.
	Rights *rights.Payload

	// RightsDigest is the sha256 digest of the encoded Rights, empty when
	// Rights is nil.
	RightsDigest string

	AnchorStatus AnchorStatus

	// AnchorTxHash is the transaction that anchored FileHash, if any.
	AnchorTxHash string

	// CreatedAt is the Unix timestamp when the work was registered.
	CreatedAt int64
}

// NewPublicID returns a fresh public proof identifier.
func NewPublicID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return PublicIDPrefix + strings.ToUpper(hex[:12])
}
