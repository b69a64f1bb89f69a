package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ArtysFactory/proofy/internal/models"
	"github.com/ArtysFactory/proofy/internal/rights"
	"github.com/ArtysFactory/proofy/internal/storage"
)

const workColumns = `id, public_id, owner_id, title, project_type, file_name, file_hash,
	description, rights, rights_digest, anchor_status, anchor_tx_hash, created_at`

// CreateWork persists a new work.
func (s *Store) CreateWork(ctx context.Context, work *models.Work) error {
	if work.ID == "" {
		work.ID = uuid.New().String()
	}
	if work.PublicID == "" {
		work.PublicID = models.NewPublicID()
	}
	if work.CreatedAt == 0 {
		work.CreatedAt = time.Now().Unix()
	}
	if work.AnchorStatus == "" {
		work.AnchorStatus = models.AnchorUnanchored
	}

	var rightsJSON []byte
	if work.Rights != nil {
		b, err := work.Rights.Encode()
		if err != nil {
			return fmt.Errorf("failed to encode rights: %w", err)
		}
		rightsJSON = b
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO works (`+workColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		work.ID, work.PublicID, work.OwnerID, work.Title, work.ProjectType, work.FileName, work.FileHash,
		work.Description, rightsJSON, work.RightsDigest, string(work.AnchorStatus), work.AnchorTxHash, work.CreatedAt,
	)
	if uniqueViolationOn(err, "works_file_hash_key") {
		return fmt.Errorf("work with hash %s: %w", work.FileHash, storage.ErrDuplicate)
	}
	if isUniqueViolation(err) {
		return fmt.Errorf("work %s collides with an existing id: %w", work.PublicID, err)
	}
	if err != nil {
		return fmt.Errorf("failed to insert work: %w", err)
	}
	return nil
}

// GetWork retrieves a work by internal ID.
func (s *Store) GetWork(ctx context.Context, id string) (*models.Work, error) {
	return s.getWorkBy(ctx, "id", id)
}

// GetWorkByPublicID retrieves a work by public proof identifier.
func (s *Store) GetWorkByPublicID(ctx context.Context, publicID string) (*models.Work, error) {
	return s.getWorkBy(ctx, "public_id", publicID)
}

// GetWorkByFileHash retrieves the work registered for a file hash.
func (s *Store) GetWorkByFileHash(ctx context.Context, fileHash string) (*models.Work, error) {
	return s.getWorkBy(ctx, "file_hash", fileHash)
}

func (s *Store) getWorkBy(ctx context.Context, column, value string) (*models.Work, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+workColumns+` FROM works WHERE `+column+` = $1`,
		value,
	)
	work, err := scanWork(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("work %s=%s: %w", column, value, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work: %w", err)
	}
	return work, nil
}

// ListWorksByOwner retrieves a user's works, newest first.
func (s *Store) ListWorksByOwner(ctx context.Context, ownerID string) ([]*models.Work, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+workColumns+` FROM works WHERE owner_id = $1 ORDER BY created_at DESC, id`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list works: %w", err)
	}
	defer rows.Close()

	var works []*models.Work
	for rows.Next() {
		work, err := scanWork(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work: %w", err)
		}
		works = append(works, work)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate works: %w", err)
	}
	return works, nil
}

// UpdateAnchor records the anchoring outcome for a work.
func (s *Store) UpdateAnchor(ctx context.Context, id string, status models.AnchorStatus, txHash string) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE works SET anchor_status = $1, anchor_tx_hash = $2 WHERE id = $3",
		string(status), txHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update anchor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("work %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

func scanWork(row pgx.Row) (*models.Work, error) {
	work := &models.Work{}
	var rightsJSON []byte
	var anchorStatus string

	err := row.Scan(
		&work.ID, &work.PublicID, &work.OwnerID, &work.Title, &work.ProjectType, &work.FileName, &work.FileHash,
		&work.Description, &rightsJSON, &work.RightsDigest, &anchorStatus, &work.AnchorTxHash, &work.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	work.AnchorStatus = models.AnchorStatus(anchorStatus)

	if rightsJSON != nil {
		p, err := rights.DecodePayload(rightsJSON)
		if err != nil {
			return nil, fmt.Errorf("failed to decode rights for work %s: %w", work.ID, err)
		}
		work.Rights = &p
	}
	return work, nil
}
