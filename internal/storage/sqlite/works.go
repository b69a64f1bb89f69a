package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ArtysFactory/proofy/internal/models"
	"github.com/ArtysFactory/proofy/internal/rights"
	"github.com/ArtysFactory/proofy/internal/storage"
)

const workColumns = `id, public_id, owner_id, title, project_type, file_name, file_hash,
	description, rights, rights_digest, anchor_status, anchor_tx_hash, created_at`

// CreateWork persists a new work to the database.
func (s *SQLiteStore) CreateWork(ctx context.Context, work *models.Work) error {
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

	// Rights are stored as opaque JSON; NULL when absent.
	var rightsJSON any
	if work.Rights != nil {
		b, err := work.Rights.Encode()
		if err != nil {
			return fmt.Errorf("failed to encode rights: %w", err)
		}
		rightsJSON = string(b)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO works (`+workColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		work.ID, work.PublicID, work.OwnerID, work.Title, work.ProjectType, work.FileName, work.FileHash,
		work.Description, rightsJSON, work.RightsDigest, string(work.AnchorStatus), work.AnchorTxHash, work.CreatedAt,
	)
	if uniqueViolationOn(err, "works.file_hash") {
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

// GetWork retrieves a work by its internal ID.
func (s *SQLiteStore) GetWork(ctx context.Context, id string) (*models.Work, error) {
	return s.getWorkBy(ctx, "id", id)
}

// GetWorkByPublicID retrieves a work by its public proof identifier.
func (s *SQLiteStore) GetWorkByPublicID(ctx context.Context, publicID string) (*models.Work, error) {
	return s.getWorkBy(ctx, "public_id", publicID)
}

// GetWorkByFileHash retrieves the work registered for a file hash.
func (s *SQLiteStore) GetWorkByFileHash(ctx context.Context, fileHash string) (*models.Work, error) {
	return s.getWorkBy(ctx, "file_hash", fileHash)
}

// getWorkBy looks up a single work; column is always a constant from this file.
func (s *SQLiteStore) getWorkBy(ctx context.Context, column, value string) (*models.Work, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+workColumns+` FROM works WHERE `+column+` = ?`,
		value,
	)
	work, err := scanWork(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("work %s=%s: %w", column, value, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get work: %w", err)
	}
	return work, nil
}

// ListWorksByOwner retrieves all works submitted by a user, newest first.
func (s *SQLiteStore) ListWorksByOwner(ctx context.Context, ownerID string) ([]*models.Work, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+workColumns+` FROM works WHERE owner_id = ? ORDER BY created_at DESC, id`,
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
func (s *SQLiteStore) UpdateAnchor(ctx context.Context, id string, status models.AnchorStatus, txHash string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE works SET anchor_status = ?, anchor_tx_hash = ? WHERE id = ?",
		string(status), txHash, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update anchor: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("work %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWork(row rowScanner) (*models.Work, error) {
	work := &models.Work{}
	var rightsJSON sql.NullString
	var anchorStatus string

	err := row.Scan(
		&work.ID, &work.PublicID, &work.OwnerID, &work.Title, &work.ProjectType, &work.FileName, &work.FileHash,
		&work.Description, &rightsJSON, &work.RightsDigest, &anchorStatus, &work.AnchorTxHash, &work.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	work.AnchorStatus = models.AnchorStatus(anchorStatus)

	if rightsJSON.Valid {
		p, err := rights.DecodePayload([]byte(rightsJSON.String))
		if err != nil {
			return nil, fmt.Errorf("failed to decode rights for work %s: %w", work.ID, err)
		}
		work.Rights = &p
	}

	return work, nil
}
