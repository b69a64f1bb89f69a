package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/ArtysFactory/proofy/internal/anchor"
	"github.com/ArtysFactory/proofy/internal/auth"
	"github.com/ArtysFactory/proofy/internal/metrics"
	"github.com/ArtysFactory/proofy/internal/middleware"
	"github.com/ArtysFactory/proofy/internal/models"
	"github.com/ArtysFactory/proofy/internal/proof"
	"github.com/ArtysFactory/proofy/internal/rights"
	"github.com/ArtysFactory/proofy/internal/storage"
	"github.com/ArtysFactory/proofy/pkg/api"
)

// WorkService implements the Connect WorkService. Every method expects the
// caller's identity in the context.
type WorkService struct {
	store    storage.WorkStore
	anchorer anchor.Anchorer
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewWorkService creates a WorkService. A nil anchorer disables anchoring;
// metrics may be nil.
func NewWorkService(store storage.WorkStore, anchorer anchor.Anchorer, m *metrics.Metrics, logger *slog.Logger) *WorkService {
	if anchorer == nil {
		anchorer = anchor.Disabled{}
	}
	return &WorkService{
		store:    store,
		anchorer: anchorer,
		metrics:  m,
		logger:   logger,
	}
}

// SubmitWork registers a file under the caller's account.
func (s *WorkService) SubmitWork(ctx context.Context, req *connect.Request[api.SubmitWorkRequest]) (*connect.Response[api.SubmitWorkResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	msg := req.Msg

	title := strings.TrimSpace(msg.Title)
	if title == "" {
		return nil, s.reject(metrics.ReasonInvalidInput, errTitleRequired)
	}
	projectType := strings.ToLower(strings.TrimSpace(msg.ProjectType))
	if projectType == "" {
		return nil, s.reject(metrics.ReasonInvalidInput, errProjectTypeRequired)
	}

	fileHash, err := resolveFileHash(msg.FileHash, msg.FileContent)
	if err != nil {
		reason := metrics.ReasonInvalidInput
		if errors.Is(err, errHashMismatch) {
			reason = metrics.ReasonHashMismatch
		}
		return nil, s.reject(reason, err)
	}

	// Validate exactly what will be persisted: placeholders are dropped first.
	var payload *rights.Payload
	if msg.Rights != nil {
		named := fromAPIRights(msg.Rights).Named()
		payload = &named
	}
	if err := rights.ValidateSubmission(payload, msg.RightsConfirmed, rights.PolicyFor(projectType)); err != nil {
		return nil, s.reject(rejectionReason(err), err)
	}

	work := &models.Work{
		OwnerID:     userID,
		Title:       title,
		ProjectType: projectType,
		FileName:    strings.TrimSpace(msg.FileName),
		Description: strings.TrimSpace(msg.Description),
		FileHash:    fileHash,
		Rights:      payload,
	}
	if payload != nil {
		digest, err := payload.Digest()
		if err != nil {
			s.logger.Error("Failed to digest rights", "error", err)
			return nil, connect.NewError(connect.CodeInternal, err)
		}
		work.RightsDigest = digest
	}

	if err := s.store.CreateWork(ctx, work); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, s.reject(metrics.ReasonDuplicateHash, err)
		}
		s.logger.Error("Failed to create work", "user_id", userID, "error", err)
		return nil, connectError(err)
	}
	s.metrics.WorkSubmitted(projectType)
	s.logger.Info("Work registered",
		"work_id", work.ID,
		"public_id", work.PublicID,
		"project_type", projectType,
		"user_id", userID,
	)

	s.anchor(ctx, work)

	return connect.NewResponse(&api.SubmitWorkResponse{Work: toAPIWork(work)}), nil
}

// anchor asks the anchorer to timestamp a freshly stored work. The
// registration stands whatever the outcome.
func (s *WorkService) anchor(ctx context.Context, work *models.Work) {
	receipt, err := s.anchorer.Anchor(ctx, work.FileHash, work.RightsDigest)
	if err != nil {
		s.logger.Warn("Anchoring failed, work stays unanchored", "work_id", work.ID, "error", err)
		return
	}
	if err := s.store.UpdateAnchor(ctx, work.ID, models.AnchorAnchored, receipt.TxHash); err != nil {
		s.logger.Error("Failed to record anchor", "work_id", work.ID, "tx_hash", receipt.TxHash, "error", err)
		return
	}
	work.AnchorStatus = models.AnchorAnchored
	work.AnchorTxHash = receipt.TxHash
	s.logger.Info("Work anchored", "work_id", work.ID, "network", receipt.Network, "tx_hash", receipt.TxHash)
}

func (s *WorkService) reject(reason string, err error) error {
	s.metrics.SubmissionRejected(reason)
	s.logger.Debug("Submission rejected", "reason", reason, "error", err)
	return connectError(err)
}

// GetWork returns one of the caller's works.
func (s *WorkService) GetWork(ctx context.Context, req *connect.Request[api.GetWorkRequest]) (*connect.Response[api.GetWorkResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	work, err := s.store.GetWork(ctx, req.Msg.WorkId)
	if err != nil {
		return nil, connectError(err)
	}
	if work.OwnerID != userID {
		return nil, connectError(errNotOwner)
	}

	return connect.NewResponse(&api.GetWorkResponse{Work: toAPIWork(work)}), nil
}

// ListWorks returns the caller's works, newest first.
func (s *WorkService) ListWorks(ctx context.Context, req *connect.Request[api.ListWorksRequest]) (*connect.Response[api.ListWorksResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}

	works, err := s.store.ListWorksByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list works", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	resp := &api.ListWorksResponse{Works: make([]*api.Work, len(works))}
	for i, w := range works {
		resp.Works[i] = toAPIWork(w)
	}
	return connect.NewResponse(resp), nil
}

// resolveFileHash returns the stored form of the submitted hash, computing it
// from content when only content was sent.
func resolveFileHash(hash string, content []byte) (string, error) {
	var contentHash string
	if len(content) > 0 {
		contentHash = proof.HashBytes(content)
	}
	if strings.TrimSpace(hash) == "" {
		if contentHash == "" {
			return "", errFileRequired
		}
		return contentHash, nil
	}

	normalized, err := proof.NormalizeHash(hash)
	if err != nil {
		return "", err
	}
	if contentHash != "" && contentHash != normalized {
		return "", errHashMismatch
	}
	return normalized, nil
}

func rejectionReason(err error) string {
	var reconciliation *rights.ReconciliationError
	switch {
	case errors.As(err, &reconciliation):
		return metrics.ReasonNotReconciled
	case errors.Is(err, rights.ErrConfirmationRequired):
		return metrics.ReasonConfirmationRequired
	}
	return metrics.ReasonInvalidInput
}
