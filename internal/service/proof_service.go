package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/ArtysFactory/proofy/internal/models"
	"github.com/ArtysFactory/proofy/internal/proof"
	"github.com/ArtysFactory/proofy/internal/storage"
	"github.com/ArtysFactory/proofy/pkg/api"
)

// ProofService serves public lookups of registered works. No caller
// identity is needed.
type ProofService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewProofService creates a new ProofService.
func NewProofService(store storage.Store, logger *slog.Logger) *ProofService {
	return &ProofService{store: store, logger: logger}
}

// GetProof returns the certificate for a public identifier.
func (s *ProofService) GetProof(ctx context.Context, req *connect.Request[api.GetProofRequest]) (*connect.Response[api.GetProofResponse], error) {
	publicID := strings.ToUpper(strings.TrimSpace(req.Msg.PublicId))
	if !strings.HasPrefix(publicID, models.PublicIDPrefix) {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("public id must start with %s", models.PublicIDPrefix))
	}

	work, err := s.store.GetWorkByPublicID(ctx, publicID)
	if err != nil {
		return nil, connectError(err)
	}

	p, err := s.proof(ctx, work)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.GetProofResponse{Proof: p}), nil
}

// VerifyHash reports whether a file hash has been registered.
func (s *ProofService) VerifyHash(ctx context.Context, req *connect.Request[api.VerifyHashRequest]) (*connect.Response[api.VerifyHashResponse], error) {
	fileHash, err := proof.NormalizeHash(req.Msg.FileHash)
	if err != nil {
		return nil, connectError(err)
	}

	work, err := s.store.GetWorkByFileHash(ctx, fileHash)
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewResponse(&api.VerifyHashResponse{Found: false}), nil
	}
	if err != nil {
		s.logger.Error("Failed to look up hash", "file_hash", fileHash, "error", err)
		return nil, connectError(err)
	}

	p, err := s.proof(ctx, work)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.VerifyHashResponse{Found: true, Proof: p}), nil
}

func (s *ProofService) proof(ctx context.Context, work *models.Work) (*api.Proof, error) {
	var ownerName string
	owner, err := s.store.GetUserByID(ctx, work.OwnerID)
	switch {
	case err == nil:
		ownerName = owner.DisplayName
	case errors.Is(err, storage.ErrNotFound):
		s.logger.Warn("Proof owner missing", "work_id", work.ID, "owner_id", work.OwnerID)
	default:
		s.logger.Error("Failed to load proof owner", "work_id", work.ID, "error", err)
		return nil, connectError(err)
	}
	return toAPIProof(work, ownerName), nil
}
