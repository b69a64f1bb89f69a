package service

import (
	"context"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/ArtysFactory/proofy/internal/rights"
	"github.com/ArtysFactory/proofy/pkg/api"
)

// RightsService replays rights-split edits for the editor. Nothing is stored.
type RightsService struct {
	logger *slog.Logger
}

// NewRightsService creates a new RightsService.
func NewRightsService(logger *slog.Logger) *RightsService {
	return &RightsService{logger: logger}
}

// EditAllocation applies the request's edits in order, starting from the
// given split or from a fresh ledger, and returns the resulting state.
func (s *RightsService) EditAllocation(ctx context.Context, req *connect.Request[api.EditAllocationRequest]) (*connect.Response[api.EditAllocationResponse], error) {
	ledger := rights.NewLedger()
	if req.Msg.Rights != nil {
		state := fromAPIRights(req.Msg.Rights)
		if err := state.Validate(); err != nil {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("rights: %w", err))
		}
		ledger = rights.Restore(state)
	}

	for i, edit := range req.Msg.Edits {
		if edit == nil {
			continue
		}
		if err := ledger.Apply(fromAPIEdit(edit)); err != nil {
			s.logger.Debug("Rejected rights edit", "index", i, "op", edit.Op, "category", edit.Category, "error", err)
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("edit %d: %w", i, err))
		}
	}

	// Totals follow the payload a submission would carry, so placeholder
	// shares do not count.
	payload := ledger.ToSubmissionPayload()
	total := payload.Authorship.Total()
	return connect.NewResponse(&api.EditAllocationResponse{
		State:           toAPIRights(ledger.State()),
		Payload:         toAPIRights(payload),
		TotalPercentage: total,
		Reconciled:      total == rights.FullShare,
	}), nil
}
