package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/ArtysFactory/proofy/internal/auth"
	"github.com/ArtysFactory/proofy/internal/proof"
	"github.com/ArtysFactory/proofy/internal/rights"
	"github.com/ArtysFactory/proofy/internal/storage"
)

var (
	errTitleRequired       = errors.New("title is required")
	errProjectTypeRequired = errors.New("project type is required")
	errFileRequired        = errors.New("file hash or file content is required")
	errHashMismatch        = errors.New("file hash does not match file content")
	errNotOwner            = errors.New("you do not own this work")
)

// connectError maps domain errors onto Connect codes. Errors that already
// carry a code pass through unchanged.
func connectError(err error) *connect.Error {
	var (
		connectErr     *connect.Error
		outOfRange     *rights.OutOfRangeError
		invalidField   *rights.InvalidFieldError
		invalidValue   *rights.InvalidValueError
		reconciliation *rights.ReconciliationError
	)

	switch {
	case errors.As(err, &connectErr):
		return connectErr

	case errors.Is(err, rights.ErrConfirmationRequired):
		return connect.NewError(connect.CodeFailedPrecondition, err)

	case errors.As(err, &outOfRange),
		errors.As(err, &invalidField),
		errors.As(err, &invalidValue),
		errors.As(err, &reconciliation),
		errors.Is(err, rights.ErrUnknownCategory),
		errors.Is(err, rights.ErrUnknownField),
		errors.Is(err, rights.ErrUnknownOp),
		errors.Is(err, proof.ErrInvalidHash),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, errTitleRequired),
		errors.Is(err, errProjectTypeRequired),
		errors.Is(err, errFileRequired),
		errors.Is(err, errHashMismatch):
		return connect.NewError(connect.CodeInvalidArgument, err)

	case errors.Is(err, errNotOwner):
		return connect.NewError(connect.CodePermissionDenied, err)

	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)

	case errors.Is(err, storage.ErrDuplicate), errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)

	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return connect.NewError(connect.CodeUnauthenticated, err)
	}

	return connect.NewError(connect.CodeInternal, err)
}
