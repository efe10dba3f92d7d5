package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/internal/auth"
	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/middleware"
	"github.com/mmynk/clubhouse/internal/models"
)

// codeOf maps engine and auth errors onto Connect codes. Anything
// unrecognized is an internal error.
func codeOf(err error) connect.Code {
	switch {
	case errors.Is(err, club.ErrValidation),
		errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, auth.ErrInvalidEmail):
		return connect.CodeInvalidArgument
	case errors.Is(err, club.ErrForbidden):
		return connect.CodePermissionDenied
	case errors.Is(err, club.ErrNotFound):
		return connect.CodeNotFound
	case errors.Is(err, club.ErrConflict),
		errors.Is(err, auth.ErrEmailExists),
		errors.Is(err, auth.ErrNicknameTaken):
		return connect.CodeAlreadyExists
	case errors.Is(err, auth.ErrInvalidCredentials):
		return connect.CodeUnauthenticated
	}
	return connect.CodeInternal
}

// fail logs a failed call and converts err for the wire. Internal errors
// are logged at error level, caller mistakes at warn.
func fail(op string, err error, attrs ...any) error {
	code := codeOf(err)
	attrs = append(attrs, "code", code, "error", err)
	if code == connect.CodeInternal {
		slog.Error(op+" failed", attrs...)
	} else {
		slog.Warn(op+" failed", attrs...)
	}
	return connect.NewError(code, err)
}

// principal returns the authenticated caller or CodeUnauthenticated.
func principal(ctx context.Context) (models.Principal, error) {
	p := middleware.PrincipalFrom(ctx)
	if !p.Authenticated() {
		return p, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return p, nil
}
