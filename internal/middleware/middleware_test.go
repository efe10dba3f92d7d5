package middleware

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/internal/models"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def", "abc.def", true},
		{"bearer abc", "", false},
		{"Bearer", "", false},
		{"", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
	}
	for _, tt := range tests {
		token, ok := bearerToken(tt.header)
		if token != tt.token || ok != tt.ok {
			t.Errorf("bearerToken(%q) = %q, %v; want %q, %v", tt.header, token, ok, tt.token, tt.ok)
		}
	}
}

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	if PrincipalFrom(ctx).Authenticated() || GetUserID(ctx) != "" {
		t.Error("empty context should be anonymous")
	}

	ctx = WithPrincipal(ctx, models.Principal{UserID: "u1", SiteRole: models.SiteRoleGeneral})
	if GetUserID(ctx) != "u1" {
		t.Errorf("GetUserID: got %q", GetUserID(ctx))
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		err  error
		want slog.Level
	}{
		{connect.NewError(connect.CodePermissionDenied, errors.New("no")), slog.LevelWarn},
		{connect.NewError(connect.CodeInvalidArgument, errors.New("bad")), slog.LevelWarn},
		{connect.NewError(connect.CodeInternal, errors.New("boom")), slog.LevelError},
		{errors.New("plain"), slog.LevelError},
	}
	for _, tt := range tests {
		if got := levelFor(tt.err); got != tt.want {
			t.Errorf("levelFor(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
	if codeString(nil) != "ok" {
		t.Errorf("codeString(nil) = %q", codeString(nil))
	}
}
