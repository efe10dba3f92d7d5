package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/clubhouse/internal/club"
	"github.com/mmynk/clubhouse/internal/models"
	"github.com/mmynk/clubhouse/internal/storage/sqlite"
)

func newTestAuthenticator(t *testing.T, opts ...Option) *PasswordAuthenticator {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewPasswordAuthenticator(store, append([]Option{WithCost(bcrypt.MinCost)}, opts...)...)
}

func TestRegister(t *testing.T) {
	a := newTestAuthenticator(t, WithAdminEmails("Root@Example.com"))
	ctx := context.Background()

	user, err := a.Register(ctx, " Alice@Example.com ", "alice", "password123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Email != "alice@example.com" || user.SiteRole != models.SiteRoleGeneral {
		t.Errorf("unexpected user %+v", user)
	}
	if user.PasswordHash == "password123" {
		t.Error("password stored in clear text")
	}

	root, err := a.Register(ctx, "root@example.com", "root", "password123")
	if err != nil {
		t.Fatalf("Register(root) failed: %v", err)
	}
	if root.SiteRole != models.SiteRoleAdmin {
		t.Errorf("root SiteRole = %s, want admin", root.SiteRole)
	}

	tests := []struct {
		name     string
		email    string
		nickname string
		password string
		wantErr  error
	}{
		{"duplicate email", "alice@example.com", "alice2", "password123", ErrEmailExists},
		{"duplicate nickname", "other@example.com", "alice", "password123", ErrNicknameTaken},
		{"weak password", "bob@example.com", "bob", "short", ErrWeakPassword},
		{"bad email", "not-an-email", "bob", "password123", ErrInvalidEmail},
		{"blank nickname", "bob@example.com", " ", "password123", club.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := a.Register(ctx, tt.email, tt.nickname, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestAuthenticate(t *testing.T) {
	a := newTestAuthenticator(t)
	ctx := context.Background()
	if _, err := a.Register(ctx, "alice@example.com", "alice", "password123"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := a.Authenticate(ctx, "ALICE@example.com", "password123"); err != nil {
		t.Errorf("Authenticate failed: %v", err)
	}
	if _, err := a.Authenticate(ctx, "alice@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := a.Authenticate(ctx, "nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestJWTManager(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "u1", Email: "alice@example.com", Nickname: "alice", SiteRole: models.SiteRoleManager}

	token, err := m.Generate(user)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	want := models.Principal{UserID: "u1", Email: "alice@example.com", Nickname: "alice", SiteRole: models.SiteRoleManager}
	if got := claims.Principal(); got != want {
		t.Errorf("Principal() = %+v, want %+v", got, want)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		stale, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if _, err := m.Validate(stale); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
