package middleware

import (
	"context"
	"errors"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/clubhouse/internal/models"
)

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(60, 2, 5*time.Minute)
	rl.now = func() time.Time { return now }

	if !rl.Allow("u1") || !rl.Allow("u1") {
		t.Fatal("expected the burst to be allowed")
	}
	if rl.Allow("u1") {
		t.Error("expected the third request to be refused")
	}
	if !rl.Allow("u2") {
		t.Error("callers must not share a bucket")
	}

	now = now.Add(time.Second)
	if !rl.Allow("u1") {
		t.Error("expected a token after one second at 60/min")
	}

	now = now.Add(10 * time.Minute)
	if remaining := rl.Sweep(); remaining != 0 {
		t.Errorf("Sweep left %d buckets, want 0", remaining)
	}
}

func TestReadOnly(t *testing.T) {
	tests := []struct {
		procedure string
		want      bool
	}{
		{"/clubhouse.v1.GroupService/ListGroups", true},
		{"/clubhouse.v1.LedgerService/GetBalance", true},
		{"/clubhouse.v1.GroupService/RequestJoin", false},
		{"/clubhouse.v1.LedgerService/RecordTransaction", false},
	}
	for _, tt := range tests {
		if got := readOnly(tt.procedure); got != tt.want {
			t.Errorf("readOnly(%q) = %v, want %v", tt.procedure, got, tt.want)
		}
	}
}

func TestRateLimitInterceptor(t *testing.T) {
	rl := NewRateLimiter(60, 1, time.Minute)
	calls := 0
	handler := RateLimitInterceptor(rl)(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		calls++
		return nil, nil
	})
	ctx := WithPrincipal(context.Background(), models.Principal{UserID: "u1"})

	if _, err := handler(ctx, connect.NewRequest(&struct{}{})); err != nil {
		t.Fatalf("first call refused: %v", err)
	}
	_, err := handler(ctx, connect.NewRequest(&struct{}{}))
	if connect.CodeOf(err) != connect.CodeResourceExhausted {
		t.Errorf("code: expected %v, got %v", connect.CodeResourceExhausted, connect.CodeOf(err))
	}
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited, got %v", err)
	}
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
}
