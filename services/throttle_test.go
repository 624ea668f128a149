package services

import (
	"context"
	"testing"

	"cafe-console/db"
)

func TestCooldownSecondsForFailCount(t *testing.T) {
	tests := []struct {
		failCount int
		want      int
	}{
		{0, 1},
		{1, 2},
		{2, 4},
		{3, 8},
		{4, 16},
		{5, 30}, // 2^5=32 -> cap 30
		{6, 30},
		{10, 30},
	}
	for _, tt := range tests {
		got := CooldownSecondsForFailCount(tt.failCount)
		if got != tt.want {
			t.Errorf("CooldownSecondsForFailCount(%d) = %d, want %d", tt.failCount, got, tt.want)
		}
	}
}

// Integration tests for the throttle (require DB). Skip if db.Pool is nil or -short.
func TestLoginThrottle_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping throttle integration test in short mode")
	}
	if db.Pool == nil {
		t.Skip("skipping throttle integration test: no DB pool")
	}
	ctx := context.Background()
	const login = "throttle-test-user"

	defer func() {
		_ = RecordLoginSuccess(ctx, login)
	}()

	_ = RecordLoginSuccess(ctx, login)
	wait, err := LoginCooldownSeconds(ctx, login)
	if err != nil {
		t.Fatalf("LoginCooldownSeconds after success: %v", err)
	}
	if wait != 0 {
		t.Errorf("after success: wait = %d, want 0", wait)
	}

	_ = RecordLoginFailure(ctx, login)
	wait, err = LoginCooldownSeconds(ctx, login)
	if err != nil {
		t.Fatalf("LoginCooldownSeconds after failure: %v", err)
	}
	if wait <= 0 {
		t.Errorf("after one failure: wait = %d, want > 0", wait)
	}
	if wait > throttleCapSeconds {
		t.Errorf("cooldown wait %d exceeds cap %d", wait, throttleCapSeconds)
	}

	_ = RecordLoginSuccess(ctx, login)
	wait, _ = LoginCooldownSeconds(ctx, login)
	if wait != 0 {
		t.Errorf("after failure then success: wait = %d, want 0", wait)
	}

	for i := 0; i < 8; i++ {
		_ = RecordLoginFailure(ctx, login)
	}
	wait, _ = LoginCooldownSeconds(ctx, login)
	if wait > throttleCapSeconds {
		t.Errorf("after 8 failures: wait = %d, want <= %d", wait, throttleCapSeconds)
	}
}
