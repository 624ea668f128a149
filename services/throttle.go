package services

import (
	"context"
	"time"

	"cafe-console/db"
)

const throttleCapSeconds = 30

// LoginCooldownSeconds returns how long the login must wait before another
// attempt (0 if none). Absence of a throttle row means no cooldown.
func LoginCooldownSeconds(ctx context.Context, login string) (int, error) {
	var cooldownUntil *time.Time
	err := db.Pool.QueryRow(ctx, `
		SELECT cooldown_until FROM login_throttle WHERE login = $1`,
		login,
	).Scan(&cooldownUntil)
	if err != nil {
		return 0, nil
	}
	if cooldownUntil == nil {
		return 0, nil
	}
	if until := *cooldownUntil; time.Now().Before(until) {
		return int(time.Until(until).Seconds()) + 1, nil // round up
	}
	return 0, nil
}

// RecordLoginFailure bumps the failure count and sets
// cooldown_until = now() + min(cap, 2^fail_count) seconds.
func RecordLoginFailure(ctx context.Context, login string) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO login_throttle (login, fail_count, last_failed_at, cooldown_until, updated_at)
		VALUES ($1, 1, now(), now() + (LEAST(30, POWER(2, 1)::int) || ' seconds')::interval, now())
		ON CONFLICT (login) DO UPDATE SET
			fail_count = login_throttle.fail_count + 1,
			last_failed_at = now(),
			cooldown_until = now() + (LEAST(30, POWER(2, login_throttle.fail_count + 1)::int) || ' seconds')::interval,
			updated_at = now()`,
		login,
	)
	return err
}

// RecordLoginSuccess clears the failure count and cooldown for the login.
func RecordLoginSuccess(ctx context.Context, login string) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO login_throttle (login, fail_count, last_failed_at, cooldown_until, updated_at)
		VALUES ($1, 0, NULL, NULL, now())
		ON CONFLICT (login) DO UPDATE SET
			fail_count = 0,
			last_failed_at = NULL,
			cooldown_until = NULL,
			updated_at = now()`,
		login,
	)
	return err
}

// CooldownSecondsForFailCount mirrors the SQL cooldown formula for tests.
func CooldownSecondsForFailCount(failCount int) int {
	s := 1
	for i := 0; i < failCount; i++ {
		s *= 2
		if s > throttleCapSeconds {
			return throttleCapSeconds
		}
	}
	return s
}
