package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// LoginThrottle counts login attempts per email in a fixed Redis window. It
// fails open: if Redis is unreachable, authentication proceeds unthrottled.
type LoginThrottle struct {
	client *redis.Client
	logger *zap.Logger
	limit  int
	window time.Duration
}

// NewLoginThrottle builds a throttle. A nil client disables throttling.
func NewLoginThrottle(client *redis.Client, logger *zap.Logger, limit int, window time.Duration) *LoginThrottle {
	return &LoginThrottle{client: client, logger: logger, limit: limit, window: window}
}

// Allow records one attempt for the email and reports whether it is within
// the limit.
func (t *LoginThrottle) Allow(ctx context.Context, email string) bool {
	if t == nil || t.client == nil || t.limit <= 0 {
		return true
	}

	key := t.attemptKey(email)
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		t.logger.Warn("login throttle unavailable", zap.Error(err))
		return true
	}
	if count == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			t.logger.Warn("login throttle expire failed", zap.Error(err))
		}
	}
	return count <= int64(t.limit)
}

// Reset clears the attempt counter after a successful login.
func (t *LoginThrottle) Reset(ctx context.Context, email string) {
	if t == nil || t.client == nil {
		return
	}
	if err := t.client.Del(ctx, t.attemptKey(email)).Err(); err != nil {
		t.logger.Warn("login throttle reset failed", zap.Error(err))
	}
}

func (t *LoginThrottle) attemptKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}
