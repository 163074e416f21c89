package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoginThrottle_AllowWithinLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	throttle := NewLoginThrottle(client, zap.NewNop(), 3, time.Minute)

	mock.ExpectIncr("login_attempts:alice@x.com").SetVal(1)
	mock.ExpectExpire("login_attempts:alice@x.com", time.Minute).SetVal(true)

	assert.True(t, throttle.Allow(context.Background(), "alice@x.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginThrottle_BlocksOverLimit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	throttle := NewLoginThrottle(client, zap.NewNop(), 3, time.Minute)

	mock.ExpectIncr("login_attempts:alice@x.com").SetVal(4)

	assert.False(t, throttle.Allow(context.Background(), "alice@x.com"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginThrottle_FailsOpenOnRedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	throttle := NewLoginThrottle(client, zap.NewNop(), 3, time.Minute)

	mock.ExpectIncr("login_attempts:alice@x.com").SetErr(errors.New("connection refused"))

	assert.True(t, throttle.Allow(context.Background(), "alice@x.com"))
}

func TestLoginThrottle_NilClientDisabled(t *testing.T) {
	throttle := NewLoginThrottle(nil, zap.NewNop(), 3, time.Minute)

	assert.True(t, throttle.Allow(context.Background(), "alice@x.com"))
	throttle.Reset(context.Background(), "alice@x.com")
}

func TestLoginThrottle_Reset(t *testing.T) {
	client, mock := redismock.NewClientMock()
	throttle := NewLoginThrottle(client, zap.NewNop(), 3, time.Minute)

	mock.ExpectDel("login_attempts:alice@x.com").SetVal(1)

	throttle.Reset(context.Background(), "alice@x.com")
	assert.NoError(t, mock.ExpectationsWereMet())
}
