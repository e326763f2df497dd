package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key is missing or expired.
var ErrNotFound = errors.New("redis: key not found")

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetOTP(ctx context.Context, userID uint64, code string, ttl time.Duration) error
	GetOTP(ctx context.Context, userID uint64) (string, error)
	DeleteOTP(ctx context.Context, userID uint64) error
	// IncrOTPAttempts counts a failed verification and returns the running total.
	IncrOTPAttempts(ctx context.Context, userID uint64, ttl time.Duration) (int64, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func otpKey(userID uint64) string {
	return "otp:" + strconv.FormatUint(userID, 10)
}

func otpAttemptsKey(userID uint64) string {
	return "otp_attempts:" + strconv.FormatUint(userID, 10)
}

// Get retrieves a value by key from Redis
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err == goredis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err == goredis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID)).Err()
}

// SetOTP stores the pending phone verification code, replacing any earlier one
// and resetting its failed attempts.
func (r *redis) SetOTP(ctx context.Context, userID uint64, code string, ttl time.Duration) error {
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Set(ctx, otpKey(userID), code, ttl)
		pipe.Del(ctx, otpAttemptsKey(userID))
		return nil
	})
	return err
}

func (r *redis) GetOTP(ctx context.Context, userID uint64) (string, error) {
	return r.Get(ctx, otpKey(userID))
}

func (r *redis) DeleteOTP(ctx context.Context, userID uint64) error {
	return r.client.Del(ctx, otpKey(userID), otpAttemptsKey(userID)).Err()
}

// IncrOTPAttempts keeps the counter alive for ttl after the latest failure.
// SetOTP resets it for every new code.
func (r *redis) IncrOTPAttempts(ctx context.Context, userID uint64, ttl time.Duration) (int64, error) {
	key := otpAttemptsKey(userID)
	var incr *goredis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}
