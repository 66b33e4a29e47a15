// File: utils/lock.go
package utils

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"quicklegal/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// releaseScript deletes a lock key only when it still holds the caller's
// token, so a holder cannot release a lock re-acquired after expiry.
const releaseScript = `
if redis.call("get", KEYS[1]) == ARGV[1] then
  return redis.call("del", KEYS[1])
else
  return 0
end
`

// SlotLease is the outcome of an acquire attempt. Held is false when every
// attempt was exhausted or the lock backend was unreachable; callers branch
// on it explicitly instead of trusting a nullable token.
type SlotLease struct {
	Key   string
	Token string
	Held  bool
}

// SlotLock is a best-effort advisory lock over Redis. It serializes
// concurrent booking attempts for the same advocate and slot-start long
// enough for the availability check and write to be effectively atomic.
// It is not a consensus primitive: backend errors are logged and reported
// as a non-held lease, never raised.
type SlotLock struct {
	Client     *redis.Client
	TTL        time.Duration
	RetryCount int
	RetryDelay time.Duration
}

// NewSlotLock builds a SlotLock with TTL and retry tuning from AppConfig.
func NewSlotLock(client *redis.Client) *SlotLock {
	return &SlotLock{
		Client:     client,
		TTL:        time.Duration(config.AppConfig.LockTTLMillis) * time.Millisecond,
		RetryCount: config.AppConfig.LockRetryCount,
		RetryDelay: time.Duration(config.AppConfig.LockRetryDelayMillis) * time.Millisecond,
	}
}

// SlotLockKey derives the lock key for an advocate and literal slot start.
func SlotLockKey(advocateID string, start time.Time) string {
	return fmt.Sprintf("lock:adv:%s:%s", advocateID, start.UTC().Format(time.RFC3339))
}

func newLockToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failure is effectively unrecoverable; fall back to
		// a time-derived token rather than panicking inside the lock path.
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}

// Acquire attempts SET NX PX with a fresh token, retrying with a fixed delay
// while the key is held by someone else. Connectivity errors count as failed
// attempts and are logged at warn level.
func (l *SlotLock) Acquire(ctx context.Context, key string) SlotLease {
	logger := GetLogger()
	token := newLockToken()

	for attempt := 0; ; attempt++ {
		ok, err := l.Client.SetNX(ctx, key, token, l.TTL).Result()
		if err != nil {
			logger.Warn("slot lock: redis set error", zap.String("key", key), zap.Error(err))
		} else if ok {
			return SlotLease{Key: key, Token: token, Held: true}
		}

		if attempt >= l.RetryCount {
			break
		}
		select {
		case <-time.After(l.RetryDelay):
		case <-ctx.Done():
			return SlotLease{Key: key}
		}
	}
	return SlotLease{Key: key}
}

// Release atomically compares the stored value with the lease token and
// deletes the key on match. Returns false on mismatch, missing key or
// backend error; errors are logged, never raised.
func (l *SlotLock) Release(ctx context.Context, lease SlotLease) bool {
	if !lease.Held || lease.Key == "" || lease.Token == "" {
		return false
	}
	res, err := l.Client.Eval(ctx, releaseScript, []string{lease.Key}, lease.Token).Result()
	if err != nil {
		GetLogger().Warn("slot lock: redis eval error", zap.String("key", lease.Key), zap.Error(err))
		return false
	}
	n, ok := res.(int64)
	return ok && n == 1
}
