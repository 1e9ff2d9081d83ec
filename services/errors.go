package services

import (
	"MediPoint/database"
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by the services. Handlers map them onto HTTP
// statuses; anything else is treated as an internal failure.
var (
	ErrNotFound           = errors.New("record not found")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrAccessCodeTaken    = errors.New("access code already in use")
	ErrSlotTaken          = errors.New("time slot is no longer available")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrInactiveAccount    = errors.New("account is deactivated")
)

// Locker serializes critical sections across instances. The production
// implementation rides on Redis SetNX; tests substitute a no-op.
type Locker interface {
	Acquire(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key, value string) error
}

// RedisLocker is the Redis-backed Locker used in production wiring.
type RedisLocker struct{}

func (RedisLocker) Acquire(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	return database.NewLock(ctx, key, value, ttl)
}

func (RedisLocker) Release(ctx context.Context, key, value string) error {
	return database.ReleaseLock(ctx, key, value)
}
