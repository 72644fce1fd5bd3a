package contracts

import (
	"context"
	"time"
)

// LockerService is a best-effort advisory lock. It guards against duplicated
// work (initialization stampedes, multi-replica workers); slot-state
// correctness never depends on it.
type LockerService interface {
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
