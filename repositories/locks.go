package repositories

import (
	"InjetaClin/database"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// withLock runs fn while holding the Redis lock for key, retrying the
// acquisition a few times before giving up.
func withLock(ctx context.Context, key string, fn func() error) error {
	lockValue := uuid.New().String() // Generate a unique lock value
	maxRetries := 3
	retryDelay := 2 * time.Second
	var locked bool
	var err error
	for i := 0; i < maxRetries; i++ {
		locked, err = database.NewLock(ctx, key, lockValue, 10*time.Second)
		if err == nil && locked {
			break
		}
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}
	if !locked {
		return fmt.Errorf("failed to acquire lock after retries: %w", err)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, key, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	return fn()
}
