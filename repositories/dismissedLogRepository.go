package repositories

import (
	"InjetaClin/cache"
	"InjetaClin/database"
	"InjetaClin/models"
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type DismissedLogRepository struct {
	cache *cache.Cache
}

func NewDismissedLogRepository(cache *cache.Cache) *DismissedLogRepository {
	return &DismissedLogRepository{cache: cache}
}

// Exists reports whether a contact has already been dismissed.
func (r *DismissedLogRepository) Exists(ctx context.Context, contactID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entry models.DismissedLog
	err := database.DB.First(&entry, "contact_id = ?", contactID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check dismissed log: %w", err)
	}
	return true, nil
}

// Create inserts a dismissal entry. Dismissing an already-dismissed contact
// is a no-op; the unique index on contact_id backs the existence check.
func (r *DismissedLogRepository) Create(ctx context.Context, entry *models.DismissedLog) error {
	lockKey := fmt.Sprintf("dismissed_log_lock:%s", entry.ContactID)
	return withLock(ctx, lockKey, func() error {
		exists, err := r.Exists(ctx, entry.ContactID)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		if err := database.DB.Create(entry).Error; err != nil {
			return fmt.Errorf("failed to create dismissed log: %w", err)
		}
		return nil
	})
}

func (r *DismissedLogRepository) GetAll(ctx context.Context) ([]models.DismissedLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var entries []models.DismissedLog
	err := database.DB.Order("created_at DESC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get dismissed logs: %w", err)
	}
	return entries, nil
}

func (r *DismissedLogRepository) Update(ctx context.Context, entry *models.DismissedLog) error {
	if err := database.DB.Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update dismissed log: %w", err)
	}
	return nil
}
