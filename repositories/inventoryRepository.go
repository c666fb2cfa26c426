package repositories

import (
	"InjetaClin/cache"
	"InjetaClin/database"
	"InjetaClin/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	InventoryCacheExpiry = 12 * time.Hour
)

// ErrOutOfStock is returned when a dispense would take a lot below zero.
var ErrOutOfStock = errors.New("lot has no remaining stock")

type InventoryRepository struct {
	cache *cache.Cache
}

func NewInventoryRepository(cache *cache.Cache) *InventoryRepository {
	return &InventoryRepository{cache: cache}
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	lockKey := fmt.Sprintf("inventory_lock:%s:%s", item.Medication, item.LotNumber)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Create(item).Error; err != nil {
			return fmt.Errorf("failed to create inventory item: %w", err)
		}
		return r.cache.DeleteAll(ctx, "inventory_cache")
	})
}

func (r *InventoryRepository) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var item models.InventoryItem
	err := database.DB.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return &item, nil
}

func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "inventory_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var items []models.InventoryItem
		if err := json.Unmarshal([]byte(cached), &items); err == nil {
			return items, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get inventory from cache: %v", err)
	}

	var items []models.InventoryItem
	err = database.DB.Order("medication ASC, expiry_date ASC").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all inventory items: %w", err)
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal inventory items: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, itemsJSON, InventoryCacheExpiry); err != nil {
		log.Printf("Failed to set inventory in cache: %v", err)
	}

	return items, nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *models.InventoryItem) error {
	lockKey := fmt.Sprintf("inventory_lock:%s:%s", item.Medication, item.LotNumber)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(item).Error; err != nil {
			return fmt.Errorf("failed to update inventory item: %w", err)
		}
		return r.cache.DeleteAll(ctx, "inventory_cache")
	})
}

func (r *InventoryRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.InventoryItem{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return r.cache.DeleteAll(ctx, "inventory_cache")
}

// Dispense debits one unit from a lot and records a DispenseLog row. The lot
// is re-read under the lock so the quantity check holds against concurrent
// dispenses.
func (r *InventoryRepository) Dispense(ctx context.Context, itemID uint, patientID string, doseID *uint) (*models.DispenseLog, error) {
	var entry *models.DispenseLog
	lockKey := fmt.Sprintf("inventory_dispense_lock:%d", itemID)
	err := withLock(ctx, lockKey, func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			var item models.InventoryItem
			if err := tx.First(&item, "id = ?", itemID).Error; err != nil {
				return fmt.Errorf("failed to load lot for dispense: %w", err)
			}
			if item.Quantity <= 0 {
				return ErrOutOfStock
			}
			if err := tx.Model(&item).Update("quantity", item.Quantity-1).Error; err != nil {
				return fmt.Errorf("failed to debit lot: %w", err)
			}
			entry = &models.DispenseLog{
				Medication:      item.Medication,
				LotNumber:       item.LotNumber,
				InventoryItemID: item.ID,
				PatientID:       patientID,
				DoseID:          doseID,
			}
			if err := tx.Create(entry).Error; err != nil {
				return fmt.Errorf("failed to record dispense log: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	if err := r.cache.DeleteAll(ctx, "inventory_cache"); err != nil {
		log.Printf("Failed to invalidate inventory cache: %v", err)
	}
	return entry, nil
}

func (r *InventoryRepository) GetDispenseLogs(ctx context.Context) ([]models.DispenseLog, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var logs []models.DispenseLog
	err := database.DB.Order("created_at DESC").Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get dispense logs: %w", err)
	}
	return logs, nil
}
