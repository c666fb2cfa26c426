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
	SaleCacheExpiry = 12 * time.Hour
)

type SaleRepository struct {
	cache *cache.Cache
}

func NewSaleRepository(cache *cache.Cache) *SaleRepository {
	return &SaleRepository{cache: cache}
}

func (r *SaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	lockKey := fmt.Sprintf("sale_lock:%d", sale.DoseID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Create(sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}
		return r.cache.DeleteAll(ctx, "sales_cache")
	})
}

func (r *SaleRepository) GetByID(ctx context.Context, id uint) (*models.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var sale models.Sale
	err := database.DB.First(&sale, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}
	return &sale, nil
}

func (r *SaleRepository) GetAll(ctx context.Context) ([]models.Sale, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "sales_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var sales []models.Sale
		if err := json.Unmarshal([]byte(cached), &sales); err == nil {
			return sales, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get sales from cache: %v", err)
	}

	var sales []models.Sale
	err = database.DB.Order("sale_date DESC").Find(&sales).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all sales: %w", err)
	}

	salesJSON, err := json.Marshal(sales)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sales: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, salesJSON, SaleCacheExpiry); err != nil {
		log.Printf("Failed to set sales in cache: %v", err)
	}

	return sales, nil
}

func (r *SaleRepository) Update(ctx context.Context, sale *models.Sale) error {
	lockKey := fmt.Sprintf("sale_lock:%d", sale.DoseID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(sale).Error; err != nil {
			return fmt.Errorf("failed to update sale: %w", err)
		}
		return r.cache.DeleteAll(ctx, "sales_cache")
	})
}

func (r *SaleRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.Sale{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete sale: %w", err)
	}
	return r.cache.DeleteAll(ctx, "sales_cache")
}
