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
	TreatmentCacheExpiry = 24 * time.Hour
)

type TreatmentRepository struct {
	cache *cache.Cache
}

func NewTreatmentRepository(cache *cache.Cache) *TreatmentRepository {
	return &TreatmentRepository{cache: cache}
}

func (r *TreatmentRepository) Create(ctx context.Context, treatment *models.Treatment) error {
	lockKey := fmt.Sprintf("treatment_lock:%s", treatment.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Omit("Patient", "Protocol").Create(treatment).Error; err != nil {
			return fmt.Errorf("failed to create treatment: %w", err)
		}
		return r.invalidate(ctx, treatment.ID)
	})
}

func (r *TreatmentRepository) GetByID(ctx context.Context, id string) (*models.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getTreatmentCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var treatment models.Treatment
		if err := json.Unmarshal([]byte(cached), &treatment); err == nil {
			return &treatment, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get treatment from cache: %v", err)
	}

	var treatment models.Treatment
	err = database.DB.
		Preload("Patient").
		Preload("Protocol").
		Preload("Protocol.Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		First(&treatment, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get treatment: %w", err)
	}

	treatmentJSON, err := json.Marshal(treatment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal treatment: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, treatmentJSON, TreatmentCacheExpiry); err != nil {
		log.Printf("Failed to set treatment in cache: %v", err)
	}

	return &treatment, nil
}

func (r *TreatmentRepository) GetAll(ctx context.Context) ([]models.Treatment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "treatments_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var treatments []models.Treatment
		if err := json.Unmarshal([]byte(cached), &treatments); err == nil {
			return treatments, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get treatments from cache: %v", err)
	}

	var treatments []models.Treatment
	err = database.DB.
		Preload("Patient").
		Preload("Protocol").
		Preload("Protocol.Milestones", func(db *gorm.DB) *gorm.DB {
			return db.Order("day ASC")
		}).
		Order("created_at DESC").
		Find(&treatments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all treatments: %w", err)
	}

	treatmentsJSON, err := json.Marshal(treatments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal treatments: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, treatmentsJSON, TreatmentCacheExpiry); err != nil {
		log.Printf("Failed to set treatments in cache: %v", err)
	}

	return treatments, nil
}

func (r *TreatmentRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	lockKey := fmt.Sprintf("treatment_lock:%s", treatment.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Omit("Patient", "Protocol").Save(treatment).Error; err != nil {
			return fmt.Errorf("failed to update treatment: %w", err)
		}
		return r.invalidate(ctx, treatment.ID)
	})
}

func (r *TreatmentRepository) Delete(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("treatment_lock:%s", id)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Delete(&models.Treatment{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete treatment: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *TreatmentRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getTreatmentCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete treatment cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "treatments_cache")
}

func (r *TreatmentRepository) getTreatmentCacheKey(id string) string {
	return fmt.Sprintf("treatment_cache:%s", id)
}
