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
	DoseCacheExpiry = 12 * time.Hour
)

type DoseRepository struct {
	cache *cache.Cache
}

func NewDoseRepository(cache *cache.Cache) *DoseRepository {
	return &DoseRepository{cache: cache}
}

func (r *DoseRepository) Create(ctx context.Context, dose *models.Dose) error {
	lockKey := fmt.Sprintf("dose_lock:%s", dose.TreatmentID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Omit("Treatment").Create(dose).Error; err != nil {
			return fmt.Errorf("failed to create dose: %w", err)
		}
		return r.invalidate(ctx, dose.TreatmentID)
	})
}

func (r *DoseRepository) GetByID(ctx context.Context, id uint) (*models.Dose, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var dose models.Dose
	err := database.DB.First(&dose, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dose: %w", err)
	}
	return &dose, nil
}

func (r *DoseRepository) GetAll(ctx context.Context) ([]models.Dose, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "doses_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var doses []models.Dose
		if err := json.Unmarshal([]byte(cached), &doses); err == nil {
			return doses, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get doses from cache: %v", err)
	}

	var doses []models.Dose
	err = database.DB.Order("application_date ASC").Find(&doses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all doses: %w", err)
	}

	dosesJSON, err := json.Marshal(doses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal doses: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, dosesJSON, DoseCacheExpiry); err != nil {
		log.Printf("Failed to set doses in cache: %v", err)
	}

	return doses, nil
}

func (r *DoseRepository) GetByTreatment(ctx context.Context, treatmentID string) ([]models.Dose, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doses []models.Dose
	err := database.DB.
		Order("application_date ASC").
		Find(&doses, "treatment_id = ?", treatmentID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get doses for treatment: %w", err)
	}
	return doses, nil
}

func (r *DoseRepository) Update(ctx context.Context, dose *models.Dose) error {
	lockKey := fmt.Sprintf("dose_lock:%s", dose.TreatmentID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Omit("Treatment").Save(dose).Error; err != nil {
			return fmt.Errorf("failed to update dose: %w", err)
		}
		return r.invalidate(ctx, dose.TreatmentID)
	})
}

func (r *DoseRepository) Delete(ctx context.Context, treatmentID string, id uint) error {
	lockKey := fmt.Sprintf("dose_lock:%s", treatmentID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Delete(&models.Dose{}, "treatment_id = ? AND id = ?", treatmentID, id).Error; err != nil {
			return fmt.Errorf("failed to delete dose: %w", err)
		}
		return r.invalidate(ctx, treatmentID)
	})
}

func (r *DoseRepository) invalidate(ctx context.Context, treatmentID string) error {
	if err := r.cache.Delete(ctx, fmt.Sprintf("treatment_cache:%s", treatmentID)); err != nil {
		return fmt.Errorf("failed to delete treatment cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "doses_cache")
}
