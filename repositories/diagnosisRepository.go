package repositories

import (
	"InjetaClin/cache"
	"InjetaClin/database"
	"InjetaClin/models"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	DiagnosisCacheExpiry = 7 * 24 * time.Hour
)

type DiagnosisRepository struct {
	cache *cache.Cache
}

func NewDiagnosisRepository(cache *cache.Cache) *DiagnosisRepository {
	return &DiagnosisRepository{cache: cache}
}

func (r *DiagnosisRepository) Create(ctx context.Context, diagnosis *models.Diagnosis) error {
	if err := database.DB.Create(diagnosis).Error; err != nil {
		return fmt.Errorf("failed to create diagnosis: %w", err)
	}
	return r.cache.DeleteAll(ctx, "diagnoses_cache")
}

func (r *DiagnosisRepository) GetAll(ctx context.Context) ([]models.Diagnosis, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "diagnoses_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var diagnoses []models.Diagnosis
		if err := json.Unmarshal([]byte(cached), &diagnoses); err == nil {
			return diagnoses, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get diagnoses from cache: %v", err)
	}

	var diagnoses []models.Diagnosis
	err = database.DB.Order("name ASC").Find(&diagnoses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all diagnoses: %w", err)
	}

	diagnosesJSON, err := json.Marshal(diagnoses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal diagnoses: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, diagnosesJSON, DiagnosisCacheExpiry); err != nil {
		log.Printf("Failed to set diagnoses in cache: %v", err)
	}

	return diagnoses, nil
}

func (r *DiagnosisRepository) Update(ctx context.Context, diagnosis *models.Diagnosis) error {
	if err := database.DB.Save(diagnosis).Error; err != nil {
		return fmt.Errorf("failed to update diagnosis: %w", err)
	}
	return r.cache.DeleteAll(ctx, "diagnoses_cache")
}

func (r *DiagnosisRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.Diagnosis{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete diagnosis: %w", err)
	}
	return r.cache.DeleteAll(ctx, "diagnoses_cache")
}
