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

type PurchaseRequestRepository struct {
	cache *cache.Cache
}

func NewPurchaseRequestRepository(cache *cache.Cache) *PurchaseRequestRepository {
	return &PurchaseRequestRepository{cache: cache}
}

func (r *PurchaseRequestRepository) Create(ctx context.Context, request *models.PurchaseRequest) error {
	if err := database.DB.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create purchase request: %w", err)
	}
	return nil
}

func (r *PurchaseRequestRepository) GetByID(ctx context.Context, id uint) (*models.PurchaseRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var request models.PurchaseRequest
	err := database.DB.First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get purchase request: %w", err)
	}
	return &request, nil
}

// GetAll returns purchase requests newest first, so freshly generated
// requests appear at the head of the list.
func (r *PurchaseRequestRepository) GetAll(ctx context.Context) ([]models.PurchaseRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var requests []models.PurchaseRequest
	err := database.DB.Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get purchase requests: %w", err)
	}
	return requests, nil
}

func (r *PurchaseRequestRepository) Update(ctx context.Context, request *models.PurchaseRequest) error {
	lockKey := fmt.Sprintf("purchase_request_lock:%d", request.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Save(request).Error; err != nil {
			return fmt.Errorf("failed to update purchase request: %w", err)
		}
		return nil
	})
}
