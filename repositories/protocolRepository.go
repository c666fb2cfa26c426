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
	ProtocolCacheExpiry = 7 * 24 * time.Hour
)

type ProtocolRepository struct {
	cache *cache.Cache
}

func NewProtocolRepository(cache *cache.Cache) *ProtocolRepository {
	return &ProtocolRepository{cache: cache}
}

func (r *ProtocolRepository) Create(ctx context.Context, protocol *models.Protocol) error {
	lockKey := fmt.Sprintf("protocol_lock:%s", protocol.ID)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Create(protocol).Error; err != nil {
			return fmt.Errorf("failed to create protocol: %w", err)
		}
		return r.invalidate(ctx, protocol.ID)
	})
}

func (r *ProtocolRepository) GetByID(ctx context.Context, id string) (*models.Protocol, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getProtocolCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var protocol models.Protocol
		if err := json.Unmarshal([]byte(cached), &protocol); err == nil {
			return &protocol, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get protocol from cache: %v", err)
	}

	var protocol models.Protocol
	err = database.DB.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("day ASC")
	}).First(&protocol, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get protocol: %w", err)
	}

	protocolJSON, err := json.Marshal(protocol)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protocol: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, protocolJSON, ProtocolCacheExpiry); err != nil {
		log.Printf("Failed to set protocol in cache: %v", err)
	}

	return &protocol, nil
}

func (r *ProtocolRepository) GetAll(ctx context.Context) ([]models.Protocol, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "protocols_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var protocols []models.Protocol
		if err := json.Unmarshal([]byte(cached), &protocols); err == nil {
			return protocols, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get protocols from cache: %v", err)
	}

	var protocols []models.Protocol
	err = database.DB.Preload("Milestones", func(db *gorm.DB) *gorm.DB {
		return db.Order("day ASC")
	}).Order("name ASC").Find(&protocols).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get all protocols: %w", err)
	}

	protocolsJSON, err := json.Marshal(protocols)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal protocols: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, protocolsJSON, ProtocolCacheExpiry); err != nil {
		log.Printf("Failed to set protocols in cache: %v", err)
	}

	return protocols, nil
}

func (r *ProtocolRepository) Update(ctx context.Context, protocol *models.Protocol) error {
	lockKey := fmt.Sprintf("protocol_lock:%s", protocol.ID)
	return withLock(ctx, lockKey, func() error {
		return database.DB.Transaction(func(tx *gorm.DB) error {
			// Replace the milestone list wholesale; milestones are owned by
			// the protocol and carry no references of their own.
			if err := tx.Delete(&models.ProtocolMilestone{}, "protocol_id = ?", protocol.ID).Error; err != nil {
				return fmt.Errorf("failed to clear protocol milestones: %w", err)
			}
			if err := tx.Save(protocol).Error; err != nil {
				return fmt.Errorf("failed to update protocol: %w", err)
			}
			return r.invalidate(ctx, protocol.ID)
		})
	})
}

func (r *ProtocolRepository) Delete(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("protocol_lock:%s", id)
	return withLock(ctx, lockKey, func() error {
		if err := database.DB.Delete(&models.ProtocolMilestone{}, "protocol_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete protocol milestones: %w", err)
		}
		if err := database.DB.Delete(&models.Protocol{}, "id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete protocol: %w", err)
		}
		return r.invalidate(ctx, id)
	})
}

func (r *ProtocolRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getProtocolCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete protocol cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, "protocols_cache")
}

func (r *ProtocolRepository) getProtocolCacheKey(id string) string {
	return fmt.Sprintf("protocol_cache:%s", id)
}
