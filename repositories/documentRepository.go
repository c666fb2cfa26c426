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

type DocumentRepository struct {
	cache *cache.Cache
}

func NewDocumentRepository(cache *cache.Cache) *DocumentRepository {
	return &DocumentRepository{cache: cache}
}

func (r *DocumentRepository) Create(ctx context.Context, document *models.Document) error {
	if err := database.DB.Create(document).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var document models.Document
	err := database.DB.First(&document, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &document, nil
}

// GetByPatient lists a patient's documents without their file contents.
func (r *DocumentRepository) GetByPatient(ctx context.Context, patientID string) ([]models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var documents []models.Document
	err := database.DB.
		Select("id, patient_id, file_name, content_type, size, created_at").
		Order("created_at DESC").
		Find(&documents, "patient_id = ?", patientID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}
	return documents, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id uint) error {
	if err := database.DB.Delete(&models.Document{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
