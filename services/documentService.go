package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"context"
	"errors"
)

// Upload pre-checks. The backend stores whatever passes; anything else is
// rejected before it reaches the repository.
const MaxDocumentSize = 5 << 20 // 5MB

var allowedDocumentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var (
	ErrDocumentTooLarge    = errors.New("document exceeds the 5MB size limit")
	ErrDocumentInvalidType = errors.New("document type must be PDF, DOC or DOCX")
)

type DocumentService struct {
	repository *repositories.DocumentRepository
}

func NewDocumentService(repository *repositories.DocumentRepository) *DocumentService {
	return &DocumentService{repository: repository}
}

// Create validates the allow-list and size cap, then stores the document.
func (s *DocumentService) Create(ctx context.Context, document *models.Document) error {
	if document.Size > MaxDocumentSize {
		return ErrDocumentTooLarge
	}
	if !allowedDocumentTypes[document.ContentType] {
		return ErrDocumentInvalidType
	}
	return s.repository.Create(ctx, document)
}

func (s *DocumentService) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *DocumentService) GetByPatient(ctx context.Context, patientID string) ([]models.Document, error) {
	return s.repository.GetByPatient(ctx, patientID)
}

func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
