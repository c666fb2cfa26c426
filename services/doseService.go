package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"context"
)

type DoseService struct {
	repository *repositories.DoseRepository
}

func NewDoseService(repository *repositories.DoseRepository) *DoseService {
	return &DoseService{repository: repository}
}

func (s *DoseService) Create(ctx context.Context, dose *models.Dose) error {
	return s.repository.Create(ctx, dose)
}

func (s *DoseService) GetByID(ctx context.Context, id uint) (*models.Dose, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *DoseService) GetAll(ctx context.Context) ([]models.Dose, error) {
	return s.repository.GetAll(ctx)
}

func (s *DoseService) GetByTreatment(ctx context.Context, treatmentID string) ([]models.Dose, error) {
	return s.repository.GetByTreatment(ctx, treatmentID)
}

func (s *DoseService) Update(ctx context.Context, dose *models.Dose) error {
	return s.repository.Update(ctx, dose)
}

func (s *DoseService) Delete(ctx context.Context, treatmentID string, id uint) error {
	return s.repository.Delete(ctx, treatmentID, id)
}
