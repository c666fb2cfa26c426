package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"context"
)

type TreatmentService struct {
	repository *repositories.TreatmentRepository
}

func NewTreatmentService(repository *repositories.TreatmentRepository) *TreatmentService {
	return &TreatmentService{repository: repository}
}

func (s *TreatmentService) Create(ctx context.Context, treatment *models.Treatment) error {
	return s.repository.Create(ctx, treatment)
}

func (s *TreatmentService) GetByID(ctx context.Context, id string) (*models.Treatment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *TreatmentService) GetAll(ctx context.Context) ([]models.Treatment, error) {
	return s.repository.GetAll(ctx)
}

func (s *TreatmentService) Update(ctx context.Context, treatment *models.Treatment) error {
	return s.repository.Update(ctx, treatment)
}

func (s *TreatmentService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
