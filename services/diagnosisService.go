package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"context"
)

type DiagnosisService struct {
	repository *repositories.DiagnosisRepository
}

func NewDiagnosisService(repository *repositories.DiagnosisRepository) *DiagnosisService {
	return &DiagnosisService{repository: repository}
}

func (s *DiagnosisService) Create(ctx context.Context, diagnosis *models.Diagnosis) error {
	return s.repository.Create(ctx, diagnosis)
}

func (s *DiagnosisService) GetAll(ctx context.Context) ([]models.Diagnosis, error) {
	return s.repository.GetAll(ctx)
}

func (s *DiagnosisService) Update(ctx context.Context, diagnosis *models.Diagnosis) error {
	return s.repository.Update(ctx, diagnosis)
}

func (s *DiagnosisService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}
