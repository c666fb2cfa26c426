package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"context"
)

type ProtocolService struct {
	repository *repositories.ProtocolRepository
}

func NewProtocolService(repository *repositories.ProtocolRepository) *ProtocolService {
	return &ProtocolService{repository: repository}
}

func (s *ProtocolService) Create(ctx context.Context, protocol *models.Protocol) error {
	return s.repository.Create(ctx, protocol)
}

func (s *ProtocolService) GetByID(ctx context.Context, id string) (*models.Protocol, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *ProtocolService) GetAll(ctx context.Context) ([]models.Protocol, error) {
	return s.repository.GetAll(ctx)
}

func (s *ProtocolService) Update(ctx context.Context, protocol *models.Protocol) error {
	return s.repository.Update(ctx, protocol)
}

func (s *ProtocolService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
