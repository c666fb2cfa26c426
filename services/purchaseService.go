package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"context"
	"fmt"
	"time"
)

// PurchaseService runs the purchase predictor against the live snapshot and
// manages the request lifecycle.
type PurchaseService struct {
	treatments *repositories.TreatmentRepository
	doses      *repositories.DoseRepository
	inventory  *repositories.InventoryRepository
	requests   *repositories.PurchaseRequestRepository
}

func NewPurchaseService(treatments *repositories.TreatmentRepository, doses *repositories.DoseRepository, inventory *repositories.InventoryRepository, requests *repositories.PurchaseRequestRepository) *PurchaseService {
	return &PurchaseService{treatments: treatments, doses: doses, inventory: inventory, requests: requests}
}

// Predict computes demand for the next ten days, persists any newly
// triggered requests and returns the full list with the new ones first.
func (s *PurchaseService) Predict(ctx context.Context, today time.Time) ([]models.PurchaseRequest, error) {
	treatments, err := s.treatments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	doses, err := s.doses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	inventory, err := s.inventory.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.requests.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	created := PredictPurchases(treatments, doses, inventory, existing, today)
	for i := range created {
		if err := s.requests.Create(ctx, &created[i]); err != nil {
			return nil, err
		}
	}
	return append(created, existing...), nil
}

func (s *PurchaseService) GetAll(ctx context.Context) ([]models.PurchaseRequest, error) {
	return s.requests.GetAll(ctx)
}

// AdvanceStatus moves a request one step forward; backward or skipping
// transitions are rejected.
func (s *PurchaseService) AdvanceStatus(ctx context.Context, id uint, next string) (*models.PurchaseRequest, error) {
	request, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, nil
	}
	if !NextPurchaseStatus(request.Status, next) {
		return nil, fmt.Errorf("invalid purchase request transition %s -> %s", request.Status, next)
	}
	request.Status = next
	if err := s.requests.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}
