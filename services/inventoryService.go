package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"context"
	"sort"
)

// MedicationSummary aggregates the active stock of one medication across its
// lots, with the margin bucket estimated from the lot pricing.
type MedicationSummary struct {
	Medication   string  `json:"medication"`
	TotalStock   int     `json:"total_stock"`
	Lots         int     `json:"lots"`
	EstMarginPct float64 `json:"est_margin_pct"`
	MarginBucket string  `json:"margin_bucket"`
}

type InventoryService struct {
	repository *repositories.InventoryRepository
}

func NewInventoryService(repository *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{repository: repository}
}

func (s *InventoryService) Create(ctx context.Context, item *models.InventoryItem) error {
	return s.repository.Create(ctx, item)
}

func (s *InventoryService) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *InventoryService) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	return s.repository.GetAll(ctx)
}

func (s *InventoryService) Update(ctx context.Context, item *models.InventoryItem) error {
	return s.repository.Update(ctx, item)
}

func (s *InventoryService) Delete(ctx context.Context, id uint) error {
	return s.repository.Delete(ctx, id)
}

// Dispense debits one unit from a lot and records who received it.
func (s *InventoryService) Dispense(ctx context.Context, itemID uint, patientID string, doseID *uint) (*models.DispenseLog, error) {
	return s.repository.Dispense(ctx, itemID, patientID, doseID)
}

func (s *InventoryService) GetDispenseLogs(ctx context.Context) ([]models.DispenseLog, error) {
	return s.repository.GetDispenseLogs(ctx)
}

// Medications summarizes active stock per medication. The estimated margin
// uses the first priced active lot of each medication.
func (s *InventoryService) Medications(ctx context.Context) ([]MedicationSummary, error) {
	items, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	byMedication := make(map[string]*MedicationSummary)
	for _, item := range items {
		if !item.Active {
			continue
		}
		summary, ok := byMedication[item.Medication]
		if !ok {
			summary = &MedicationSummary{Medication: item.Medication}
			byMedication[item.Medication] = summary
		}
		summary.TotalStock += item.Quantity
		summary.Lots++
		if summary.EstMarginPct == 0 && item.BasePrice > 0 {
			opex := item.Commission + item.Tax + item.DeliveryFee + item.OtherFees
			summary.EstMarginPct = (item.BasePrice - item.UnitCost - opex) / item.BasePrice * 100
		}
	}

	summaries := make([]MedicationSummary, 0, len(byMedication))
	for _, summary := range byMedication {
		summary.MarginBucket = MarginBucket(summary.EstMarginPct)
		summaries = append(summaries, *summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Medication < summaries[j].Medication
	})
	return summaries, nil
}
