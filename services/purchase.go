package services

import (
	"InjetaClin/models"
	"InjetaClin/utils"
	"time"
)

// Purchase prediction horizon and reorder multiplier.
const (
	purchaseHorizonDays = 10
	reorderMultiplier   = 3
)

// PredictPurchases estimates medication demand over the next ten days from
// projected doses and returns the purchase requests to open. A medication
// triggers a request when its active stock would not cover the demand and no
// PENDING request for it already exists, so repeated runs with an unchanged
// snapshot create nothing new.
func PredictPurchases(treatments []models.Treatment, doses []models.Dose, inventory []models.InventoryItem, existing []models.PurchaseRequest, today time.Time) []models.PurchaseRequest {
	byTreatment := groupDosesByTreatment(doses)

	demand := make(map[string]int)
	for _, treatment := range treatments {
		if treatment.Status != models.TreatmentOngoing {
			continue
		}
		if treatment.Protocol.Category != models.CategoryMedication || treatment.Protocol.Medication == "" {
			continue
		}
		projection, ok := ProjectNextDose(treatment, byTreatment[treatment.ID], today)
		if !ok {
			continue
		}
		diff := utils.DiffInDays(projection.Date, today)
		if diff >= 0 && diff <= purchaseHorizonDays {
			demand[treatment.Protocol.Medication]++
		}
	}

	stock := make(map[string]int)
	for _, item := range inventory {
		if item.Active {
			stock[item.Medication] += item.Quantity
		}
	}

	pending := make(map[string]bool)
	for _, request := range existing {
		if request.Status == models.PurchasePending {
			pending[request.Medication] = true
		}
	}

	var created []models.PurchaseRequest
	for medication, needed := range demand {
		if needed == 0 || pending[medication] {
			continue
		}
		if stock[medication] > needed {
			continue
		}
		created = append(created, models.PurchaseRequest{
			Medication:        medication,
			PredictedDemand:   needed,
			StockSnapshot:     stock[medication],
			SuggestedQuantity: needed * reorderMultiplier,
			Status:            models.PurchasePending,
		})
	}
	return created
}

// NextPurchaseStatus validates a forward-only status transition. Requests
// move PENDING -> ORDERED -> RECEIVED and never back.
func NextPurchaseStatus(current, next string) bool {
	switch current {
	case models.PurchasePending:
		return next == models.PurchaseOrdered
	case models.PurchaseOrdered:
		return next == models.PurchaseReceived
	default:
		return false
	}
}
