package services

import (
	"InjetaClin/models"
	"testing"
)

func TestPredictPurchasesAggregatesDemand(t *testing.T) {
	first := monthlyTreatment("t1", "p1")
	first.StartDate = "2024-03-05"
	second := monthlyTreatment("t2", "p2")
	second.StartDate = "2024-03-08"
	treatments := []models.Treatment{first, second}

	inventory := []models.InventoryItem{
		{ID: 1, Medication: "Leuprorelin 3.75mg", LotNumber: "L-001", Quantity: 1, Active: true},
		{ID: 2, Medication: "Leuprorelin 3.75mg", LotNumber: "L-000", Quantity: 4, Active: false},
	}

	created := PredictPurchases(treatments, nil, inventory, nil, testDay(t, "2024-03-01"))
	if len(created) != 1 {
		t.Fatalf("got %d requests, want 1", len(created))
	}
	request := created[0]
	if request.Medication != "Leuprorelin 3.75mg" {
		t.Errorf("medication = %s", request.Medication)
	}
	if request.PredictedDemand != 2 {
		t.Errorf("predicted demand = %d, want 2 doses due inside the horizon", request.PredictedDemand)
	}
	if request.StockSnapshot != 1 {
		t.Errorf("stock snapshot = %d, want 1 (inactive lots do not count)", request.StockSnapshot)
	}
	if request.SuggestedQuantity != 6 {
		t.Errorf("suggested quantity = %d, want demand times 3", request.SuggestedQuantity)
	}
	if request.Status != models.PurchasePending {
		t.Errorf("status = %s, want PENDING", request.Status)
	}
}

func TestPredictPurchasesIdempotent(t *testing.T) {
	treatment := monthlyTreatment("t1", "p1")
	treatment.StartDate = "2024-03-05"
	treatments := []models.Treatment{treatment}
	today := testDay(t, "2024-03-01")

	first := PredictPurchases(treatments, nil, nil, nil, today)
	if len(first) != 1 {
		t.Fatalf("first run created %d requests, want 1", len(first))
	}

	second := PredictPurchases(treatments, nil, nil, first, today)
	if len(second) != 0 {
		t.Errorf("second run created %d requests with an unchanged snapshot, want 0", len(second))
	}
}

func TestPredictPurchasesSkipsCoveredStock(t *testing.T) {
	treatment := monthlyTreatment("t1", "p1")
	treatment.StartDate = "2024-03-05"
	inventory := []models.InventoryItem{
		{ID: 1, Medication: "Leuprorelin 3.75mg", LotNumber: "L-001", Quantity: 5, Active: true},
	}

	created := PredictPurchases([]models.Treatment{treatment}, nil, inventory, nil, testDay(t, "2024-03-01"))
	if len(created) != 0 {
		t.Errorf("got %d requests with stock covering demand, want 0", len(created))
	}
}

func TestPredictPurchasesIgnoresOutOfScopeTreatments(t *testing.T) {
	finished := monthlyTreatment("t1", "p1")
	finished.StartDate = "2024-03-05"
	finished.Status = models.TreatmentFinished

	monitoring := monthlyTreatment("t2", "p2")
	monitoring.StartDate = "2024-03-05"
	monitoring.Protocol.Category = models.CategoryMonitoring
	monitoring.Protocol.Medication = ""

	farOut := monthlyTreatment("t3", "p3")
	farOut.StartDate = "2024-04-15"

	treatments := []models.Treatment{finished, monitoring, farOut}
	created := PredictPurchases(treatments, nil, nil, nil, testDay(t, "2024-03-01"))
	if len(created) != 0 {
		t.Errorf("got %d requests, want 0 for finished, monitoring and far-future treatments", len(created))
	}
}

func TestPredictPurchasesUsesAppliedDoses(t *testing.T) {
	treatment := monthlyTreatment("t1", "p1")
	doses := []models.Dose{
		{ID: 1, TreatmentID: "t1", CycleNumber: 1, ApplicationDate: "2024-02-08", Status: models.DoseApplied},
	}

	// Next projection lands 2024-03-07, six days inside the horizon.
	created := PredictPurchases([]models.Treatment{treatment}, doses, nil, nil, testDay(t, "2024-03-01"))
	if len(created) != 1 {
		t.Fatalf("got %d requests, want 1", len(created))
	}
	if created[0].PredictedDemand != 1 {
		t.Errorf("predicted demand = %d, want 1", created[0].PredictedDemand)
	}
}

func TestNextPurchaseStatus(t *testing.T) {
	tests := []struct {
		current string
		next    string
		want    bool
	}{
		{models.PurchasePending, models.PurchaseOrdered, true},
		{models.PurchaseOrdered, models.PurchaseReceived, true},
		{models.PurchasePending, models.PurchaseReceived, false},
		{models.PurchaseOrdered, models.PurchasePending, false},
		{models.PurchaseReceived, models.PurchaseOrdered, false},
		{models.PurchaseReceived, models.PurchaseReceived, false},
		{models.PurchasePending, "CANCELLED", false},
	}
	for _, tt := range tests {
		if got := NextPurchaseStatus(tt.current, tt.next); got != tt.want {
			t.Errorf("NextPurchaseStatus(%s, %s) = %v, want %v", tt.current, tt.next, got, tt.want)
		}
	}
}
