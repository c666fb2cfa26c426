package services

import (
	"InjetaClin/models"
	"InjetaClin/utils"
	"testing"
	"time"
)

func testDay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, ok := utils.ParseDate(value)
	if !ok {
		t.Fatalf("bad fixture date %q", value)
	}
	return parsed
}

func monthlyTreatment(id, patientID string) models.Treatment {
	return models.Treatment{
		ID:        id,
		PatientID: patientID,
		Status:    models.TreatmentOngoing,
		StartDate: "2024-01-01",
		Patient:   models.Patient{ID: patientID, FirstName: "Ana", LastName: "Souza"},
		Protocol: models.Protocol{
			ID:            "proto-leuprorelin-28",
			Name:          "Leuprorelin 3.75mg monthly",
			Category:      models.CategoryMedication,
			Medication:    "Leuprorelin 3.75mg",
			FrequencyDays: 28,
		},
	}
}

func TestProjectNextDoseWithoutDoses(t *testing.T) {
	treatment := monthlyTreatment("t1", "p1")
	today := testDay(t, "2023-12-20")

	projection, ok := ProjectNextDose(treatment, nil, today)
	if !ok {
		t.Fatal("expected a projection for a treatment with no doses")
	}
	if got := utils.FormatDate(projection.Date); got != "2024-01-01" {
		t.Errorf("projection date = %s, want start date 2024-01-01", got)
	}
	if projection.CycleNumber != 1 {
		t.Errorf("cycle = %d, want 1", projection.CycleNumber)
	}
	if projection.Late {
		t.Error("projection on a future start date should not be late")
	}
}

func TestProjectNextDoseFollowsLatestApplied(t *testing.T) {
	treatment := monthlyTreatment("t1", "p1")
	doses := []models.Dose{
		{ID: 1, TreatmentID: "t1", CycleNumber: 1, ApplicationDate: "2024-01-01", Status: models.DoseApplied},
		{ID: 2, TreatmentID: "t1", CycleNumber: 2, ApplicationDate: "2024-01-29", Status: models.DoseApplied},
	}

	projection, ok := ProjectNextDose(treatment, doses, testDay(t, "2024-02-05"))
	if !ok {
		t.Fatal("expected a projection")
	}
	if got := utils.FormatDate(projection.Date); got != "2024-02-26" {
		t.Errorf("projection date = %s, want 2024-02-26", got)
	}
	if projection.CycleNumber != 3 {
		t.Errorf("cycle = %d, want 3", projection.CycleNumber)
	}
}

func TestProjectNextDoseTieBreak(t *testing.T) {
	treatment := monthlyTreatment("t1", "p1")
	// Same application date; the higher cycle wins regardless of slice order.
	doses := []models.Dose{
		{ID: 7, TreatmentID: "t1", CycleNumber: 3, ApplicationDate: "2024-01-29", Status: models.DoseApplied},
		{ID: 4, TreatmentID: "t1", CycleNumber: 2, ApplicationDate: "2024-01-29", Status: models.DoseApplied},
	}

	forward, _ := ProjectNextDose(treatment, doses, testDay(t, "2024-02-01"))
	reversed, _ := ProjectNextDose(treatment, []models.Dose{doses[1], doses[0]}, testDay(t, "2024-02-01"))
	if forward.CycleNumber != 4 || reversed.CycleNumber != 4 {
		t.Errorf("cycles = %d and %d, want 4 from the higher applied cycle", forward.CycleNumber, reversed.CycleNumber)
	}
	if !forward.Date.Equal(reversed.Date) {
		t.Error("projection must not depend on dose slice order")
	}
}

func TestProjectNextDoseDropsStaleProjection(t *testing.T) {
	treatment := monthlyTreatment("t1", "p1")
	if _, ok := ProjectNextDose(treatment, nil, testDay(t, "2024-03-15")); ok {
		t.Error("projection 74 days in the past should be dropped")
	}
	if _, ok := ProjectNextDose(treatment, nil, testDay(t, "2024-02-15")); !ok {
		t.Error("projection 45 days in the past should still be reported")
	}
}

func TestOverdueTreatments(t *testing.T) {
	treatment := monthlyTreatment("t1", "p1")
	dose := models.Dose{ID: 1, TreatmentID: "t1", CycleNumber: 1, ApplicationDate: "2024-01-01", Status: models.DoseApplied}

	// Next dose projects to 2024-01-29. Nine days out is on schedule.
	if entries := OverdueTreatments([]models.Treatment{treatment}, []models.Dose{dose}, testDay(t, "2024-01-20")); len(entries) != 0 {
		t.Fatalf("got %d overdue entries on 2024-01-20, want 0", len(entries))
	}

	entries := OverdueTreatments([]models.Treatment{treatment}, []models.Dose{dose}, testDay(t, "2024-02-05"))
	if len(entries) != 1 {
		t.Fatalf("got %d overdue entries on 2024-02-05, want 1", len(entries))
	}
	entry := entries[0]
	if entry.DaysLate != 7 {
		t.Errorf("days late = %d, want 7", entry.DaysLate)
	}
	if entry.NextDate != "2024-01-29" {
		t.Errorf("next date = %s, want 2024-01-29", entry.NextDate)
	}
	if entry.CycleNumber != 2 {
		t.Errorf("cycle = %d, want 2", entry.CycleNumber)
	}

	// Rejecting the dose removes the treatment from the overdue list.
	dose.Status = models.DoseNotAccepted
	if entries := OverdueTreatments([]models.Treatment{treatment}, []models.Dose{dose}, testDay(t, "2024-02-05")); len(entries) != 0 {
		t.Errorf("got %d overdue entries after dose rejection, want 0", len(entries))
	}
}

func TestOverdueTreatmentsSortedByDaysLate(t *testing.T) {
	first := monthlyTreatment("t1", "p1")
	second := monthlyTreatment("t2", "p2")
	doses := []models.Dose{
		{ID: 1, TreatmentID: "t1", CycleNumber: 1, ApplicationDate: "2024-01-10", Status: models.DoseApplied},
		{ID: 2, TreatmentID: "t2", CycleNumber: 1, ApplicationDate: "2024-01-01", Status: models.DoseApplied},
	}

	entries := OverdueTreatments([]models.Treatment{first, second}, doses, testDay(t, "2024-02-20"))
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].TreatmentID != "t2" {
		t.Errorf("first entry = %s, want the most overdue treatment t2", entries[0].TreatmentID)
	}
}

func TestPendingSurveys(t *testing.T) {
	answered := 8
	zero := 0
	doses := []models.Dose{
		{ID: 1, NurseVisit: true, SurveyStatus: models.SurveyWaiting},
		{ID: 2, NurseVisit: true, SurveyStatus: models.SurveyAnswered, SurveyScore: &answered},
		{ID: 3, NurseVisit: false, SurveyStatus: models.SurveyWaiting},
		{ID: 4, NurseVisit: true, SurveyStatus: models.SurveyAnswered, SurveyScore: &zero},
		{ID: 5, NurseVisit: true, SurveyStatus: models.SurveyNotSent},
	}

	pending := PendingSurveys(doses)
	want := map[uint]bool{1: true, 4: true, 5: true}
	if len(pending) != len(want) {
		t.Fatalf("got %d pending surveys, want %d", len(pending), len(want))
	}
	for _, dose := range pending {
		if !want[dose.ID] {
			t.Errorf("dose %d should not be pending", dose.ID)
		}
	}
}

func TestApproachingConsults(t *testing.T) {
	doses := []models.Dose{
		{ID: 1, LastBeforeConsult: true, ConsultationDate: "2024-03-20"},
		{ID: 2, LastBeforeConsult: true, ConsultationDate: ""},
		{ID: 3, LastBeforeConsult: true, ConsultationDate: "2024-05-01"},
		{ID: 4, LastBeforeConsult: false, ConsultationDate: "2024-03-10"},
		{ID: 5, LastBeforeConsult: true, ConsultationDate: "2024-02-20"},
		{ID: 6, LastBeforeConsult: true, ConsultationDate: "2024-03-05"},
	}

	consults := ApproachingConsults(doses, testDay(t, "2024-03-01"))
	if len(consults) != 3 {
		t.Fatalf("got %d consults, want 3", len(consults))
	}
	if consults[0].ID != 2 {
		t.Errorf("first consult = %d, want the unset date first", consults[0].ID)
	}
	if consults[1].ID != 6 || consults[2].ID != 1 {
		t.Errorf("dated consults in order %d, %d, want 6 then 1", consults[1].ID, consults[2].ID)
	}
}

func TestActivityWindow(t *testing.T) {
	doses := []models.Dose{
		{ID: 1, ApplicationDate: "2024-03-03", Status: models.DosePending},
		{ID: 2, ApplicationDate: "2024-03-02", Status: models.DoseApplied, PaymentStatus: models.PaymentPaid},
		{ID: 3, ApplicationDate: "2024-01-10", Status: models.DosePending},
		{ID: 4, ApplicationDate: "2024-01-10", Status: models.DoseApplied, PaymentStatus: models.PaymentWaitingPix},
		{ID: 5, ApplicationDate: "2024-04-01", Status: models.DosePending},
		{ID: 6, ApplicationDate: "2024-02-28", Status: models.DoseApplied, PaymentStatus: models.PaymentPaid},
	}

	window := ActivityWindow(doses, testDay(t, "2024-03-01"))
	want := []uint{3, 4, 1}
	if len(window) != len(want) {
		t.Fatalf("got %d doses in window, want %d", len(window), len(want))
	}
	for i, id := range want {
		if window[i].ID != id {
			t.Errorf("window[%d] = %d, want %d", i, window[i].ID, id)
		}
	}
}

func TestComputeNPS(t *testing.T) {
	score := func(n int) *int { return &n }
	doses := []models.Dose{
		{ApplicationDate: "2024-03-01", SurveyStatus: models.SurveyAnswered, SurveyScore: score(9)},
		{ApplicationDate: "2024-03-02", SurveyStatus: models.SurveyAnswered, SurveyScore: score(9)},
		{ApplicationDate: "2024-03-03", SurveyStatus: models.SurveyAnswered, SurveyScore: score(6)},
		{ApplicationDate: "2024-03-04", SurveyStatus: models.SurveyAnswered, SurveyScore: score(7)},
		{ApplicationDate: "2024-03-05", SurveyStatus: models.SurveyWaiting},
	}

	result := ComputeNPS(doses, 0, testDay(t, "2024-03-10"))
	if result.Total != 4 || result.Promoters != 2 || result.Detractors != 1 || result.Passives != 1 {
		t.Fatalf("buckets = %+v, want 2 promoters, 1 detractor, 1 passive over 4", result)
	}
	if result.Score == nil || *result.Score != 25 {
		t.Errorf("score = %v, want 25", result.Score)
	}
}

func TestComputeNPSWindow(t *testing.T) {
	score := func(n int) *int { return &n }
	doses := []models.Dose{
		{ApplicationDate: "2024-01-01", SurveyStatus: models.SurveyAnswered, SurveyScore: score(2)},
		{ApplicationDate: "2024-03-05", SurveyStatus: models.SurveyAnswered, SurveyScore: score(10)},
	}

	result := ComputeNPS(doses, 30, testDay(t, "2024-03-10"))
	if result.Total != 1 {
		t.Fatalf("total = %d, want 1 survey inside the 30 day window", result.Total)
	}
	if result.Score == nil || *result.Score != 100 {
		t.Errorf("score = %v, want 100", result.Score)
	}
}

func TestComputeNPSNoData(t *testing.T) {
	result := ComputeNPS(nil, 30, testDay(t, "2024-03-10"))
	if result.Score != nil {
		t.Errorf("score = %v, want nil with no answered surveys", *result.Score)
	}
	if result.Total != 0 {
		t.Errorf("total = %d, want 0", result.Total)
	}
}
