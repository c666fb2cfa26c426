package services

import (
	"InjetaClin/models"
	"InjetaClin/utils"
	"math"
	"sort"
	"time"
)

// Projections older than this many days are dropped so abandoned treatments
// do not clutter the worklists forever.
const projectionCutoffDays = 60

// ProjectedDose is the next expected application for a treatment.
type ProjectedDose struct {
	TreatmentID string    `json:"treatment_id"`
	Date        time.Time `json:"date"`
	CycleNumber int       `json:"cycle_number"`
	Late        bool      `json:"late"`
}

// OverdueEntry is a treatment whose projected next dose date has passed.
type OverdueEntry struct {
	TreatmentID  string `json:"treatment_id"`
	PatientID    string `json:"patient_id"`
	PatientName  string `json:"patient_name"`
	ProtocolName string `json:"protocol_name"`
	Status       string `json:"status"`
	StatusColor  string `json:"status_color"`
	NextDate     string `json:"next_date"`
	CycleNumber  int    `json:"cycle_number"`
	DaysLate     int    `json:"days_late"`
}

// NPSResult aggregates answered satisfaction surveys. Score is nil when no
// answered survey falls inside the window.
type NPSResult struct {
	Score      *int `json:"score"`
	Promoters  int  `json:"promoters"`
	Detractors int  `json:"detractors"`
	Passives   int  `json:"passives"`
	Total      int  `json:"total"`
}

// latestAppliedDose returns the most recent APPLIED dose. Ties on the
// application date break on the higher cycle number, then the higher ID.
func latestAppliedDose(doses []models.Dose) *models.Dose {
	var latest *models.Dose
	var latestDate time.Time
	for i := range doses {
		dose := &doses[i]
		if dose.Status != models.DoseApplied {
			continue
		}
		date, ok := utils.ParseDate(dose.ApplicationDate)
		if !ok {
			continue
		}
		if latest == nil || date.After(latestDate) {
			latest, latestDate = dose, date
			continue
		}
		if date.Equal(latestDate) {
			if dose.CycleNumber > latest.CycleNumber ||
				(dose.CycleNumber == latest.CycleNumber && dose.ID > latest.ID) {
				latest = dose
			}
		}
	}
	return latest
}

// ProjectNextDose computes the next expected dose for a treatment from its
// protocol frequency and applied doses. With no applied dose yet the
// projection falls on the treatment start date at cycle 1. Projections more
// than 60 days in the past are not reported.
func ProjectNextDose(treatment models.Treatment, doses []models.Dose, today time.Time) (ProjectedDose, bool) {
	var date time.Time
	cycle := 1

	if latest := latestAppliedDose(doses); latest != nil {
		applied, _ := utils.ParseDate(latest.ApplicationDate)
		date = utils.AddDays(applied, treatment.Protocol.FrequencyDays)
		cycle = latest.CycleNumber + 1
	} else {
		start, ok := utils.ParseDate(treatment.StartDate)
		if !ok {
			return ProjectedDose{}, false
		}
		date = start
	}

	if utils.DiffInDays(date, today) <= -projectionCutoffDays {
		return ProjectedDose{}, false
	}

	return ProjectedDose{
		TreatmentID: treatment.ID,
		Date:        date,
		CycleNumber: cycle,
		Late:        utils.DiffInDays(date, today) < 0,
	}, true
}

// OverdueTreatments scans all doses and flags each treatment whose latest
// applied dose projects a next date already in the past.
func OverdueTreatments(treatments []models.Treatment, doses []models.Dose, today time.Time) []OverdueEntry {
	byTreatment := groupDosesByTreatment(doses)

	var entries []OverdueEntry
	for _, treatment := range treatments {
		latest := latestAppliedDose(byTreatment[treatment.ID])
		if latest == nil {
			continue
		}
		applied, _ := utils.ParseDate(latest.ApplicationDate)
		next := utils.AddDays(applied, treatment.Protocol.FrequencyDays)
		diff := utils.DiffInDays(next, today)
		if diff >= 0 {
			continue
		}
		entries = append(entries, OverdueEntry{
			TreatmentID:  treatment.ID,
			PatientID:    treatment.PatientID,
			PatientName:  treatment.Patient.FirstName + " " + treatment.Patient.LastName,
			ProtocolName: treatment.Protocol.Name,
			Status:       treatment.Status,
			StatusColor:  utils.TreatmentStatusColor(treatment.Status),
			NextDate:     utils.FormatDate(next),
			CycleNumber:  latest.CycleNumber + 1,
			DaysLate:     -diff,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].DaysLate > entries[j].DaysLate
	})
	return entries
}

// PendingSurveys lists nurse-visit doses whose satisfaction survey still
// needs attention.
func PendingSurveys(doses []models.Dose) []models.Dose {
	var pending []models.Dose
	for _, dose := range doses {
		if !dose.NurseVisit {
			continue
		}
		unanswered := dose.SurveyStatus == models.SurveyWaiting ||
			dose.SurveyStatus == models.SurveySent ||
			dose.SurveyStatus == models.SurveyNotSent
		if unanswered || dose.SurveyScore == nil || *dose.SurveyScore == 0 {
			pending = append(pending, dose)
		}
	}
	return pending
}

// ApproachingConsults lists last-before-consult doses whose consultation date
// is unset or within the next 30 days. Unset dates sort first.
func ApproachingConsults(doses []models.Dose, today time.Time) []models.Dose {
	var consults []models.Dose
	for _, dose := range doses {
		if !dose.LastBeforeConsult {
			continue
		}
		date, ok := utils.ParseDate(dose.ConsultationDate)
		if !ok {
			consults = append(consults, dose)
			continue
		}
		diff := utils.DiffInDays(date, today)
		if diff >= 0 && diff <= 30 {
			consults = append(consults, dose)
		}
	}
	sort.SliceStable(consults, func(i, j int) bool {
		di, iOK := utils.ParseDate(consults[i].ConsultationDate)
		dj, jOK := utils.ParseDate(consults[j].ConsultationDate)
		if !iOK {
			return jOK
		}
		if !jOK {
			return false
		}
		return di.Before(dj)
	})
	return consults
}

// ActivityWindow is the actionable worklist: doses within a week either way
// of today, plus older doses still pending application or payment. Doses both
// applied and paid are settled and excluded.
func ActivityWindow(doses []models.Dose, today time.Time) []models.Dose {
	var window []models.Dose
	for _, dose := range doses {
		if dose.Status == models.DoseApplied && dose.PaymentStatus == models.PaymentPaid {
			continue
		}
		date, ok := utils.ParseDate(dose.ApplicationDate)
		if !ok {
			continue
		}
		diff := utils.DiffInDays(date, today)
		include := diff >= -7 && diff <= 7
		if !include && diff < -7 {
			include = dose.Status == models.DosePending || dose.PaymentStatus != models.PaymentPaid
		}
		if include {
			window = append(window, dose)
		}
	}
	sort.SliceStable(window, func(i, j int) bool {
		di, _ := utils.ParseDate(window[i].ApplicationDate)
		dj, _ := utils.ParseDate(window[j].ApplicationDate)
		return di.Before(dj)
	})
	return window
}

// ComputeNPS calculates the Net Promoter Score over answered surveys applied
// within the last windowDays days. A windowDays of zero disables the window.
// Score 9-10 is a promoter, 0-6 a detractor, 7-8 a passive; the divisor is
// the full answered count.
func ComputeNPS(doses []models.Dose, windowDays int, today time.Time) NPSResult {
	var result NPSResult
	var cutoff time.Time
	if windowDays > 0 {
		cutoff = utils.AddDays(today, -windowDays)
	}

	for _, dose := range doses {
		if dose.SurveyStatus != models.SurveyAnswered || dose.SurveyScore == nil {
			continue
		}
		if windowDays > 0 {
			date, ok := utils.ParseDate(dose.ApplicationDate)
			if !ok || date.Before(cutoff) {
				continue
			}
		}
		result.Total++
		switch score := *dose.SurveyScore; {
		case score >= 9:
			result.Promoters++
		case score <= 6:
			result.Detractors++
		default:
			result.Passives++
		}
	}

	if result.Total == 0 {
		return result
	}
	score := int(math.Round(float64(result.Promoters-result.Detractors) / float64(result.Total) * 100))
	result.Score = &score
	return result
}

func groupDosesByTreatment(doses []models.Dose) map[string][]models.Dose {
	grouped := make(map[string][]models.Dose)
	for _, dose := range doses {
		grouped[dose.TreatmentID] = append(grouped[dose.TreatmentID], dose)
	}
	return grouped
}
