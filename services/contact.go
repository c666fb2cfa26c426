package services

import (
	"InjetaClin/models"
	"InjetaClin/utils"
	"fmt"
	"sort"
	"time"
)

// ContactEvent is a concrete calendar contact expanded from a protocol
// milestone for one ongoing treatment.
type ContactEvent struct {
	ContactID     string `json:"contact_id"`
	TreatmentID   string `json:"treatment_id"`
	PatientID     string `json:"patient_id"`
	PatientName   string `json:"patient_name"`
	GuardianName  string `json:"guardian_name"`
	GuardianPhone string `json:"guardian_phone"`
	GuardianEmail string `json:"guardian_email"`
	ProtocolName  string `json:"protocol_name"`
	Message       string `json:"message"`
	ContactDate   string `json:"contact_date"`
	DiffDays      int    `json:"diff_days"`
	IsMonitoring  bool   `json:"is_monitoring"`
}

// ContactKey builds the deterministic contact identifier used as the
// dismissal idempotency key.
func ContactKey(treatmentID string, milestoneDay int) string {
	return fmt.Sprintf("%s_m_%d", treatmentID, milestoneDay)
}

// expandContacts turns every milestone of every ongoing treatment into a
// candidate event, skipping dismissed ones. include decides windowing.
func expandContacts(treatments []models.Treatment, dismissed map[string]bool, today time.Time, include func(diff int) bool) []ContactEvent {
	var events []ContactEvent
	for _, treatment := range treatments {
		if treatment.Status != models.TreatmentOngoing {
			continue
		}
		start, ok := utils.ParseDate(treatment.StartDate)
		if !ok {
			continue
		}
		for _, milestone := range treatment.Protocol.Milestones {
			contactID := ContactKey(treatment.ID, milestone.Day)
			if dismissed[contactID] {
				continue
			}
			contactDate := utils.AddDays(start, milestone.Day)
			diff := utils.DiffInDays(contactDate, today)
			if !include(diff) {
				continue
			}
			events = append(events, ContactEvent{
				ContactID:     contactID,
				TreatmentID:   treatment.ID,
				PatientID:     treatment.PatientID,
				PatientName:   treatment.Patient.FirstName + " " + treatment.Patient.LastName,
				GuardianName:  treatment.Patient.GuardianName,
				GuardianPhone: treatment.Patient.GuardianPhone,
				GuardianEmail: treatment.Patient.GuardianEmail,
				ProtocolName:  treatment.Protocol.Name,
				Message:       milestone.Message,
				ContactDate:   utils.FormatDate(contactDate),
				DiffDays:      diff,
				IsMonitoring:  treatment.Protocol.Category == models.CategoryMonitoring,
			})
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].ContactDate < events[j].ContactDate
	})
	return events
}

// UpcomingContacts lists pending contact events no more than 60 days overdue,
// with no upper bound on the future.
func UpcomingContacts(treatments []models.Treatment, dismissed map[string]bool, today time.Time) []ContactEvent {
	return expandContacts(treatments, dismissed, today, func(diff int) bool {
		return diff >= -60
	})
}

// TimelineContacts lists a patient's contact events inside the tighter window
// used by the per-patient history view.
func TimelineContacts(treatments []models.Treatment, patientID string, dismissed map[string]bool, today time.Time) []ContactEvent {
	events := expandContacts(treatments, dismissed, today, func(diff int) bool {
		return diff > -10 && diff < 90
	})
	var filtered []ContactEvent
	for _, event := range events {
		if event.PatientID == patientID {
			filtered = append(filtered, event)
		}
	}
	return filtered
}
