package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"InjetaClin/utils"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"
)

// ContactService drives the nursing-contact workflow: expanding milestones
// into events, dismissing them idempotently and sending reminder emails.
type ContactService struct {
	treatments *repositories.TreatmentRepository
	dismissed  *repositories.DismissedLogRepository
}

func NewContactService(treatments *repositories.TreatmentRepository, dismissed *repositories.DismissedLogRepository) *ContactService {
	return &ContactService{treatments: treatments, dismissed: dismissed}
}

func (s *ContactService) Upcoming(ctx context.Context, today time.Time) ([]ContactEvent, error) {
	treatments, dismissed, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return UpcomingContacts(treatments, dismissed, today), nil
}

func (s *ContactService) Timeline(ctx context.Context, patientID string, today time.Time) ([]ContactEvent, error) {
	treatments, dismissed, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return TimelineContacts(treatments, patientID, dismissed, today), nil
}

// Dismiss marks a contact event as handled, optionally attaching patient
// feedback. Dismissing the same contact twice leaves a single entry.
func (s *ContactService) Dismiss(ctx context.Context, entry *models.DismissedLog) error {
	treatmentID, day, err := parseContactKey(entry.ContactID)
	if err != nil {
		return err
	}
	entry.TreatmentID = treatmentID
	entry.MilestoneDay = day
	return s.dismissed.Create(ctx, entry)
}

// SendReminder emails the guardian for a contact event. A missing guardian
// email is not an error; the nurse falls back to a phone call.
func (s *ContactService) SendReminder(ctx context.Context, contactID string, today time.Time) error {
	events, err := s.Upcoming(ctx, today)
	if err != nil {
		return err
	}
	for _, event := range events {
		if event.ContactID != contactID {
			continue
		}
		if event.GuardianEmail == "" {
			log.Printf("No guardian email for contact %s, skipping reminder", contactID)
			return nil
		}
		return utils.SendContactReminderEmail(event.GuardianEmail, event.PatientName, event.ProtocolName, event.Message)
	}
	return fmt.Errorf("contact %s not found among upcoming events", contactID)
}

func (s *ContactService) DismissedLogs(ctx context.Context) ([]models.DismissedLog, error) {
	return s.dismissed.GetAll(ctx)
}

func (s *ContactService) UpdateDismissedLog(ctx context.Context, entry *models.DismissedLog) error {
	return s.dismissed.Update(ctx, entry)
}

func (s *ContactService) snapshot(ctx context.Context) ([]models.Treatment, map[string]bool, error) {
	treatments, err := s.treatments.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	logs, err := s.dismissed.GetAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	dismissed := make(map[string]bool, len(logs))
	for _, entry := range logs {
		dismissed[entry.ContactID] = true
	}
	return treatments, dismissed, nil
}

// parseContactKey splits "<treatmentID>_m_<day>" back into its parts.
func parseContactKey(contactID string) (string, int, error) {
	idx := strings.LastIndex(contactID, "_m_")
	if idx <= 0 {
		return "", 0, fmt.Errorf("malformed contact id %q", contactID)
	}
	day, err := strconv.Atoi(contactID[idx+3:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed contact id %q", contactID)
	}
	return contactID[:idx], day, nil
}
