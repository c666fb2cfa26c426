package services

import (
	"InjetaClin/models"
	"InjetaClin/repositories"
	"context"
	"time"
)

// ScheduleService computes the dashboard worklists from a fresh snapshot of
// treatments and doses on every call. Nothing derived is persisted.
type ScheduleService struct {
	treatments *repositories.TreatmentRepository
	doses      *repositories.DoseRepository
}

func NewScheduleService(treatments *repositories.TreatmentRepository, doses *repositories.DoseRepository) *ScheduleService {
	return &ScheduleService{treatments: treatments, doses: doses}
}

func (s *ScheduleService) Overdue(ctx context.Context, today time.Time) ([]OverdueEntry, error) {
	treatments, err := s.treatments.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	doses, err := s.doses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return OverdueTreatments(treatments, doses, today), nil
}

func (s *ScheduleService) PendingSurveys(ctx context.Context) ([]models.Dose, error) {
	doses, err := s.doses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return PendingSurveys(doses), nil
}

func (s *ScheduleService) ApproachingConsults(ctx context.Context, today time.Time) ([]models.Dose, error) {
	doses, err := s.doses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ApproachingConsults(doses, today), nil
}

func (s *ScheduleService) Activity(ctx context.Context, today time.Time) ([]models.Dose, error) {
	doses, err := s.doses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return ActivityWindow(doses, today), nil
}

func (s *ScheduleService) NPS(ctx context.Context, windowDays int, today time.Time) (NPSResult, error) {
	doses, err := s.doses.GetAll(ctx)
	if err != nil {
		return NPSResult{}, err
	}
	return ComputeNPS(doses, windowDays, today), nil
}

// ProjectTreatment returns the next expected dose for one treatment, or nil
// when the treatment is unknown or its projection fell out of range.
func (s *ScheduleService) ProjectTreatment(ctx context.Context, treatmentID string, today time.Time) (*ProjectedDose, error) {
	treatment, err := s.treatments.GetByID(ctx, treatmentID)
	if err != nil {
		return nil, err
	}
	if treatment == nil {
		return nil, nil
	}
	doses, err := s.doses.GetByTreatment(ctx, treatmentID)
	if err != nil {
		return nil, err
	}
	projection, ok := ProjectNextDose(*treatment, doses, today)
	if !ok {
		return nil, nil
	}
	return &projection, nil
}
