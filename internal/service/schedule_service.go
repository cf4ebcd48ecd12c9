package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/repository"
	"alcyxob/training-log/internal/session"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ScheduleService reads and replaces the weekly training schedule.
type ScheduleService struct {
	schedule repository.ScheduleRepository
}

func NewScheduleService(schedule repository.ScheduleRepository) *ScheduleService {
	return &ScheduleService{schedule: schedule}
}

// Get returns the current schedule. A missing document yields an empty
// schedule rather than an error; the log starts with no plan.
func (s *ScheduleService) Get(ctx context.Context) (*domain.WeeklySchedule, error) {
	sched, err := s.schedule.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &domain.WeeklySchedule{ID: domain.ScheduleDocID, Days: map[string][]string{}}, nil
		}
		return nil, err
	}
	return sched, nil
}

// Put replaces the schedule wholesale. Day keys are lowercased and
// must be real weekdays.
func (s *ScheduleService) Put(ctx context.Context, days map[string][]string) (*domain.WeeklySchedule, error) {
	normalized := make(map[string][]string, len(days))
	for day, tmpls := range days {
		key := strings.ToLower(strings.TrimSpace(day))
		if !weekdays[key] {
			return nil, fmt.Errorf("%w: unknown weekday %q", session.ErrValidation, day)
		}
		normalized[key] = tmpls
	}

	sched := &domain.WeeklySchedule{ID: domain.ScheduleDocID, Days: normalized}
	if err := s.schedule.Put(ctx, sched); err != nil {
		return nil, err
	}
	return sched, nil
}
