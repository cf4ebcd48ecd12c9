package service

import (
	"context"
	"testing"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/repository"
	"alcyxob/training-log/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSchedule struct {
	stored *domain.WeeklySchedule
}

func (s *stubSchedule) Get(_ context.Context) (*domain.WeeklySchedule, error) {
	if s.stored == nil {
		return nil, repository.ErrNotFound
	}
	return s.stored, nil
}

func (s *stubSchedule) Put(_ context.Context, schedule *domain.WeeklySchedule) error {
	s.stored = schedule
	return nil
}

func TestSchedule_GetEmptyWhenUnset(t *testing.T) {
	svc := NewScheduleService(&stubSchedule{})

	sched, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ScheduleDocID, sched.ID)
	assert.Empty(t, sched.Days)
}

func TestSchedule_PutNormalizesDays(t *testing.T) {
	repo := &stubSchedule{}
	svc := NewScheduleService(repo)

	sched, err := svc.Put(context.Background(), map[string][]string{
		" Monday ": {"lower-1", "tabata"},
		"friday":   {"upper-pull"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"lower-1", "tabata"}, sched.Days["monday"])
	assert.Equal(t, []string{"upper-pull"}, sched.Days["friday"])

	got, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, sched.Days, got.Days)
}

func TestSchedule_PutRejectsUnknownDay(t *testing.T) {
	svc := NewScheduleService(&stubSchedule{})
	_, err := svc.Put(context.Background(), map[string][]string{"someday": {"lower-1"}})
	assert.ErrorIs(t, err, session.ErrValidation)
}
