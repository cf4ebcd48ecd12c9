package service

import (
	"context"
	"errors"
	"sync"

	"alcyxob/training-log/internal/draft"
	"alcyxob/training-log/internal/repository"
	"alcyxob/training-log/internal/session"
	"alcyxob/training-log/internal/templates"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNoActiveSession = errors.New("no active session for template")
	ErrTimerNotFound   = errors.New("no rest timer at that index")
	ErrNotTabata       = errors.New("session has no tabata driver")
)

// TimerView is the snapshot shape for a single rest timer.
type TimerView struct {
	Remaining int  `json:"remaining"`
	Running   bool `json:"running"`
}

// SessionService owns the active session machines, at most one per
// template. Starting a template that already has a machine returns the
// existing one, so a page reload resumes instead of restarting.
type SessionService struct {
	mu       sync.Mutex
	machines map[string]*session.Machine

	log       *logrus.Logger
	templates *templates.Provider
	drafts    draft.Store
	records   repository.RecordRepository
}

func NewSessionService(log *logrus.Logger, tmpls *templates.Provider, drafts draft.Store, records repository.RecordRepository) *SessionService {
	return &SessionService{
		machines:  make(map[string]*session.Machine),
		log:       log,
		templates: tmpls,
		drafts:    drafts,
		records:   records,
	}
}

// Start resumes or creates the session for a template and returns its
// snapshot. The machine rehydrates any persisted draft itself.
func (s *SessionService) Start(ctx context.Context, templateID string) (session.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.machines[templateID]; ok {
		return m.Snapshot(), nil
	}

	tmpl, err := s.templates.Get(ctx, templateID)
	if err != nil {
		return session.Snapshot{}, err
	}
	m := session.NewMachine(ctx, s.log, *tmpl, s.drafts, s.records)
	s.machines[templateID] = m
	return m.Snapshot(), nil
}

// Snapshot returns the current state of an active session.
func (s *SessionService) Snapshot(templateID string) (session.Snapshot, error) {
	m, err := s.machine(templateID)
	if err != nil {
		return session.Snapshot{}, err
	}
	return m.Snapshot(), nil
}

func (s *SessionService) UpdateSet(ctx context.Context, templateID string, exercise, set int, patch session.SetPatch) error {
	m, err := s.machine(templateID)
	if err != nil {
		return err
	}
	return m.UpdateSet(ctx, exercise, set, patch)
}

func (s *SessionService) AddSet(ctx context.Context, templateID string, exercise int) error {
	m, err := s.machine(templateID)
	if err != nil {
		return err
	}
	return m.AddSet(ctx, exercise)
}

func (s *SessionService) RemoveSet(ctx context.Context, templateID string, exercise, set int) error {
	m, err := s.machine(templateID)
	if err != nil {
		return err
	}
	return m.RemoveSet(ctx, exercise, set)
}

func (s *SessionService) ToggleExpand(ctx context.Context, templateID string, exercise int) error {
	m, err := s.machine(templateID)
	if err != nil {
		return err
	}
	return m.ToggleExpand(ctx, exercise)
}

func (s *SessionService) ToggleInfo(ctx context.Context, templateID string, exercise int) error {
	m, err := s.machine(templateID)
	if err != nil {
		return err
	}
	return m.ToggleInfo(ctx, exercise)
}

func (s *SessionService) UpdateCardio(ctx context.Context, templateID string, patch session.CardioPatch) error {
	m, err := s.machine(templateID)
	if err != nil {
		return err
	}
	return m.UpdateCardio(ctx, patch)
}

// ToggleRestTimer starts or pauses one exercise's rest timer; a quick
// second tap resets it instead.
func (s *SessionService) ToggleRestTimer(templateID string, exercise int) (TimerView, error) {
	m, err := s.machine(templateID)
	if err != nil {
		return TimerView{}, err
	}
	t := m.RestTimer(exercise)
	if t == nil {
		return TimerView{}, ErrTimerNotFound
	}
	t.Toggle()
	return TimerView{Remaining: t.Remaining(), Running: t.Running()}, nil
}

// ResetRestTimer stops one rest timer and restores its full duration.
func (s *SessionService) ResetRestTimer(templateID string, exercise int) (TimerView, error) {
	m, err := s.machine(templateID)
	if err != nil {
		return TimerView{}, err
	}
	t := m.RestTimer(exercise)
	if t == nil {
		return TimerView{}, ErrTimerNotFound
	}
	t.Reset()
	return TimerView{Remaining: t.Remaining(), Running: t.Running()}, nil
}

// ToggleTabata starts or pauses the Tabata driver.
func (s *SessionService) ToggleTabata(templateID string) (session.TabataState, error) {
	m, err := s.machine(templateID)
	if err != nil {
		return session.TabataState{}, err
	}
	d := m.TabataDriver()
	if d == nil {
		return session.TabataState{}, ErrNotTabata
	}
	d.Toggle()
	return d.Snapshot(), nil
}

// ResetTabata restores the Tabata driver to its idle state.
func (s *SessionService) ResetTabata(templateID string) (session.TabataState, error) {
	m, err := s.machine(templateID)
	if err != nil {
		return session.TabataState{}, err
	}
	d := m.TabataDriver()
	if d == nil {
		return session.TabataState{}, ErrNotTabata
	}
	d.Reset()
	return d.Snapshot(), nil
}

// CompleteTabata stamps the fixed completion values onto the cardio
// draft, the same path the driver's own completion callback takes.
func (s *SessionService) CompleteTabata(ctx context.Context, templateID string) error {
	m, err := s.machine(templateID)
	if err != nil {
		return err
	}
	return m.ApplyTabataCompletion(ctx)
}

// Save finalizes the session. On success the machine is released; a
// failed save keeps it registered so the user can retry.
func (s *SessionService) Save(ctx context.Context, templateID string) (primitive.ObjectID, error) {
	m, err := s.machine(templateID)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, err := m.Save(ctx)
	if err != nil {
		return primitive.NilObjectID, err
	}
	s.remove(templateID)
	return id, nil
}

// Abandon discards the session and releases the machine. Rejected
// while a save is in flight.
func (s *SessionService) Abandon(ctx context.Context, templateID string) error {
	m, err := s.machine(templateID)
	if err != nil {
		return err
	}
	if err := m.Abandon(ctx); err != nil {
		return err
	}
	s.remove(templateID)
	return nil
}

func (s *SessionService) machine(templateID string) (*session.Machine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.machines[templateID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return m, nil
}

func (s *SessionService) remove(templateID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.machines, templateID)
}
