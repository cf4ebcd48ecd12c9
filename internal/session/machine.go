package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/draft"
	"alcyxob/training-log/internal/history"
	"alcyxob/training-log/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// State of the session machine. Loading happens inside NewMachine: the
// draft aggregate rehydrates as one unit, so the machine is never
// observable half-loaded.
type State string

const (
	StateActive State = "active"
	StateSaving State = "saving"
	StateSaved  State = "saved"
)

var (
	// ErrSaveInFlight rejects a second save, and abandon, while a save
	// is pending. The pending write proceeds untouched.
	ErrSaveInFlight = errors.New("save already in progress")
	// ErrSessionClosed rejects mutations after a successful save.
	ErrSessionClosed = errors.New("session already saved")
	// ErrNoSuchExercise and ErrNoSuchSet reject out-of-range indices.
	ErrNoSuchExercise = errors.New("no such exercise")
	ErrNoSuchSet      = errors.New("no such set")
)

// SetPatch is a partial update to one set; nil fields are untouched.
type SetPatch struct {
	Weight    *string `json:"weight,omitempty"`
	Reps      *string `json:"reps,omitempty"`
	Rpe       *string `json:"rpe,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// CardioPatch is a partial update to the cardio fields.
type CardioPatch struct {
	DurationMinutes *string `json:"durationMinutes,omitempty"`
	IntensityRpe    *string `json:"intensityRpe,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	Completed       *bool   `json:"completed,omitempty"`
	DistanceMiles   *string `json:"distanceMiles,omitempty"`
	Equipment       *string `json:"equipment,omitempty"`
}

// Snapshot is a point-in-time view of the machine for clients.
type Snapshot struct {
	State  State               `json:"state"`
	Draft  domain.SessionDraft `json:"draft"`
	Tabata *TabataState        `json:"tabata,omitempty"`
}

// Machine owns one in-progress session. Every mutation runs under its
// mutex and mirrors the whole draft aggregate to the draft store; the
// mirror is best-effort, so a broken draft store degrades the session
// to memory-only instead of blocking the workout.
type Machine struct {
	mu      sync.Mutex
	log     *logrus.Entry
	tmpl    domain.WorkoutTemplate
	draft   domain.SessionDraft
	drafts  draft.Store
	records repository.RecordRepository
	state   State

	restTimers []*Timer
	tabata     *Tabata
}

// NewMachine constructs the machine for a template, rehydrating any
// stored draft. A stored aggregate wins over template defaults so a
// reload never flashes empty fields over real in-flight data.
func NewMachine(ctx context.Context, log *logrus.Logger, tmpl domain.WorkoutTemplate, drafts draft.Store, records repository.RecordRepository, timerOpts ...TimerOption) *Machine {
	m := &Machine{
		log:     log.WithField("templateId", tmpl.ID),
		tmpl:    tmpl,
		drafts:  drafts,
		records: records,
		state:   StateActive,
	}

	m.draft = domain.NewSessionDraft(tmpl)
	if stored, ok, err := drafts.Get(ctx, draft.SessionKey(tmpl.ID)); err != nil {
		m.log.WithError(err).Warn("draft store unavailable, session is memory-only")
	} else if ok {
		var d domain.SessionDraft
		if err := json.Unmarshal(stored, &d); err != nil {
			m.log.WithError(err).Warn("stored draft corrupted, starting fresh")
		} else if d.TemplateID == tmpl.ID {
			m.draft = d
		}
	}

	if tmpl.Type.IsStrength() {
		m.restTimers = make([]*Timer, len(tmpl.Exercises))
		for i, ex := range tmpl.Exercises {
			m.restTimers[i] = NewTimer(ex.RestPeriodSeconds, timerOpts...)
		}
	}
	if tmpl.ID == domain.TemplateTabata {
		m.tabata = NewTabata()
		m.tabata.OnComplete(func() {
			if err := m.ApplyTabataCompletion(context.Background()); err != nil {
				m.log.WithError(err).Warn("tabata completion not applied")
			}
		})
	}
	return m
}

// Snapshot returns the machine's current state and draft.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := Snapshot{State: m.state, Draft: m.draft}
	if m.tabata != nil {
		ts := m.tabata.Snapshot()
		s.Tabata = &ts
	}
	return s
}

// RestTimer returns the rest timer for one exercise, or nil when the
// index is out of range or the session has no rest timers.
func (m *Machine) RestTimer(exercise int) *Timer {
	m.mu.Lock()
	defer m.mu.Unlock()
	if exercise < 0 || exercise >= len(m.restTimers) {
		return nil
	}
	return m.restTimers[exercise]
}

// TabataDriver returns the session's Tabata driver, nil for other
// templates.
func (m *Machine) TabataDriver() *Tabata {
	return m.tabata
}

// UpdateSet applies a partial update to one set.
func (m *Machine) UpdateSet(ctx context.Context, exercise, set int, patch SetPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.mutableLocked(); err != nil {
		return err
	}
	entry, err := m.setLocked(exercise, set)
	if err != nil {
		return err
	}
	if patch.Weight != nil {
		entry.Weight = *patch.Weight
	}
	if patch.Reps != nil {
		entry.Reps = *patch.Reps
	}
	if patch.Rpe != nil {
		entry.Rpe = *patch.Rpe
	}
	if patch.Completed != nil {
		entry.Completed = *patch.Completed
	}
	m.mirrorLocked(ctx)
	return nil
}

// AddSet appends an empty set to an exercise. Always allowed.
func (m *Machine) AddSet(ctx context.Context, exercise int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.mutableLocked(); err != nil {
		return err
	}
	if exercise < 0 || exercise >= len(m.draft.Exercises) {
		return ErrNoSuchExercise
	}
	ex := &m.draft.Exercises[exercise]
	ex.Sets = append(ex.Sets, domain.SetEntry{})
	m.mirrorLocked(ctx)
	return nil
}

// RemoveSet drops one set from an exercise. Removing the last
// remaining set is a no-op: an exercise always keeps at least one.
func (m *Machine) RemoveSet(ctx context.Context, exercise, set int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.mutableLocked(); err != nil {
		return err
	}
	if exercise < 0 || exercise >= len(m.draft.Exercises) {
		return ErrNoSuchExercise
	}
	ex := &m.draft.Exercises[exercise]
	if set < 0 || set >= len(ex.Sets) {
		return ErrNoSuchSet
	}
	if len(ex.Sets) <= 1 {
		return nil
	}
	ex.Sets = append(ex.Sets[:set], ex.Sets[set+1:]...)
	m.mirrorLocked(ctx)
	return nil
}

// ToggleExpand expands one exercise, collapsing any other; toggling
// the expanded one collapses it.
func (m *Machine) ToggleExpand(ctx context.Context, exercise int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.mutableLocked(); err != nil {
		return err
	}
	if m.draft.ExpandedExercise == exercise {
		m.draft.ExpandedExercise = -1
	} else {
		m.draft.ExpandedExercise = exercise
	}
	m.mirrorLocked(ctx)
	return nil
}

// ToggleInfo opens one exercise's description panel, closing any
// other. Independent of expansion.
func (m *Machine) ToggleInfo(ctx context.Context, exercise int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.mutableLocked(); err != nil {
		return err
	}
	if m.draft.InfoVisible == exercise {
		m.draft.InfoVisible = -1
	} else {
		m.draft.InfoVisible = exercise
	}
	m.mirrorLocked(ctx)
	return nil
}

// UpdateCardio applies a partial update to the cardio fields.
func (m *Machine) UpdateCardio(ctx context.Context, patch CardioPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.mutableLocked(); err != nil {
		return err
	}
	if m.draft.Cardio == nil {
		return fmt.Errorf("template %s is not a cardio session", m.tmpl.ID)
	}
	c := m.draft.Cardio
	if patch.DurationMinutes != nil {
		c.DurationMinutes = *patch.DurationMinutes
	}
	if patch.IntensityRpe != nil {
		c.IntensityRpe = *patch.IntensityRpe
	}
	if patch.Notes != nil {
		c.Notes = *patch.Notes
	}
	if patch.Completed != nil {
		c.Completed = *patch.Completed
	}
	if patch.DistanceMiles != nil {
		c.DistanceMiles = *patch.DistanceMiles
	}
	if patch.Equipment != nil {
		c.Equipment = *patch.Equipment
	}
	m.mirrorLocked(ctx)
	return nil
}

// ApplyTabataCompletion records a finished Tabata run: 4 minutes at
// maximum intensity, marked complete.
func (m *Machine) ApplyTabataCompletion(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.mutableLocked(); err != nil {
		return err
	}
	if m.draft.Cardio == nil {
		return fmt.Errorf("template %s is not a cardio session", m.tmpl.ID)
	}
	m.draft.Cardio.DurationMinutes = "4"
	m.draft.Cardio.IntensityRpe = "10"
	m.draft.Cardio.Completed = true
	m.mirrorLocked(ctx)
	return nil
}

// Save validates the draft, writes the historical record, and purges
// the draft. Validation failure and write failure both leave the
// machine Active with the draft intact; only a successful write is
// terminal. Only one save may be in flight.
func (m *Machine) Save(ctx context.Context) (primitive.ObjectID, error) {
	m.mu.Lock()
	switch m.state {
	case StateSaving:
		m.mu.Unlock()
		return primitive.NilObjectID, ErrSaveInFlight
	case StateSaved:
		m.mu.Unlock()
		return primitive.NilObjectID, ErrSessionClosed
	}
	if err := validateDraft(m.tmpl, m.draft); err != nil {
		m.mu.Unlock()
		return primitive.NilObjectID, err
	}
	m.state = StateSaving
	record := history.NewRecord(m.tmpl, m.draft)
	m.mu.Unlock()

	// The write happens outside the lock so timers keep ticking and
	// snapshots stay readable while the request is in flight.
	id, err := m.records.Create(ctx, &record)

	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.state = StateActive
		return primitive.NilObjectID, fmt.Errorf("saving workout: %w", err)
	}
	m.state = StateSaved
	m.stopTimersLocked()
	if derr := m.drafts.Delete(ctx, draft.SessionKey(m.tmpl.ID)); derr != nil {
		// The record is saved; a leftover draft is cosmetic.
		m.log.WithError(derr).Warn("failed to purge draft after save")
	}
	return id, nil
}

// Abandon discards the session: timers cancelled, draft purged.
// Suppressed while a save is in flight so cleanup cannot race the
// pending write.
func (m *Machine) Abandon(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateSaving {
		return ErrSaveInFlight
	}
	m.stopTimersLocked()
	if m.state == StateSaved {
		return nil
	}
	m.state = StateSaved
	if err := m.drafts.Delete(ctx, draft.SessionKey(m.tmpl.ID)); err != nil {
		m.log.WithError(err).Warn("failed to purge draft on abandon")
	}
	return nil
}

// mutableLocked gates mutations on the Active state.
func (m *Machine) mutableLocked() error {
	switch m.state {
	case StateSaving:
		return ErrSaveInFlight
	case StateSaved:
		return ErrSessionClosed
	}
	return nil
}

func (m *Machine) setLocked(exercise, set int) (*domain.SetEntry, error) {
	if exercise < 0 || exercise >= len(m.draft.Exercises) {
		return nil, ErrNoSuchExercise
	}
	ex := &m.draft.Exercises[exercise]
	if set < 0 || set >= len(ex.Sets) {
		return nil, ErrNoSuchSet
	}
	return &ex.Sets[set], nil
}

// mirrorLocked writes the draft aggregate to the draft store. Errors
// are logged, never surfaced: losing crash-resilience is preferable to
// blocking the workout.
func (m *Machine) mirrorLocked(ctx context.Context) {
	data, err := json.Marshal(m.draft)
	if err != nil {
		m.log.WithError(err).Error("draft marshal failed")
		return
	}
	if err := m.drafts.Set(ctx, draft.SessionKey(m.tmpl.ID), data); err != nil {
		m.log.WithError(err).Warn("draft mirror failed, continuing in memory")
	}
}

// stopTimersLocked cancels every timer owned by the session. Timers
// have no life beyond their session.
func (m *Machine) stopTimersLocked() {
	for _, t := range m.restTimers {
		t.Pause()
	}
	if m.tabata != nil {
		m.tabata.Pause()
	}
}
