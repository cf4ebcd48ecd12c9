package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"alcyxob/training-log/internal/domain"
	"alcyxob/training-log/internal/draft"
	"alcyxob/training-log/internal/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubRecords implements repository.RecordRepository in memory, with
// optional write-failure injection and a gate to hold a write open.
type stubRecords struct {
	mu      sync.Mutex
	records []domain.CompletedWorkoutRecord
	failErr error
	gate    chan struct{} // when set, Create blocks until the gate closes
}

func (s *stubRecords) Create(_ context.Context, record *domain.CompletedWorkoutRecord) (primitive.ObjectID, error) {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failErr != nil {
		return primitive.NilObjectID, s.failErr
	}
	record.ID = primitive.NewObjectID()
	s.records = append(s.records, *record)
	return record.ID, nil
}

func (s *stubRecords) GetByID(_ context.Context, id primitive.ObjectID) (*domain.CompletedWorkoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.records[i].ID == id {
			r := s.records[i]
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *stubRecords) GetAll(_ context.Context) ([]domain.CompletedWorkoutRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CompletedWorkoutRecord(nil), s.records...), nil
}

func (s *stubRecords) Delete(_ context.Context, id primitive.ObjectID) error {
	return repository.ErrDeleteFailed
}

func (s *stubRecords) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func hypertrophyTemplate() domain.WorkoutTemplate {
	return domain.WorkoutTemplate{
		ID:   "lower-1",
		Name: "Lower Body 1",
		Type: domain.WorkoutHypertrophy,
		Exercises: []domain.ExercisePlan{
			{Name: "Back squat", TargetSets: 3, TargetReps: "10", TargetRpe: 7, RestPeriodSeconds: 150},
			{Name: "Leg curl", TargetSets: 2, TargetReps: "15", TargetRpe: 9, RestPeriodSeconds: 60},
		},
	}
}

func cardioTemplate(id string) domain.WorkoutTemplate {
	return domain.WorkoutTemplate{ID: id, Name: "Cardio", Type: domain.WorkoutCardio}
}

func fillSets(t *testing.T, m *Machine, weight, reps, rpe string) {
	t.Helper()
	snap := m.Snapshot()
	for i, ex := range snap.Draft.Exercises {
		for j := range ex.Sets {
			err := m.UpdateSet(context.Background(), i, j, SetPatch{Weight: &weight, Reps: &reps, Rpe: &rpe})
			require.NoError(t, err)
		}
	}
}

func TestMachine_SeedsFromTemplate(t *testing.T) {
	m := NewMachine(context.Background(), quietLogger(), hypertrophyTemplate(), draft.NewMemory(), &stubRecords{})

	snap := m.Snapshot()
	assert.Equal(t, StateActive, snap.State)
	require.Len(t, snap.Draft.Exercises, 2)
	assert.Len(t, snap.Draft.Exercises[0].Sets, 3)
	assert.Len(t, snap.Draft.Exercises[1].Sets, 2)
	assert.Equal(t, -1, snap.Draft.ExpandedExercise)
	assert.Equal(t, -1, snap.Draft.InfoVisible)
}

func TestMachine_RehydratesStoredDraft(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	tmpl := hypertrophyTemplate()

	stored := domain.NewSessionDraft(tmpl)
	stored.Exercises[0].Sets[0] = domain.SetEntry{Weight: "135", Reps: "10", Rpe: "7"}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, draft.SessionKey(tmpl.ID), data))

	m := NewMachine(ctx, quietLogger(), tmpl, store, &stubRecords{})
	snap := m.Snapshot()
	assert.Equal(t, "135", snap.Draft.Exercises[0].Sets[0].Weight)
}

func TestMachine_CorruptDraftStartsFresh(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	tmpl := hypertrophyTemplate()
	require.NoError(t, store.Set(ctx, draft.SessionKey(tmpl.ID), []byte("{not json")))

	m := NewMachine(ctx, quietLogger(), tmpl, store, &stubRecords{})
	snap := m.Snapshot()
	require.Len(t, snap.Draft.Exercises, 2)
	assert.Equal(t, "", snap.Draft.Exercises[0].Sets[0].Weight)
}

func TestMachine_MutationsMirrorToStore(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	tmpl := hypertrophyTemplate()
	m := NewMachine(ctx, quietLogger(), tmpl, store, &stubRecords{})

	w := "225"
	require.NoError(t, m.UpdateSet(ctx, 0, 0, SetPatch{Weight: &w}))

	data, ok, err := store.Get(ctx, draft.SessionKey(tmpl.ID))
	require.NoError(t, err)
	require.True(t, ok)
	var d domain.SessionDraft
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, "225", d.Exercises[0].Sets[0].Weight)
}

func TestMachine_SetMutationBoundary(t *testing.T) {
	ctx := context.Background()
	tmpl := domain.WorkoutTemplate{
		ID:   "neck-1",
		Name: "Iron Neck",
		Type: domain.WorkoutIronNeck,
		Exercises: []domain.ExercisePlan{
			{Name: "Rotations", TargetSets: 1, TargetReps: "30"},
			{Name: "Holds", TargetSets: 2, TargetReps: "45 seconds"},
		},
	}
	m := NewMachine(ctx, quietLogger(), tmpl, draft.NewMemory(), &stubRecords{})

	// Removing the last remaining set is a no-op.
	require.NoError(t, m.RemoveSet(ctx, 0, 0))
	assert.Len(t, m.Snapshot().Draft.Exercises[0].Sets, 1)

	// Removing from two leaves exactly one.
	require.NoError(t, m.RemoveSet(ctx, 1, 1))
	assert.Len(t, m.Snapshot().Draft.Exercises[1].Sets, 1)

	// Append is always allowed.
	require.NoError(t, m.AddSet(ctx, 0))
	assert.Len(t, m.Snapshot().Draft.Exercises[0].Sets, 2)

	assert.ErrorIs(t, m.AddSet(ctx, 9), ErrNoSuchExercise)
	assert.ErrorIs(t, m.RemoveSet(ctx, 0, 9), ErrNoSuchSet)
}

func TestMachine_ToggleExpandAndInfo(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(ctx, quietLogger(), hypertrophyTemplate(), draft.NewMemory(), &stubRecords{})

	require.NoError(t, m.ToggleExpand(ctx, 1))
	assert.Equal(t, 1, m.Snapshot().Draft.ExpandedExercise)

	// Expanding another collapses the first; info is independent.
	require.NoError(t, m.ToggleInfo(ctx, 0))
	require.NoError(t, m.ToggleExpand(ctx, 0))
	snap := m.Snapshot()
	assert.Equal(t, 0, snap.Draft.ExpandedExercise)
	assert.Equal(t, 0, snap.Draft.InfoVisible)

	require.NoError(t, m.ToggleExpand(ctx, 0))
	assert.Equal(t, -1, m.Snapshot().Draft.ExpandedExercise)
}

func TestMachine_SaveRejectsIncompleteSets(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	records := &stubRecords{}
	m := NewMachine(ctx, quietLogger(), hypertrophyTemplate(), store, records)

	// Two of three sets filled on the first exercise.
	w, r, rpe := "135", "10", "7"
	require.NoError(t, m.UpdateSet(ctx, 0, 0, SetPatch{Weight: &w, Reps: &r, Rpe: &rpe}))
	require.NoError(t, m.UpdateSet(ctx, 0, 1, SetPatch{Weight: &w, Reps: &r, Rpe: &rpe}))

	_, err := m.Save(ctx)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, records.count(), "validation failure must not reach the store")
	assert.Equal(t, StateActive, m.Snapshot().State)
}

func TestMachine_SavePurgesDraft(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	records := &stubRecords{}
	m := NewMachine(ctx, quietLogger(), hypertrophyTemplate(), store, records)
	fillSets(t, m, "135", "10", "7")

	id, err := m.Save(ctx)
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.Equal(t, 1, records.count())
	assert.Equal(t, StateSaved, m.Snapshot().State)

	_, ok, err := store.Get(ctx, draft.SessionKey("lower-1"))
	require.NoError(t, err)
	assert.False(t, ok, "draft must be purged after a successful save")

	// The machine is terminal: further mutations and saves fail.
	assert.ErrorIs(t, m.AddSet(ctx, 0), ErrSessionClosed)
	_, err = m.Save(ctx)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestMachine_DraftSurvivesFailedSave(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	records := &stubRecords{failErr: errors.New("network down")}
	m := NewMachine(ctx, quietLogger(), hypertrophyTemplate(), store, records)
	fillSets(t, m, "135", "10", "7")

	_, err := m.Save(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrValidation)
	assert.Equal(t, StateActive, m.Snapshot().State)

	data, ok, gerr := store.Get(ctx, draft.SessionKey("lower-1"))
	require.NoError(t, gerr)
	require.True(t, ok, "draft must survive a failed save")
	var d domain.SessionDraft
	require.NoError(t, json.Unmarshal(data, &d))
	assert.Equal(t, "135", d.Exercises[0].Sets[0].Weight)

	// Retry after the failure succeeds with the same data.
	records.mu.Lock()
	records.failErr = nil
	records.mu.Unlock()
	_, err = m.Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, records.count())
}

func TestMachine_ConcurrentSaveGuard(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	gate := make(chan struct{})
	records := &stubRecords{gate: gate}
	m := NewMachine(ctx, quietLogger(), hypertrophyTemplate(), store, records)
	fillSets(t, m, "135", "10", "7")

	firstDone := make(chan error, 1)
	go func() {
		_, err := m.Save(ctx)
		firstDone <- err
	}()

	require.Eventually(t, func() bool {
		return m.Snapshot().State == StateSaving
	}, time.Second, time.Millisecond)

	// A second save while one is pending is rejected without a write,
	// and abandon is suppressed too.
	_, err := m.Save(ctx)
	assert.ErrorIs(t, err, ErrSaveInFlight)
	assert.ErrorIs(t, m.Abandon(ctx), ErrSaveInFlight)

	close(gate)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, records.count(), "exactly one write must reach the store")
}

func TestMachine_AbandonPurgesDraft(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	tmpl := hypertrophyTemplate()
	m := NewMachine(ctx, quietLogger(), tmpl, store, &stubRecords{})

	w := "95"
	require.NoError(t, m.UpdateSet(ctx, 0, 0, SetPatch{Weight: &w}))
	require.NoError(t, m.Abandon(ctx))

	_, ok, err := store.Get(ctx, draft.SessionKey(tmpl.ID))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMachine_CardioSaveAndTabataCompletion(t *testing.T) {
	ctx := context.Background()
	store := draft.NewMemory()
	records := &stubRecords{}
	m := NewMachine(ctx, quietLogger(), cardioTemplate(domain.TemplateTabata), store, records)
	require.NotNil(t, m.TabataDriver())

	// Duration and intensity are required before completion lands.
	_, err := m.Save(ctx)
	require.ErrorIs(t, err, ErrValidation)

	require.NoError(t, m.ApplyTabataCompletion(ctx))
	snap := m.Snapshot()
	assert.Equal(t, "4", snap.Draft.Cardio.DurationMinutes)
	assert.Equal(t, "10", snap.Draft.Cardio.IntensityRpe)
	assert.True(t, snap.Draft.Cardio.Completed)

	_, err = m.Save(ctx)
	require.NoError(t, err)

	saved := records.records[0]
	assert.Equal(t, 4, saved.Duration)
	assert.Equal(t, 10, saved.Intensity)
	assert.True(t, saved.Completed)
	assert.Nil(t, saved.Distance)
	assert.Nil(t, saved.Equipment)
}

func TestMachine_Zone2RequiresDistanceAndEquipment(t *testing.T) {
	ctx := context.Background()
	m := NewMachine(ctx, quietLogger(), cardioTemplate(domain.TemplateZone2), draft.NewMemory(), &stubRecords{})

	dur, rpe := "45", "6"
	require.NoError(t, m.UpdateCardio(ctx, CardioPatch{DurationMinutes: &dur, IntensityRpe: &rpe}))

	_, err := m.Save(ctx)
	require.ErrorIs(t, err, ErrValidation)

	dist := "3.2"
	require.NoError(t, m.UpdateCardio(ctx, CardioPatch{DistanceMiles: &dist}))
	_, err = m.Save(ctx)
	require.ErrorIs(t, err, ErrValidation)

	eq := "treadmill"
	require.NoError(t, m.UpdateCardio(ctx, CardioPatch{Equipment: &eq}))
	_, err = m.Save(ctx)
	require.NoError(t, err)
}

func TestMachine_RestTimersPerExercise(t *testing.T) {
	m := NewMachine(context.Background(), quietLogger(), hypertrophyTemplate(), draft.NewMemory(), &stubRecords{})

	first := m.RestTimer(0)
	require.NotNil(t, first)
	assert.Equal(t, 150, first.Remaining())

	second := m.RestTimer(1)
	require.NotNil(t, second)
	assert.Equal(t, 60, second.Remaining())

	assert.Nil(t, m.RestTimer(5))
}
