package session

import (
	"testing"

	"alcyxob/training-log/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStrength(t *testing.T) {
	full := domain.SetEntry{Weight: "135", Reps: "10", Rpe: "7"}

	tests := []struct {
		name    string
		draft   domain.SessionDraft
		wantErr bool
	}{
		{
			name: "all sets filled",
			draft: domain.SessionDraft{
				Type: domain.WorkoutHypertrophy,
				Exercises: []domain.ExerciseState{
					{Name: "Squat", Sets: []domain.SetEntry{full, full, full}},
				},
			},
		},
		{
			name: "missing weight",
			draft: domain.SessionDraft{
				Type: domain.WorkoutHypertrophy,
				Exercises: []domain.ExerciseState{
					{Name: "Squat", Sets: []domain.SetEntry{full, {Reps: "10", Rpe: "7"}}},
				},
			},
			wantErr: true,
		},
		{
			name: "missing reps",
			draft: domain.SessionDraft{
				Type: domain.WorkoutHypertrophy,
				Exercises: []domain.ExerciseState{
					{Name: "Squat", Sets: []domain.SetEntry{{Weight: "135", Rpe: "7"}}},
				},
			},
			wantErr: true,
		},
		{
			name: "missing rpe",
			draft: domain.SessionDraft{
				Type: domain.WorkoutHypertrophy,
				Exercises: []domain.ExerciseState{
					{Name: "Squat", Sets: []domain.SetEntry{{Weight: "135", Reps: "10"}}},
				},
			},
			wantErr: true,
		},
		{
			name: "mobility sets need no numbers",
			draft: domain.SessionDraft{
				Type: domain.WorkoutMobility,
				Exercises: []domain.ExerciseState{
					{Name: "Couch stretch", Sets: []domain.SetEntry{{Completed: true}}},
				},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateStrength(tc.draft)
			if tc.wantErr {
				require.ErrorIs(t, err, ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidateCardio(t *testing.T) {
	filled := &domain.CardioFields{DurationMinutes: "30", IntensityRpe: "6"}
	assert.NoError(t, validateCardio("bike-sprints", filled))

	assert.ErrorIs(t, validateCardio("bike-sprints", &domain.CardioFields{IntensityRpe: "6"}), ErrValidation)
	assert.ErrorIs(t, validateCardio("bike-sprints", &domain.CardioFields{DurationMinutes: "30"}), ErrValidation)
	assert.ErrorIs(t, validateCardio("bike-sprints", nil), ErrValidation)

	// Distance-tracked modality needs distance and equipment too.
	assert.ErrorIs(t, validateCardio(domain.TemplateZone2, filled), ErrValidation)
	withDist := &domain.CardioFields{DurationMinutes: "30", IntensityRpe: "6", DistanceMiles: "2.5"}
	assert.ErrorIs(t, validateCardio(domain.TemplateZone2, withDist), ErrValidation)
	complete := &domain.CardioFields{DurationMinutes: "30", IntensityRpe: "6", DistanceMiles: "2.5", Equipment: "jogging"}
	assert.NoError(t, validateCardio(domain.TemplateZone2, complete))
}

func TestValidateClass(t *testing.T) {
	assert.NoError(t, ValidateClass(domain.Class{Instructor: "Prof. Silva"}))
	assert.ErrorIs(t, ValidateClass(domain.Class{Instructor: ""}), ErrValidation)
	assert.ErrorIs(t, ValidateClass(domain.Class{Instructor: "   "}), ErrValidation)
}
