package session

import (
	"errors"
	"fmt"
	"strings"

	"alcyxob/training-log/internal/domain"
)

// ErrValidation is the base error for every pre-save validation
// failure. Validation is synchronous and local: a failing draft never
// reaches the remote store.
var ErrValidation = errors.New("validation failed")

// validateDraft checks a draft against its template before save.
func validateDraft(tmpl domain.WorkoutTemplate, d domain.SessionDraft) error {
	if d.Type == domain.WorkoutCardio {
		return validateCardio(tmpl.ID, d.Cardio)
	}
	return validateStrength(d)
}

// validateStrength rejects hypertrophy drafts with any set missing
// weight, reps, or RPE. One aggregate message; the form shows a single
// toast rather than per-set errors. Non-hypertrophy strength work
// (mobility, iron neck, ancillary) logs completion booleans only, so
// it always passes.
func validateStrength(d domain.SessionDraft) error {
	if d.Type != domain.WorkoutHypertrophy {
		return nil
	}
	for _, ex := range d.Exercises {
		for _, set := range ex.Sets {
			if set.Weight == "" || set.Reps == "" || set.Rpe == "" {
				return fmt.Errorf("%w: please complete all set data before saving", ErrValidation)
			}
		}
	}
	return nil
}

// validateCardio requires duration and intensity always, plus distance
// and equipment for the distance-tracked modality.
func validateCardio(templateID string, c *domain.CardioFields) error {
	if c == nil {
		return fmt.Errorf("%w: cardio session has no data", ErrValidation)
	}
	if c.DurationMinutes == "" {
		return fmt.Errorf("%w: please enter a duration", ErrValidation)
	}
	if c.IntensityRpe == "" {
		return fmt.Errorf("%w: please enter an intensity", ErrValidation)
	}
	if templateID == domain.TemplateZone2 {
		if c.DistanceMiles == "" {
			return fmt.Errorf("%w: please enter a distance", ErrValidation)
		}
		if c.Equipment == "" {
			return fmt.Errorf("%w: please select equipment", ErrValidation)
		}
	}
	return nil
}

// ValidateClass checks a jiu-jitsu class before logging. Instructor is
// the only required field.
func ValidateClass(c domain.Class) error {
	if strings.TrimSpace(c.Instructor) == "" {
		return fmt.Errorf("%w: please enter an instructor name", ErrValidation)
	}
	return nil
}
