// Package history translates between in-progress session drafts and
// the canonical persisted record shape, in both directions.
package history

import (
	"strconv"
	"strings"

	"alcyxob/training-log/internal/domain"
)

// NewRecord builds the persisted record for a completed draft. Every
// numeric set field is coerced to a number with empty or unparseable
// input defaulting to 0, completion flags become strict booleans, and
// the actual number of performed sets is snapshotted as targetSets.
// CompletedAt is left zero: the repository stamps it at write time.
func NewRecord(tmpl domain.WorkoutTemplate, d domain.SessionDraft) domain.CompletedWorkoutRecord {
	record := domain.CompletedWorkoutRecord{
		TemplateID: tmpl.ID,
		Name:       tmpl.Name,
		Type:       tmpl.Type,
	}

	if d.Type == domain.WorkoutCardio {
		fillCardio(&record, d.Cardio)
		return record
	}

	record.Exercises = make([]domain.RecordExercise, 0, len(d.Exercises))
	for i, ex := range d.Exercises {
		re := domain.RecordExercise{
			Name:       ex.Name,
			TargetSets: len(ex.Sets),
			Sets:       make([]domain.RecordSet, 0, len(ex.Sets)),
		}
		if i < len(tmpl.Exercises) {
			re.TargetReps = tmpl.Exercises[i].TargetReps
			re.TargetRpe = tmpl.Exercises[i].TargetRpe
		}
		for _, set := range ex.Sets {
			re.Sets = append(re.Sets, domain.RecordSet{
				Weight:    parseFloatOrZero(set.Weight),
				Reps:      parseIntOrZero(set.Reps),
				Rpe:       parseFloatOrZero(set.Rpe),
				Completed: set.Completed,
			})
		}
		record.Exercises = append(record.Exercises, re)
	}
	return record
}

func fillCardio(record *domain.CompletedWorkoutRecord, c *domain.CardioFields) {
	if c == nil {
		return
	}
	record.Duration = parseIntOrZero(c.DurationMinutes)
	record.Intensity = parseIntOrZero(c.IntensityRpe)
	record.Notes = strings.TrimSpace(c.Notes)
	record.Completed = c.Completed
	if c.DistanceMiles != "" {
		dist := parseFloatOrZero(c.DistanceMiles)
		record.Distance = &dist
	}
	if c.Equipment != "" {
		eq := c.Equipment
		record.Equipment = &eq
	}
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntOrZero(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		// Fractional input ("7.5") truncates rather than dropping to 0.
		if f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64); ferr == nil {
			return int(f)
		}
		return 0
	}
	return v
}
