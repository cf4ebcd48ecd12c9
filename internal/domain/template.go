package domain

import "time"

// WorkoutType distinguishes which fields a session captures.
type WorkoutType string

const (
	WorkoutHypertrophy WorkoutType = "hypertrophy"
	WorkoutCardio      WorkoutType = "cardio"
	WorkoutMobility    WorkoutType = "mobility"
	WorkoutIronNeck    WorkoutType = "iron_neck"
	WorkoutAncillary   WorkoutType = "ancillary"
	WorkoutJiuJitsu    WorkoutType = "jiujitsu"
)

// IsStrength reports whether sessions of this type log weight/reps/RPE
// per set. Everything that is not cardio logs sets; only hypertrophy
// requires the full numeric triple.
func (t WorkoutType) IsStrength() bool {
	return t != WorkoutCardio
}

// ExercisePlan is one planned exercise inside a template.
// TargetReps stays a string on purpose: templates carry values like
// "30" as well as "45 seconds".
type ExercisePlan struct {
	Name               string  `bson:"name" json:"name"`
	TargetSets         int     `bson:"targetSets" json:"targetSets"`
	TargetReps         string  `bson:"targetReps" json:"targetReps"`
	TargetRpe          float64 `bson:"targetRpe" json:"targetRpe"`
	RestPeriodSeconds  int     `bson:"restPeriodSeconds" json:"restPeriodSeconds"`
	Description        string  `bson:"description,omitempty" json:"description,omitempty"`
}

// WorkoutTemplate is the immutable definition of a workout: its
// exercises and their targets. Templates are seeded once and read-only
// at runtime; sessions reference them by their stable string ID
// (e.g. "lower-1", "zone2", "tabata").
type WorkoutTemplate struct {
	ID        string         `bson:"_id" json:"id"`
	Name      string         `bson:"name" json:"name"`
	Type      WorkoutType    `bson:"type" json:"type"`
	Exercises []ExercisePlan `bson:"exercises,omitempty" json:"exercises,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// Template IDs with special session behavior.
const (
	TemplateZone2  = "zone2"  // distance-tracked cardio: requires distance + equipment
	TemplateTabata = "tabata" // fixed 8x20/10 interval protocol
)
