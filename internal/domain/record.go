package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecordSet is one set inside a saved workout record. All numeric
// fields are coerced at write time; an empty input becomes 0.
type RecordSet struct {
	Weight    float64 `bson:"weight" json:"weight"`
	Reps      int     `bson:"reps" json:"reps"`
	Rpe       float64 `bson:"rpe" json:"rpe"`
	Completed bool    `bson:"completed" json:"completed"`
}

// RecordExercise snapshots one exercise of a completed session.
// TargetSets records how many sets were actually performed (the user
// may add or drop sets mid-session), not the template's plan.
type RecordExercise struct {
	Name       string      `bson:"name" json:"name"`
	TargetSets int         `bson:"targetSets" json:"targetSets"`
	TargetReps string      `bson:"targetReps" json:"targetReps"`
	TargetRpe  float64     `bson:"targetRpe" json:"targetRpe"`
	Sets       []RecordSet `bson:"sets" json:"sets"`
}

// CompletedWorkoutRecord is the immutable historical artifact of a
// finished session. Exactly one record is produced per saved draft.
// CompletedAt is assigned at write time by the repository (server
// clock), never by the caller, so cross-device history stays ordered.
type CompletedWorkoutRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TemplateID  string             `bson:"templateId" json:"templateId"`
	Name        string             `bson:"name" json:"name"`
	Type        WorkoutType        `bson:"type" json:"type"`
	CompletedAt time.Time          `bson:"completedAt" json:"completedAt"`

	// Strength-type sessions.
	Exercises []RecordExercise `bson:"exercises,omitempty" json:"exercises,omitempty"`

	// Cardio sessions.
	Duration  int      `bson:"duration,omitempty" json:"duration,omitempty"`
	Intensity int      `bson:"intensity,omitempty" json:"intensity,omitempty"`
	Notes     string   `bson:"notes,omitempty" json:"notes,omitempty"`
	Completed bool     `bson:"completed,omitempty" json:"completed,omitempty"`
	Distance  *float64 `bson:"distance,omitempty" json:"distance,omitempty"`
	Equipment *string  `bson:"equipment,omitempty" json:"equipment,omitempty"`
}
