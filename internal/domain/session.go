package domain

// SetEntry is one performed set as the user typed it. Fields stay
// strings until save time so an untouched input is distinguishable
// from an explicit zero; coercion to numbers happens in the history
// writer.
type SetEntry struct {
	Weight    string `bson:"weight" json:"weight"`
	Reps      string `bson:"reps" json:"reps"`
	Rpe       string `bson:"rpe" json:"rpe"`
	Completed bool   `bson:"completed" json:"completed"`
}

// ExerciseState tracks the in-progress sets for one template exercise.
type ExerciseState struct {
	Name string     `bson:"name" json:"name"`
	Sets []SetEntry `bson:"sets" json:"sets"`
}

// CardioFields is the cardio variant of a session's captured data.
// Distance and Equipment are only required for distance-tracked
// modalities (TemplateZone2).
type CardioFields struct {
	DurationMinutes string `bson:"durationMinutes" json:"durationMinutes"`
	IntensityRpe    string `bson:"intensityRpe" json:"intensityRpe"`
	Notes           string `bson:"notes" json:"notes"`
	Completed       bool   `bson:"completed" json:"completed"`
	DistanceMiles   string `bson:"distanceMiles" json:"distanceMiles"`
	Equipment       string `bson:"equipment" json:"equipment"`
}

// SessionDraft is the mutable, not-yet-saved record of a session being
// performed. It is a tagged aggregate: Type selects whether Exercises
// or Cardio carries the data. The whole aggregate is mirrored to the
// draft store as one unit keyed by TemplateID, so rehydration after a
// crash is atomic.
type SessionDraft struct {
	TemplateID string          `json:"templateId"`
	Type       WorkoutType     `json:"type"`
	Exercises  []ExerciseState `json:"exercises,omitempty"`
	Cardio     *CardioFields   `json:"cardio,omitempty"`

	// At most one exercise expanded, at most one description panel
	// open; -1 means none.
	ExpandedExercise int `json:"expandedExercise"`
	InfoVisible      int `json:"infoVisible"`
}

// NewSessionDraft seeds a draft from a template: one ExerciseState per
// planned exercise with TargetSets empty entries, or empty cardio
// fields for cardio templates.
func NewSessionDraft(tmpl WorkoutTemplate) SessionDraft {
	d := SessionDraft{
		TemplateID:       tmpl.ID,
		Type:             tmpl.Type,
		ExpandedExercise: -1,
		InfoVisible:      -1,
	}
	if tmpl.Type == WorkoutCardio {
		d.Cardio = &CardioFields{}
		return d
	}
	d.Exercises = make([]ExerciseState, 0, len(tmpl.Exercises))
	for _, ex := range tmpl.Exercises {
		sets := make([]SetEntry, ex.TargetSets)
		d.Exercises = append(d.Exercises, ExerciseState{Name: ex.Name, Sets: sets})
	}
	return d
}
