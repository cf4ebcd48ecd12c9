package templates

import "alcyxob/training-log/internal/domain"

// DefaultTemplates returns the built-in workout catalog. Templates are
// upserted by ID so reseeding is safe; edits to an existing template
// replace the stored document.
func DefaultTemplates() []domain.WorkoutTemplate {
	return []domain.WorkoutTemplate{
		{
			ID:   "lower-1",
			Name: "Lower Body 1",
			Type: domain.WorkoutHypertrophy,
			Exercises: []domain.ExercisePlan{
				{Name: "Back squat", TargetSets: 3, TargetReps: "10", TargetRpe: 7, RestPeriodSeconds: 150},
				{Name: "Romanian deadlift", TargetSets: 3, TargetReps: "12", TargetRpe: 7, RestPeriodSeconds: 120},
				{Name: "Barbell hip thrust", TargetSets: 3, TargetReps: "12", TargetRpe: 8, RestPeriodSeconds: 90},
				{Name: "Leg extension", TargetSets: 3, TargetReps: "15", TargetRpe: 9, RestPeriodSeconds: 60},
				{Name: "Leg curl", TargetSets: 3, TargetReps: "15", TargetRpe: 9, RestPeriodSeconds: 60},
				{Name: "Hip abduction", TargetSets: 3, TargetReps: "8", TargetRpe: 7, RestPeriodSeconds: 60},
				{Name: "Abs: crunches", TargetSets: 1, TargetReps: "30", TargetRpe: 7, RestPeriodSeconds: 30},
				{Name: "Abs: bicycle kicks", TargetSets: 1, TargetReps: "30", TargetRpe: 7, RestPeriodSeconds: 30},
				{Name: "Abs: leg raises", TargetSets: 1, TargetReps: "30", TargetRpe: 7, RestPeriodSeconds: 30},
			},
		},
		{
			ID:   "lower-2",
			Name: "Lower Body 2",
			Type: domain.WorkoutHypertrophy,
			Exercises: []domain.ExercisePlan{
				{Name: "Deadlift", TargetSets: 3, TargetReps: "8", TargetRpe: 7, RestPeriodSeconds: 150},
				{Name: "Pistol squats", TargetSets: 3, TargetReps: "10", TargetRpe: 7, RestPeriodSeconds: 45},
				{Name: "Dumbbell walking lunge", TargetSets: 3, TargetReps: "12", TargetRpe: 7, RestPeriodSeconds: 120},
				{Name: "Leg extension", TargetSets: 3, TargetReps: "15", TargetRpe: 9, RestPeriodSeconds: 45},
				{Name: "Leg curl", TargetSets: 3, TargetReps: "15", TargetRpe: 9, RestPeriodSeconds: 45},
				{Name: "Duck walks w/overhead weight", TargetSets: 3, TargetReps: "10", TargetRpe: 7, RestPeriodSeconds: 45},
				{Name: "Standing calf raise", TargetSets: 3, TargetReps: "15", TargetRpe: 7, RestPeriodSeconds: 45},
			},
		},
		{
			ID:   "upper-pull",
			Name: "Upper Body Pull",
			Type: domain.WorkoutHypertrophy,
			Exercises: []domain.ExercisePlan{
				{Name: "Weighted pull-ups", TargetSets: 3, TargetReps: "8", TargetRpe: 8, RestPeriodSeconds: 150},
				{Name: "Barbell row", TargetSets: 3, TargetReps: "10", TargetRpe: 7, RestPeriodSeconds: 120},
				{Name: "Lat pulldown", TargetSets: 3, TargetReps: "12", TargetRpe: 8, RestPeriodSeconds: 90},
				{Name: "Face pulls", TargetSets: 3, TargetReps: "15", TargetRpe: 8, RestPeriodSeconds: 60},
				{Name: "Dumbbell curl", TargetSets: 3, TargetReps: "12", TargetRpe: 9, RestPeriodSeconds: 60},
			},
		},
		{
			ID:   "upper-push",
			Name: "Upper Body Push",
			Type: domain.WorkoutHypertrophy,
			Exercises: []domain.ExercisePlan{
				{Name: "Bench press", TargetSets: 3, TargetReps: "8", TargetRpe: 7, RestPeriodSeconds: 150},
				{Name: "Overhead press", TargetSets: 3, TargetReps: "10", TargetRpe: 7, RestPeriodSeconds: 120},
				{Name: "Incline dumbbell press", TargetSets: 3, TargetReps: "12", TargetRpe: 8, RestPeriodSeconds: 90},
				{Name: "Lateral raise", TargetSets: 3, TargetReps: "15", TargetRpe: 9, RestPeriodSeconds: 60},
				{Name: "Tricep pushdown", TargetSets: 3, TargetReps: "12", TargetRpe: 9, RestPeriodSeconds: 60},
			},
		},
		{
			ID:   "iron-neck",
			Name: "Iron Neck",
			Type: domain.WorkoutIronNeck,
			Exercises: []domain.ExercisePlan{
				{Name: "Spin left", TargetSets: 2, TargetReps: "10", TargetRpe: 6, RestPeriodSeconds: 30},
				{Name: "Spin right", TargetSets: 2, TargetReps: "10", TargetRpe: 6, RestPeriodSeconds: 30},
				{Name: "Look left-right", TargetSets: 2, TargetReps: "10", TargetRpe: 6, RestPeriodSeconds: 30},
				{Name: "Nod yes", TargetSets: 2, TargetReps: "10", TargetRpe: 6, RestPeriodSeconds: 30},
			},
		},
		{
			ID:   "mobility-short",
			Name: "Mobility (Short)",
			Type: domain.WorkoutMobility,
			Exercises: []domain.ExercisePlan{
				{Name: "Saludar al sol", TargetSets: 1, TargetReps: "3 rounds", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Neck CARs", TargetSets: 1, TargetReps: "5 each way", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Cat-cow", TargetSets: 1, TargetReps: "10", TargetRpe: 4, RestPeriodSeconds: 0},
			},
		},
		{
			ID:   "mobility-medium",
			Name: "Mobility (Medium)",
			Type: domain.WorkoutMobility,
			Exercises: []domain.ExercisePlan{
				{Name: "Saludar al sol", TargetSets: 1, TargetReps: "5 rounds", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Neck CARs", TargetSets: 1, TargetReps: "5 each way", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Shoulder CARs", TargetSets: 1, TargetReps: "5 each way", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Hip CARs", TargetSets: 1, TargetReps: "5 each way", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Cat-cow", TargetSets: 1, TargetReps: "10", TargetRpe: 4, RestPeriodSeconds: 0},
			},
		},
		{
			ID:   "mobility-long",
			Name: "Mobility (Long)",
			Type: domain.WorkoutMobility,
			Exercises: []domain.ExercisePlan{
				{Name: "Saludar al sol", TargetSets: 1, TargetReps: "5 rounds", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Neck CARs", TargetSets: 1, TargetReps: "5 each way", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Shoulder CARs", TargetSets: 1, TargetReps: "5 each way", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Hip CARs", TargetSets: 1, TargetReps: "5 each way", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Dead hangs", TargetSets: 2, TargetReps: "45 seconds", TargetRpe: 6, RestPeriodSeconds: 60},
				{Name: "Couch stretch", TargetSets: 1, TargetReps: "60 seconds each", TargetRpe: 5, RestPeriodSeconds: 0},
				{Name: "Cat-cow", TargetSets: 1, TargetReps: "10", TargetRpe: 4, RestPeriodSeconds: 0},
			},
		},
		{
			ID:   "ancillary",
			Name: "Ancillary",
			Type: domain.WorkoutAncillary,
			Exercises: []domain.ExercisePlan{
				{Name: "Kegels", TargetSets: 8, TargetReps: "40", TargetRpe: 7, RestPeriodSeconds: 30},
				{Name: "Jaw", TargetSets: 8, TargetReps: "40", TargetRpe: 6, RestPeriodSeconds: 30},
				{Name: "Hand extensions", TargetSets: 8, TargetReps: "30", TargetRpe: 6, RestPeriodSeconds: 40},
			},
		},
		{
			ID:   domain.TemplateTabata,
			Name: "Tabata",
			Type: domain.WorkoutCardio,
			Exercises: []domain.ExercisePlan{
				{Name: "Tabata", TargetSets: 8, TargetReps: "20 seconds", TargetRpe: 10, RestPeriodSeconds: 10},
			},
		},
		{
			ID:   domain.TemplateZone2,
			Name: "Zone 2",
			Type: domain.WorkoutCardio,
			Exercises: []domain.ExercisePlan{
				{Name: "Stairmaster / Jog", TargetSets: 1, TargetReps: "40-60 minutes", TargetRpe: 6, RestPeriodSeconds: 0},
			},
		},
	}
}
