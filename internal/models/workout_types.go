package models

import "time"

// Workout defines the model for the 'workouts' table
type Workout struct {
	ID              int64     `json:"id" db:"id"`
	WorkoutDate     string    `json:"date" db:"workout_date"`
	WorkoutType     string    `json:"workoutType" db:"workout_type"`
	Title           string    `json:"title" db:"title"`
	DurationMinutes int       `json:"durationMinutes" db:"duration_minutes"`
	CaloriesBurned  *int      `json:"caloriesBurned,omitempty" db:"calories_burned"`
	Notes           *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`

	// Populated from 'workout_exercises'; not a column.
	Exercises []*WorkoutExercise `json:"exercises" db:"-"`
}

// WorkoutExercise defines the model for the 'workout_exercises' table.
// Rows live and die with their parent workout: deleted on workout delete,
// replaced wholesale on workout edit.
type WorkoutExercise struct {
	ID              int64     `json:"id" db:"id"`
	WorkoutID       int64     `json:"workoutId" db:"workout_id"`
	ExerciseName    string    `json:"exerciseName" db:"exercise_name"`
	Sets            *int      `json:"sets,omitempty" db:"sets"`
	Reps            *int      `json:"reps,omitempty" db:"reps"`
	Weight          *float64  `json:"weight,omitempty" db:"weight"`
	DurationSeconds *int      `json:"durationSeconds,omitempty" db:"duration_seconds"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
