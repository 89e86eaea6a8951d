package handlers

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/halcyon-app/halcyon-api/internal/dates"
	"github.com/halcyon-app/halcyon-api/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

//
// --- Workout Handlers ---
//
// Exercises belong to their workout: they are created with it, replaced
// wholesale on edit, and removed with it. Every multi-row write runs in
// one transaction so a failure mid-way never leaves orphaned children.
//

// ExerciseInput is one exercise inside a workout create/update body.
type ExerciseInput struct {
	ExerciseName    string   `json:"exerciseName" binding:"required"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	Weight          *float64 `json:"weight"`
	DurationSeconds *int     `json:"durationSeconds"`
}

// WorkoutInput defines the JSON body for POST and PUT.
type WorkoutInput struct {
	Date            string          `json:"date" binding:"required"`
	WorkoutType     string          `json:"workoutType" binding:"required"`
	Title           string          `json:"title" binding:"required"`
	DurationMinutes *int            `json:"durationMinutes" binding:"required"`
	CaloriesBurned  *int            `json:"caloriesBurned"`
	Notes           *string         `json:"notes"`
	Exercises       []ExerciseInput `json:"exercises"`
}

// ListWorkouts is the handler for GET /api/workouts
// Optional filter: ?date=YYYY-MM-DD. Exercises for each workout are
// fetched concurrently once the workout rows are in hand.
func (h *Handlers) ListWorkouts(c *gin.Context) {
	query := `
		SELECT id, workout_date, workout_type, title, duration_minutes, calories_burned, notes, created_at
		FROM workouts`
	args := []interface{}{}

	if date := c.Query("date"); date != "" {
		query += " WHERE workout_date = ?"
		args = append(args, date)
	}
	query += " ORDER BY created_at DESC"

	rows, err := h.DB.Query(query, args...)
	if err != nil {
		h.Log.Error("workout list query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}
	defer rows.Close()

	var workouts []*models.Workout
	for rows.Next() {
		var workout models.Workout
		if err := rows.Scan(
			&workout.ID,
			&workout.WorkoutDate,
			&workout.WorkoutType,
			&workout.Title,
			&workout.DurationMinutes,
			&workout.CaloriesBurned,
			&workout.Notes,
			&workout.CreatedAt,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan workout row"})
			return
		}
		workout.Exercises = []*models.WorkoutExercise{}
		workouts = append(workouts, &workout)
	}
	if err = rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error iterating workout rows"})
		return
	}

	g, ctx := errgroup.WithContext(c.Request.Context())
	for _, workout := range workouts {
		workout := workout
		g.Go(func() error {
			exercises, err := h.fetchExercises(ctx, workout.ID)
			if err != nil {
				return err
			}
			workout.Exercises = exercises
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		h.Log.Error("exercise fetch failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exercises"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// GetWorkout is the handler for GET /api/workouts/:id
func (h *Handlers) GetWorkout(c *gin.Context) {
	var workout models.Workout
	query := `
		SELECT id, workout_date, workout_type, title, duration_minutes, calories_burned, notes, created_at
		FROM workouts
		WHERE id = ?`

	err := h.DB.QueryRow(query, c.Param("id")).Scan(
		&workout.ID,
		&workout.WorkoutDate,
		&workout.WorkoutType,
		&workout.Title,
		&workout.DurationMinutes,
		&workout.CaloriesBurned,
		&workout.Notes,
		&workout.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	workout.Exercises, err = h.fetchExercises(c.Request.Context(), workout.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load exercises"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workout": workout})
}

// CreateWorkout is the handler for POST /api/workouts
// The workout and all of its exercises are inserted in one transaction.
func (h *Handlers) CreateWorkout(c *gin.Context) {
	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.ParseDay(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	now := time.Now()

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		INSERT INTO workouts
		(workout_date, workout_type, title, duration_minutes, calories_burned, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.Date, input.WorkoutType, input.Title, *input.DurationMinutes,
		input.CaloriesBurned, input.Notes, now)
	if err != nil {
		h.Log.Error("workout insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create workout"})
		return
	}

	workoutID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get new workout ID"})
		return
	}

	if err := insertExercises(tx, workoutID, input.Exercises, now); err != nil {
		h.Log.Error("exercise insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exercises"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit workout"})
		return
	}

	workout := &models.Workout{
		ID:              workoutID,
		WorkoutDate:     input.Date,
		WorkoutType:     input.WorkoutType,
		Title:           input.Title,
		DurationMinutes: *input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		Notes:           input.Notes,
		CreatedAt:       now,
		Exercises:       []*models.WorkoutExercise{},
	}
	for _, ex := range input.Exercises {
		workout.Exercises = append(workout.Exercises, &models.WorkoutExercise{
			WorkoutID:       workoutID,
			ExerciseName:    ex.ExerciseName,
			Sets:            ex.Sets,
			Reps:            ex.Reps,
			Weight:          ex.Weight,
			DurationSeconds: ex.DurationSeconds,
			CreatedAt:       now,
		})
	}

	c.JSON(http.StatusCreated, gin.H{"workout": workout})
}

// UpdateWorkout is the handler for PUT /api/workouts/:id
// Edits replace the exercise set wholesale: delete all children, insert
// the new list, all inside the same transaction as the parent update.
func (h *Handlers) UpdateWorkout(c *gin.Context) {
	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := dates.ParseDay(input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	workoutID := c.Param("id")
	now := time.Now()

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	// Existence check up front: an UPDATE that changes nothing reports
	// zero affected rows on MySQL, which would read as a false 404.
	var existingID int64
	err = tx.QueryRow("SELECT id FROM workouts WHERE id = ?", workoutID).Scan(&existingID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database query failed"})
		return
	}

	_, err = tx.Exec(`
		UPDATE workouts
		SET workout_date = ?, workout_type = ?, title = ?, duration_minutes = ?, calories_burned = ?, notes = ?
		WHERE id = ?`,
		input.Date, input.WorkoutType, input.Title, *input.DurationMinutes,
		input.CaloriesBurned, input.Notes, workoutID)
	if err != nil {
		h.Log.Error("workout update failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update workout"})
		return
	}

	if _, err := tx.Exec("DELETE FROM workout_exercises WHERE workout_id = ?", workoutID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace exercises"})
		return
	}
	if err := insertExercises(tx, existingID, input.Exercises, now); err != nil {
		h.Log.Error("exercise insert failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to replace exercises"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit workout update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout updated"})
}

// DeleteWorkout is the handler for DELETE /api/workouts/:id
// Children go first, then the parent, in one transaction.
func (h *Handlers) DeleteWorkout(c *gin.Context) {
	workoutID := c.Param("id")

	tx, err := h.DB.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM workout_exercises WHERE workout_id = ?", workoutID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete exercises"})
		return
	}

	result, err := tx.Exec("DELETE FROM workouts WHERE id = ?", workoutID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete workout"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check affected rows"})
		return
	}
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to commit workout delete"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted"})
}

func (h *Handlers) fetchExercises(ctx context.Context, workoutID int64) ([]*models.WorkoutExercise, error) {
	rows, err := h.DB.QueryContext(ctx, `
		SELECT id, workout_id, exercise_name, sets, reps, weight, duration_seconds, created_at
		FROM workout_exercises
		WHERE workout_id = ?
		ORDER BY id ASC`, workoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exercises := []*models.WorkoutExercise{}
	for rows.Next() {
		var ex models.WorkoutExercise
		if err := rows.Scan(
			&ex.ID,
			&ex.WorkoutID,
			&ex.ExerciseName,
			&ex.Sets,
			&ex.Reps,
			&ex.Weight,
			&ex.DurationSeconds,
			&ex.CreatedAt,
		); err != nil {
			return nil, err
		}
		exercises = append(exercises, &ex)
	}
	return exercises, rows.Err()
}

func insertExercises(tx *sql.Tx, workoutID int64, exercises []ExerciseInput, now time.Time) error {
	for _, ex := range exercises {
		_, err := tx.Exec(`
			INSERT INTO workout_exercises
			(workout_id, exercise_name, sets, reps, weight, duration_seconds, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			workoutID, ex.ExerciseName, ex.Sets, ex.Reps, ex.Weight, ex.DurationSeconds, now)
		if err != nil {
			return err
		}
	}
	return nil
}
