package models

import "time"

// NutritionLog defines the model for the 'nutrition_logs' table
type NutritionLog struct {
	ID        int64     `json:"id" db:"id"`
	LogDate   string    `json:"date" db:"log_date"`
	MealType  string    `json:"mealType" db:"meal_type"`
	FoodName  string    `json:"foodName" db:"food_name"`
	Calories  float64   `json:"calories" db:"calories"`
	Protein   *float64  `json:"protein,omitempty" db:"protein"`
	Carbs     *float64  `json:"carbs,omitempty" db:"carbs"`
	Fats      *float64  `json:"fats,omitempty" db:"fats"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NutritionSummary sums every numeric field across one day's logs and
// carries the constituent rows alongside the totals.
type NutritionSummary struct {
	Date          string          `json:"date"`
	TotalCalories float64         `json:"totalCalories"`
	TotalProtein  float64         `json:"totalProtein"`
	TotalCarbs    float64         `json:"totalCarbs"`
	TotalFats     float64         `json:"totalFats"`
	Logs          []*NutritionLog `json:"logs"`
}
