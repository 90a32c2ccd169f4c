package catalog

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	FindDietPlan(goal, weightCategory, foodPreference string, conditionID uint) (*DietPlan, error)
	FindWorkoutPlan(goal, weightCategory, activityLevel string, conditionID uint) (*WorkoutPlan, error)

	GetDietLineItems(dietPlanID uint) ([]DietPlanFood, error)
	GetWorkoutLineItems(workoutPlanID uint) ([]WorkoutPlanDetail, error)

	GetDailyDietEntries(dietPlanID uint) ([]DailyDietEntry, error)
	GetWeeklyWorkoutEntries(workoutPlanID uint) ([]WeeklyWorkoutEntry, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

// FindDietPlan matches the exact tuple, case-insensitively. Ties are
// broken by lowest plan id so resolution stays deterministic.
func (r *repository) FindDietPlan(goal, weightCategory, foodPreference string, conditionID uint) (*DietPlan, error) {
	var plan DietPlan
	err := r.db.
		Where("LOWER(goal) = ? AND LOWER(weight_category) = ? AND LOWER(food_preference) = ? AND condition_id = ?",
			goal, weightCategory, foodPreference, conditionID).
		Order("id").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repository) FindWorkoutPlan(goal, weightCategory, activityLevel string, conditionID uint) (*WorkoutPlan, error) {
	var plan WorkoutPlan
	err := r.db.
		Where("LOWER(goal) = ? AND LOWER(weight_category) = ? AND LOWER(activity_level) = ? AND health_condition_id = ?",
			goal, weightCategory, activityLevel, conditionID).
		Order("id").
		First(&plan).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *repository) GetDietLineItems(dietPlanID uint) ([]DietPlanFood, error) {
	var items []DietPlanFood
	err := r.db.
		Where("diet_id = ?", dietPlanID).
		Order(mealSlotOrder).
		Find(&items).Error
	return items, err
}

func (r *repository) GetWorkoutLineItems(workoutPlanID uint) ([]WorkoutPlanDetail, error) {
	var items []WorkoutPlanDetail
	err := r.db.
		Where("plan_id = ?", workoutPlanID).
		Order(weekDayOrder).
		Find(&items).Error
	return items, err
}

// Meal slots render morning to night.
const mealSlotOrder = `CASE meal_type
	WHEN 'breakfast' THEN 1
	WHEN 'snack' THEN 2
	WHEN 'lunch' THEN 3
	WHEN 'snack2' THEN 4
	ELSE 5 END, id`

const weekDayOrder = `CASE day_name
	WHEN 'Monday' THEN 1
	WHEN 'Tuesday' THEN 2
	WHEN 'Wednesday' THEN 3
	WHEN 'Thursday' THEN 4
	WHEN 'Friday' THEN 5
	WHEN 'Saturday' THEN 6
	ELSE 7 END, id`

func (r *repository) GetDailyDietEntries(dietPlanID uint) ([]DailyDietEntry, error) {
	var entries []DailyDietEntry
	err := r.db.
		Table("diet_plan_foods").
		Select(`diet_plan_foods.meal_type, foods.food_name, foods.calories,
			foods.protein, foods.carbs, foods.fat,
			foods.glycemic_index, foods.sodium_content`).
		Joins("JOIN foods ON foods.id = diet_plan_foods.food_id").
		Where("diet_plan_foods.diet_id = ?", dietPlanID).
		Order(`CASE diet_plan_foods.meal_type
			WHEN 'breakfast' THEN 1
			WHEN 'snack' THEN 2
			WHEN 'lunch' THEN 3
			WHEN 'snack2' THEN 4
			ELSE 5 END, diet_plan_foods.id`).
		Scan(&entries).Error
	return entries, err
}

func (r *repository) GetWeeklyWorkoutEntries(workoutPlanID uint) ([]WeeklyWorkoutEntry, error) {
	var entries []WeeklyWorkoutEntry
	err := r.db.
		Table("workout_plan_details").
		Select(`workout_plan_details.day_name, workouts.workout_name,
			workouts.workout_type, workouts.intensity,
			workout_plan_details.duration_minutes, workouts.health_safe`).
		Joins("JOIN workouts ON workouts.id = workout_plan_details.workout_id").
		Where("workout_plan_details.plan_id = ?", workoutPlanID).
		Order(`CASE workout_plan_details.day_name
			WHEN 'Monday' THEN 1
			WHEN 'Tuesday' THEN 2
			WHEN 'Wednesday' THEN 3
			WHEN 'Thursday' THEN 4
			WHEN 'Friday' THEN 5
			WHEN 'Saturday' THEN 6
			ELSE 7 END, workout_plan_details.id`).
		Scan(&entries).Error
	return entries, err
}
