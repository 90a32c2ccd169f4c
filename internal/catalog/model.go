package catalog

// Reference data for the plan catalog. All rows here are immutable at
// runtime; users never own catalog rows.

type Food struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	FoodName      string  `gorm:"type:varchar(100);not null" json:"food_name"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	GlycemicIndex float64 `json:"glycemic_index"`
	SodiumContent float64 `json:"sodium_content"`
}

func (Food) TableName() string { return "foods" }

type Workout struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	WorkoutName string `gorm:"type:varchar(100);not null" json:"workout_name"`
	WorkoutType string `gorm:"type:varchar(50)" json:"workout_type"`
	Intensity   string `gorm:"type:varchar(20)" json:"intensity"`
	HealthSafe  bool   `gorm:"default:true" json:"health_safe"`
}

func (Workout) TableName() string { return "workouts" }

// DietPlan is a diet template keyed by the resolution tuple
// (goal, weight category, food preference, health condition).
type DietPlan struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	Goal           string `gorm:"type:varchar(50);not null;index:idx_diet_plans_tuple" json:"goal"`
	WeightCategory string `gorm:"type:varchar(20);not null;index:idx_diet_plans_tuple" json:"weight_category"` // underweight/normal/overweight
	FoodPreference string `gorm:"type:varchar(20);not null;index:idx_diet_plans_tuple" json:"food_preference"`
	ConditionID    uint   `gorm:"not null;index:idx_diet_plans_tuple" json:"condition_id"`
}

func (DietPlan) TableName() string { return "diet_plans" }

// DietPlanFood is an ordered line item of a DietPlan.
type DietPlanFood struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	DietID   uint   `gorm:"not null;index" json:"diet_id"`
	FoodID   uint   `gorm:"not null" json:"food_id"`
	MealType string `gorm:"type:varchar(20);not null" json:"meal_type"` // breakfast, snack, lunch, snack2, dinner
}

func (DietPlanFood) TableName() string { return "diet_plan_foods" }

// WorkoutPlan is a workout template keyed by the resolution tuple
// (goal, weight category, activity level, health condition).
type WorkoutPlan struct {
	ID                uint   `gorm:"primaryKey" json:"id"`
	Goal              string `gorm:"type:varchar(50);not null;index:idx_workout_plans_tuple" json:"goal"`
	WeightCategory    string `gorm:"type:varchar(20);not null;index:idx_workout_plans_tuple" json:"weight_category"` // low/normal/high
	ActivityLevel     string `gorm:"type:varchar(20);not null;index:idx_workout_plans_tuple" json:"activity_level"`
	HealthConditionID uint   `gorm:"not null;index:idx_workout_plans_tuple" json:"health_condition_id"`
}

func (WorkoutPlan) TableName() string { return "workout_plans" }

// WorkoutPlanDetail is an ordered line item of a WorkoutPlan.
type WorkoutPlanDetail struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	PlanID          uint   `gorm:"not null;index" json:"plan_id"`
	WorkoutID       uint   `gorm:"not null" json:"workout_id"`
	DayName         string `gorm:"type:varchar(10);not null" json:"day_name"` // Monday..Sunday
	DurationMinutes int    `json:"duration_minutes"`
}

func (WorkoutPlanDetail) TableName() string { return "workout_plan_details" }

// DailyDietEntry is one rendered meal row of a resolved diet plan.
type DailyDietEntry struct {
	MealType      string  `json:"meal_type"`
	FoodName      string  `json:"food_name"`
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbs         float64 `json:"carbs"`
	Fat           float64 `json:"fat"`
	GlycemicIndex float64 `json:"glycemic_index"`
	SodiumContent float64 `json:"sodium_content"`
}

// WeeklyWorkoutEntry is one rendered day row of a resolved workout plan.
type WeeklyWorkoutEntry struct {
	DayName         string `json:"day_name"`
	WorkoutName     string `json:"workout_name"`
	WorkoutType     string `json:"workout_type"`
	Intensity       string `json:"intensity"`
	DurationMinutes int    `json:"duration_minutes"`
	HealthSafe      bool   `json:"health_safe"`
}
