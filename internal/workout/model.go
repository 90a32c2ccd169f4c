package workout

// UserWorkout is one materialized workout assignment row, a per-user
// copy of a resolved workout plan line item. The whole set is replaced
// on every re-resolution.
type UserWorkout struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	UserID          uint   `gorm:"not null;index" json:"user_id"`
	WorkoutID       uint   `gorm:"not null" json:"workout_id"`
	DayName         string `gorm:"type:varchar(10);not null" json:"day_name"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (UserWorkout) TableName() string { return "user_workouts" }
