package goal

import "time"

const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

const (
	TypeWeightLoss = "weight_loss"
	TypeMuscleGain = "muscle_gain"
	TypeFitness    = "fitness"
)

// Goal belongs to a user. At most one goal per user is in_progress:
// creating a new goal supersedes (completes) all prior active ones.
type Goal struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	GoalType    string    `gorm:"type:varchar(50);not null" json:"goal_type"`
	TargetValue float64   `json:"target_value"`
	StartDate   time.Time `gorm:"not null" json:"start_date"`
	Status      string    `gorm:"type:varchar(20);not null;default:in_progress;index" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Goal) TableName() string { return "goals" }

// SetGoalRequest is the goal creation input.
type SetGoalRequest struct {
	GoalType    string  `json:"goal_type" binding:"required"`
	TargetValue float64 `json:"target_value" binding:"required,gt=0"`
}
