package health

// HealthCondition is reference data. Condition 1 is the "none" sentinel
// used by plan fallback resolution.
type HealthCondition struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);not null" json:"name"`
}

func (HealthCondition) TableName() string {
	return "health_conditions"
}

// UserHealthCondition links a user to their primary health condition.
type UserHealthCondition struct {
	ID                uint `gorm:"primaryKey" json:"id"`
	UserID            uint `gorm:"not null;index" json:"user_id"`
	HealthConditionID uint `gorm:"not null" json:"health_condition_id"`
}

func (UserHealthCondition) TableName() string {
	return "user_health_conditions"
}

// ConditionNone is the sentinel id meaning "no health condition".
const ConditionNone uint = 1
