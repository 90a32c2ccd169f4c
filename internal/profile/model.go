package profile

import "time"

// UserProfile is owned 1:1 by a user. Bmi and WeightCategory are
// derived from Height/Weight and always written together.
type UserProfile struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Age            int       `json:"age"`
	Gender         string    `gorm:"type:varchar(10)" json:"gender"`
	Height         float64   `gorm:"not null" json:"height"` // cm
	Weight         float64   `gorm:"not null" json:"weight"` // kg
	ActivityLevel  string    `gorm:"type:varchar(20)" json:"activity_level"`
	Goal           string    `gorm:"type:varchar(50)" json:"goal"`
	FoodPreference string    `gorm:"type:varchar(20)" json:"food_preference"`
	Bmi            float64   `json:"bmi"`
	WeightCategory string    `gorm:"type:varchar(20)" json:"weight_category"` // low/normal/high
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// ProfileInput is the attribute set accepted on profile submission.
type ProfileInput struct {
	Age            int     `json:"age" binding:"required,gt=0"`
	Gender         string  `json:"gender" binding:"required"`
	Height         float64 `json:"height" binding:"required,gt=0"`
	Weight         float64 `json:"weight" binding:"required,gt=0"`
	ActivityLevel  string  `json:"activity_level" binding:"required"`
	Goal           string  `json:"goal" binding:"required"`
	FoodPreference string  `json:"food_preference" binding:"required"`
}
