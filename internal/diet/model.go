package diet

import "time"

// UserDietFood is one materialized diet assignment row, a per-user copy
// of a resolved diet plan line item. The whole set is replaced on every
// re-resolution; rows are never updated in place.
type UserDietFood struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   uint   `gorm:"not null;index" json:"user_id"`
	FoodID   uint   `gorm:"not null" json:"food_id"`
	MealType string `gorm:"type:varchar(20);not null" json:"meal_type"`
}

func (UserDietFood) TableName() string { return "user_diet_foods" }

// MealLog is a user's meal diary entry.
type MealLog struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"not null;index" json:"user_id"`
	FoodID   uint      `gorm:"not null" json:"food_id"`
	MealType string    `gorm:"type:varchar(20);not null" json:"meal_type"`
	Quantity float64   `json:"quantity"`
	Date     time.Time `gorm:"not null;index" json:"date"`
}

func (MealLog) TableName() string { return "meal_logs" }

// MealLogEntry is a diary row joined with its food details.
type MealLogEntry struct {
	MealType string  `json:"meal_type"`
	Quantity float64 `json:"quantity"`
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// LogMealRequest is the meal diary input.
type LogMealRequest struct {
	FoodID   uint    `json:"food_id" binding:"required"`
	MealType string  `json:"meal_type" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,gt=0"`
}
