package diet

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// ReplaceAssignments atomically swaps the user's diet assignment
	// rows for the given set. Passing an empty set clears them.
	ReplaceAssignments(userID uint, rows []UserDietFood) error
	ListAssignments(userID uint) ([]UserDietFood, error)

	CreateMealLog(log *MealLog) error
	GetMealLogsForDate(userID uint, date time.Time) ([]MealLogEntry, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) ReplaceAssignments(userID uint, rows []UserDietFood) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&UserDietFood{}).Error; err != nil {
			return err
		}
		for i := range rows {
			rows[i].ID = 0
			rows[i].UserID = userID
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) ListAssignments(userID uint) ([]UserDietFood, error) {
	var rows []UserDietFood
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&rows).Error
	return rows, err
}

func (r *repository) CreateMealLog(log *MealLog) error {
	return r.db.Create(log).Error
}

func (r *repository) GetMealLogsForDate(userID uint, date time.Time) ([]MealLogEntry, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var entries []MealLogEntry
	err := r.db.
		Table("meal_logs").
		Select(`meal_logs.meal_type, meal_logs.quantity, foods.food_name,
			foods.calories, foods.protein, foods.carbs, foods.fat`).
		Joins("JOIN foods ON foods.id = meal_logs.food_id").
		Where("meal_logs.user_id = ? AND meal_logs.date >= ? AND meal_logs.date < ?",
			userID, dayStart, dayEnd).
		Order("meal_logs.id").
		Scan(&entries).Error
	return entries, err
}
