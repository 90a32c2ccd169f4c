package workout

import "gorm.io/gorm"

type Repository interface {
	// ReplaceAssignments atomically swaps the user's workout assignment
	// rows for the given set. Passing an empty set clears them.
	ReplaceAssignments(userID uint, rows []UserWorkout) error
	ListAssignments(userID uint) ([]UserWorkout, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) ReplaceAssignments(userID uint, rows []UserWorkout) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&UserWorkout{}).Error; err != nil {
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

func (r *repository) ListAssignments(userID uint) ([]UserWorkout, error) {
	var rows []UserWorkout
	err := r.db.Where("user_id = ?", userID).Order("id").Find(&rows).Error
	return rows, err
}
