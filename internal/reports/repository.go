package reports

import (
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	GetProgressRows(userID uint, start, end time.Time) ([]ProgressReportRow, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) GetProgressRows(userID uint, start, end time.Time) ([]ProgressReportRow, error) {
	var rows []ProgressReportRow
	err := r.db.
		Table("progress_logs").
		Select("date, weight, bmi, category").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Scan(&rows).Error
	return rows, err
}
