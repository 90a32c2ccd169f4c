package progress

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	// UpsertForDate writes the reading for the given day, replacing an
	// existing row for the same (user, day).
	UpsertForDate(userID uint, day time.Time, weight, bmi float64, category string) (*ProgressLog, error)
	GetLatest(userID uint) (*ProgressLog, error)
	ListByUser(userID uint) ([]ProgressLog, error)
	DeleteAllForUser(userID uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) UpsertForDate(userID uint, day time.Time, weight, bmi float64, category string) (*ProgressLog, error) {
	var existing ProgressLog
	err := r.db.
		Where("user_id = ? AND date = ?", userID, day).
		First(&existing).Error

	if err == nil {
		existing.Weight = weight
		existing.Bmi = bmi
		existing.Category = category
		if err := r.db.Save(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	entry := ProgressLog{
		UserID:   userID,
		Date:     day,
		Weight:   weight,
		Bmi:      bmi,
		Category: category,
	}
	if err := r.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) GetLatest(userID uint) (*ProgressLog, error) {
	var entry ProgressLog
	err := r.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Order("id DESC").
		First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *repository) ListByUser(userID uint) ([]ProgressLog, error) {
	var entries []ProgressLog
	err := r.db.
		Where("user_id = ?", userID).
		Order("date ASC").
		Order("id ASC").
		Find(&entries).Error
	return entries, err
}

func (r *repository) DeleteAllForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&ProgressLog{}).Error
}
