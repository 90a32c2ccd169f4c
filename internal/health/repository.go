package health

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// GetConditionID returns the user's primary health condition id,
	// or ConditionNone when the user has none recorded.
	GetConditionID(userID uint) (uint, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) GetConditionID(userID uint) (uint, error) {
	var link UserHealthCondition
	err := r.db.Where("user_id = ?", userID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ConditionNone, nil
	}
	if err != nil {
		return 0, err
	}
	if link.HealthConditionID == 0 {
		return ConditionNone, nil
	}
	return link.HealthConditionID, nil
}
