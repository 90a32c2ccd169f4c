package profile

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	GetByUserID(userID uint) (*UserProfile, error)
	Create(p *UserProfile) error
	Update(p *UserProfile) error
	// UpdateDerived rewrites the denormalized weight/BMI/category
	// fields after a progress reading.
	UpdateDerived(userID uint, weight, bmi float64, category string) error
	UpdateGoal(userID uint, goal string) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) GetByUserID(userID uint) (*UserProfile, error) {
	var p UserProfile
	err := r.db.Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) Create(p *UserProfile) error {
	return r.db.Create(p).Error
}

func (r *repository) Update(p *UserProfile) error {
	return r.db.Save(p).Error
}

func (r *repository) UpdateDerived(userID uint, weight, bmi float64, category string) error {
	return r.db.Model(&UserProfile{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"weight":          weight,
			"bmi":             bmi,
			"weight_category": category,
		}).Error
}

func (r *repository) UpdateGoal(userID uint, goal string) error {
	return r.db.Model(&UserProfile{}).Where("user_id = ?", userID).
		Update("goal", goal).Error
}
