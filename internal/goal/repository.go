package goal

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(g *Goal) error
	GetActive(userID uint) (*Goal, error)
	GetMostRecent(userID uint) (*Goal, error)
	// CloseActive completes every in_progress goal of the user
	// (goal supersession).
	CloseActive(userID uint) error
	SetStatus(goalID uint, status string) error
	DeleteAllForUser(userID uint) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(g *Goal) error {
	return r.db.Create(g).Error
}

func (r *repository) GetActive(userID uint) (*Goal, error) {
	var g Goal
	err := r.db.
		Where("user_id = ? AND status = ?", userID, StatusInProgress).
		Order("id DESC").
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) GetMostRecent(userID uint) (*Goal, error) {
	var g Goal
	err := r.db.
		Where("user_id = ?", userID).
		Order("id DESC").
		First(&g).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *repository) CloseActive(userID uint) error {
	return r.db.Model(&Goal{}).
		Where("user_id = ? AND status = ?", userID, StatusInProgress).
		Update("status", StatusCompleted).Error
}

func (r *repository) SetStatus(goalID uint, status string) error {
	return r.db.Model(&Goal{}).Where("id = ?", goalID).
		Update("status", status).Error
}

func (r *repository) DeleteAllForUser(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&Goal{}).Error
}
