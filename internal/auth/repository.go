package auth

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(userID uint) (User, error)
	UpdatePassword(userID uint, hash string) error
	EmailExists(email string) (bool, error)

	CreateAdmin(admin *Admin) error
	FindAdminByEmail(email string) (*Admin, error)
	AdminEmailExists(email string) (bool, error)
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

func (r *repository) FindByID(userID uint) (User, error) {
	var user User
	err := r.db.First(&user, userID).Error
	return user, err
}

func (r *repository) UpdatePassword(userID uint, hash string) error {
	return r.db.Model(&User{}).Where("id = ?", userID).
		Update("password_hash", hash).Error
}

func (r *repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateAdmin(admin *Admin) error {
	return r.db.Create(admin).Error
}

func (r *repository) FindAdminByEmail(email string) (*Admin, error) {
	var a Admin
	err := r.db.Where("email = ?", email).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &a, err
}

func (r *repository) AdminEmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&Admin{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
