package repository

import (
	"storefront/entity"

	"gorm.io/gorm"
)

// UserRepository only talks to the users table.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	if err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Count over all users ever registered; drives the first-user-is-admin rule.
// Takes a tx so registration can count and insert atomically.
func (r *UserRepository) Count(tx *gorm.DB) (int64, error) {
	var count int64
	if err := tx.Unscoped().Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepository) Create(tx *gorm.DB, user *entity.User) error {
	return tx.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CountActive backs the admin dashboard's user counter.
func (r *UserRepository) CountActive() (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Count(&count).Error
	return count, err
}

func (r *UserRepository) UpdateProfilePic(userID uint, filename string) error {
	return r.DB.Model(&entity.User{}).Where("id = ?", userID).
		Update("profile_pic", filename).Error
}
