package repository

import (
	"technews/internal/models"

	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create persists a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindAll lists all users. The password column is left out of the query so
// the hash never reaches list responses.
func (r *GormUserRepository) FindAll() ([]models.User, error) {
	var users []models.User
	if err := r.db.Omit("password").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// FindByID finds a user by ID without the password column, preloading the
// user's own posts and the posts they voted on.
func (r *GormUserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Omit("password").
		Preload("Posts").
		Preload("VotedPosts").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email. The stored hash is included; this is
// the login lookup.
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByIDWithHash finds a user by ID including the stored hash
func (r *GormUserRepository) FindByIDWithHash(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Update applies a partial update to a user
func (r *GormUserRepository) Update(id uint, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	return result.RowsAffected, result.Error
}

// Delete removes a user
func (r *GormUserRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.User{}, id)
	return result.RowsAffected, result.Error
}
