package repository

import (
	"context"

	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create inserts user. Role falls back to the column default "customer".
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return insert(ctx, r.DB, "users", user, func(tx *gorm.DB) error {
		return requireUnique(tx, &models.User{}, "users", "username", user.Username)
	})
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := findByID(ctx, r.DB, "users", &user, id); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err, "users")
	}
	return &user, nil
}
