package repository

import (
	"context"

	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) Create(ctx context.Context, restaurant *models.Restaurant) error {
	return insert(ctx, r.DB, "restaurants", restaurant)
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := findByID(ctx, r.DB, "restaurants", &restaurant, id); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) List(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := r.DB.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}
