package repository

import (
	"context"

	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create inserts order. Status and PaymentStatus fall back to "pending".
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	checks := []func(tx *gorm.DB) error{
		func(tx *gorm.DB) error {
			return requireParent(tx, &models.Restaurant{}, "orders", "restaurant_id", order.RestaurantID)
		},
		func(tx *gorm.DB) error {
			return requireParent(tx, &models.Table{}, "orders", "table_id", order.TableID)
		},
	}
	if order.CustomerID != nil {
		checks = append(checks, func(tx *gorm.DB) error {
			return requireParent(tx, &models.User{}, "orders", "customer_id", *order.CustomerID)
		})
	}
	return insert(ctx, r.DB, "orders", order, checks...)
}

func (r *OrderRepository) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := findByID(ctx, r.DB, "orders", &order, id); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListByRestaurant returns the restaurant's orders, newest first.
func (r *OrderRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]models.Order, error) {
	var orders []models.Order
	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").Order("id DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
