package repository

import (
	"context"

	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type MenuItemRepository struct {
	DB *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) *MenuItemRepository {
	return &MenuItemRepository{DB: db}
}

func (r *MenuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return insert(ctx, r.DB, "menu_items", item, func(tx *gorm.DB) error {
		return requireParent(tx, &models.Restaurant{}, "menu_items", "restaurant_id", item.RestaurantID)
	})
}

func (r *MenuItemRepository) FindByID(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := findByID(ctx, r.DB, "menu_items", &item, id); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuItemRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category").Order("id").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
