package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

// Create inserts table, assigning a fresh QR code when none is set.
func (r *TableRepository) Create(ctx context.Context, table *models.Table) error {
	if table.QRCode == "" {
		table.QRCode = NewQRCode()
	}
	return insert(ctx, r.DB, "tables", table,
		func(tx *gorm.DB) error {
			return requireParent(tx, &models.Restaurant{}, "tables", "restaurant_id", table.RestaurantID)
		},
		func(tx *gorm.DB) error {
			return requireUnique(tx, &models.Table{}, "tables", "qr_code", table.QRCode)
		},
	)
}

// NewQRCode returns the token encoded in a table's printed QR code.
func NewQRCode() string {
	return uuid.NewString()
}

func (r *TableRepository) FindByID(ctx context.Context, id uint) (*models.Table, error) {
	var table models.Table
	if err := findByID(ctx, r.DB, "tables", &table, id); err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *TableRepository) FindByQRCode(ctx context.Context, code string) (*models.Table, error) {
	var table models.Table
	if err := r.DB.WithContext(ctx).Where("qr_code = ?", code).First(&table).Error; err != nil {
		return nil, translate(err, "tables")
	}
	return &table, nil
}

func (r *TableRepository) ListByRestaurant(ctx context.Context, restaurantID uint) ([]models.Table, error) {
	var tables []models.Table
	err := r.DB.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("number").
		Find(&tables).Error
	if err != nil {
		return nil, err
	}
	return tables, nil
}
