// Package repository is the storage boundary. Every insert checks uniqueness
// and parent rows inside its transaction and reports violations as
// *ConstraintViolationError.
package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repositories struct {
	Users       *UserRepository
	Restaurants *RestaurantRepository
	MenuItems   *MenuItemRepository
	Tables      *TableRepository
	Orders      *OrderRepository
	Sessions    *SessionRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(db),
		Restaurants: NewRestaurantRepository(db),
		MenuItems:   NewMenuItemRepository(db),
		Tables:      NewTableRepository(db),
		Orders:      NewOrderRepository(db),
		Sessions:    NewSessionRepository(db),
	}
}

func exists(tx *gorm.DB, model interface{}, column string, value interface{}) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// requireParent fails with a foreign key violation on table.column when no
// row of parent has the given id.
func requireParent(tx *gorm.DB, parent interface{}, table, column string, id uint) error {
	ok, err := exists(tx, parent, "id", id)
	if err != nil {
		return err
	}
	if !ok {
		return &ConstraintViolationError{Kind: ConstraintForeignKey, Table: table, Column: column, Value: id}
	}
	return nil
}

func requireUnique(tx *gorm.DB, model interface{}, table, column string, value interface{}) error {
	taken, err := exists(tx, model, column, value)
	if err != nil {
		return err
	}
	if taken {
		return &ConstraintViolationError{Kind: ConstraintUnique, Table: table, Column: column, Value: value}
	}
	return nil
}

// insert runs checks and the insert in one transaction. Associations are
// never written through.
func insert(ctx context.Context, db *gorm.DB, table string, row interface{}, checks ...func(tx *gorm.DB) error) error {
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, check := range checks {
			if err := check(tx); err != nil {
				return err
			}
		}
		return tx.Omit(clause.Associations).Create(row).Error
	})
	return translate(err, table)
}

func findByID(ctx context.Context, db *gorm.DB, table string, dest interface{}, id uint) error {
	return translate(db.WithContext(ctx).First(dest, id).Error, table)
}
