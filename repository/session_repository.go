package repository

import (
	"context"
	"time"

	"github.com/yeremiapane/restaurant-ordering/models"
	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.Session) error {
	return insert(ctx, r.DB, "sessions", session, func(tx *gorm.DB) error {
		return requireParent(tx, &models.Table{}, "sessions", "table_id", session.TableID)
	})
}

func (r *SessionRepository) FindByID(ctx context.Context, id uint) (*models.Session, error) {
	var session models.Session
	if err := findByID(ctx, r.DB, "sessions", &session, id); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListActiveByTable returns the table's active sessions that have not
// expired at now.
func (r *SessionRepository) ListActiveByTable(ctx context.Context, tableID uint, now time.Time) ([]models.Session, error) {
	var sessions []models.Session
	err := r.DB.WithContext(ctx).
		Where("table_id = ? AND is_active = ?", tableID, true).
		Where("expires_at IS NULL OR expires_at > ?", now).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// DeactivateExpired marks every active session whose expiresAt is not after
// now as inactive and returns how many rows changed.
func (r *SessionRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Session{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
