package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// AdminLogRepository defines persistence operations for the moderation audit
// trail. The trail is append-only: there is deliberately no update or delete.
type AdminLogRepository interface {
	Append(ctx context.Context, entry *models.AdminLog) error
	List(ctx context.Context, limit, offset int) ([]models.AdminLog, int64, error)
}

type adminLogRepository struct {
	db *gorm.DB
}

// NewAdminLogRepository returns a new AdminLogRepository implementation.
func NewAdminLogRepository(db *gorm.DB) AdminLogRepository {
	return &adminLogRepository{db: db}
}

func (r *adminLogRepository) Append(ctx context.Context, entry *models.AdminLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *adminLogRepository) List(ctx context.Context, limit, offset int) ([]models.AdminLog, int64, error) {
	var entries []models.AdminLog
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.AdminLog{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	if err := r.db.WithContext(ctx).
		Preload("Admin").
		Preload("TargetUser").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&entries).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return entries, total, nil
}
