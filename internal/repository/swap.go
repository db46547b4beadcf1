package repository

import (
	"context"
	"errors"
	"time"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SwapRepository defines persistence operations for swap requests.
type SwapRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	GetByID(ctx context.Context, id uint) (*models.SwapRequest, error)
	GetPendingBetween(ctx context.Context, fromUserID, toUserID uint) (*models.SwapRequest, error)
	ListForUser(ctx context.Context, userID uint, status models.SwapStatus) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, swapID uint, status models.SwapStatus) error
	Complete(ctx context.Context, swapID uint) (time.Time, error)
	AdminList(ctx context.Context, status models.SwapStatus, limit, offset int) ([]models.SwapRequest, int64, error)
	DeleteWithRatings(ctx context.Context, swapID uint) error
}

type swapRepository struct {
	db *gorm.DB
}

// NewSwapRepository returns a new SwapRepository implementation.
func NewSwapRepository(db *gorm.DB) SwapRepository {
	return &swapRepository{db: db}
}

func (r *swapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	if err := r.db.WithContext(ctx).Create(swap).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).
		Preload("FromUser").
		Preload("ToUser").
		First(&swap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Swap request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

// GetPendingBetween finds an open request from one specific user to another.
// The direction matters: a pending request the other way does not block a new
// one. Returns nil when no such request exists.
func (r *swapRepository) GetPendingBetween(ctx context.Context, fromUserID, toUserID uint) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND to_user_id = ? AND status = ?",
			fromUserID, toUserID, models.SwapStatusPending).
		First(&swap).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &swap, nil
}

func (r *swapRepository) ListForUser(ctx context.Context, userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	var swaps []models.SwapRequest

	q := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Preload("FromUser").
		Preload("ToUser").
		Order("created_at DESC").
		Find(&swaps).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return swaps, nil
}

func (r *swapRepository) UpdateStatus(ctx context.Context, swapID uint, status models.SwapStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ?", swapID).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Complete marks the swap completed and stamps the completion time.
func (r *swapRepository) Complete(ctx context.Context, swapID uint) (time.Time, error) {
	now := time.Now()
	if err := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ?", swapID).
		Updates(map[string]interface{}{
			"status":       models.SwapStatusCompleted,
			"completed_at": now,
		}).Error; err != nil {
		return time.Time{}, models.NewInternalError(err)
	}
	return now, nil
}

func (r *swapRepository) AdminList(ctx context.Context, status models.SwapStatus, limit, offset int) ([]models.SwapRequest, int64, error) {
	var swaps []models.SwapRequest
	var total int64

	countQ := r.db.WithContext(ctx).Model(&models.SwapRequest{})
	listQ := r.db.WithContext(ctx).Model(&models.SwapRequest{})
	if status != "" {
		countQ = countQ.Where("status = ?", status)
		listQ = listQ.Where("status = ?", status)
	}

	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	if err := listQ.Preload("FromUser").
		Preload("ToUser").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&swaps).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return swaps, total, nil
}

// DeleteWithRatings removes a swap and any ratings attached to it in one
// transaction, then recomputes the aggregate for every user whose received
// ratings changed. Without the recompute a deleted swap would leave stale
// averages behind.
func (r *swapRepository) DeleteWithRatings(ctx context.Context, swapID uint) error {
	var affected []uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var result *gorm.DB
		if result = tx.First(&models.SwapRequest{}, swapID); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Swap request", swapID)
			}
			return models.NewInternalError(result.Error)
		}

		if err := tx.Model(&models.Rating{}).
			Where("swap_request_id = ?", swapID).
			Distinct().
			Pluck("to_user_id", &affected).Error; err != nil {
			return models.NewInternalError(err)
		}

		if err := tx.Where("swap_request_id = ?", swapID).
			Delete(&models.Rating{}).Error; err != nil {
			return models.NewInternalError(err)
		}
		if err := tx.Delete(&models.SwapRequest{}, swapID).Error; err != nil {
			return models.NewInternalError(err)
		}

		for _, userID := range affected {
			if err := recomputeUserAggregate(tx, userID); err != nil {
				return models.NewInternalError(err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, userID := range affected {
		cache.InvalidateUser(ctx, userID)
	}
	return nil
}
