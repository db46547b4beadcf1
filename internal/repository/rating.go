package repository

import (
	"context"
	"errors"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	GetByRaterAndSwap(ctx context.Context, raterID, swapID uint) (*models.Rating, error)
	SubmitWithAggregate(ctx context.Context, rating *models.Rating) error
	ListReceived(ctx context.Context, userID uint, limit int) ([]models.Rating, error)
	ListGiven(ctx context.Context, userID uint) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// GetByRaterAndSwap returns nil when the rater has not rated the swap yet.
func (r *ratingRepository) GetByRaterAndSwap(ctx context.Context, raterID, swapID uint) (*models.Rating, error) {
	var rating models.Rating
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? AND swap_request_id = ?", raterID, swapID).
		First(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &rating, nil
}

// SubmitWithAggregate inserts the rating and recomputes the recipient's
// average and count in the same transaction, so a reader never observes the
// new rating without the updated aggregate. The uniqueness index on
// (from_user_id, swap_request_id) turns a concurrent double-submit into a
// CONFLICT instead of a duplicate row.
func (r *ratingRepository) SubmitWithAggregate(ctx context.Context, rating *models.Rating) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rating).Error; err != nil {
			if isUniqueConstraintError(err) {
				return models.NewConflictError("You have already rated this swap")
			}
			return models.NewInternalError(err)
		}
		if err := recomputeUserAggregate(tx, rating.ToUserID); err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidateUser(ctx, rating.ToUserID)
	return nil
}

// ListReceived returns the user's most recent received ratings with the
// rater's name and the rated swap's skill lists resolved.
func (r *ratingRepository) ListReceived(ctx context.Context, userID uint, limit int) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("to_user_id = ?", userID).
		Preload("FromUser").
		Preload("SwapRequest").
		Order("created_at DESC").
		Limit(limit).
		Find(&ratings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}

// ListGiven returns ratings the user has submitted, newest first, with the
// recipient's name and the rated swap's skill lists resolved.
func (r *ratingRepository) ListGiven(ctx context.Context, userID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ?", userID).
		Preload("ToUser").
		Preload("SwapRequest").
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}
