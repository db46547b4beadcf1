package service

import (
	"context"
	"strconv"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

// RatingsReceivedLimit caps how many recent received ratings a profile shows.
const RatingsReceivedLimit = 10

// RatingService provides rating submission and lookup business logic.
type RatingService struct {
	ratingRepo repository.RatingRepository
	swapRepo   repository.SwapRepository
}

// NewRatingService returns a new RatingService.
func NewRatingService(ratingRepo repository.RatingRepository, swapRepo repository.SwapRepository) *RatingService {
	return &RatingService{
		ratingRepo: ratingRepo,
		swapRepo:   swapRepo,
	}
}

// SubmitRating records the rater's feedback on a completed swap and updates
// the recipient's aggregate. Guards run in a fixed order: the swap must
// exist, be completed, include the rater, and name the rater's counterpart
// as the recipient; then a repeat submission is refused.
func (s *RatingService) SubmitRating(ctx context.Context, raterID, swapID, toUserID uint, score int, feedback string) (*models.Rating, error) {
	if err := validation.ValidateScore(score); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateFeedback(feedback); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if swap.Status != models.SwapStatusCompleted {
		return nil, models.NewInvalidStateError("Only completed swaps can be rated")
	}
	if !swap.Participant(raterID) {
		return nil, models.NewUnauthorizedError("You are not a participant in this swap")
	}
	counterpart, _ := swap.Counterpart(raterID)
	if toUserID != counterpart {
		return nil, models.NewValidationError("You can only rate the other participant of the swap")
	}

	existing, err := s.ratingRepo.GetByRaterAndSwap(ctx, raterID, swapID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You have already rated this swap")
	}

	rating := &models.Rating{
		FromUserID:    raterID,
		ToUserID:      toUserID,
		SwapRequestID: swapID,
		Score:         score,
		Feedback:      feedback,
	}
	if err := s.ratingRepo.SubmitWithAggregate(ctx, rating); err != nil {
		return nil, err
	}

	observability.RatingSubmissions.WithLabelValues(strconv.Itoa(score)).Inc()
	return rating, nil
}

// GetRatingsReceived returns the user's most recent received ratings.
func (s *RatingService) GetRatingsReceived(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.ratingRepo.ListReceived(ctx, userID, RatingsReceivedLimit)
}

// GetRatingsGiven returns ratings the user has submitted.
func (s *RatingService) GetRatingsGiven(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.ratingRepo.ListGiven(ctx, userID)
}
