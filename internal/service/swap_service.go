package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

// SwapService provides swap-request lifecycle business logic.
type SwapService struct {
	swapRepo repository.SwapRepository
	userRepo repository.UserRepository
}

// NewSwapService returns a new SwapService.
func NewSwapService(swapRepo repository.SwapRepository, userRepo repository.UserRepository) *SwapService {
	return &SwapService{
		swapRepo: swapRepo,
		userRepo: userRepo,
	}
}

// CreateSwap sends a swap request to the target user. A sender may only have
// one open request toward a given target at a time; a pending request in the
// opposite direction does not block.
func (s *SwapService) CreateSwap(ctx context.Context, fromUserID, toUserID uint, message string, offered, requested []string) (*models.SwapRequest, error) {
	if fromUserID == toUserID {
		return nil, models.NewValidationError("Cannot send a swap request to yourself")
	}
	if err := validation.ValidateSwapMessage(message); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	target, err := s.userRepo.GetByID(ctx, toUserID)
	if err != nil {
		return nil, err
	}
	if target.IsBanned {
		return nil, models.NewNotFoundError("User", toUserID)
	}

	existing, err := s.swapRepo.GetPendingBetween(ctx, fromUserID, toUserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("You already have a pending swap request to this user")
	}

	offeredClean, err := normalizeSkills(offered)
	if err != nil {
		return nil, err
	}
	requestedClean, err := normalizeSkills(requested)
	if err != nil {
		return nil, err
	}

	swap := &models.SwapRequest{
		FromUserID:      fromUserID,
		ToUserID:        toUserID,
		Message:         message,
		SkillsOffered:   offeredClean,
		SkillsRequested: requestedClean,
		Status:          models.SwapStatusPending,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, err
	}

	observability.SwapTransitions.WithLabelValues("create", string(models.SwapStatusPending)).Inc()
	return s.swapRepo.GetByID(ctx, swap.ID)
}

// GetSwap returns a swap visible only to its two participants.
func (s *SwapService) GetSwap(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}
	if !swap.Participant(userID) {
		return nil, models.NewUnauthorizedError("You are not a participant in this swap")
	}
	return swap, nil
}

// ListMySwaps returns the user's swaps in both directions, optionally
// filtered by status.
func (s *SwapService) ListMySwaps(ctx context.Context, userID uint, status string) ([]models.SwapRequest, error) {
	var filter models.SwapStatus
	if status != "" {
		filter = models.SwapStatus(status)
		switch filter {
		case models.SwapStatusPending, models.SwapStatusAccepted, models.SwapStatusRejected,
			models.SwapStatusCompleted, models.SwapStatusCancelled:
		default:
			return nil, models.NewValidationError("Invalid status filter")
		}
	}
	return s.swapRepo.ListForUser(ctx, userID, filter)
}

// AcceptSwap lets the target of a pending request agree to it.
func (s *SwapService) AcceptSwap(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	return s.decide(ctx, userID, swapID, models.SwapStatusAccepted, "accept")
}

// RejectSwap lets the target of a pending request decline it.
func (s *SwapService) RejectSwap(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	return s.decide(ctx, userID, swapID, models.SwapStatusRejected, "reject")
}

// decide applies the target's accept/reject decision. Ownership is checked
// before the state.
func (s *SwapService) decide(ctx context.Context, userID, swapID uint, to models.SwapStatus, action string) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if swap.ToUserID != userID {
		return nil, models.NewUnauthorizedError("Only the recipient can " + action + " a swap request")
	}
	if swap.Status != models.SwapStatusPending {
		return nil, models.NewInvalidStateError("Swap request is not pending")
	}

	if err := s.swapRepo.UpdateStatus(ctx, swapID, to); err != nil {
		return nil, err
	}

	observability.SwapTransitions.WithLabelValues(action, string(to)).Inc()
	return s.swapRepo.GetByID(ctx, swapID)
}

// CancelSwap lets the sender withdraw a request that is still pending.
func (s *SwapService) CancelSwap(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if swap.FromUserID != userID {
		return nil, models.NewUnauthorizedError("Only the sender can cancel a swap request")
	}
	if swap.Status != models.SwapStatusPending {
		return nil, models.NewInvalidStateError("Swap request is not pending")
	}

	if err := s.swapRepo.UpdateStatus(ctx, swapID, models.SwapStatusCancelled); err != nil {
		return nil, err
	}

	observability.SwapTransitions.WithLabelValues("cancel", string(models.SwapStatusCancelled)).Inc()
	return s.swapRepo.GetByID(ctx, swapID)
}

// CompleteSwap marks an accepted swap as done. Either participant may do it.
// A swap that is not accepted reports its state problem before ownership.
func (s *SwapService) CompleteSwap(ctx context.Context, userID, swapID uint) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, swapID)
	if err != nil {
		return nil, err
	}

	if swap.Status != models.SwapStatusAccepted {
		return nil, models.NewInvalidStateError("Only accepted swaps can be completed")
	}
	if !swap.Participant(userID) {
		return nil, models.NewUnauthorizedError("You are not a participant in this swap")
	}

	if _, err := s.swapRepo.Complete(ctx, swapID); err != nil {
		return nil, err
	}

	observability.SwapTransitions.WithLabelValues("complete", string(models.SwapStatusCompleted)).Inc()
	return s.swapRepo.GetByID(ctx, swapID)
}
