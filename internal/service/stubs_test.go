package service

import (
	"context"
	"time"

	"skillswap/internal/models"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	listFn       func(context.Context, *bool, int, int) ([]models.User, int64, error)
	discoverFn   func(context.Context, uint, string, bool, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) List(ctx context.Context, banned *bool, limit, offset int) ([]models.User, int64, error) {
	return s.listFn(ctx, banned, limit, offset)
}
func (s *userRepoStub) Discover(ctx context.Context, excludeUserID uint, query string, matchName bool, limit int) ([]models.User, error) {
	return s.discoverFn(ctx, excludeUserID, query, matchName, limit)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(context.Context, uint) (*models.User, error) { return &models.User{IsPublic: true}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		listFn: func(context.Context, *bool, int, int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
		discoverFn: func(context.Context, uint, string, bool, int) ([]models.User, error) { return nil, nil },
	}
}

type swapRepoStub struct {
	createFn            func(context.Context, *models.SwapRequest) error
	getByIDFn           func(context.Context, uint) (*models.SwapRequest, error)
	getPendingBetweenFn func(context.Context, uint, uint) (*models.SwapRequest, error)
	listForUserFn       func(context.Context, uint, models.SwapStatus) ([]models.SwapRequest, error)
	updateStatusFn      func(context.Context, uint, models.SwapStatus) error
	completeFn          func(context.Context, uint) (time.Time, error)
	adminListFn         func(context.Context, models.SwapStatus, int, int) ([]models.SwapRequest, int64, error)
	deleteWithRatingsFn func(context.Context, uint) error
}

func (s *swapRepoStub) Create(ctx context.Context, swap *models.SwapRequest) error {
	return s.createFn(ctx, swap)
}
func (s *swapRepoStub) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	return s.getByIDFn(ctx, id)
}
func (s *swapRepoStub) GetPendingBetween(ctx context.Context, fromUserID, toUserID uint) (*models.SwapRequest, error) {
	return s.getPendingBetweenFn(ctx, fromUserID, toUserID)
}
func (s *swapRepoStub) ListForUser(ctx context.Context, userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	return s.listForUserFn(ctx, userID, status)
}
func (s *swapRepoStub) UpdateStatus(ctx context.Context, swapID uint, status models.SwapStatus) error {
	return s.updateStatusFn(ctx, swapID, status)
}
func (s *swapRepoStub) Complete(ctx context.Context, swapID uint) (time.Time, error) {
	return s.completeFn(ctx, swapID)
}
func (s *swapRepoStub) AdminList(ctx context.Context, status models.SwapStatus, limit, offset int) ([]models.SwapRequest, int64, error) {
	return s.adminListFn(ctx, status, limit, offset)
}
func (s *swapRepoStub) DeleteWithRatings(ctx context.Context, swapID uint) error {
	return s.deleteWithRatingsFn(ctx, swapID)
}

func noopSwapRepo() *swapRepoStub {
	return &swapRepoStub{
		createFn: func(context.Context, *models.SwapRequest) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.SwapRequest, error) {
			return &models.SwapRequest{}, nil
		},
		getPendingBetweenFn: func(context.Context, uint, uint) (*models.SwapRequest, error) { return nil, nil },
		listForUserFn: func(context.Context, uint, models.SwapStatus) ([]models.SwapRequest, error) {
			return nil, nil
		},
		updateStatusFn: func(context.Context, uint, models.SwapStatus) error { return nil },
		completeFn:     func(context.Context, uint) (time.Time, error) { return time.Now(), nil },
		adminListFn: func(context.Context, models.SwapStatus, int, int) ([]models.SwapRequest, int64, error) {
			return nil, 0, nil
		},
		deleteWithRatingsFn: func(context.Context, uint) error { return nil },
	}
}

type ratingRepoStub struct {
	getByRaterAndSwapFn   func(context.Context, uint, uint) (*models.Rating, error)
	submitWithAggregateFn func(context.Context, *models.Rating) error
	listReceivedFn        func(context.Context, uint, int) ([]models.Rating, error)
	listGivenFn           func(context.Context, uint) ([]models.Rating, error)
}

func (s *ratingRepoStub) GetByRaterAndSwap(ctx context.Context, raterID, swapID uint) (*models.Rating, error) {
	return s.getByRaterAndSwapFn(ctx, raterID, swapID)
}
func (s *ratingRepoStub) SubmitWithAggregate(ctx context.Context, rating *models.Rating) error {
	return s.submitWithAggregateFn(ctx, rating)
}
func (s *ratingRepoStub) ListReceived(ctx context.Context, userID uint, limit int) ([]models.Rating, error) {
	return s.listReceivedFn(ctx, userID, limit)
}
func (s *ratingRepoStub) ListGiven(ctx context.Context, userID uint) ([]models.Rating, error) {
	return s.listGivenFn(ctx, userID)
}

func noopRatingRepo() *ratingRepoStub {
	return &ratingRepoStub{
		getByRaterAndSwapFn:   func(context.Context, uint, uint) (*models.Rating, error) { return nil, nil },
		submitWithAggregateFn: func(context.Context, *models.Rating) error { return nil },
		listReceivedFn:        func(context.Context, uint, int) ([]models.Rating, error) { return nil, nil },
		listGivenFn:           func(context.Context, uint) ([]models.Rating, error) { return nil, nil },
	}
}

type adminLogRepoStub struct {
	appendFn func(context.Context, *models.AdminLog) error
	listFn   func(context.Context, int, int) ([]models.AdminLog, int64, error)
}

func (s *adminLogRepoStub) Append(ctx context.Context, entry *models.AdminLog) error {
	return s.appendFn(ctx, entry)
}
func (s *adminLogRepoStub) List(ctx context.Context, limit, offset int) ([]models.AdminLog, int64, error) {
	return s.listFn(ctx, limit, offset)
}

func noopAdminLogRepo() *adminLogRepoStub {
	return &adminLogRepoStub{
		appendFn: func(context.Context, *models.AdminLog) error { return nil },
		listFn:   func(context.Context, int, int) ([]models.AdminLog, int64, error) { return nil, 0, nil },
	}
}
