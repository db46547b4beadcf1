package server

import (
	"context"
	"testing"
	"time"

	"skillswap/internal/config"
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockUserRepository is a mock of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, banned *bool, limit, offset int) ([]models.User, int64, error) {
	args := m.Called(ctx, banned, limit, offset)
	users, _ := args.Get(0).([]models.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Discover(ctx context.Context, excludeUserID uint, query string, matchName bool, limit int) ([]models.User, error) {
	args := m.Called(ctx, excludeUserID, query, matchName, limit)
	users, _ := args.Get(0).([]models.User)
	return users, args.Error(1)
}

// MockSwapRepository is a mock of the SwapRepository interface
type MockSwapRepository struct {
	mock.Mock
}

func (m *MockSwapRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	args := m.Called(ctx, swap)
	return args.Error(0)
}

func (m *MockSwapRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapRequest), args.Error(1)
}

func (m *MockSwapRepository) GetPendingBetween(ctx context.Context, fromUserID, toUserID uint) (*models.SwapRequest, error) {
	args := m.Called(ctx, fromUserID, toUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SwapRequest), args.Error(1)
}

func (m *MockSwapRepository) ListForUser(ctx context.Context, userID uint, status models.SwapStatus) ([]models.SwapRequest, error) {
	args := m.Called(ctx, userID, status)
	swaps, _ := args.Get(0).([]models.SwapRequest)
	return swaps, args.Error(1)
}

func (m *MockSwapRepository) UpdateStatus(ctx context.Context, swapID uint, status models.SwapStatus) error {
	args := m.Called(ctx, swapID, status)
	return args.Error(0)
}

func (m *MockSwapRepository) Complete(ctx context.Context, swapID uint) (time.Time, error) {
	args := m.Called(ctx, swapID)
	return args.Get(0).(time.Time), args.Error(1)
}

func (m *MockSwapRepository) AdminList(ctx context.Context, status models.SwapStatus, limit, offset int) ([]models.SwapRequest, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	swaps, _ := args.Get(0).([]models.SwapRequest)
	return swaps, args.Get(1).(int64), args.Error(2)
}

func (m *MockSwapRepository) DeleteWithRatings(ctx context.Context, swapID uint) error {
	args := m.Called(ctx, swapID)
	return args.Error(0)
}

// MockRatingRepository is a mock of the RatingRepository interface
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) GetByRaterAndSwap(ctx context.Context, raterID, swapID uint) (*models.Rating, error) {
	args := m.Called(ctx, raterID, swapID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Rating), args.Error(1)
}

func (m *MockRatingRepository) SubmitWithAggregate(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *MockRatingRepository) ListReceived(ctx context.Context, userID uint, limit int) ([]models.Rating, error) {
	args := m.Called(ctx, userID, limit)
	ratings, _ := args.Get(0).([]models.Rating)
	return ratings, args.Error(1)
}

func (m *MockRatingRepository) ListGiven(ctx context.Context, userID uint) ([]models.Rating, error) {
	args := m.Called(ctx, userID)
	ratings, _ := args.Get(0).([]models.Rating)
	return ratings, args.Error(1)
}

// MockAdminLogRepository is a mock of the AdminLogRepository interface
type MockAdminLogRepository struct {
	mock.Mock
}

func (m *MockAdminLogRepository) Append(ctx context.Context, entry *models.AdminLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAdminLogRepository) List(ctx context.Context, limit, offset int) ([]models.AdminLog, int64, error) {
	args := m.Called(ctx, limit, offset)
	logs, _ := args.Get(0).([]models.AdminLog)
	return logs, args.Get(1).(int64), args.Error(2)
}

// setupMockDB creates a GORM *gorm.DB backed by sqlmock for unit tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

type testMocks struct {
	users    *MockUserRepository
	swaps    *MockSwapRepository
	ratings  *MockRatingRepository
	adminLog *MockAdminLogRepository
}

// newTestServer wires a Server to repository mocks, bypassing DB and Redis.
func newTestServer() (*Server, *testMocks) {
	mocks := &testMocks{
		users:    new(MockUserRepository),
		swaps:    new(MockSwapRepository),
		ratings:  new(MockRatingRepository),
		adminLog: new(MockAdminLogRepository),
	}

	s := &Server{
		config:       &config.Config{JWTSecret: "test_secret"},
		userRepo:     mocks.users,
		swapRepo:     mocks.swaps,
		ratingRepo:   mocks.ratings,
		adminLogRepo: mocks.adminLog,
	}
	s.userService = service.NewUserService(mocks.users)
	s.swapService = service.NewSwapService(mocks.swaps, mocks.users)
	s.ratingService = service.NewRatingService(mocks.ratings, mocks.swaps)
	s.adminService = service.NewAdminService(nil, mocks.users, mocks.swaps, mocks.adminLog)

	return s, mocks
}

// withUserID injects the authenticated user ID the way AuthRequired does.
func withUserID(userID uint) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	}
}
