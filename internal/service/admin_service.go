package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PlatformStats aggregates counts for the admin dashboard.
type PlatformStats struct {
	TotalUsers    int64            `json:"total_users"`
	BannedUsers   int64            `json:"banned_users"`
	AdminUsers    int64            `json:"admin_users"`
	TotalSwaps    int64            `json:"total_swaps"`
	SwapsByStatus map[string]int64 `json:"swaps_by_status"`
	TotalRatings  int64            `json:"total_ratings"`
}

// ExportPayload is the result of an admin data export.
type ExportPayload struct {
	Kind  string      `json:"kind"`
	Count int         `json:"count"`
	Rows  interface{} `json:"rows"`
}

// AdminService provides moderation and oversight business logic. It reads
// aggregate data straight from the database; mutations go through the
// repositories so caching stays correct.
type AdminService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	swapRepo repository.SwapRepository
	logRepo  repository.AdminLogRepository
}

// NewAdminService returns a new AdminService.
func NewAdminService(db *gorm.DB, userRepo repository.UserRepository, swapRepo repository.SwapRepository, logRepo repository.AdminLogRepository) *AdminService {
	return &AdminService{
		db:       db,
		userRepo: userRepo,
		swapRepo: swapRepo,
		logRepo:  logRepo,
	}
}

// record appends an audit entry and counts the action. Every moderation
// mutation must leave a trail, so a failed append fails the call.
func (s *AdminService) record(ctx context.Context, adminID uint, action models.AdminAction, targetUserID *uint, details string, metadata datatypes.JSONMap) error {
	entry := &models.AdminLog{
		AdminID:      adminID,
		Action:       action,
		TargetUserID: targetUserID,
		Details:      details,
		Metadata:     metadata,
	}
	if err := s.logRepo.Append(ctx, entry); err != nil {
		return err
	}
	observability.AdminActions.WithLabelValues(string(action)).Inc()
	return nil
}

// PromoteUser grants admin privileges to the target user.
func (s *AdminService) PromoteUser(ctx context.Context, adminID, targetID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return nil, models.NewValidationError("User is already an admin")
	}

	user.IsAdmin = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.record(ctx, adminID, models.AdminActionPromoteUser, &targetID,
		"Promoted "+user.Email+" to admin", nil); err != nil {
		return nil, err
	}
	return user, nil
}

// BanUser bans a user from the platform. Admins cannot ban themselves or
// other admins.
func (s *AdminService) BanUser(ctx context.Context, adminID, targetID uint, reason string) (*models.User, error) {
	if adminID == targetID {
		return nil, models.NewValidationError("You cannot ban yourself")
	}

	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return nil, models.NewValidationError("Admins cannot be banned")
	}
	if user.IsBanned {
		return nil, models.NewValidationError("User is already banned")
	}

	user.IsBanned = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	metadata := datatypes.JSONMap{}
	if reason = strings.TrimSpace(reason); reason != "" {
		metadata["reason"] = reason
	}
	if err := s.record(ctx, adminID, models.AdminActionBanUser, &targetID,
		"Banned "+user.Email, metadata); err != nil {
		return nil, err
	}
	return user, nil
}

// UnbanUser lifts a user's ban.
func (s *AdminService) UnbanUser(ctx context.Context, adminID, targetID uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if !user.IsBanned {
		return nil, models.NewValidationError("User is not banned")
	}

	user.IsBanned = false
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err := s.record(ctx, adminID, models.AdminActionUnbanUser, &targetID,
		"Unbanned "+user.Email, nil); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns a page of all users, optionally filtered by ban state.
func (s *AdminService) ListUsers(ctx context.Context, banned *bool, limit, offset int) ([]models.User, int64, error) {
	return s.userRepo.List(ctx, banned, limit, offset)
}

// ListSwaps returns a page of all swap requests, optionally filtered by status.
func (s *AdminService) ListSwaps(ctx context.Context, status string, limit, offset int) ([]models.SwapRequest, int64, error) {
	var filter models.SwapStatus
	if status != "" {
		filter = models.SwapStatus(status)
		switch filter {
		case models.SwapStatusPending, models.SwapStatusAccepted, models.SwapStatusRejected,
			models.SwapStatusCompleted, models.SwapStatusCancelled:
		default:
			return nil, 0, models.NewValidationError("Invalid status filter")
		}
	}
	return s.swapRepo.AdminList(ctx, filter, limit, offset)
}

// DeleteSwap permanently removes a swap and its ratings, rebalancing the
// affected users' aggregates.
func (s *AdminService) DeleteSwap(ctx context.Context, adminID, swapID uint) error {
	if err := s.swapRepo.DeleteWithRatings(ctx, swapID); err != nil {
		return err
	}
	return s.record(ctx, adminID, models.AdminActionDeleteSwap, nil,
		"Deleted swap request", datatypes.JSONMap{"swap_request_id": swapID})
}

// SendAlert records a platform-wide announcement in the audit trail.
func (s *AdminService) SendAlert(ctx context.Context, adminID uint, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.NewValidationError("Alert message is required")
	}
	if len(message) > 1000 {
		return models.NewValidationError("Alert message must not exceed 1000 characters")
	}
	return s.record(ctx, adminID, models.AdminActionSendAlert, nil,
		message, nil)
}

// ExportData returns a full dump of one collection for offline analysis.
func (s *AdminService) ExportData(ctx context.Context, adminID uint, kind string) (*ExportPayload, error) {
	payload := &ExportPayload{Kind: kind}

	switch kind {
	case "users":
		var users []models.User
		if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		payload.Rows = users
		payload.Count = len(users)
	case "swaps":
		var swaps []models.SwapRequest
		if err := s.db.WithContext(ctx).Order("id").Find(&swaps).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		payload.Rows = swaps
		payload.Count = len(swaps)
	case "ratings":
		var ratings []models.Rating
		if err := s.db.WithContext(ctx).Order("id").Find(&ratings).Error; err != nil {
			return nil, models.NewInternalError(err)
		}
		payload.Rows = ratings
		payload.Count = len(ratings)
	default:
		return nil, models.NewValidationError("kind must be 'users', 'swaps' or 'ratings'")
	}

	if err := s.record(ctx, adminID, models.AdminActionExportData, nil,
		"Exported "+kind, datatypes.JSONMap{"count": payload.Count}); err != nil {
		return nil, err
	}
	return payload, nil
}

// GetStats returns platform-wide counts for the admin dashboard.
func (s *AdminService) GetStats(ctx context.Context) (*PlatformStats, error) {
	stats := &PlatformStats{SwapsByStatus: map[string]int64{}}

	if err := s.db.WithContext(ctx).Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("is_banned = ?", true).Count(&stats.BannedUsers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("is_admin = ?", true).Count(&stats.AdminUsers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	type statusRow struct {
		Status string
		Count  int64
	}
	var rows []statusRow
	if err := s.db.WithContext(ctx).
		Table("swap_requests").
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, row := range rows {
		stats.SwapsByStatus[row.Status] = row.Count
		stats.TotalSwaps += row.Count
	}

	if err := s.db.WithContext(ctx).Model(&models.Rating{}).Count(&stats.TotalRatings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return stats, nil
}

// GetLogs returns a page of the moderation audit trail, newest first.
func (s *AdminService) GetLogs(ctx context.Context, limit, offset int) ([]models.AdminLog, int64, error) {
	return s.logRepo.List(ctx, limit, offset)
}
