package repository

import (
	"context"
	"errors"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context, banned *bool, limit, offset int) ([]models.User, int64, error)
	Discover(ctx context.Context, excludeUserID uint, query string, matchName bool, limit int) ([]models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("User already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, user.ID)
	return nil
}

// List returns a page of users with the total count, newest first. Banned
// users are included unless a ban filter is given; the admin surface is the
// only caller.
func (r *userRepository) List(ctx context.Context, banned *bool, limit, offset int) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	countQ := r.db.WithContext(ctx).Model(&models.User{})
	listQ := r.db.WithContext(ctx).Model(&models.User{})
	if banned != nil {
		countQ = countQ.Where("is_banned = ?", *banned)
		listQ = listQ.Where("is_banned = ?", *banned)
	}

	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	if err := listQ.Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}

// Discover returns public, unbanned users other than the caller, optionally
// filtered by a substring matched against offered and wanted skills. With
// matchName set the filter additionally matches the display name, for the
// general search mode.
func (r *userRepository) Discover(ctx context.Context, excludeUserID uint, query string, matchName bool, limit int) ([]models.User, error) {
	var users []models.User

	q := r.db.WithContext(ctx).
		Where("is_public = ? AND is_banned = ?", true, false).
		Where("id != ?", excludeUserID)

	if query != "" {
		pattern := "%" + query + "%"
		offered := skillSearchClause(r.db, "skills_offered")
		wanted := skillSearchClause(r.db, "skills_wanted")
		filter := r.db.Where(offered, pattern).Or(wanted, pattern)
		if matchName {
			filter = filter.Or(nameSearchClause(r.db), pattern)
		}
		q = q.Where(filter)
	}

	if err := q.Order("rating DESC, total_ratings DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
