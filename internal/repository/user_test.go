package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"skillswap/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	tests := []struct {
		name          string
		userID        uint
		mockBehavior  func()
		expectedUser  *models.User
		expectedError bool
	}{
		{
			name:   "Success",
			userID: 1,
			mockBehavior: func() {
				rows := sqlmock.NewRows([]string{"id", "name", "email"}).
					AddRow(1, "Ada Lovelace", "ada@example.com")
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(1, 1).
					WillReturnRows(rows)
			},
			expectedUser: &models.User{ID: 1, Name: "Ada Lovelace", Email: "ada@example.com"},
		},
		{
			name:   "Not Found",
			userID: 99,
			mockBehavior: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE "users"."id" = $1 ORDER BY "users"."id" LIMIT $2`)).
					WithArgs(99, 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockBehavior()
			user, err := repo.GetByID(ctx, tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
				var appErr *models.AppError
				require.True(t, errors.As(err, &appErr))
				assert.Equal(t, "NOT_FOUND", appErr.Code)
			} else if assert.NotNil(t, user) {
				assert.Equal(t, tt.expectedUser.Name, user.Name)
				assert.Equal(t, tt.expectedUser.Email, user.Email)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByEmail_Missing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users" WHERE email = $1 ORDER BY "users"."id" LIMIT $2`)).
		WithArgs("nobody@example.com", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	user, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "idx_users_email"`))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "hash",
	})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Discover_PostgresSkillSearch(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	// JSONSlice columns are jsonb on postgres, so the skill filter must cast
	// to text before ILIKE.
	rows := sqlmock.NewRows([]string{"id", "name", "rating"}).
		AddRow(2, "Ada Lovelace", 4.5)
	mock.ExpectQuery(regexp.QuoteMeta(`skills_offered::text ILIKE`)).
		WillReturnRows(rows)

	users, err := repo.Discover(context.Background(), 1, "guitar", false, 20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Ada Lovelace", users[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Discover_GeneralSearchMatchesName(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	// The general search mode also matches the display name, so a user is
	// discoverable by name even when no skill contains the query.
	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(2, "Guitar Hero")
	mock.ExpectQuery(regexp.QuoteMeta(`skills_wanted::text ILIKE $5 OR name ILIKE $6`)).
		WillReturnRows(rows)

	users, err := repo.Discover(context.Background(), 1, "guitar hero", true, 20)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Guitar Hero", users[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}
