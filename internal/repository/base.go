// Package repository implements the data access layer for the application.
package repository

import (
	"math"
	"strings"

	"gorm.io/gorm"
)

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite reports "UNIQUE constraint failed".
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

// skillSearchClause returns a WHERE fragment matching a substring against a
// JSON-encoded skill list column. JSONSlice maps to jsonb on Postgres, which
// needs a text cast before ILIKE; sqlite stores plain text and its LIKE is
// already case-insensitive for ASCII.
func skillSearchClause(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return column + "::text ILIKE ?"
	}
	return column + " LIKE ?"
}

// nameSearchClause returns a WHERE fragment matching a substring against the
// display name, case-insensitively on both dialects.
func nameSearchClause(db *gorm.DB) string {
	if db.Dialector.Name() == "postgres" {
		return "name ILIKE ?"
	}
	return "name LIKE ?"
}

// recomputeUserAggregate recalculates a user's rating average and count from
// the ratings table inside the caller's transaction. The stored average is
// rounded to one decimal place.
func recomputeUserAggregate(tx *gorm.DB, userID uint) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	if err := tx.Table("ratings").
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Where("to_user_id = ?", userID).
		Scan(&agg).Error; err != nil {
		return err
	}

	rounded := math.Round(agg.Avg*10) / 10
	return tx.Table("users").
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"rating":        rounded,
			"total_ratings": agg.Count,
		}).Error
}
