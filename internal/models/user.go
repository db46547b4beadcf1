// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/datatypes"
)

// User represents a member of the skill-swap marketplace.
type User struct {
	ID            uint                        `gorm:"primaryKey" json:"id"`
	Name          string                      `gorm:"size:120;not null" json:"name"`
	Email         string                      `gorm:"uniqueIndex;not null" json:"email"`
	Password      string                      `gorm:"not null" json:"-"`
	Location      string                      `gorm:"size:120" json:"location"`
	Availability  string                      `gorm:"size:120" json:"availability"`
	SkillsOffered datatypes.JSONSlice[string] `json:"skills_offered"`
	SkillsWanted  datatypes.JSONSlice[string] `json:"skills_wanted"`
	IsPublic      bool                        `gorm:"not null;default:true" json:"is_public"`
	IsBanned      bool                        `gorm:"not null;default:false" json:"is_banned"`
	IsAdmin       bool                        `gorm:"not null;default:false" json:"is_admin"`
	Rating        float64                     `gorm:"type:decimal(2,1);not null;default:0" json:"rating"`
	TotalRatings  int                         `gorm:"not null;default:0" json:"total_ratings"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// UserSummary is the public-safe projection of a user returned by discovery
// and embedded wherever a counterpart's profile is shown. It never carries
// email, password or moderation flags.
type UserSummary struct {
	ID            uint                        `json:"id"`
	Name          string                      `json:"name"`
	Location      string                      `json:"location"`
	Availability  string                      `json:"availability"`
	SkillsOffered datatypes.JSONSlice[string] `json:"skills_offered"`
	SkillsWanted  datatypes.JSONSlice[string] `json:"skills_wanted"`
	Rating        float64                     `json:"rating"`
	TotalRatings  int                         `json:"total_ratings"`
}

// Summary returns the public-safe projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:            u.ID,
		Name:          u.Name,
		Location:      u.Location,
		Availability:  u.Availability,
		SkillsOffered: u.SkillsOffered,
		SkillsWanted:  u.SkillsWanted,
		Rating:        u.Rating,
		TotalRatings:  u.TotalRatings,
	}
}
