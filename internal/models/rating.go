package models

import "time"

// Rating is one participant's feedback on a completed swap. A user can rate
// a given swap once; the (from_user_id, swap_request_id) uniqueness index
// enforces that even under concurrent submission.
type Rating struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	FromUserID    uint      `gorm:"not null;uniqueIndex:idx_ratings_rater_swap" json:"from_user_id"`
	ToUserID      uint      `gorm:"not null;index" json:"to_user_id"`
	SwapRequestID uint      `gorm:"not null;uniqueIndex:idx_ratings_rater_swap" json:"swap_request_id"`
	Score         int       `gorm:"not null" json:"score"`
	Feedback      string    `gorm:"size:1000" json:"feedback"`
	CreatedAt     time.Time `json:"created_at"`

	// Relationships
	FromUser    *User        `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser      *User        `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
	SwapRequest *SwapRequest `gorm:"foreignKey:SwapRequestID" json:"swap_request,omitempty"`
}

// TableName specifies the table name for GORM
func (Rating) TableName() string {
	return "ratings"
}
