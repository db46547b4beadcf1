package models

import (
	"time"

	"gorm.io/datatypes"
)

// SwapStatus defines lifecycle states for a swap request.
type SwapStatus string

const (
	// SwapStatusPending indicates the request is awaiting the target's decision.
	SwapStatusPending SwapStatus = "pending"
	// SwapStatusAccepted indicates the target agreed to the swap.
	SwapStatusAccepted SwapStatus = "accepted"
	// SwapStatusRejected indicates the target declined the swap.
	SwapStatusRejected SwapStatus = "rejected"
	// SwapStatusCompleted indicates a participant marked the swap as done.
	SwapStatusCompleted SwapStatus = "completed"
	// SwapStatusCancelled indicates the requester withdrew the request.
	SwapStatusCancelled SwapStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted from the status.
func (s SwapStatus) IsTerminal() bool {
	return s == SwapStatusRejected || s == SwapStatusCompleted || s == SwapStatusCancelled
}

// SwapRequest is a negotiation between two users to exchange skills.
// Transitions: pending -> accepted | rejected | cancelled; accepted -> completed.
type SwapRequest struct {
	ID              uint                        `gorm:"primaryKey" json:"id"`
	FromUserID      uint                        `gorm:"not null;index:idx_swap_requests_from_status" json:"from_user_id"`
	ToUserID        uint                        `gorm:"not null;index:idx_swap_requests_to_status" json:"to_user_id"`
	Message         string                      `gorm:"size:500;not null" json:"message"`
	SkillsOffered   datatypes.JSONSlice[string] `json:"skills_offered"`
	SkillsRequested datatypes.JSONSlice[string] `json:"skills_requested"`
	Status          SwapStatus                  `gorm:"type:varchar(20);not null;default:'pending';index:idx_swap_requests_from_status;index:idx_swap_requests_to_status" json:"status"`
	CompletedAt     *time.Time                  `json:"completed_at,omitempty"`
	CreatedAt       time.Time                   `json:"created_at"`
	UpdatedAt       time.Time                   `json:"updated_at"`

	// Relationships
	FromUser *User `gorm:"foreignKey:FromUserID" json:"from_user,omitempty"`
	ToUser   *User `gorm:"foreignKey:ToUserID" json:"to_user,omitempty"`
}

// TableName specifies the table name for GORM
func (SwapRequest) TableName() string {
	return "swap_requests"
}

// Participant reports whether the user is the requester or the target of the swap.
func (r *SwapRequest) Participant(userID uint) bool {
	return r.FromUserID == userID || r.ToUserID == userID
}

// Counterpart returns the other participant's ID relative to userID.
// The second value is false when userID is not a participant.
func (r *SwapRequest) Counterpart(userID uint) (uint, bool) {
	switch userID {
	case r.FromUserID:
		return r.ToUserID, true
	case r.ToUserID:
		return r.FromUserID, true
	}
	return 0, false
}
