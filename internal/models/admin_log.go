package models

import (
	"time"

	"gorm.io/datatypes"
)

// AdminAction enumerates the moderation actions recorded in the audit trail.
type AdminAction string

const (
	// AdminActionPromoteUser records granting admin privileges.
	AdminActionPromoteUser AdminAction = "promote_user"
	// AdminActionBanUser records banning a user.
	AdminActionBanUser AdminAction = "ban_user"
	// AdminActionUnbanUser records lifting a ban.
	AdminActionUnbanUser AdminAction = "unban_user"
	// AdminActionDeleteSwap records permanent removal of a swap request.
	AdminActionDeleteSwap AdminAction = "delete_swap"
	// AdminActionSendAlert records a platform-wide alert sent by an admin.
	AdminActionSendAlert AdminAction = "send_alert"
	// AdminActionExportData records a data export.
	AdminActionExportData AdminAction = "export_data"
)

// AdminLog is one entry in the append-only moderation audit trail.
// Entries are only ever created, never updated or deleted.
type AdminLog struct {
	ID           uint              `gorm:"primaryKey" json:"id"`
	AdminID      uint              `gorm:"not null;index" json:"admin_id"`
	Action       AdminAction       `gorm:"type:varchar(30);not null" json:"action"`
	TargetUserID *uint             `json:"target_user_id,omitempty"`
	Details      string            `gorm:"type:text" json:"details"`
	Metadata     datatypes.JSONMap `json:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`

	// Relationships
	Admin      *User `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	TargetUser *User `gorm:"foreignKey:TargetUserID" json:"target_user,omitempty"`
}

// TableName specifies the table name for GORM
func (AdminLog) TableName() string {
	return "admin_logs"
}
