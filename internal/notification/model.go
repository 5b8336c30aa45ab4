package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type defines the type of notification.
type Type string

const (
	TypeConnectionRequestReceived Type = "connection_request_received"
	TypeConnectionRequestAccepted Type = "connection_request_accepted"
	TypeConnectionRequestRejected Type = "connection_request_rejected"
	TypeConnectionRequestReminder Type = "connection_request_reminder"
)

// Notification represents a user notification.
type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserUID string    `gorm:"type:varchar(128);not null;index:idx_notification_user_status" json:"user_uid"`
	Type    Type      `gorm:"type:varchar(100);not null" json:"type"`
	Message string    `gorm:"type:text;not null" json:"message"`
	// RelatedRequestID points at the connection request the notification is
	// about, when there is one.
	RelatedRequestID *string   `gorm:"type:varchar(300)" json:"related_request_id,omitempty"`
	IsRead           bool      `gorm:"not null;default:false;index:idx_notification_user_status" json:"is_read"`
	CreatedAt        time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index:idx_notification_user_status" json:"created_at"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}
