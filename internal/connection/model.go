// File: internal/connection/model.go
package connection

import "time"

// FriendRequest is a connection request from a traveler (sender) to a guide
// or host (receiver). The primary key is derived from the ordered pair of
// participants, so at most one request per direction can exist at a time and
// re-sending overwrites the previous record in place.
type FriendRequest struct {
	ID          string `gorm:"type:varchar(300);primaryKey" json:"id"`
	SenderUID   string `gorm:"type:varchar(128);not null;index" json:"sender_uid"`
	ReceiverUID string `gorm:"type:varchar(128);not null;index" json:"receiver_uid"`
	Status      string `gorm:"type:varchar(32);not null" json:"status"`
	// CreatedAt is the creation instant in epoch milliseconds.
	CreatedAt int64 `gorm:"not null" json:"created_at"`

	// Booking details captured at request time. All optional; projections
	// copy them through as-is.
	Location     string `gorm:"type:varchar(255)" json:"location"`
	Date         string `gorm:"type:varchar(64)" json:"date"`
	Time         string `gorm:"type:varchar(64)" json:"time"`
	Price        string `gorm:"type:varchar(64)" json:"price"`
	Duration     string `gorm:"type:varchar(64)" json:"duration"`
	PartnerName  string `gorm:"type:varchar(255)" json:"partner_name"`
	GuestName    string `gorm:"type:varchar(255)" json:"guest_name"`
	TourType     string `gorm:"type:varchar(128)" json:"tour_type"`
	TourName     string `gorm:"type:varchar(255)" json:"tour_name"`
	Participants string `gorm:"type:varchar(64)" json:"participants"`
}

// TableName specifies the table name for the FriendRequest model.
func (FriendRequest) TableName() string {
	return "friend_requests"
}

// RequestID builds the composite record key for a sender/receiver pair.
func RequestID(senderUID, receiverUID string) string {
	return senderUID + "_to_" + receiverUID
}

// CreatedTime returns the record's creation instant as a time.Time.
func (fr *FriendRequest) CreatedTime() time.Time {
	return time.UnixMilli(fr.CreatedAt)
}

// Trip is the traveler-facing projection of a request the viewer sent. The
// partner fields reflect the receiver's live profile, not the values stored
// on the record.
type Trip struct {
	RequestID    string     `json:"request_id"`
	PartnerUID   string     `json:"partner_uid"`
	PartnerName  string     `json:"partner_name"`
	ImageURL     string     `json:"image_url"`
	Location     string     `json:"location"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Price        string     `json:"price"`
	Duration     string     `json:"duration"`
	TourType     string     `json:"tour_type"`
	TourName     string     `json:"tour_name"`
	Participants string     `json:"participants"`
	Status       TripStatus `json:"status"`
}

// Tour is the guide-facing projection of a request the viewer received. The
// guest fields reflect the sender's live profile, and time/date are rendered
// from the record's creation instant.
type Tour struct {
	RequestID    string     `json:"request_id"`
	GuestUID     string     `json:"guest_uid"`
	GuestName    string     `json:"guest_name"`
	ImageURL     string     `json:"image_url"`
	Location     string     `json:"location"`
	Date         string     `json:"date"`
	Time         string     `json:"time"`
	Price        string     `json:"price"`
	Duration     string     `json:"duration"`
	TourType     string     `json:"tour_type"`
	TourName     string     `json:"tour_name"`
	Participants string     `json:"participants"`
	Status       TourStatus `json:"status"`
}

// SendRequest is the payload for creating a connection request.
type SendRequest struct {
	ReceiverUID  string `json:"receiver_uid" binding:"required"`
	Location     string `json:"location" binding:"omitempty,max=255"`
	Date         string `json:"date" binding:"omitempty,max=64"`
	Time         string `json:"time" binding:"omitempty,max=64"`
	Price        string `json:"price" binding:"omitempty,max=64"`
	Duration     string `json:"duration" binding:"omitempty,max=64"`
	TourType     string `json:"tour_type" binding:"omitempty,max=128"`
	TourName     string `json:"tour_name" binding:"omitempty,max=255"`
	Participants string `json:"participants" binding:"omitempty,max=64"`
}

// PendingRequestResponse is the wire form of an incoming pending request.
type PendingRequestResponse struct {
	ID           string `json:"id"`
	SenderUID    string `json:"sender_uid"`
	SenderName   string `json:"sender_name"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
	Location     string `json:"location"`
	TourType     string `json:"tour_type"`
	TourName     string `json:"tour_name"`
	Participants string `json:"participants"`
}
