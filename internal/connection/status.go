// File: internal/connection/status.go
package connection

import "strings"

// Status is the canonical form of the free-text status stored on a friend
// request record. Canonicalization is total: any unrecognized, empty or
// missing value is pending, never an error.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusCanceled Status = "canceled"
)

// Canonicalize maps a raw stored status string onto its canonical value.
// Matching is case-insensitive.
func Canonicalize(raw string) Status {
	switch strings.ToLower(raw) {
	case "accepted":
		return StatusAccepted
	case "rejected":
		return StatusRejected
	case "canceled":
		return StatusCanceled
	default:
		return StatusPending
	}
}

// TripStatus is the traveler-facing presentation status of a request.
type TripStatus string

const (
	TripConfirmed TripStatus = "CONFIRMED"
	TripPending   TripStatus = "PENDING"
	TripCanceled  TripStatus = "CANCELED"
	// TripCompleted exists in the client vocabulary but no stored status
	// maps to it.
	TripCompleted TripStatus = "COMPLETED"
)

// TourStatus is the guide-facing presentation status of a request.
type TourStatus string

const (
	TourConfirmed TourStatus = "CONFIRMED"
	TourPending   TourStatus = "PENDING"
	TourCanceled  TourStatus = "CANCELED"
	// TourCompleted exists in the client vocabulary but no stored status
	// maps to it.
	TourCompleted TourStatus = "COMPLETED"
)

// TripStatus maps a canonical status onto the traveler-facing vocabulary.
// Both rejected and canceled collapse into CANCELED.
func (s Status) TripStatus() TripStatus {
	switch s {
	case StatusAccepted:
		return TripConfirmed
	case StatusRejected, StatusCanceled:
		return TripCanceled
	default:
		return TripPending
	}
}

// TourStatus maps a canonical status onto the guide-facing vocabulary. The
// mapping has the same shape as TripStatus.
func (s Status) TourStatus() TourStatus {
	switch s {
	case StatusAccepted:
		return TourConfirmed
	case StatusRejected, StatusCanceled:
		return TourCanceled
	default:
		return TourPending
	}
}
