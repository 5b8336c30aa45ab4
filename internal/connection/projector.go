// File: internal/connection/projector.go
package connection

import (
	"context"

	"farway_backend/internal/shared"

	"go.uber.org/zap"
)

const (
	fallbackGuideName    = "Unknown Guide"
	fallbackTravelerName = "Unknown Traveler"

	tourTimeLayout = "15:04"
	tourDateLayout = "02 Jan 2006"
)

// Projector turns stored friend request records into viewer-facing Trip and
// Tour records, overlaying the counterpart's live profile on each one.
//
// Counterpart lookups fail soft: a record whose counterpart cannot be
// resolved is still projected, with a fallback display name and an empty
// image URL, so one bad profile never hides the rest of the list.
type Projector struct {
	directory shared.Directory
	logger    *zap.Logger
}

// NewProjector creates a new Projector backed by the given user directory.
func NewProjector(directory shared.Directory, logger *zap.Logger) *Projector {
	return &Projector{directory: directory, logger: logger.Named("ConnectionProjector")}
}

// Trips projects the records the viewer sent. Partner fields come from the
// receiver's live profile; all other fields are copied from the record.
func (p *Projector) Trips(ctx context.Context, records []FriendRequest, viewerUID string) []Trip {
	trips := make([]Trip, 0, len(records))
	for i := range records {
		record := &records[i]
		if record.SenderUID != viewerUID {
			continue
		}

		trip := Trip{
			RequestID:    record.ID,
			PartnerUID:   record.ReceiverUID,
			PartnerName:  fallbackGuideName,
			Location:     record.Location,
			Date:         record.Date,
			Time:         record.Time,
			Price:        record.Price,
			Duration:     record.Duration,
			TourType:     record.TourType,
			TourName:     record.TourName,
			Participants: record.Participants,
			Status:       Canonicalize(record.Status).TripStatus(),
		}

		partner, err := p.directory.GetProfile(ctx, record.ReceiverUID)
		if err != nil {
			p.logger.Warn("Partner profile lookup failed, projecting trip with fallback fields",
				zap.String("requestID", record.ID),
				zap.String("partnerUID", record.ReceiverUID),
				zap.Error(err))
		} else {
			trip.PartnerName = partner.FullName()
			trip.ImageURL = partner.PhotoURL
			trip.Location = partner.Location
		}
		trips = append(trips, trip)
	}
	return trips
}

// Tours projects the records the viewer received. Guest fields come from the
// sender's live profile, and time/date are rendered from the record's
// creation instant.
func (p *Projector) Tours(ctx context.Context, records []FriendRequest, viewerUID string) []Tour {
	tours := make([]Tour, 0, len(records))
	for i := range records {
		record := &records[i]
		if record.ReceiverUID != viewerUID {
			continue
		}

		created := record.CreatedTime()
		tour := Tour{
			RequestID:    record.ID,
			GuestUID:     record.SenderUID,
			GuestName:    fallbackTravelerName,
			Location:     record.Location,
			Date:         created.Format(tourDateLayout),
			Time:         created.Format(tourTimeLayout),
			Price:        record.Price,
			Duration:     record.Duration,
			TourType:     record.TourType,
			TourName:     record.TourName,
			Participants: record.Participants,
			Status:       Canonicalize(record.Status).TourStatus(),
		}

		guest, err := p.directory.GetProfile(ctx, record.SenderUID)
		if err != nil {
			p.logger.Warn("Guest profile lookup failed, projecting tour with fallback fields",
				zap.String("requestID", record.ID),
				zap.String("guestUID", record.SenderUID),
				zap.Error(err))
		} else {
			tour.GuestName = guest.FullName()
			tour.ImageURL = guest.PhotoURL
			tour.Location = guest.Location
		}
		tours = append(tours, tour)
	}
	return tours
}
