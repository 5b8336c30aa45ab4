package connection

import (
	"context"
	"testing"
	"time"

	"farway_backend/internal/common"
	"farway_backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockDirectory is a mock type for shared.Directory
type MockDirectory struct {
	mock.Mock
}

func (m *MockDirectory) GetProfile(ctx context.Context, uid string) (*shared.UserProfile, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.UserProfile), args.Error(1)
}

func newTestProjector(directory shared.Directory) *Projector {
	return NewProjector(directory, zap.NewNop())
}

func TestProjector_Trips_OverlaysPartnerProfile(t *testing.T) {
	ctx := context.Background()
	dir := new(MockDirectory)
	dir.On("GetProfile", ctx, "guide-1").Return(&shared.UserProfile{
		UID:       "guide-1",
		FirstName: "Abebe",
		LastName:  "Kebede",
		PhotoURL:  "https://cdn.example.com/abebe.jpg",
		Location:  "Addis Ababa",
	}, nil)

	records := []FriendRequest{{
		ID:          "traveler-1_to_guide-1",
		SenderUID:   "traveler-1",
		ReceiverUID: "guide-1",
		Status:      "accepted",
		CreatedAt:   time.Now().UnixMilli(),
		Location:    "stale stored location",
		PartnerName: "stale stored name",
		Date:        "12 Oct 2025",
		Time:        "09:30",
		Price:       "120",
		TourName:    "Entoto Hike",
	}}

	trips := newTestProjector(dir).Trips(ctx, records, "traveler-1")

	assert.Len(t, trips, 1)
	trip := trips[0]
	assert.Equal(t, "traveler-1_to_guide-1", trip.RequestID)
	assert.Equal(t, "guide-1", trip.PartnerUID)
	// Live profile data wins over the record's stored copies.
	assert.Equal(t, "Abebe Kebede", trip.PartnerName)
	assert.Equal(t, "https://cdn.example.com/abebe.jpg", trip.ImageURL)
	assert.Equal(t, "Addis Ababa", trip.Location)
	// Booking fields are copied through from the record.
	assert.Equal(t, "12 Oct 2025", trip.Date)
	assert.Equal(t, "09:30", trip.Time)
	assert.Equal(t, "120", trip.Price)
	assert.Equal(t, "Entoto Hike", trip.TourName)
	assert.Equal(t, TripConfirmed, trip.Status)
	dir.AssertExpectations(t)
}

func TestProjector_Trips_FailedLookupDegradesSingleRecord(t *testing.T) {
	ctx := context.Background()
	dir := new(MockDirectory)
	dir.On("GetProfile", ctx, "guide-ok").Return(&shared.UserProfile{
		UID:       "guide-ok",
		FirstName: "Sara",
		PhotoURL:  "https://cdn.example.com/sara.jpg",
		Location:  "Lalibela",
	}, nil)
	dir.On("GetProfile", ctx, "guide-gone").Return(nil, common.ErrNotFound)

	records := []FriendRequest{
		{ID: "t1_to_guide-ok", SenderUID: "t1", ReceiverUID: "guide-ok", Status: "pending"},
		{ID: "t1_to_guide-gone", SenderUID: "t1", ReceiverUID: "guide-gone", Status: "pending"},
	}

	trips := newTestProjector(dir).Trips(ctx, records, "t1")

	// Both records survive; only the one with the failed lookup degrades.
	assert.Len(t, trips, 2)
	assert.Equal(t, "Sara", trips[0].PartnerName)
	assert.Equal(t, fallbackGuideName, trips[1].PartnerName)
	assert.Empty(t, trips[1].ImageURL)
	dir.AssertExpectations(t)
}

func TestProjector_Trips_FiltersByViewerAsSender(t *testing.T) {
	ctx := context.Background()
	dir := new(MockDirectory)
	dir.On("GetProfile", ctx, mock.Anything).Return(&shared.UserProfile{FirstName: "X"}, nil)

	records := []FriendRequest{
		{ID: "viewer_to_g1", SenderUID: "viewer", ReceiverUID: "g1", Status: "pending"},
		{ID: "other_to_viewer", SenderUID: "other", ReceiverUID: "viewer", Status: "pending"},
	}

	trips := newTestProjector(dir).Trips(ctx, records, "viewer")

	assert.Len(t, trips, 1)
	assert.Equal(t, "viewer_to_g1", trips[0].RequestID)
}

func TestProjector_Tours_DerivesTimeAndDateFromCreation(t *testing.T) {
	ctx := context.Background()
	dir := new(MockDirectory)
	dir.On("GetProfile", ctx, "traveler-1").Return(&shared.UserProfile{
		UID:       "traveler-1",
		FirstName: "Hanna",
		LastName:  "Tesfaye",
		PhotoURL:  "https://cdn.example.com/hanna.jpg",
		Location:  "Gondar",
	}, nil)

	created := time.Date(2025, time.March, 7, 14, 5, 0, 0, time.Local)
	records := []FriendRequest{{
		ID:          "traveler-1_to_guide-1",
		SenderUID:   "traveler-1",
		ReceiverUID: "guide-1",
		Status:      "Pending",
		CreatedAt:   created.UnixMilli(),
		Date:        "stored date is ignored",
		Time:        "stored time is ignored",
	}}

	tours := newTestProjector(dir).Tours(ctx, records, "guide-1")

	assert.Len(t, tours, 1)
	tour := tours[0]
	assert.Equal(t, "traveler-1", tour.GuestUID)
	assert.Equal(t, "Hanna Tesfaye", tour.GuestName)
	assert.Equal(t, "https://cdn.example.com/hanna.jpg", tour.ImageURL)
	assert.Equal(t, "Gondar", tour.Location)
	assert.Equal(t, "14:05", tour.Time)
	assert.Equal(t, "07 Mar 2025", tour.Date)
	assert.Equal(t, TourPending, tour.Status)
	dir.AssertExpectations(t)
}

func TestProjector_Tours_FailedLookupUsesFallbackGuestName(t *testing.T) {
	ctx := context.Background()
	dir := new(MockDirectory)
	dir.On("GetProfile", ctx, "traveler-gone").Return(nil, common.ErrInternalServer)

	records := []FriendRequest{{
		ID:          "traveler-gone_to_guide-1",
		SenderUID:   "traveler-gone",
		ReceiverUID: "guide-1",
		Status:      "rejected",
		CreatedAt:   time.Now().UnixMilli(),
	}}

	tours := newTestProjector(dir).Tours(ctx, records, "guide-1")

	assert.Len(t, tours, 1)
	assert.Equal(t, fallbackTravelerName, tours[0].GuestName)
	assert.Empty(t, tours[0].ImageURL)
	assert.Equal(t, TourCanceled, tours[0].Status)
}

func TestProjector_Tours_FiltersByViewerAsReceiver(t *testing.T) {
	ctx := context.Background()
	dir := new(MockDirectory)
	dir.On("GetProfile", ctx, mock.Anything).Return(&shared.UserProfile{FirstName: "X"}, nil)

	records := []FriendRequest{
		{ID: "t1_to_viewer", SenderUID: "t1", ReceiverUID: "viewer", Status: "pending", CreatedAt: time.Now().UnixMilli()},
		{ID: "viewer_to_g1", SenderUID: "viewer", ReceiverUID: "g1", Status: "pending", CreatedAt: time.Now().UnixMilli()},
	}

	tours := newTestProjector(dir).Tours(ctx, records, "viewer")

	assert.Len(t, tours, 1)
	assert.Equal(t, "t1_to_viewer", tours[0].RequestID)
}
