package connection

import (
	"context"
	"testing"
	"time"

	"farway_backend/internal/common"
	"farway_backend/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupConnectionRepoTest(t *testing.T) Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&FriendRequest{})
	require.NoError(t, err, "Failed to migrate database")

	return NewGORMRepository(db, zap.NewNop())
}

func newPendingRecord(senderUID, receiverUID string) *FriendRequest {
	return &FriendRequest{
		ID:          RequestID(senderUID, receiverUID),
		SenderUID:   senderUID,
		ReceiverUID: receiverUID,
		Status:      string(StatusPending),
		CreatedAt:   time.Now().UnixMilli(),
	}
}

func TestConnectionRepository_CreateAndFind(t *testing.T) {
	repo := setupConnectionRepoTest(t)
	ctx := context.Background()

	record := newPendingRecord("t1", "g1")
	record.TourName = "Simien Trek"
	require.NoError(t, repo.Create(ctx, record))

	found, err := repo.FindByID(ctx, "t1_to_g1")
	require.NoError(t, err)
	assert.Equal(t, "t1", found.SenderUID)
	assert.Equal(t, "g1", found.ReceiverUID)
	assert.Equal(t, "pending", found.Status)
	assert.Equal(t, "Simien Trek", found.TourName)
}

func TestConnectionRepository_CreateOverwritesInsteadOfDuplicating(t *testing.T) {
	repo := setupConnectionRepoTest(t)
	ctx := context.Background()

	first := newPendingRecord("t1", "g1")
	first.CreatedAt = 1000
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.UpdateStatus(ctx, first.ID, string(StatusAccepted)))

	second := newPendingRecord("t1", "g1")
	second.CreatedAt = 2000
	require.NoError(t, repo.Create(ctx, second))

	// Still exactly one record per sender/receiver pair, reset to pending.
	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pending", records[0].Status)
	assert.Equal(t, int64(2000), records[0].CreatedAt)
}

func TestConnectionRepository_ListPendingFor(t *testing.T) {
	repo := setupConnectionRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPendingRecord("t1", "g1")))
	require.NoError(t, repo.Create(ctx, newPendingRecord("t2", "g1")))
	require.NoError(t, repo.Create(ctx, newPendingRecord("t3", "g2")))
	require.NoError(t, repo.UpdateStatus(ctx, "t2_to_g1", string(StatusRejected)))

	pending, err := repo.ListPendingFor(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "t1_to_g1", pending[0].ID)
}

func TestConnectionRepository_ListPendingFor_EmptyIsValid(t *testing.T) {
	repo := setupConnectionRepoTest(t)

	pending, err := repo.ListPendingFor(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestConnectionRepository_UpdateStatus_MissingRecordIsNotFound(t *testing.T) {
	repo := setupConnectionRepoTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newPendingRecord("t1", "g1")))

	err := repo.UpdateStatus(ctx, "ghost_to_nobody", string(StatusAccepted))
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrNotFound.Code, apiErr.Code)

	// The failed update must not touch existing records.
	existing, err := repo.FindByID(ctx, "t1_to_g1")
	require.NoError(t, err)
	assert.Equal(t, "pending", existing.Status)
}

// staticDirectory resolves profiles from a fixed map.
type staticDirectory struct {
	profiles map[string]*shared.UserProfile
}

func (d *staticDirectory) GetProfile(_ context.Context, uid string) (*shared.UserProfile, error) {
	if p, ok := d.profiles[uid]; ok {
		return p, nil
	}
	return nil, common.ErrNotFound
}

func TestConnection_SendAcceptRoundTrip(t *testing.T) {
	repo := setupConnectionRepoTest(t)
	ctx := context.Background()
	dir := &staticDirectory{profiles: map[string]*shared.UserProfile{
		"U1": {UID: "U1", FirstName: "Hanna", LastName: "Tesfaye"},
		"U2": {UID: "U2", FirstName: "Abebe", LastName: "Kebede"},
	}}
	projector := NewProjector(dir, zap.NewNop())

	// U1 sends a request to U2.
	require.NoError(t, repo.Create(ctx, newPendingRecord("U1", "U2")))

	stored, err := repo.FindByID(ctx, "U1_to_U2")
	require.NoError(t, err)
	assert.Equal(t, "pending", stored.Status)

	// U2's tour view shows the pending request with U1's profile name.
	records, err := repo.ListAll(ctx)
	require.NoError(t, err)
	tours := projector.Tours(ctx, records, "U2")
	require.Len(t, tours, 1)
	assert.Equal(t, TourPending, tours[0].Status)
	assert.Equal(t, "Hanna Tesfaye", tours[0].GuestName)

	// U2 accepts; U1's trip view flips to confirmed.
	require.NoError(t, repo.UpdateStatus(ctx, "U1_to_U2", string(StatusAccepted)))

	records, err = repo.ListAll(ctx)
	require.NoError(t, err)
	trips := projector.Trips(ctx, records, "U1")
	require.Len(t, trips, 1)
	assert.Equal(t, TripConfirmed, trips[0].Status)
	assert.Equal(t, "Abebe Kebede", trips[0].PartnerName)
}
