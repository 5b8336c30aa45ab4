package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize_KnownValues(t *testing.T) {
	assert.Equal(t, StatusPending, Canonicalize("pending"))
	assert.Equal(t, StatusAccepted, Canonicalize("accepted"))
	assert.Equal(t, StatusRejected, Canonicalize("rejected"))
	assert.Equal(t, StatusCanceled, Canonicalize("canceled"))
}

func TestCanonicalize_CaseInsensitive(t *testing.T) {
	assert.Equal(t, StatusAccepted, Canonicalize("ACCEPTED"))
	assert.Equal(t, StatusAccepted, Canonicalize("Accepted"))
	assert.Equal(t, StatusRejected, Canonicalize("ReJeCtEd"))
	assert.Equal(t, StatusCanceled, Canonicalize("CANCELED"))
	assert.Equal(t, StatusPending, Canonicalize("PENDING"))
}

func TestCanonicalize_DefaultsToPending(t *testing.T) {
	assert.Equal(t, StatusPending, Canonicalize(""))
	assert.Equal(t, StatusPending, Canonicalize("garbage"))
	assert.Equal(t, StatusPending, Canonicalize("completed"))
	assert.Equal(t, StatusPending, Canonicalize("cancelled")) // British spelling is not canonical
	assert.Equal(t, StatusPending, Canonicalize("  accepted  "))
}

func TestStatus_TripStatusMapping(t *testing.T) {
	assert.Equal(t, TripConfirmed, StatusAccepted.TripStatus())
	assert.Equal(t, TripPending, StatusPending.TripStatus())
	assert.Equal(t, TripCanceled, StatusRejected.TripStatus())
	assert.Equal(t, TripCanceled, StatusCanceled.TripStatus())
}

func TestStatus_TourStatusMapping(t *testing.T) {
	assert.Equal(t, TourConfirmed, StatusAccepted.TourStatus())
	assert.Equal(t, TourPending, StatusPending.TourStatus())
	assert.Equal(t, TourCanceled, StatusRejected.TourStatus())
	assert.Equal(t, TourCanceled, StatusCanceled.TourStatus())
}

func TestStatusMapping_CompletedIsUnreachable(t *testing.T) {
	inputs := []string{
		"", "pending", "accepted", "rejected", "canceled",
		"ACCEPTED", "completed", "COMPLETED", "done", "garbage",
	}
	for _, raw := range inputs {
		canonical := Canonicalize(raw)
		assert.NotEqual(t, TripCompleted, canonical.TripStatus(), "input %q", raw)
		assert.NotEqual(t, TourCompleted, canonical.TourStatus(), "input %q", raw)
	}
}
