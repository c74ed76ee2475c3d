package booking

import (
	"testing"

	"github.com/adeeb-debug/baitussalambookingapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupedRecord(id, groupID, location, status, reason string) models.BookingRecord {
	return models.BookingRecord{
		ID:              id,
		GroupID:         groupID,
		Date:            "2026-09-05",
		FromTime:        "10:00",
		ToTime:          "12:00",
		Location:        location,
		Status:          status,
		RejectionReason: reason,
		EventName:       "Annual Dinner",
		RequestedBy:     "ali@example.com",
		RequestedByName: "Ali",
	}
}

func TestGroupBookings(t *testing.T) {
	t.Run("records sharing a groupId collapse into one group", func(t *testing.T) {
		records := []models.BookingRecord{
			groupedRecord("b1", "g1", "Main Hall", models.StatusPending, ""),
			groupedRecord("b2", "g1", "Kitchen", models.StatusPending, ""),
			groupedRecord("b3", "g2", "Library", models.StatusApproved, ""),
		}
		groups := GroupBookings(records, models.StatusAll)
		require.Len(t, groups, 2)
		assert.Equal(t, "g1", groups[0].GroupID)
		assert.Len(t, groups[0].Bookings, 2)
		assert.Equal(t, 2, groups[0].LocationCount)
		assert.Equal(t, "g2", groups[1].GroupID)
		assert.Len(t, groups[1].Bookings, 1)
	})

	t.Run("missing groupId yields a singleton group", func(t *testing.T) {
		records := []models.BookingRecord{
			groupedRecord("legacy1", "", "Main Hall", models.StatusPending, ""),
			groupedRecord("legacy2", "", "Kitchen", models.StatusPending, ""),
		}
		groups := GroupBookings(records, models.StatusAll)
		require.Len(t, groups, 2)
		assert.Equal(t, "no_group_legacy1", groups[0].GroupID)
		assert.Equal(t, "no_group_legacy2", groups[1].GroupID)
	})

	t.Run("metadata comes from the first seen member", func(t *testing.T) {
		first := groupedRecord("b1", "g1", "Main Hall", models.StatusPending, "")
		second := groupedRecord("b2", "g1", "Kitchen", models.StatusPending, "")
		second.EventName = "Different Name"
		groups := GroupBookings([]models.BookingRecord{first, second}, models.StatusAll)
		require.Len(t, groups, 1)
		assert.Equal(t, "Annual Dinner", groups[0].EventName)
	})

	t.Run("first rejection reason is surfaced", func(t *testing.T) {
		records := []models.BookingRecord{
			groupedRecord("b1", "g1", "Main Hall", models.StatusRejected, "double booked"),
			groupedRecord("b2", "g1", "Kitchen", models.StatusRejected, "maintenance"),
		}
		groups := GroupBookings(records, models.StatusAll)
		require.Len(t, groups, 1)
		assert.Equal(t, "double booked", groups[0].RejectionReason)
		assert.Equal(t, models.CompositeRejected, groups[0].Status)
	})

	t.Run("location filter narrows before grouping", func(t *testing.T) {
		records := []models.BookingRecord{
			groupedRecord("b1", "g1", "Main Hall", models.StatusPending, ""),
			groupedRecord("b2", "g1", "Kitchen", models.StatusPending, ""),
			groupedRecord("b3", "g2", "Library", models.StatusPending, ""),
		}
		groups := GroupBookings(records, "Kitchen")
		require.Len(t, groups, 1)
		assert.Equal(t, "g1", groups[0].GroupID)
		assert.Len(t, groups[0].Bookings, 1)
		assert.Equal(t, "Kitchen", groups[0].Bookings[0].Location)
	})

	t.Run("composite status is derived per group", func(t *testing.T) {
		records := []models.BookingRecord{
			groupedRecord("b1", "g1", "Main Hall", models.StatusApproved, ""),
			groupedRecord("b2", "g1", "Kitchen", models.StatusRejected, ""),
			groupedRecord("b3", "g2", "Library", models.StatusPending, ""),
		}
		groups := GroupBookings(records, models.StatusAll)
		require.Len(t, groups, 2)
		assert.Equal(t, models.CompositePartiallyApproved, groups[0].Status)
		assert.Equal(t, models.CompositeInReview, groups[1].Status)
	})

	t.Run("grouping preserves record cardinality", func(t *testing.T) {
		records := []models.BookingRecord{
			groupedRecord("b1", "g1", "Main Hall", models.StatusPending, ""),
			groupedRecord("b2", "g1", "Kitchen", models.StatusPending, ""),
			groupedRecord("b3", "g2", "Library", models.StatusApproved, ""),
			groupedRecord("b4", "", "Kitchen", models.StatusCancelled, ""),
		}
		groups := GroupBookings(records, models.StatusAll)
		total := 0
		for _, g := range groups {
			total += len(g.Bookings)
		}
		assert.Equal(t, len(records), total)
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, GroupBookings(nil, models.StatusAll))
	})
}
