package notification

import (
	"testing"

	"github.com/adeeb-debug/baitussalambookingapp/models"

	"github.com/stretchr/testify/assert"
)

func decidedGroup() models.BookingGroup {
	return models.BookingGroup{
		GroupID:         "g1",
		EventName:       "Annual Dinner",
		RequestedBy:     "ali@example.com",
		RequestedByName: "Ali Ahmed",
		Date:            "2026-09-05",
		FromTime:        "10:00",
		ToTime:          "12:00",
		Bookings: []models.BookingRecord{
			{Location: "Main Hall", Status: models.StatusApproved},
			{Location: "Kitchen", Status: models.StatusRejected, RejectionReason: "maintenance day"},
		},
	}
}

func TestAdminRequestEmail(t *testing.T) {
	group := decidedGroup()
	msg := AdminRequestEmail("admin@example.com", "https://portal.example.com", group)

	assert.Equal(t, "admin@example.com", msg.To)
	assert.Equal(t, "NEW BOOKING: Annual Dinner", msg.Subject)
	assert.Contains(t, msg.HTML, "Ali Ahmed")
	assert.Contains(t, msg.HTML, "Main Hall, Kitchen")
	assert.Contains(t, msg.HTML, "2026-09-05")
	assert.Contains(t, msg.HTML, "10:00-12:00")
	assert.Contains(t, msg.HTML, `href="https://portal.example.com"`)
}

func TestDecisionEmail(t *testing.T) {
	t.Run("lists every location outcome", func(t *testing.T) {
		msg := DecisionEmail(decidedGroup())

		assert.Equal(t, "ali@example.com", msg.To)
		assert.Equal(t, "Update: Your Booking for Annual Dinner", msg.Subject)
		assert.Contains(t, msg.HTML, "Main Hall")
		assert.Contains(t, msg.HTML, models.StatusApproved)
		assert.Contains(t, msg.HTML, "Kitchen")
		assert.Contains(t, msg.HTML, models.StatusRejected)
	})

	t.Run("rejection note only for members carrying a reason", func(t *testing.T) {
		msg := DecisionEmail(decidedGroup())
		assert.Contains(t, msg.HTML, "Note: maintenance day")

		approvedOnly := decidedGroup()
		approvedOnly.Bookings = approvedOnly.Bookings[:1]
		msg = DecisionEmail(approvedOnly)
		assert.NotContains(t, msg.HTML, "Note:")
	})
}
