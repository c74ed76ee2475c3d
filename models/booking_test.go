package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingID(t *testing.T) {
	id := BookingID("2026-09-05", "Annual Dinner", "Main Hall")
	assert.Equal(t, "2026-09-05_AnnualDinner_MainHall", id)

	// Deterministic: same inputs always produce the same id.
	assert.Equal(t, id, BookingID("2026-09-05", "Annual Dinner", "Main Hall"))

	// Distinct inputs stay distinct.
	assert.NotEqual(t, id, BookingID("2026-09-06", "Annual Dinner", "Main Hall"))
	assert.NotEqual(t, id, BookingID("2026-09-05", "Annual Dinner", "Gym"))
}

func TestTerminal(t *testing.T) {
	assert.False(t, BookingRecord{Status: StatusPending}.Terminal())
	assert.False(t, BookingRecord{Status: StatusApproved}.Terminal())
	assert.True(t, BookingRecord{Status: StatusRejected}.Terminal())
	assert.True(t, BookingRecord{Status: StatusCancelled}.Terminal())
}

func TestValidLocation(t *testing.T) {
	assert.True(t, ValidLocation("Main Hall"))
	assert.True(t, ValidLocation("Guest House - Room 2"))
	assert.False(t, ValidLocation("Rooftop"))
	assert.False(t, ValidLocation(""))
}
