package models

import (
	"strings"
	"time"
)

// Booking statuses. A record is created Pending and moves to exactly one
// of the other states; Cancelled and Rejected are terminal and release
// the location for new requests.
const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"

	// StatusAll is the filter sentinel that matches every status.
	StatusAll = "All"
)

// BookingRecord is one location-specific reservation request. A single
// submission spanning several locations produces one record per location,
// all sharing a GroupID.
type BookingRecord struct {
	ID      string `bson:"id" json:"id"`           // deterministic, see BookingID
	GroupID string `bson:"groupId" json:"groupId"` // shared by all records of one submission

	Date     string `bson:"date" json:"date"`         // "2006-01-02"
	FromTime string `bson:"fromTime" json:"fromTime"` // "15:04"
	ToTime   string `bson:"toTime" json:"toTime"`
	Location string `bson:"location" json:"location"`

	Status          string `bson:"status" json:"status"`
	RejectionReason string `bson:"rejectionReason,omitempty" json:"rejectionReason,omitempty"`

	UserNotified bool       `bson:"userNotified" json:"userNotified"`
	NotifiedAt   *time.Time `bson:"notifiedAt,omitempty" json:"notifiedAt,omitempty"`

	RequestedBy     string    `bson:"requestedBy" json:"requestedBy"` // requester email
	RequestedByName string    `bson:"requestedByName" json:"requestedByName"`
	PhoneNumber     string    `bson:"phoneNumber" json:"phoneNumber"`
	EventName       string    `bson:"eventName" json:"eventName"`
	ExpectedPeople  string    `bson:"expectedPeople" json:"expectedPeople"`
	ExpectedCars    string    `bson:"expectedCars" json:"expectedCars"`
	Jamaat          string    `bson:"jamaat" json:"jamaat"`
	RequestedAt     time.Time `bson:"requestedAt" json:"requestedAt"`
}

// Terminal reports whether the record no longer blocks its time slot.
func (b BookingRecord) Terminal() bool {
	return b.Status == StatusCancelled || b.Status == StatusRejected
}

// BookingID builds the deterministic record identifier from the request
// date, event name and location. Resubmitting the identical combination
// therefore overwrites the existing record instead of duplicating it.
func BookingID(date, eventName, location string) string {
	return date + "_" + stripSpaces(eventName) + "_" + stripSpaces(location)
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
